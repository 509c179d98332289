package contagiongo

import (
	"bytes"
	"fmt"
	"os"
)

// TSVResultSink is a ResultSink that appends tab-delimited rows to a
// file. The run subcommand uses it when --out is given, alongside any
// SQLite sink.
type TSVResultSink struct {
	path string
}

// NewTSVResultSink creates a sink that appends to the file at path.
func NewTSVResultSink(path string) *TSVResultSink {
	return &TSVResultSink{path: path}
}

// Init writes the column header if the file does not already exist.
func (s *TSVResultSink) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	}
	var b bytes.Buffer
	b.WriteString("run_id\tp_traced\tp_app\tI\tq\tfq\n")
	return writeNewFile(s.path, b.Bytes())
}

// Write appends one record as a single TSV row.
func (s *TSVResultSink) Write(rec ResultRecord) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s\t%g\t%g\t%d\t%d\t%d\n",
		rec.RunID.String(), rec.PTraced, rec.PApp,
		rec.Result.TotalInfected, rec.Result.Quarantines, rec.Result.FalseQuarantines)
	return appendToFile(s.path, b.Bytes())
}

// Close is a no-op: every Write opens and closes its own file handle.
func (s *TSVResultSink) Close() error {
	return nil
}

// writeNewFile creates path and writes b, failing if the file already
// exists.
func writeNewFile(path string, b []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Write(b); err != nil {
		return err
	}
	return f.Sync()
}

// appendToFile creates path if missing, or appends to it if present.
func appendToFile(path string, b []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Write(b); err != nil {
		return err
	}
	return f.Sync()
}
