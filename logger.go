package contagiongo

import "github.com/segmentio/ksuid"

// ResultRecord is one replicate's outcome tagged with the cell it came
// from and a unique id, the unit every ResultSink consumes (spec.md §6,
// C11).
type ResultRecord struct {
	RunID   ksuid.KSUID
	PTraced float64
	PApp    float64
	Result  RunResult
}

// ResultSink is the general definition of a sink that records completed
// replicates, whether it writes a delimited text file or a database
// (kentwait-contagion's DataLogger, repurposed from genotype/host
// channels to sweep replicates).
type ResultSink interface {
	// Init prepares the sink to receive records — creating a file header
	// or a database table.
	Init() error
	// Write records one replicate's outcome.
	Write(rec ResultRecord) error
	// Close releases any resource the sink is holding open.
	Close() error
}

// NewResultRecord stamps result with a fresh run id.
func NewResultRecord(pTraced, pApp float64, result RunResult) ResultRecord {
	return ResultRecord{RunID: ksuid.New(), PTraced: pTraced, PApp: pApp, Result: result}
}
