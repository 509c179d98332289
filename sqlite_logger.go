package contagiongo

import (
	"database/sql"
	"fmt"

	"github.com/pkg/errors"

	// sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteResultSink is a ResultSink that ingests replicate records into a
// SQLite database opened in WAL mode, adapted from the teacher's
// OpenSQLiteDBOptimized/SQLiteLogger pattern (sqlite_logger.go) but
// writing one `results` table instead of one table per genotype
// channel.
type SQLiteResultSink struct {
	path string
	db   *sql.DB
	tx   *sql.Tx
	stmt *sql.Stmt
}

// NewSQLiteResultSink returns a sink for the database at path; Init
// opens (or creates) it.
func NewSQLiteResultSink(path string) *SQLiteResultSink {
	return &SQLiteResultSink{path: path}
}

// openSQLiteDBOptimized opens path with the write-ahead log and
// exclusive locking the teacher uses for high-throughput ingestion.
func openSQLiteDBOptimized(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_journal=WAL&_locking=EXCLUSIVE&_sync=NORMAL", path)
	return sql.Open("sqlite3", dsn)
}

// Init opens the database, creates the results table if absent, and
// begins the transaction every Write appends to.
func (s *SQLiteResultSink) Init() error {
	db, err := openSQLiteDBOptimized(s.path)
	if err != nil {
		return errors.Wrapf(err, "opening sqlite db %s", s.path)
	}
	s.db = db

	const createStmt = `create table if not exists results (
		id integer not null primary key,
		run_id text,
		p_traced real,
		p_app real,
		total_infected int,
		quarantines int,
		false_quarantines int
	)`
	if _, err := s.db.Exec(createStmt); err != nil {
		return errors.Wrap(err, "creating results table")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	s.tx = tx

	stmt, err := tx.Prepare(`insert into results(run_id, p_traced, p_app, total_infected, quarantines, false_quarantines) values(?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "preparing insert statement")
	}
	s.stmt = stmt
	return nil
}

// Write inserts one replicate record within the open transaction.
func (s *SQLiteResultSink) Write(rec ResultRecord) error {
	_, err := s.stmt.Exec(
		rec.RunID.String(),
		rec.PTraced,
		rec.PApp,
		rec.Result.TotalInfected,
		rec.Result.Quarantines,
		rec.Result.FalseQuarantines,
	)
	return err
}

// Close commits the transaction and closes the database handle.
func (s *SQLiteResultSink) Close() error {
	if s.stmt != nil {
		s.stmt.Close()
	}
	if s.tx != nil {
		if err := s.tx.Commit(); err != nil {
			return errors.Wrap(err, "committing results transaction")
		}
	}
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
