package main

import (
	"bufio"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"time"

	// sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

// tsv2sqlite bulk-loads the raw per-replicate rows a sweep run wrote to
// TSV into a SQLite table, one row per (p_traced, p_app, replicate). It
// intentionally does not compute any mean or normalization over those
// rows: that aggregation is left to whatever downstream tool consumes
// this database, adapted from bin/csv2sqlite/main.go's bulk-insert
// structure (flag-based CLI, one transaction per input file, WAL-mode
// SQLite) but against this module's flat five-column sweep format
// instead of per-genotype CSV families.
func main() {
	var outPath string
	flag.StringVar(&outPath, "out", "", "location to create the sqlite3 file (required)")
	var tableName string
	flag.StringVar(&tableName, "table", "sweep_results", "destination table name")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("TSV path was not specified!")
		flag.Usage()
		os.Exit(2)
	}
	if outPath == "" {
		fmt.Println("-out was not specified")
		os.Exit(2)
	}

	db, err := openSQLiteDBOptimized(outPath)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	createStmt := fmt.Sprintf(`create table if not exists %s (
		id integer not null primary key,
		p_traced real,
		p_app real,
		total_infected int,
		quarantines int,
		false_quarantines int
	)`, tableName)
	if _, err := db.Exec(createStmt); err != nil {
		log.Fatalf("%q: %s", err, createStmt)
	}

	insertStmt := fmt.Sprintf("insert into %s(p_traced, p_app, total_infected, quarantines, false_quarantines) values(?, ?, ?, ?, ?)", tableName)

	startTime := time.Now()
	rowCount := 0
	splitter := regexp.MustCompile(`\t`)
	for _, path := range flag.Args() {
		n, err := loadFile(db, insertStmt, path, splitter)
		if err != nil {
			panic(err)
		}
		rowCount += n
		fmt.Printf("%s: %d rows\n", path, n)
	}

	elapsed := time.Since(startTime)
	fmt.Printf("Finished. %d rows total in %v\n", rowCount, elapsed)
}

func loadFile(db *sql.DB, insertStmt, path string, splitter *regexp.Regexp) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	stmt, err := tx.Prepare(insertStmt)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	scanner := bufio.NewScanner(f)
	n := 0
	for scanner.Scan() {
		line := scanner.Text()
		fields := splitter.Split(line, -1)
		if len(fields) != 5 {
			// Parameter/Time preamble and trailer lines don't have 5
			// tab-separated fields; skip them.
			continue
		}
		pTraced, err1 := strconv.ParseFloat(fields[0], 64)
		pApp, err2 := strconv.ParseFloat(fields[1], 64)
		infected, err3 := strconv.Atoi(fields[2])
		quarantines, err4 := strconv.Atoi(fields[3])
		falseQuarantines, err5 := strconv.Atoi(fields[4])
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
			continue
		}
		if _, err := stmt.Exec(pTraced, pApp, infected, quarantines, falseQuarantines); err != nil {
			return n, err
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		return n, err
	}
	return n, tx.Commit()
}

func openSQLiteDBOptimized(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_journal=WAL&_locking=EXCLUSIVE&_sync=NORMAL", path)
	return sql.Open("sqlite3", dsn)
}
