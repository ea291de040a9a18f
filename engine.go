package main

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// UserVersionMark is written into the database header during setup and read
// back by every benchmarked query.
const UserVersionMark = 100

var setupPragmas = []string{
	"PRAGMA auto_vacuum = none",
	"PRAGMA temp_store = memory",
	"PRAGMA locking_mode = exclusive",
	fmt.Sprintf("PRAGMA user_version = %v", UserVersionMark),
}

// Engine owns the single connection to the benchmarked in-memory database
// and the prepared statement reused by every query.
type Engine struct {
	db   *sql.DB
	stmt *sql.Stmt
}

func OpenEngine(dsn string) (*Engine, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %v: %w", dsn, err)
	}
	// a second pool connection to :memory: would be a separate empty database,
	// without the pragmas and the user_version mark applied below
	db.SetMaxOpenConns(1)
	for _, pragma := range setupPragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	stmt, err := db.Prepare("PRAGMA user_version")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare user_version query: %w", err)
	}
	return &Engine{db: db, stmt: stmt}, nil
}

// UserVersion runs the benchmarked query: a single-row read of the header
// field set during setup.
func (e *Engine) UserVersion() (int64, error) {
	var version int64
	if err := e.stmt.QueryRow().Scan(&version); err != nil {
		return 0, err
	}
	return version, nil
}

func (e *Engine) Close() error {
	if err := e.stmt.Close(); err != nil {
		e.db.Close()
		return err
	}
	return e.db.Close()
}
