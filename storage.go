package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Storage persists trial results into a local SQLite file, separate from the
// in-memory database under measurement.
type Storage struct {
	Path string
}

func (s *Storage) Connect() (*sql.DB, error) {
	return sql.Open("sqlite", s.Path)
}

func (s *Storage) InitResultsDb(db *sql.DB, meta map[string]any) error {
	_, err := db.Exec("CREATE TABLE IF NOT EXISTS parameters (name TEXT PRIMARY KEY, value)")
	if err != nil {
		return err
	}
	parameters := make([]any, 0)
	parameters = append(parameters, "time", time.Now().Format("2006-01-02 15:04:05"))
	for key, value := range meta {
		parameters = append(parameters, key, fmt.Sprintf("%v", value))
	}
	pairs := make([]string, len(parameters)/2)
	for i := range pairs {
		pairs[i] = "(?, ?)"
	}
	placeholders := strings.Join(pairs, ", ")
	_, err = db.Exec(
		fmt.Sprintf("INSERT INTO parameters VALUES %v ON CONFLICT DO NOTHING", placeholders),
		parameters...,
	)
	if err != nil {
		return err
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS measurements (
		trial INTEGER,
        measurement TEXT,
        iterations REAL,
        value REAL,
		PRIMARY KEY (trial, measurement)
    )`)
	if err != nil {
		return err
	}
	Logger.Infof("initialized results database with meta %v", meta)
	return nil
}

func (s *Storage) UpdateResultsDb(db *sql.DB, iterations int, results []TrialResult) error {
	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		return err
	}
	for trial, result := range results {
		_, err = tx.Exec(
			"INSERT INTO measurements VALUES (?, ?, ?, ?)",
			trial, "elapsed_ms", iterations, result.Elapsed.Seconds()*1000,
		)
		if err != nil {
			return err
		}
		_, err = tx.Exec(
			"INSERT INTO measurements VALUES (?, ?, ?, ?)",
			trial, "rate", iterations, result.Rate,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
