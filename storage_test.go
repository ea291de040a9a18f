package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStorageRoundTrip(t *testing.T) {
	storage := Storage{Path: filepath.Join(t.TempDir(), "results.db")}
	db, err := storage.Connect()
	require.Nil(t, err)
	defer db.Close()

	err = storage.InitResultsDb(db, map[string]any{"trials": 2, "iterations": 100})
	require.Nil(t, err)

	results := []TrialResult{
		{Elapsed: 120 * time.Millisecond, Rate: 8333.3},
		{Elapsed: 130 * time.Millisecond, Rate: 7692.3},
	}
	require.Nil(t, storage.UpdateResultsDb(db, 100, results))

	var count int
	require.Nil(t, db.QueryRow("SELECT count(*) FROM measurements").Scan(&count))
	require.Equal(t, 4, count)

	var rate float64
	err = db.QueryRow("SELECT value FROM measurements WHERE trial = 0 AND measurement = 'rate'").Scan(&rate)
	require.Nil(t, err)
	require.InDelta(t, 8333.3, rate, 1e-6)

	var trials string
	err = db.QueryRow("SELECT value FROM parameters WHERE name = 'trials'").Scan(&trials)
	require.Nil(t, err)
	require.Equal(t, "2", trials)
}

func TestStorageInitIdempotent(t *testing.T) {
	storage := Storage{Path: filepath.Join(t.TempDir(), "results.db")}
	db, err := storage.Connect()
	require.Nil(t, err)
	defer db.Close()

	require.Nil(t, storage.InitResultsDb(db, map[string]any{"trials": 2}))
	require.Nil(t, storage.InitResultsDb(db, map[string]any{"trials": 5}))

	var trials string
	err = db.QueryRow("SELECT value FROM parameters WHERE name = 'trials'").Scan(&trials)
	require.Nil(t, err)
	require.Equal(t, "2", trials)
}
