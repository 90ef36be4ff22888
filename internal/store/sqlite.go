// Package store persists recorded samples in a local SQLite database
// so series captured over time can be charted later.
package store

import (
	"database/sql"
	"time"

	_ "github.com/glebarez/sqlite"
)

// DB wraps the SQLite database connection
type DB struct {
	*sql.DB
}

// Sample is one recorded value of a labeled series member.
type Sample struct {
	Series     string
	Label      string
	Value      float64
	RecordedAt time.Time
}

// Open opens the SQLite database and creates tables if needed
func Open(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, err
	}

	db := &DB{DB: sqlDB}

	if err := db.createTables(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// createTables creates the necessary database tables
func (db *DB) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS samples (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		series TEXT NOT NULL,
		label TEXT NOT NULL,
		value REAL NOT NULL,
		recorded_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_series_time ON samples(series, recorded_at DESC);
	`

	_, err := db.Exec(query)
	return err
}

// Record stores one sample. A zero RecordedAt is filled with the
// current time.
func (db *DB) Record(sample Sample) error {
	recordedAt := sample.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	_, err := db.Exec(
		`INSERT INTO samples (series, label, value, recorded_at) VALUES (?, ?, ?, ?)`,
		sample.Series,
		sample.Label,
		sample.Value,
		recordedAt.Unix(),
	)
	return err
}

// Latest returns the most recent value for every label in a series.
// Labels keep the order in which they were first recorded, so charts
// built from a series stay stable as new samples arrive.
func (db *DB) Latest(series string) ([]Sample, error) {
	rows, err := db.Query(
		`SELECT label, value, recorded_at FROM samples WHERE series = ? ORDER BY id ASC`,
		series,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var order []string
	latest := make(map[string]Sample)
	for rows.Next() {
		var s Sample
		var ts int64
		if err := rows.Scan(&s.Label, &s.Value, &ts); err != nil {
			return nil, err
		}
		s.Series = series
		s.RecordedAt = time.Unix(ts, 0)

		if _, seen := latest[s.Label]; !seen {
			order = append(order, s.Label)
		}
		latest[s.Label] = s
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	samples := make([]Sample, len(order))
	for i, label := range order {
		samples[i] = latest[label]
	}
	return samples, nil
}

// History returns recent samples for one label of a series, newest first
func (db *DB) History(series, label string, limit int) ([]Sample, error) {
	rows, err := db.Query(
		`SELECT value, recorded_at FROM samples
		 WHERE series = ? AND label = ?
		 ORDER BY recorded_at DESC, id DESC
		 LIMIT ?`,
		series, label, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []Sample
	for rows.Next() {
		s := Sample{Series: series, Label: label}
		var ts int64
		if err := rows.Scan(&s.Value, &ts); err != nil {
			return nil, err
		}
		s.RecordedAt = time.Unix(ts, 0)
		samples = append(samples, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return samples, nil
}

// Series lists all recorded series names in alphabetical order
func (db *DB) Series() ([]string, error) {
	rows, err := db.Query(`SELECT DISTINCT series FROM samples ORDER BY series`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return names, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}
