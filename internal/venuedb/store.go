// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package venuedb persists the venue location index in a local SQLite
// database so repeated runs can skip rescanning the check-in files. The
// cache is optional: the pipeline works identically without it.
package venuedb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/foursquare2maps/pkg/types"
)

// Store manages the venue index SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path, creating the schema and any
// missing parent directories.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening venue cache: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS venues (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lat  REAL NOT NULL,
		lng  REAL NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Ingest inserts every index entry, keeping any venue already present.
// INSERT OR IGNORE carries the first-occurrence-wins rule of the in-memory
// index over to incremental ingests across runs. It returns the number of
// rows actually inserted.
func (s *Store) Ingest(index types.VenueIndex) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO venues (id, name, lat, lng) VALUES (?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for id, loc := range index {
		res, err := stmt.Exec(id, loc.Name, loc.Lat, loc.Lng)
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("inserting venue %s: %w", id, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return inserted, nil
}

// Load reads the full venue table back into an in-memory index.
func (s *Store) Load() (types.VenueIndex, error) {
	rows, err := s.db.Query(`SELECT id, name, lat, lng FROM venues`)
	if err != nil {
		return nil, fmt.Errorf("querying venues: %w", err)
	}
	defer rows.Close()

	index := make(types.VenueIndex)
	for rows.Next() {
		var id, name string
		var lat, lng float64
		if err := rows.Scan(&id, &name, &lat, &lng); err != nil {
			return nil, fmt.Errorf("scanning venue row: %w", err)
		}
		index[id] = types.VenueLocation{Lat: lat, Lng: lng, Name: name}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating venues: %w", err)
	}
	return index, nil
}

// Count returns the number of cached venues.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT count(*) FROM venues`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting venues: %w", err)
	}
	return n, nil
}
