// Package storage persists merged datasets into an embedded sqlite
// database so training scripts can query a stable artifact.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"carcrawl/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS merge_runs (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	brand         TEXT,
	location      TEXT,
	total_merged  INTEGER NOT NULL,
	generated_at  TEXT NOT NULL,
	sources       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS listings (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id        INTEGER NOT NULL REFERENCES merge_runs(id),
	title         TEXT,
	price         INTEGER,
	mileage_km    INTEGER,
	year          INTEGER,
	model         TEXT,
	province_city TEXT,
	link          TEXT,
	source        TEXT NOT NULL,
	extra         TEXT
);
`

// SQLiteStore writes merged datasets into a sqlite file.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()

		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveDataset inserts the run metadata and every listing in one
// transaction, returning the run id.
func (s *SQLiteStore) SaveDataset(ctx context.Context, dataset models.MergedDataset) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	sources, err := json.Marshal(dataset.Sources)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal sources: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO merge_runs (brand, location, total_merged, generated_at, sources)
		 VALUES (?, ?, ?, ?, ?)`,
		dataset.Brand, dataset.Location, dataset.TotalMerged, dataset.GeneratedAt, string(sources))
	if err != nil {
		return 0, fmt.Errorf("failed to insert merge run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO listings (run_id, title, price, mileage_km, year, model, province_city, link, source, extra)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare listing insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range dataset.Listings {
		var extra any

		if len(rec.Extra) > 0 {
			blob, marshalErr := json.Marshal(rec.Extra)
			if marshalErr != nil {
				return 0, fmt.Errorf("failed to marshal extra for listing %d: %w", i, marshalErr)
			}

			extra = string(blob)
		}

		_, err := stmt.ExecContext(ctx, runID,
			rec.Title, rec.Price, rec.MileageKM, rec.Year,
			rec.Model, rec.ProvinceCity, rec.Link, rec.Source, extra)
		if err != nil {
			return 0, fmt.Errorf("failed to insert listing %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}

	return runID, nil
}

// CountListings returns the number of stored listings for a run.
func (s *SQLiteStore) CountListings(ctx context.Context, runID int64) (int, error) {
	var n int

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM listings WHERE run_id = ?`, runID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}

	return n, nil
}
