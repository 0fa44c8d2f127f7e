// Package store keeps a SQLite ledger of observed balance snapshots,
// one row per as-of date, so past balances can be reviewed over time.
// Simulation output is never persisted.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"valvelet/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// History is the snapshot ledger.
type History struct {
	db *sql.DB
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*History, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &History{db: db}, nil
}

// Close closes the history database.
func (h *History) Close() error {
	return h.db.Close()
}

// Record stores a balance snapshot. Recording the same as-of date again
// replaces the earlier row, so editing balance.xml and re-running keeps
// one entry per date.
func (h *History) Record(snap model.Snapshot) error {
	_, err := h.db.Exec(
		`INSERT OR REPLACE INTO snapshots (as_of, balance, recorded_at) VALUES (?, ?, ?)`,
		snap.AsOf.Format("2006-01-02"),
		snap.Balance,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// List returns all snapshots ordered by as-of date ascending.
func (h *History) List() ([]model.Snapshot, error) {
	rows, err := h.db.Query(`SELECT as_of, balance FROM snapshots ORDER BY as_of ASC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var snaps []model.Snapshot
	for rows.Next() {
		var asOf string
		var balance float64
		if err := rows.Scan(&asOf, &balance); err != nil {
			return nil, err
		}
		d, err := time.Parse("2006-01-02", asOf)
		if err != nil {
			return nil, fmt.Errorf("corrupt as_of %q: %w", asOf, err)
		}
		snaps = append(snaps, model.Snapshot{Balance: balance, AsOf: d})
	}
	return snaps, rows.Err()
}

// Count returns the number of recorded snapshots.
func (h *History) Count() (int, error) {
	var count int
	err := h.db.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&count)
	return count, err
}
