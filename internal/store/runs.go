package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BeginRun records the start of a generation run and returns its id.
func (s *Store) BeginRun() (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO runs (id, started_at) VALUES (?, ?)",
		id, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("begin run: %w", err)
	}
	return id, nil
}

// FinishRun records the end of a run with its generated/skipped counts.
func (s *Store) FinishRun(id string, generated, skipped int) error {
	_, err := s.db.Exec(
		"UPDATE runs SET finished_at = ?, generated = ?, skipped = ? WHERE id = ?",
		time.Now().UTC().Format(time.RFC3339), generated, skipped, id,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// Stats summarizes the cache for display.
type Stats struct {
	Files   int
	Runs    int
	LastRun time.Time
}

// GetStats reports cache size and the most recent run time.
func (s *Store) GetStats() (Stats, error) {
	var stats Stats

	if err := s.db.QueryRow("SELECT COUNT(*) FROM files").Scan(&stats.Files); err != nil {
		return stats, fmt.Errorf("count files: %w", err)
	}
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&stats.Runs); err != nil {
		return stats, fmt.Errorf("count runs: %w", err)
	}

	var last sql.NullString
	if err := s.db.QueryRow("SELECT MAX(started_at) FROM runs").Scan(&last); err != nil {
		return stats, fmt.Errorf("read last run: %w", err)
	}
	if last.Valid {
		if t, err := time.Parse(time.RFC3339, last.String); err == nil {
			stats.LastRun = t
		}
	}

	return stats, nil
}

// Clear drops all cached file hashes and run records.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM files"); err != nil {
		return fmt.Errorf("clear files: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("clear runs: %w", err)
	}
	return nil
}
