package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// LookupHash returns the recorded content hash for a source file path.
func (s *Store) LookupHash(path string) (string, bool, error) {
	var hash string
	err := s.db.QueryRow("SELECT hash FROM files WHERE path = ?", path).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lookup hash: %w", err)
	}
	return hash, true, nil
}

// RecordHash upserts the content hash for a source file under a run.
func (s *Store) RecordHash(runID, path, hash string) error {
	_, err := s.db.Exec(`
		INSERT INTO files (path, hash, run_id, generated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			hash = excluded.hash,
			run_id = excluded.run_id,
			generated_at = excluded.generated_at`,
		path, hash, runID, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record hash: %w", err)
	}
	return nil
}
