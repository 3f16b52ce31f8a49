// Package store is the incremental generation cache: a SQLite database
// recording the content hash of every scanned source file per generation
// run, so unchanged packages can be skipped.
package store

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/declgen-tools/cli/internal/store/migrations"
)

// Store wraps the cache database connection.
type Store struct {
	db   *sql.DB
	path string
}

// New opens (or creates) the cache database at path and runs migrations.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping cache database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// NewWithDB creates a Store from an existing connection. Used by tests
// with in-memory databases.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying connection. Use sparingly.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// setDBPermissions restricts the database file to the owning user. The
// cache holds nothing secret, but it lives next to files that might.
func setDBPermissions(path string) {
	if info, err := os.Stat(path); err == nil && info.Mode().Perm() != 0600 {
		_ = os.Chmod(path, 0600)
	}
}
