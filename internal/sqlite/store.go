// Package sqlite implements the Curio persistence engine and lifecycle
// manager on a single-file SQLite database. One generic engine serves all
// four entity tables, driven by the schema descriptors in pkg/types.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/curioshelf/curio/pkg/types"
)

// Store owns the database handle. All operations are synchronous and assume
// a single process with exclusive access to the file; there is no
// multi-instance write coordination.
type Store struct {
	db *sql.DB
}

// Open opens the database named by config, configures pragmas, creates the
// schema if missing, and seeds the default administrator account.
func Open(config types.Config) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	if err := seedAdmin(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// seedAdmin inserts the default administrator account on first startup, so a
// fresh database is immediately usable. Existing rows are left alone.
func seedAdmin(db *sql.DB) error {
	_, err := db.Exec(
		`INSERT OR IGNORE INTO User (Username, Password, Role, Status) VALUES (?, ?, ?, ?)`,
		"admin", "admin", types.RoleAdmin, types.StatusActive)
	if err != nil {
		return fmt.Errorf("seeding admin user: %w", err)
	}
	return nil
}

// classify maps driver failures onto the sentinel errors in pkg/types so
// callers can branch with errors.Is. Unrecognized errors pass through.
func classify(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "constraint"):
		return types.ErrConstraintViolation
	case strings.Contains(msg, "database is locked"),
		strings.Contains(msg, "unable to open"),
		strings.Contains(msg, "database is closed"):
		return types.ErrConnection
	default:
		return err
	}
}
