package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// DatabaseFile is the fixed name of the attempt database.
const DatabaseFile = "QuizDatabase.db"

// ErrStoreUnavailable indicates the persistence medium could not be opened
// or initialized. Callers recover by treating history as empty.
var ErrStoreUnavailable = errors.New("attempt store unavailable")

// Store holds the SQLite connection and provides access to repositories.
type Store struct {
	db   *sql.DB
	drv  *entsql.Driver
	keys *KeyGen
}

// Open connects to the SQLite database at dsn, applies recommended pragmas
// and runs the version-gated migration. Every failure wraps
// ErrStoreUnavailable.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %w", ErrStoreUnavailable, err)
	}
	// Pragmas are per connection; a single connection keeps them (and
	// in-memory databases) consistent.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: apply pragmas: %w", ErrStoreUnavailable, err)
	}

	s := &Store{
		db:   db,
		drv:  entsql.OpenDB(dialect.SQLite, db),
		keys: NewKeyGen(nil),
	}

	if err := s.migrate(context.Background()); err != nil {
		s.Close()
		return nil, fmt.Errorf("%w: migrate: %w", ErrStoreUnavailable, err)
	}

	return s, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.drv.Close()
}

// AttemptRepo returns an AttemptRepo backed by this store.
func (s *Store) AttemptRepo() AttemptRepo {
	return &attemptRepo{db: s.db, keys: s.keys}
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path:
// $XDG_DATA_HOME/timedquiz/QuizDatabase.db, falling back to
// ~/.local/share/timedquiz/QuizDatabase.db.
func DefaultDBPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "timedquiz", DatabaseFile)
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
