// Package store keeps privacy-conscious site analytics in SQLite: visits with
// hashed IP addresses and which skills visitors compare.
package store

import (
	"context"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// Store wraps the analytics database.
type Store struct {
	db *sqlx.DB
}

// Open opens or creates the database at path, configures it and applies
// pending migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "failed to create database directory")
		}
	}

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to ping database")
	}

	if err := configure(ctx, db); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to configure database")
	}

	if err := NewMigrationRunner(db).Run(ctx, Migrations); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func configure(ctx context.Context, db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA temp_store=memory",
		"PRAGMA busy_timeout=5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return errors.Wrapf(err, "failed to execute pragma: %s", pragma)
		}
	}

	// tracking writes come from many request goroutines
	db.SetMaxIdleConns(1)
	db.SetMaxOpenConns(1)
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
