package store

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// Migration is a schema change versioned by timestamp (YYYYMMDDHHmmss).
type Migration struct {
	Version     int64
	Description string
	Up          func(*sql.Tx) error
}

// Migrations is the analytics schema history.
var Migrations = []Migration{
	{
		Version:     20250801090000,
		Description: "create visitors",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS visitors (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					hashed_ip TEXT NOT NULL,
					user_agent TEXT NOT NULL DEFAULT '',
					path TEXT NOT NULL DEFAULT '',
					visited_at INTEGER NOT NULL
				);
				CREATE INDEX IF NOT EXISTS idx_visitors_visited_at ON visitors(visited_at);
			`)
			return err
		},
	},
	{
		Version:     20250801090100,
		Description: "create comparisons",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS comparisons (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					comparison_id TEXT NOT NULL,
					skill TEXT NOT NULL,
					position INTEGER NOT NULL,
					compared_at INTEGER NOT NULL
				);
				CREATE INDEX IF NOT EXISTS idx_comparisons_skill ON comparisons(skill);
			`)
			return err
		},
	},
}

// MigrationRunner applies migrations that have not been recorded yet.
type MigrationRunner struct {
	db *sqlx.DB
}

// NewMigrationRunner creates a migration runner.
func NewMigrationRunner(db *sqlx.DB) *MigrationRunner {
	return &MigrationRunner{db: db}
}

// Run executes all pending migrations in version order.
func (r *MigrationRunner) Run(ctx context.Context, migrations []Migration) error {
	if _, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME NOT NULL,
			description TEXT
		)
	`); err != nil {
		return errors.Wrap(err, "failed to create schema_migrations table")
	}

	applied, err := r.AppliedVersions(ctx)
	if err != nil {
		return err
	}
	done := make(map[int64]bool, len(applied))
	for _, v := range applied {
		done[v] = true
	}

	sorted := make([]Migration, len(migrations))
	copy(sorted, migrations)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Version < sorted[j].Version
	})

	for _, m := range sorted {
		if done[m.Version] {
			continue
		}
		if err := r.apply(ctx, m); err != nil {
			return errors.Wrapf(err, "failed to apply migration %d: %s", m.Version, m.Description)
		}
	}
	return nil
}

// AppliedVersions lists recorded migration versions in ascending order.
func (r *MigrationRunner) AppliedVersions(ctx context.Context) ([]int64, error) {
	var versions []int64
	if err := r.db.SelectContext(ctx, &versions, "SELECT version FROM schema_migrations ORDER BY version"); err != nil {
		return nil, errors.Wrap(err, "failed to get applied migrations")
	}
	return versions, nil
}

func (r *MigrationRunner) apply(ctx context.Context, m Migration) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if err := m.Up(tx.Tx); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version, applied_at, description) VALUES (?, ?, ?)",
		m.Version, time.Now().UTC(), m.Description); err != nil {
		return errors.Wrap(err, "failed to record migration")
	}

	return tx.Commit()
}
