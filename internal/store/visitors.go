package store

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/pkg/errors"
)

// RetentionPeriod is how long visits are kept.
const RetentionPeriod = 365 * 24 * time.Hour

// Visit is a tracked page view. The client address is never stored, only a
// salted hash of it.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type visitRow struct {
	ID        int64  `db:"id"`
	HashedIP  string `db:"hashed_ip"`
	UserAgent string `db:"user_agent"`
	Path      string `db:"path"`
	VisitedAt int64  `db:"visited_at"`
}

func (r visitRow) visit() Visit {
	return Visit{
		ID:        r.ID,
		HashedIP:  r.HashedIP,
		UserAgent: r.UserAgent,
		Path:      r.Path,
		Timestamp: time.Unix(r.VisitedAt, 0).UTC(),
	}
}

// IPHasher hashes client addresses with a per-process salt, so hashes are
// consistent for one run but cannot be joined across restarts.
type IPHasher struct {
	salt string
}

// NewIPHasher returns a hasher with a random salt.
func NewIPHasher() (*IPHasher, error) {
	salt, err := RandomToken()
	if err != nil {
		return nil, err
	}
	return &IPHasher{salt: salt}, nil
}

// Hash returns the first 16 hex characters of sha256(ip + salt).
func (h *IPHasher) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// RandomToken returns 32 random bytes, hex encoded.
func RandomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "failed to generate random token")
	}
	return hex.EncodeToString(b), nil
}

// RecordVisit stores a page view.
func (s *Store) RecordVisit(ctx context.Context, v Visit) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO visitors (hashed_ip, user_agent, path, visited_at) VALUES (?, ?, ?, ?)",
		v.HashedIP, v.UserAgent, v.Path, v.Timestamp.Unix())
	return errors.Wrap(err, "failed to record visit")
}

// RecentVisits returns up to limit visits, newest first.
func (s *Store) RecentVisits(ctx context.Context, limit int) ([]Visit, error) {
	var rows []visitRow
	if err := s.db.SelectContext(ctx, &rows, `
		SELECT id, hashed_ip, user_agent, path, visited_at
		FROM visitors
		ORDER BY visited_at DESC, id DESC
		LIMIT ?
	`, limit); err != nil {
		return nil, errors.Wrap(err, "failed to load visits")
	}

	visits := make([]Visit, len(rows))
	for i, r := range rows {
		visits[i] = r.visit()
	}
	return visits, nil
}

// PurgeVisitsBefore deletes visits older than cutoff and returns how many
// were removed.
func (s *Store) PurgeVisitsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM visitors WHERE visited_at < ?", cutoff.Unix())
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge visits")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count purged visits")
	}
	return n, nil
}
