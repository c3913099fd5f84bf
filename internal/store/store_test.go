package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "analytics.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenAppliesMigrations(t *testing.T) {
	s := openTestStore(t)

	versions, err := NewMigrationRunner(s.db).AppliedVersions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{20250801090000, 20250801090100}, versions)

	var journalMode string
	require.NoError(t, s.db.Get(&journalMode, "PRAGMA journal_mode"))
	assert.Equal(t, "wal", journalMode)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analytics.db")
	ctx := context.Background()

	s, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	versions, err := NewMigrationRunner(s.db).AppliedVersions(ctx)
	require.NoError(t, err)
	assert.Len(t, versions, len(Migrations))
}

func TestIPHasher(t *testing.T) {
	h, err := NewIPHasher()
	require.NoError(t, err)

	a := h.Hash("203.0.113.7")
	assert.Len(t, a, 16)
	assert.Equal(t, a, h.Hash("203.0.113.7"))
	assert.NotEqual(t, a, h.Hash("203.0.113.8"))

	other, err := NewIPHasher()
	require.NoError(t, err)
	assert.NotEqual(t, a, other.Hash("203.0.113.7"))
}

func TestVisits(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2025, 9, 10, 15, 0, 0, 0, time.UTC)

	visits := []Visit{
		{HashedIP: "aaaa", Path: "/", Timestamp: now.Add(-400 * 24 * time.Hour)},
		{HashedIP: "aaaa", Path: "/skills", Timestamp: now.Add(-3 * 24 * time.Hour)},
		{HashedIP: "bbbb", Path: "/projects", Timestamp: now.Add(-2 * time.Hour), UserAgent: "curl/8"},
		{HashedIP: "cccc", Path: "/", Timestamp: now.Add(-time.Minute)},
	}
	for _, v := range visits {
		require.NoError(t, s.RecordVisit(ctx, v))
	}

	recent, err := s.RecentVisits(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "cccc", recent[0].HashedIP)
	assert.Equal(t, "curl/8", recent[1].UserAgent)
	assert.True(t, recent[1].Timestamp.Equal(now.Add(-2*time.Hour)))

	stats, err := s.Stats(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalVisitors)
	assert.EqualValues(t, 3, stats.UniqueVisitors)
	assert.EqualValues(t, 2, stats.VisitorsToday)
	assert.EqualValues(t, 3, stats.VisitorsThisWeek)

	purged, err := s.PurgeVisitsBefore(ctx, now.Add(-RetentionPeriod))
	require.NoError(t, err)
	assert.EqualValues(t, 1, purged)

	stats, err = s.Stats(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalVisitors)
}

func TestComparisons(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, s.RecordComparison(ctx, []string{"Python", "Java"}, now))
	require.NoError(t, s.RecordComparison(ctx, []string{"Go", "Python", "HTML5"}, now))
	require.NoError(t, s.RecordComparison(ctx, nil, now))

	top, err := s.TopComparedSkills(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []SkillCount{
		{Skill: "Python", Count: 2},
		{Skill: "Go", Count: 1},
		{Skill: "HTML5", Count: 1},
	}, top)

	stats, err := s.Stats(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalComparisons)
	assert.Len(t, stats.TopSkills, 4)
	assert.Empty(t, stats.RecentVisitors)
}
