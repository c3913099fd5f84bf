package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisitors    int64        `json:"total_visitors"`
	UniqueVisitors   int64        `json:"unique_visitors"`
	VisitorsToday    int64        `json:"visitors_today"`
	VisitorsThisWeek int64        `json:"visitors_this_week"`
	TotalComparisons int64        `json:"total_comparisons"`
	TopSkills        []SkillCount `json:"top_skills"`
	RecentVisitors   []Visit      `json:"recent_visitors"`
}

// Stats summarises analytics as of now. "Today" starts at UTC midnight.
func (s *Store) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	now = now.UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.Add(-7 * 24 * time.Hour)

	stats := &Stats{}
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, "SELECT COUNT(*) FROM visitors", nil},
		{&stats.UniqueVisitors, "SELECT COUNT(DISTINCT hashed_ip) FROM visitors", nil},
		{&stats.VisitorsToday, "SELECT COUNT(*) FROM visitors WHERE visited_at >= ?", []any{midnight.Unix()}},
		{&stats.VisitorsThisWeek, "SELECT COUNT(*) FROM visitors WHERE visited_at >= ?", []any{weekAgo.Unix()}},
		{&stats.TotalComparisons, "SELECT COUNT(DISTINCT comparison_id) FROM comparisons", nil},
	}
	for _, c := range counts {
		if err := s.db.GetContext(ctx, c.dst, c.query, c.args...); err != nil {
			return nil, errors.Wrapf(err, "failed to run %q", c.query)
		}
	}

	var err error
	if stats.TopSkills, err = s.TopComparedSkills(ctx, 10); err != nil {
		return nil, err
	}
	if stats.RecentVisitors, err = s.RecentVisits(ctx, 50); err != nil {
		return nil, err
	}
	return stats, nil
}
