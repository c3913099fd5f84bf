package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// SkillCount is how often a skill appeared in a comparison.
type SkillCount struct {
	Skill string `db:"skill" json:"skill"`
	Count int64  `db:"count" json:"count"`
}

// RecordComparison stores one rendered comparison of skills, in display order.
func (s *Store) RecordComparison(ctx context.Context, skills []string, at time.Time) error {
	if len(skills) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	id := uuid.NewString()
	for i, skill := range skills {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO comparisons (comparison_id, skill, position, compared_at) VALUES (?, ?, ?, ?)",
			id, skill, i, at.Unix()); err != nil {
			return errors.Wrapf(err, "failed to record comparison of %s", skill)
		}
	}

	return errors.Wrap(tx.Commit(), "failed to commit comparison")
}

// TopComparedSkills returns the skills compared most often. Ties are broken
// alphabetically.
func (s *Store) TopComparedSkills(ctx context.Context, limit int) ([]SkillCount, error) {
	var counts []SkillCount
	if err := s.db.SelectContext(ctx, &counts, `
		SELECT skill, COUNT(*) AS count
		FROM comparisons
		GROUP BY skill
		ORDER BY count DESC, skill ASC
		LIMIT ?
	`, limit); err != nil {
		return nil, errors.Wrap(err, "failed to load compared skills")
	}
	return counts, nil
}
