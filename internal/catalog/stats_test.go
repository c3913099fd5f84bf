package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProficiencyLabelBoundaries(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{100, "Expert"},
		{95, "Expert"},
		{94, "Expert"},
		{90, "Expert"},
		{89, "Advanced"},
		{85, "Advanced"},
		{84, "Advanced"},
		{80, "Advanced"},
		{79, "Proficient"},
		{75, "Proficient"},
		{74, "Proficient"},
		{70, "Proficient"},
		{69, "Intermediate"},
		{65, "Intermediate"},
		{64, "Intermediate"},
		{60, "Intermediate"},
		{59, "Beginner"},
		{0, "Beginner"},
		{-5, "Beginner"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ProficiencyLabel(tt.level), "level %d", tt.level)
	}
}

func TestDeriveComparisonStats(t *testing.T) {
	tests := []struct {
		level int
		want  ComparisonStats
	}{
		{85, ComparisonStats{"Advanced", "5+ years", "Expert level"}},
		{84, ComparisonStats{"Advanced", "3-5 years", "Very confident"}},
		{75, ComparisonStats{"Proficient", "3-5 years", "Very confident"}},
		{74, ComparisonStats{"Proficient", "1-3 years", "Confident"}},
		{65, ComparisonStats{"Intermediate", "1-3 years", "Confident"}},
		{64, ComparisonStats{"Intermediate", "< 1 year", "Learning"}},
		{30, ComparisonStats{"Beginner", "< 1 year", "Learning"}},
	}

	for _, tt := range tests {
		got := DeriveComparisonStats(Skill{Name: "x", Level: tt.level})
		assert.Equal(t, tt.want, got, "level %d", tt.level)
	}
}

func TestCompare(t *testing.T) {
	_, ok := Compare(NewSelection(react))
	assert.False(t, ok)

	got, ok := Compare(NewSelection(java, react))
	assert.True(t, ok)
	assert.Len(t, got, 2)
	assert.Equal(t, "Java", got[0].Skill.Name)
	assert.Equal(t, "Advanced", got[0].Stats.Proficiency)
	assert.Equal(t, "Expert", got[1].Stats.Proficiency)
}
