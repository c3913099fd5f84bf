package catalog

// ComparisonStats are the labels shown for a skill in the comparison view.
type ComparisonStats struct {
	Proficiency string `json:"proficiency"`
	Experience  string `json:"experience"`
	Confidence  string `json:"confidence"`
}

// levelLabels is ordered by descending threshold. The 60 row repeats the 65
// label and so never changes a result; it is kept to match the published
// table.
var levelLabels = []struct {
	threshold int
	label     string
}{
	{95, "Expert"},
	{90, "Expert"},
	{85, "Advanced"},
	{80, "Advanced"},
	{75, "Proficient"},
	{70, "Proficient"},
	{65, "Intermediate"},
	{60, "Intermediate"},
	{0, "Beginner"},
}

// ProficiencyLabel returns the label of the highest threshold not above level.
func ProficiencyLabel(level int) string {
	for _, l := range levelLabels {
		if level >= l.threshold {
			return l.label
		}
	}
	return levelLabels[len(levelLabels)-1].label
}

// ExperienceLabel maps a level to an approximate length of experience.
func ExperienceLabel(level int) string {
	switch {
	case level >= 85:
		return "5+ years"
	case level >= 75:
		return "3-5 years"
	case level >= 65:
		return "1-3 years"
	default:
		return "< 1 year"
	}
}

// ConfidenceLabel maps a level to a self-assessed confidence.
func ConfidenceLabel(level int) string {
	switch {
	case level >= 85:
		return "Expert level"
	case level >= 75:
		return "Very confident"
	case level >= 65:
		return "Confident"
	default:
		return "Learning"
	}
}

// DeriveComparisonStats returns the comparison labels for skill.
func DeriveComparisonStats(skill Skill) ComparisonStats {
	return ComparisonStats{
		Proficiency: ProficiencyLabel(skill.Level),
		Experience:  ExperienceLabel(skill.Level),
		Confidence:  ConfidenceLabel(skill.Level),
	}
}

// Comparison is one column of the comparison view.
type Comparison struct {
	Skill Skill           `json:"skill"`
	Stats ComparisonStats `json:"stats"`
}

// Compare derives stats for every selected skill, left to right in selection
// order. It returns false when the selection is too small to compare.
func Compare(sel Selection) ([]Comparison, bool) {
	if !sel.CanCompare() {
		return nil, false
	}
	out := make([]Comparison, 0, sel.Len())
	for _, s := range sel.skills {
		out = append(out, Comparison{Skill: s, Stats: DeriveComparisonStats(s)})
	}
	return out, true
}
