package catalog

import (
	"sort"
	"strings"
)

// FilterState is the category and free-text query a skills view is filtered by.
type FilterState struct {
	ActiveCategory string `json:"category" form:"category"`
	SearchQuery    string `json:"q" form:"q"`
}

// DefaultFilter is the filter a freshly mounted view starts with.
func DefaultFilter() FilterState {
	return FilterState{ActiveCategory: AllCategories}
}

// Apply projects the catalog through the filter.
func (f FilterState) Apply(c *Catalog) []Skill {
	return Project(c, f.ActiveCategory, f.SearchQuery)
}

// Project returns the skills of activeCategory ("All" for every category)
// whose names contain searchQuery case-insensitively, sorted by level from
// highest to lowest. Skills with equal levels keep their catalog order.
// An unknown category yields an empty list. The catalog is not modified.
func Project(c *Catalog, activeCategory, searchQuery string) []Skill {
	if c == nil {
		return []Skill{}
	}

	var skills []Skill
	if activeCategory == AllCategories {
		skills = make([]Skill, 0, c.Len())
		for _, cat := range c.categories {
			skills = append(skills, tagged(cat)...)
		}
	} else {
		var ok bool
		if skills, ok = c.Skills(activeCategory); !ok {
			return []Skill{}
		}
	}

	if searchQuery != "" {
		query := strings.ToLower(searchQuery)
		matched := skills[:0]
		for _, s := range skills {
			if strings.Contains(strings.ToLower(s.Name), query) {
				matched = append(matched, s)
			}
		}
		skills = matched
	}

	sort.SliceStable(skills, func(i, j int) bool {
		return skills[i].Level > skills[j].Level
	})

	return skills
}
