// Package catalog holds the static skills catalog and the pure functions the
// skills page is built from: projection (category + search + sort), the
// comparison selection, and the labels shown in the comparison view.
package catalog

import (
	"github.com/pkg/errors"
)

// AllCategories is the pseudo-category that selects every category.
const AllCategories = "All"

// Skill is a single catalog entry. Category is empty on raw catalog entries
// and is attached when the skill is projected.
type Skill struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category,omitempty"`
	Color    string `json:"color"`
	Icon     string `json:"icon"`
}

// Category is a named, ordered group of skills.
type Category struct {
	Name   string
	Skills []Skill
}

// Catalog is an ordered mapping from category name to skills. It is built once
// and never mutated.
type Catalog struct {
	categories []Category
	index      map[string]int
}

// New builds a catalog, keeping categories in the order given. Category names
// must be unique, skill names must be unique within a category and levels
// must lie in 0-100.
func New(categories ...Category) (*Catalog, error) {
	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}

	for _, cat := range categories {
		if cat.Name == "" {
			return nil, errors.New("category name is empty")
		}
		if cat.Name == AllCategories {
			return nil, errors.Errorf("category name %q is reserved", AllCategories)
		}
		if _, ok := c.index[cat.Name]; ok {
			return nil, errors.Errorf("duplicate category %q", cat.Name)
		}

		seen := make(map[string]struct{}, len(cat.Skills))
		skills := make([]Skill, 0, len(cat.Skills))
		for _, s := range cat.Skills {
			if s.Name == "" {
				return nil, errors.Errorf("category %q has a skill without a name", cat.Name)
			}
			if _, ok := seen[s.Name]; ok {
				return nil, errors.Errorf("duplicate skill %q in category %q", s.Name, cat.Name)
			}
			if s.Level < 0 || s.Level > 100 {
				return nil, errors.Errorf("skill %q level %d out of range 0-100", s.Name, s.Level)
			}
			seen[s.Name] = struct{}{}
			s.Category = ""
			skills = append(skills, s)
		}

		c.index[cat.Name] = len(c.categories)
		c.categories = append(c.categories, Category{Name: cat.Name, Skills: skills})
	}

	return c, nil
}

// MustNew is like New but panics on an invalid catalog. It is meant for
// build-time constants.
func MustNew(categories ...Category) *Catalog {
	c, err := New(categories...)
	if err != nil {
		panic(err)
	}
	return c
}

// Names returns the category names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// Filters returns the category filter options shown to the user: "All"
// followed by every category.
func (c *Catalog) Filters() []string {
	return append([]string{AllCategories}, c.Names()...)
}

// Has reports whether name is a catalog category.
func (c *Catalog) Has(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Len returns the total number of skills across all categories.
func (c *Catalog) Len() int {
	n := 0
	for _, cat := range c.categories {
		n += len(cat.Skills)
	}
	return n
}

// Skills returns a copy of the named category's skills, tagged with the
// category name.
func (c *Catalog) Skills(name string) ([]Skill, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return tagged(c.categories[i]), true
}

// Find returns the first skill named name in catalog order.
func (c *Catalog) Find(name string) (Skill, bool) {
	for _, cat := range c.categories {
		for _, s := range cat.Skills {
			if s.Name == name {
				s.Category = cat.Name
				return s, true
			}
		}
	}
	return Skill{}, false
}

func tagged(cat Category) []Skill {
	out := make([]Skill, len(cat.Skills))
	for i, s := range cat.Skills {
		s.Category = cat.Name
		out[i] = s
	}
	return out
}
