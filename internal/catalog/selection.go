package catalog

// MaxSelection is the most skills that can be compared side by side.
const MaxSelection = 3

// Selection is an ordered set of skills chosen for comparison, keyed by name.
// The zero value is an empty selection. Operations return new values and
// never modify the receiver.
type Selection struct {
	skills []Skill
}

// NewSelection builds a selection by adding skills in order. Duplicates and
// anything past MaxSelection are ignored.
func NewSelection(skills ...Skill) Selection {
	var sel Selection
	for _, s := range skills {
		if sel.Len() >= MaxSelection {
			break
		}
		if !sel.IsSelected(s) {
			sel.skills = append(sel.skills, s)
		}
	}
	return sel
}

// SelectNames resolves names against the catalog and builds a selection from
// them. Unknown names are dropped.
func (c *Catalog) SelectNames(names []string) Selection {
	skills := make([]Skill, 0, len(names))
	for _, name := range names {
		if s, ok := c.Find(name); ok {
			skills = append(skills, s)
		}
	}
	return NewSelection(skills...)
}

// Toggle removes skill if it is selected. Otherwise it appends skill, unless
// the selection is already full, in which case the selection is returned
// unchanged.
func (s Selection) Toggle(skill Skill) Selection {
	if s.IsSelected(skill) {
		out := make([]Skill, 0, len(s.skills)-1)
		for _, cur := range s.skills {
			if cur.Name != skill.Name {
				out = append(out, cur)
			}
		}
		return Selection{skills: out}
	}

	if len(s.skills) >= MaxSelection {
		return s
	}

	out := make([]Skill, len(s.skills), len(s.skills)+1)
	copy(out, s.skills)
	return Selection{skills: append(out, skill)}
}

// IsSelected reports whether a skill with the same name is in the selection.
func (s Selection) IsSelected(skill Skill) bool {
	return s.Contains(skill.Name)
}

// Contains reports whether name is selected.
func (s Selection) Contains(name string) bool {
	for _, cur := range s.skills {
		if cur.Name == name {
			return true
		}
	}
	return false
}

// Len returns the number of selected skills.
func (s Selection) Len() int {
	return len(s.skills)
}

// Full reports whether another skill can no longer be added.
func (s Selection) Full() bool {
	return len(s.skills) >= MaxSelection
}

// Skills returns the selected skills in the order they were added.
func (s Selection) Skills() []Skill {
	out := make([]Skill, len(s.skills))
	copy(out, s.skills)
	return out
}

// Names returns the selected skill names in order.
func (s Selection) Names() []string {
	names := make([]string, len(s.skills))
	for i, cur := range s.skills {
		names[i] = cur.Name
	}
	return names
}

// Clear returns an empty selection.
func (s Selection) Clear() Selection {
	return Selection{}
}

// CanCompare reports whether enough skills are selected to open the
// comparison view.
func (s Selection) CanCompare() bool {
	return len(s.skills) >= 2
}
