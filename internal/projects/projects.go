// Package projects holds the project gallery and its technology filters.
package projects

import "slices"

// Filter names understood by Filter besides a bare technology name.
const (
	FilterAll       = "all"
	FilterFullstack = "fullstack"
	FilterFlutter   = "flutter"
)

var (
	frontendTech = []string{"React", "Vue.js", "Angular"}
	backendTech  = []string{"Node.js", "Express", "MongoDB", "Firebase"}
)

// Project is a gallery entry.
type Project struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	GitHub       string   `json:"github"`
	Demo         string   `json:"demo"`
	Featured     bool     `json:"featured"`
}

// Uses reports whether the project lists tech exactly.
func (p Project) Uses(tech string) bool {
	return slices.Contains(p.Technologies, tech)
}

func (p Project) usesAny(techs []string) bool {
	for _, t := range techs {
		if p.Uses(t) {
			return true
		}
	}
	return false
}

// Fullstack reports whether the project pairs a frontend framework with a
// backend runtime or datastore.
func (p Project) Fullstack() bool {
	return p.usesAny(frontendTech) && p.usesAny(backendTech)
}

// Filters lists the gallery filter buttons.
func Filters() []string {
	return []string{FilterAll, FilterFullstack, FilterFlutter}
}

// Filter returns the projects matching filter, in gallery order. An empty
// filter is the same as "all"; an unrecognised filter is treated as a
// technology name.
func Filter(list []Project, filter string) []Project {
	out := make([]Project, 0, len(list))
	for _, p := range list {
		var keep bool
		switch filter {
		case "", FilterAll:
			keep = true
		case FilterFullstack:
			keep = p.Fullstack()
		case FilterFlutter:
			keep = p.Uses("Flutter")
		default:
			keep = p.Uses(filter)
		}
		if keep {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the featured projects in gallery order.
func Featured(list []Project) []Project {
	out := make([]Project, 0, len(list))
	for _, p := range list {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}
