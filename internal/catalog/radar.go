package catalog

import (
	"fmt"
	"math"
	"strings"
)

// Radar chart geometry, in SVG user units.
const (
	RadarCenter = 200.0
	RadarRadius = 160.0
)

// CategoryAverage is one axis of the proficiency radar.
type CategoryAverage struct {
	Category string  `json:"category"`
	Average  int     `json:"average"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// CategoryAverages returns the rounded mean level of each category in catalog
// order, with the radar point for that mean. Axis i points at angle 2πi/n,
// clockwise from twelve o'clock.
func CategoryAverages(c *Catalog) []CategoryAverage {
	n := len(c.categories)
	out := make([]CategoryAverage, 0, n)
	for i, cat := range c.categories {
		avg := 0
		if len(cat.Skills) > 0 {
			sum := 0
			for _, s := range cat.Skills {
				sum += s.Level
			}
			avg = int(math.Round(float64(sum) / float64(len(cat.Skills))))
		}

		angle := math.Pi * 2 * float64(i) / float64(n)
		r := RadarRadius * float64(avg) / 100
		out = append(out, CategoryAverage{
			Category: cat.Name,
			Average:  avg,
			X:        RadarCenter + r*math.Sin(angle),
			Y:        RadarCenter - r*math.Cos(angle),
		})
	}
	return out
}

// RadarPath renders the averages as a closed SVG path.
func RadarPath(avgs []CategoryAverage) string {
	if len(avgs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, a := range avgs {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&b, "%s%.1f,%.1f ", cmd, a.X, a.Y)
	}
	b.WriteString("Z")
	return b.String()
}
