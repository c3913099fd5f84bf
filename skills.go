package main

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/logger"
)

// skillsRequest is the view state a skills page carries in its query string
// or form body. Each browser view owns its own copy.
type skillsRequest struct {
	Category string   `form:"category"`
	Query    string   `form:"q"`
	Selected []string `form:"selected"`
}

func (s *server) bindSkills(c *gin.Context) (catalog.FilterState, catalog.Selection) {
	var req skillsRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.G(c.Request.Context()).WithError(err).Debug("ignoring malformed skills state")
	}

	filter := catalog.DefaultFilter()
	if req.Category != "" {
		filter.ActiveCategory = req.Category
	}
	filter.SearchQuery = req.Query

	return filter, s.catalog.SelectNames(req.Selected)
}

type skillCard struct {
	catalog.Skill
	Selected    bool
	Proficiency string
}

type skillsView struct {
	Filter     catalog.FilterState
	Filters    []string
	Cards      []skillCard
	Selected   []catalog.Skill
	CanCompare bool
	Full       bool
	Empty      bool
	Max        int
}

func newSkillsView(cat *catalog.Catalog, filter catalog.FilterState, sel catalog.Selection) skillsView {
	projected := filter.Apply(cat)

	cards := make([]skillCard, len(projected))
	for i, sk := range projected {
		cards[i] = skillCard{
			Skill:       sk,
			Selected:    sel.IsSelected(sk),
			Proficiency: catalog.ProficiencyLabel(sk.Level),
		}
	}

	return skillsView{
		Filter:     filter,
		Filters:    cat.Filters(),
		Cards:      cards,
		Selected:   sel.Skills(),
		CanCompare: sel.CanCompare(),
		Full:       sel.Full(),
		Empty:      len(projected) == 0,
		Max:        catalog.MaxSelection,
	}
}

// SelectedNames returns the names to carry in hidden form fields.
func (v skillsView) SelectedNames() []string {
	names := make([]string, len(v.Selected))
	for i, s := range v.Selected {
		names[i] = s.Name
	}
	return names
}

func (v skillsView) query(category string) url.Values {
	q := url.Values{}
	q.Set("category", category)
	if v.Filter.SearchQuery != "" {
		q.Set("q", v.Filter.SearchQuery)
	}
	for _, name := range v.SelectedNames() {
		q.Add("selected", name)
	}
	return q
}

// CategoryURL is the grid URL for another category with the rest of the
// state kept.
func (v skillsView) CategoryURL(category string) string {
	return "/skills/grid?" + v.query(category).Encode()
}

// CompareURL is the comparison fragment URL for the current selection.
func (v skillsView) CompareURL() string {
	return "/skills/compare?" + v.query(v.Filter.ActiveCategory).Encode()
}

func (s *server) setupSkillRoutes(r *gin.Engine) {
	r.GET("/skills", func(c *gin.Context) {
		filter, sel := s.bindSkills(c)
		avgs := catalog.CategoryAverages(s.catalog)
		c.HTML(http.StatusOK, "skills.html", gin.H{
			"title":     "Skills",
			"tagline":   Tagline,
			"view":      newSkillsView(s.catalog, filter, sel),
			"radar":     avgs,
			"radarPath": catalog.RadarPath(avgs),
			"journey":   catalog.LearningJourney,
		})
	})

	r.GET("/skills/grid", func(c *gin.Context) {
		filter, sel := s.bindSkills(c)
		c.HTML(http.StatusOK, "skills-grid", newSkillsView(s.catalog, filter, sel))
	})

	r.POST("/skills/toggle", func(c *gin.Context) {
		filter, sel := s.bindSkills(c)
		if skill, ok := s.catalog.Find(c.PostForm("skill")); ok {
			sel = sel.Toggle(skill)
		}
		c.HTML(http.StatusOK, "skills-grid", newSkillsView(s.catalog, filter, sel))
	})

	r.GET("/skills/compare", func(c *gin.Context) {
		_, sel := s.bindSkills(c)
		comparisons, ok := catalog.Compare(sel)
		if !ok {
			c.HTML(http.StatusConflict, "compare-unavailable", gin.H{
				"selected": sel.Len(),
			})
			return
		}
		s.recordComparison(c.Request.Context(), sel.Names())
		c.HTML(http.StatusOK, "skills-compare", gin.H{
			"comparisons": comparisons,
		})
	})

	api := r.Group("/api/skills")

	api.GET("", func(c *gin.Context) {
		filter, sel := s.bindSkills(c)
		projected := filter.Apply(s.catalog)
		c.JSON(http.StatusOK, gin.H{
			"filter":      filter,
			"skills":      projected,
			"empty":       len(projected) == 0,
			"selected":    sel.Names(),
			"can_compare": sel.CanCompare(),
		})
	})

	api.GET("/compare", func(c *gin.Context) {
		_, sel := s.bindSkills(c)
		comparisons, ok := catalog.Compare(sel)
		if !ok {
			c.JSON(http.StatusConflict, gin.H{
				"error": "select at least two skills to compare",
			})
			return
		}
		s.recordComparison(c.Request.Context(), sel.Names())
		c.JSON(http.StatusOK, gin.H{"comparisons": comparisons})
	})

	api.GET("/radar", func(c *gin.Context) {
		avgs := catalog.CategoryAverages(s.catalog)
		c.JSON(http.StatusOK, gin.H{
			"categories": avgs,
			"path":       catalog.RadarPath(avgs),
		})
	})
}

func (s *server) recordComparison(ctx context.Context, names []string) {
	if s.store == nil {
		return
	}
	log := logger.G(ctx)
	at := s.now()

	s.bg.Add(1)
	go func() {
		defer s.bg.Done()
		if err := s.store.RecordComparison(context.Background(), names, at); err != nil {
			log.WithError(err).Error("failed to record comparison")
		}
	}()
}
