package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/projects"
)

func (s *server) setupSiteRoutes(r *gin.Engine) {
	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"title":          "Home",
			"aboutMeContent": AboutMe,
			"tagline":        Tagline,
			"featured":       projects.Featured(s.projects),
			"topSkills":      firstN(catalog.Project(s.catalog, catalog.AllCategories, ""), 6),
		})
	})

	r.GET("/projects", func(c *gin.Context) {
		filter := c.DefaultQuery("filter", projects.FilterAll)
		data := gin.H{
			"title":    "Projects",
			"filter":   filter,
			"filters":  projects.Filters(),
			"projects": projects.Filter(s.projects, filter),
		}
		if c.GetHeader("HX-Request") == "true" {
			c.HTML(http.StatusOK, "project-grid", data)
			return
		}
		c.HTML(http.StatusOK, "projects.html", data)
	})

	r.GET("/api/projects", func(c *gin.Context) {
		c.JSON(http.StatusOK, projects.Filter(s.projects, c.Query("filter")))
	})

	r.GET("/resume", func(c *gin.Context) {
		c.HTML(http.StatusOK, "resume.html", gin.H{
			"title":          "Resume",
			"certifications": Certifications,
		})
	})

	// Work experience content
	r.GET("/work-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "work-content.html", gin.H{
			"entries": Experience,
		})
	})

	// Education content
	r.GET("/education-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "education-content.html", gin.H{
			"entries": Education,
		})
	})

	// HTMX Contact form endpoint - returns just the form HTML
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})

	r.POST("/contact", s.handleContact)

	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title":    "Privacy Policy",
			"tracking": s.store != nil,
		})
	})
}

func (s *server) handleContact(c *gin.Context) {
	var sub contact.Submission
	if err := c.ShouldBind(&sub); err != nil {
		c.HTML(http.StatusBadRequest, "contact.html", gin.H{
			"title": "Contact Me",
			"error": "Please check the form and try again.",
		})
		return
	}

	ref, err := s.contact.Submit(c.Request.Context(), sub)
	if err != nil {
		var invalid *contact.InvalidError
		if errors.As(err, &invalid) {
			c.HTML(http.StatusUnprocessableEntity, "contact.html", gin.H{
				"title":  "Contact Me",
				"form":   sub,
				"errors": invalid.Fields,
			})
			return
		}

		logger.G(c.Request.Context()).WithError(err).Error("contact submission failed")
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
		"ref":     ref,
	})
}

func firstN[T any](list []T, n int) []T {
	if len(list) < n {
		return list
	}
	return list[:n]
}
