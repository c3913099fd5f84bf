// admin.go - privacy-conscious visitor tracking and the admin dashboard
package main

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/store"
)

const adminCookie = "admin_token"

type adminAuth struct {
	username string
	password string
	token    string
}

func newAdminAuth(username, password string) (*adminAuth, error) {
	token, err := store.RandomToken()
	if err != nil {
		return nil, err
	}

	if password == "" {
		logger.L.Warn("admin password not set, admin login is disabled. Set PORTFOLIO_ADMIN_PASSWORD or ADMIN_PASSWORD.")
	} else {
		logger.L.Info("Admin access available at: /admin/login")
	}
	if gin.Mode() == gin.DebugMode {
		logger.L.Debugf("Admin token (dev only): %s", token)
	}

	return &adminAuth{username: username, password: password, token: token}, nil
}

func (a *adminAuth) checkCredentials(username, password string) bool {
	if a.password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

func (a *adminAuth) checkToken(token string) bool {
	return subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) == 1
}

// Middleware to check admin authentication
func (s *server) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !s.admin.checkToken(token) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// untrackedPrefixes are never recorded as visits.
var untrackedPrefixes = []string{"/static/", "/images/", "/admin/", "/api/", "/favicon", "/privacy"}

// Privacy-conscious visitor tracking middleware
func (s *server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		// Respect Do Not Track header
		if c.GetHeader("DNT") == "1" || c.GetHeader("HX-Request") == "true" {
			c.Next()
			return
		}

		visit := store.Visit{
			HashedIP:  s.hasher.Hash(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			Timestamp: s.now(),
		}

		c.Next()

		// unknown paths are mostly bots probing for admin panels
		if c.Writer.Status() == http.StatusNotFound {
			return
		}

		log := logger.G(c.Request.Context())
		s.bg.Add(1)
		go func() {
			defer s.bg.Done()
			if err := s.store.RecordVisit(context.Background(), visit); err != nil {
				log.WithError(err).Error("error recording visitor")
			}
		}()
	}
}

// Setup all admin routes
func (s *server) setupAdminRoutes(r *gin.Engine) {
	// Admin login page
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	// Admin login handler
	r.POST("/admin/login", func(c *gin.Context) {
		log := logger.G(c.Request.Context()).WithField("client", s.hasher.Hash(c.ClientIP()))

		if !s.admin.checkCredentials(c.PostForm("username"), c.PostForm("password")) {
			log.Warn("failed admin login attempt")
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"title": "Admin Login",
				"error": "Invalid credentials",
			})
			return
		}

		// Secure cookie (24 hours)
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, s.admin.token, 3600*24, "/admin", "", gin.Mode() == gin.ReleaseMode, true)
		log.Info("admin login successful")
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	// Admin logout
	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	// Protected admin routes group
	adminGroup := r.Group("/admin")
	adminGroup.Use(s.adminAuthMiddleware(), s.requireStore())

	// Admin dashboard
	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), s.now())
		if err != nil {
			logger.G(c.Request.Context()).WithError(err).Error("error loading admin stats")
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}

		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"title": "Dashboard",
			"stats": stats,
		})
	})

	// Admin API endpoint for HTMX refreshes
	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	// View visitors
	adminGroup.GET("/visitors", func(c *gin.Context) {
		visitors, err := s.store.RecentVisits(c.Request.Context(), 200)
		if err != nil {
			logger.G(c.Request.Context()).WithError(err).Error("error loading visitors")
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load visitors",
			})
			return
		}

		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
			"title":    "Visitors",
			"visitors": visitors,
		})
	})

	// Privacy compliance: drop visits past the retention period now
	adminGroup.POST("/privacy/purge", func(c *gin.Context) {
		s.purgeOldVisits(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete"})
	})

	// Admin statistics export (for backups or analysis)
	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		logger.G(c.Request.Context()).Info("admin stats exported")
		c.JSON(http.StatusOK, stats)
	})
}

func (s *server) requireStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.store == nil {
			c.HTML(http.StatusServiceUnavailable, "admin-error.html", gin.H{
				"error": "Visitor tracking is disabled",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
