package main

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/projects"
	"github.com/Zachkp/portfolio/internal/store"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

const purgeInterval = 24 * time.Hour

type server struct {
	cfg      *config.Config
	catalog  *catalog.Catalog
	projects []projects.Project
	contact  *contact.Service
	store    *store.Store
	hasher   *store.IPHasher
	admin    *adminAuth
	now      func() time.Time

	// bg tracks background writes so Close can drain them.
	bg sync.WaitGroup
}

func newServer(ctx context.Context, cfg *config.Config) (*server, error) {
	s := &server{
		cfg:      cfg,
		catalog:  catalog.Default,
		projects: projects.All,
		now:      time.Now,
	}

	var sender contact.Sender = contact.SimulatedSender{Delay: cfg.ContactDelay}
	if cfg.SMTPConfigured() {
		sender = contact.SMTPSender{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
			To:   cfg.ToEmail,
		}
		logger.G(ctx).WithField("host", cfg.SMTPHost).Info("contact form delivers over SMTP")
	} else {
		logger.G(ctx).Info("SMTP not configured, contact form submissions are simulated")
	}
	s.contact = contact.NewService(sender)

	hasher, err := store.NewIPHasher()
	if err != nil {
		return nil, err
	}
	s.hasher = hasher

	if s.admin, err = newAdminAuth(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		return nil, err
	}

	if cfg.Tracking {
		st, err := store.Open(ctx, cfg.DBPath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open analytics database %s", cfg.DBPath)
		}
		s.store = st
		logger.G(ctx).Info("Privacy: visitor tracking enabled with hashed IP addresses")
	}

	return s, nil
}

func parseTemplates() *template.Template {
	funcs := template.FuncMap{
		"join":  strings.Join,
		"lower": strings.ToLower,
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"))
}

func (s *server) routes() *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(), gin.Recovery())
	r.SetHTMLTemplate(parseTemplates())

	static, _ := fs.Sub(staticFS, "static")
	r.StaticFS("/static", http.FS(static))

	if s.store != nil {
		r.Use(s.visitorTracking())
	}

	s.setupSiteRoutes(r)
	s.setupSkillRoutes(r)
	s.setupAdminRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "not-found.html", gin.H{"title": "Page Not Found"})
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              ":" + strconv.Itoa(s.cfg.Port),
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// the purge loop must stop on every return path or Close blocks on it
	purgeCtx, stopPurge := context.WithCancel(ctx)
	defer stopPurge()

	if s.store != nil {
		s.bg.Add(1)
		go func() {
			defer s.bg.Done()
			s.purgeLoop(purgeCtx)
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.G(ctx).WithField("addr", httpServer.Addr).Info("listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "server stopped")
	case <-ctx.Done():
	}

	logger.G(ctx).Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return errors.Wrap(httpServer.Shutdown(shutdownCtx), "failed to shut down")
}

// Close waits for background writes and closes the analytics store.
func (s *server) Close() error {
	s.bg.Wait()
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}

func (s *server) purgeLoop(ctx context.Context) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for {
		s.purgeOldVisits(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *server) purgeOldVisits(ctx context.Context) {
	n, err := s.store.PurgeVisitsBefore(ctx, s.now().Add(-store.RetentionPeriod))
	if err != nil {
		logger.G(ctx).WithError(err).Error("failed to clean up old visitor data")
		return
	}
	if n > 0 {
		logger.G(ctx).Infof("Privacy cleanup: removed %d visitor records older than 12 months", n)
	}
}

// requestLogger attaches a request-scoped logger to the request context and
// logs each request once it completes.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		entry := logger.L.WithFields(logrus.Fields{
			"request_id": uuid.NewString(),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
		})
		c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), entry))

		c.Next()

		entry.WithFields(logrus.Fields{
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Debug("request")
	}
}
