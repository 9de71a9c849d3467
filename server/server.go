package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/astrolabe/pkg/domain"
	"github.com/umputun/astrolabe/pkg/gate"
	"github.com/umputun/astrolabe/pkg/metrics"
	"github.com/umputun/astrolabe/pkg/reconcile"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/gate.go -pkg mocks -skip-ensure -fmt goimports . Gate
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Server is the status and admin HTTP server
type Server struct {
	config    ConfigProvider
	gates     []Gate
	scheduler Scheduler
	store     Store
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Gate reports a heat counter and its ceiling
type Gate interface {
	Name() string
	Heat(ctx context.Context) (int64, error)
	Limit(ctx context.Context) (gate.Limit, error)
}

// Scheduler exposes next run times and on-demand reconciliation
type Scheduler interface {
	NextRuns() map[string]time.Time
	Reconcile(ctx context.Context) (reconcile.Result, error)
}

// Store is the database used for health checks and the audit log
type Store interface {
	Ping(ctx context.Context) error
	ListAudit(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	AdminPassword() string
}

// Params holds server dependencies
type Params struct {
	Config    ConfigProvider
	Gates     []Gate
	Scheduler Scheduler
	Store     Store
	Version   string
	Debug     bool
}

// New initializes a new server instance
func New(p Params) *Server {
	s := &Server{
		config:    p.Config,
		gates:     p.Gates,
		scheduler: p.Scheduler,
		store:     p.Store,
		version:   p.Version,
		debug:     p.Debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("astrolabe", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024))
}

// setupRoutes configures application routes, admin routes are protected with basic auth if a password is set
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.Group().Route(func(admin *routegroup.Bundle) {
			if passwd := s.config.AdminPassword(); passwd != "" {
				admin.Use(rest.BasicAuthWithUserPasswd("admin", passwd))
			}
			admin.HandleFunc("GET /audit", s.auditHandler)
			admin.HandleFunc("POST /reconcile", s.reconcileHandler)
		})
	})

	s.router.Handle("GET /metrics", metrics.Handler())
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
