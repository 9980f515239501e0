// Package api provides the engine's RPC-style HTTP surface: instance
// lifecycle operations, variable reads, definition validation, and
// message/signal publication. Definition CRUD, project administration, and
// authentication are external collaborators and have no routes here.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/codeready-toolchain/pythmata/pkg/config"
	"github.com/codeready-toolchain/pythmata/pkg/database"
	"github.com/codeready-toolchain/pythmata/pkg/faststore"
	"github.com/codeready-toolchain/pythmata/pkg/instance"
	"github.com/codeready-toolchain/pythmata/pkg/scheduler"
)

// Server is the HTTP API server.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server
	cfg        *config.Config
	dbClient   *database.Client
	instances  *instance.Manager
	sched      *scheduler.Scheduler
	fast       *faststore.Store
}

// NewServer creates a new API server with Echo v5.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	instances *instance.Manager,
	sched *scheduler.Scheduler,
	fast *faststore.Store,
) *Server {
	e := echo.New()

	s := &Server{
		echo:      e,
		cfg:       cfg,
		dbClient:  dbClient,
		instances: instances,
		sched:     sched,
		fast:      fast,
	}

	s.setupRoutes()
	return s
}

// setupRoutes registers all API routes.
func (s *Server) setupRoutes() {
	// BPMN documents are text-heavy but bounded; reject runaway payloads at
	// the HTTP read level before deserialization.
	s.echo.Use(middleware.BodyLimit(2 * 1024 * 1024))
	s.echo.Use(securityHeaders())

	s.echo.GET("/health", s.healthHandler)

	v1 := s.echo.Group("/api/v1")

	// Instance lifecycle.
	v1.POST("/instances", s.createInstanceHandler)
	v1.GET("/instances", s.listInstancesHandler)
	v1.GET("/instances/:id", s.getInstanceHandler)
	v1.POST("/instances/:id/suspend", s.suspendInstanceHandler)
	v1.POST("/instances/:id/resume", s.resumeInstanceHandler)
	v1.POST("/instances/:id/terminate", s.terminateInstanceHandler)
	v1.GET("/instances/:id/variables", s.listVariablesHandler)
	v1.GET("/instances/:id/activity-log", s.listActivityLogHandler)

	// Definition validation (non-throwing).
	v1.POST("/definitions/validate", s.validateDefinitionHandler)

	// External event triggers.
	v1.POST("/messages", s.publishMessageHandler)
	v1.POST("/signals", s.publishSignalHandler)
}

// Start begins serving on the configured port. It blocks until the listener
// fails or Shutdown is called.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.API.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	s.httpServer = &http.Server{
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("API server listening", "addr", addr)
	if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.echo }
