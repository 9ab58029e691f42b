// Package http provides the HTTP API for taskd.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/taskd/pkg/extract"
	"github.com/fyrsmithlabs/taskd/pkg/identity"
)

// Server exposes extraction and identity resolution over HTTP.
type Server struct {
	echo     *echo.Echo
	engine   *extract.Engine
	resolver *identity.Resolver
	roster   []identity.User
	metrics  *Metrics
	logger   *zap.Logger
	config   *Config
}

// Config holds HTTP server configuration.
type Config struct {
	Host string
	Port int
}

// NewServer creates the HTTP server. The roster backs /api/v1/resolve
// requests that do not carry their own; it may be empty.
func NewServer(engine *extract.Engine, resolver *identity.Resolver, roster []identity.User, logger *zap.Logger, cfg *Config) (*Server, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine cannot be nil")
	}
	if resolver == nil {
		return nil, fmt.Errorf("resolver cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required for request tracking and debugging")
	}
	if cfg == nil {
		cfg = &Config{
			Host: "localhost",
			Port: 9180,
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", duration),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)

			return err
		}
	})

	s := &Server{
		echo:     e,
		engine:   engine,
		resolver: resolver,
		roster:   roster,
		metrics:  NewMetrics(),
		logger:   logger,
		config:   cfg,
	}

	s.registerRoutes()

	return s, nil
}

// registerRoutes sets up the HTTP endpoints.
func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(s.metrics.handler()))

	v1 := s.echo.Group("/api/v1")
	v1.POST("/extract", s.handleExtract)
	v1.POST("/resolve", s.handleResolve)
}

// ExtractRequest is the request body for POST /api/v1/extract.
type ExtractRequest struct {
	Text            string `json:"text"`
	ProjectName     string `json:"project_name,omitempty"`
	DefaultAssignee string `json:"default_assignee,omitempty"`

	// ReferenceTime anchors relative dates ("tomorrow", "by Friday").
	// RFC 3339. When absent, only dates with an explicit year resolve.
	ReferenceTime string `json:"reference_time,omitempty"`
}

// ExtractResponse is the response body for POST /api/v1/extract.
type ExtractResponse struct {
	Tasks []extract.Task `json:"tasks"`
	Count int            `json:"count"`
}

// ResolveRequest is the request body for POST /api/v1/resolve. An empty
// roster falls back to the roster the server was started with.
type ResolveRequest struct {
	Name   string          `json:"name"`
	Roster []identity.User `json:"roster,omitempty"`

	// Threshold overrides the configured candidate similarity cutoff
	// for this request. Zero keeps the server default.
	Threshold float64 `json:"threshold,omitempty"`
}

// ResolveResponse is the response body for POST /api/v1/resolve.
// Matches are the tiered resolver results; Candidates carry similarity
// scores for review when no tier matched.
type ResolveResponse struct {
	Matches    []identity.User           `json:"matches"`
	Candidates []identity.MatchCandidate `json:"candidates,omitempty"`
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// handleHealth returns a simple health check response.
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// handleExtract runs the extraction pipeline over the posted text.
func (s *Server) handleExtract(c echo.Context) error {
	var req ExtractRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid extract request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text field is required")
	}

	opts := extract.Options{
		ProjectName:     req.ProjectName,
		DefaultAssignee: req.DefaultAssignee,
	}
	if req.ReferenceTime != "" {
		ref, err := time.Parse(time.RFC3339, req.ReferenceTime)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "reference_time must be RFC 3339")
		}
		opts.ReferenceTime = ref
	}

	start := time.Now()
	tasks := s.engine.Extract(req.Text, opts)

	s.metrics.extractions.Inc()
	s.metrics.tasksExtracted.Add(float64(len(tasks)))
	s.metrics.extractSeconds.Observe(time.Since(start).Seconds())

	s.logger.Debug("extracted tasks",
		zap.Int("count", len(tasks)),
		zap.Duration("duration", time.Since(start)),
	)

	return c.JSON(http.StatusOK, ExtractResponse{Tasks: tasks, Count: len(tasks)})
}

// handleResolve matches a free-text name against a roster.
func (s *Server) handleResolve(c echo.Context) error {
	var req ResolveRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid resolve request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name field is required")
	}

	roster := req.Roster
	if len(roster) == 0 {
		roster = s.roster
	}
	resolver := s.resolver.WithThreshold(req.Threshold)

	matches := resolver.FindMatches(req.Name, roster)

	resp := ResolveResponse{Matches: matches}
	if len(matches) == 0 {
		resp.Matches = []identity.User{}
		resp.Candidates = resolver.Candidates(req.Name, roster)
		s.metrics.resolutions.WithLabelValues("unmatched").Inc()
	} else {
		s.metrics.resolutions.WithLabelValues("matched").Inc()
	}

	return c.JSON(http.StatusOK, resp)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("starting http server", zap.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
