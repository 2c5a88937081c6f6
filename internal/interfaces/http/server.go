// Package http provides the HTTP adapter over the application layer.
// Handlers translate requests to service calls and map service errors
// to status codes; no business rules live here.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/talentops/hiring-ops/internal/application/service"
	"github.com/talentops/hiring-ops/internal/export"
)

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultServerConfig returns default server configuration
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:         "0.0.0.0",
		Port:         8080,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// Services bundles the application services the HTTP layer exposes
type Services struct {
	Candidates  service.CandidateService
	Jobs        service.JobService
	Interviews  service.InterviewService
	Projects    service.ProjectService
	Assignments service.AssignmentService
	Tasks       service.AnnotationTaskService
	Transitions service.TransitionService
	Roster      *export.RosterExporter
}

// Server is the HTTP server adapter
type Server struct {
	config     ServerConfig
	httpServer *http.Server
	router     *gin.Engine
	logger     *zap.Logger
}

// NewServer creates a new HTTP server with the given services
func NewServer(config ServerConfig, services Services, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	server := &Server{
		config: config,
		router: router,
		logger: logger,
	}

	router.Use(gin.Recovery())
	router.Use(server.loggingMiddleware())
	server.setupRoutes(services)

	return server
}

func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		s.logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

func (s *Server) setupRoutes(services Services) {
	handlers := NewHandlers(services, s.logger)

	s.router.GET("/health", handlers.HealthCheck)

	api := s.router.Group("/api")
	{
		// Workflow metadata, rendered by clients as selection controls
		api.GET("/workflows", handlers.ListWorkflows)
		api.GET("/workflows/:kind", handlers.GetWorkflow)
		api.GET("/workflows/:kind/statuses/:status/next", handlers.NextStatuses)

		api.POST("/candidates", handlers.CreateCandidate)
		api.GET("/candidates", handlers.ListCandidates)
		api.GET("/candidates/:id", handlers.GetCandidate)
		api.PUT("/candidates/:id", handlers.UpdateCandidate)

		api.POST("/projects", handlers.CreateProject)
		api.GET("/projects", handlers.ListProjects)
		api.GET("/projects/:id", handlers.GetProject)
		api.PUT("/projects/:id", handlers.UpdateProject)
		api.PATCH("/projects/:id/status", handlers.TransitionProject)

		api.POST("/jobs", handlers.CreateJob)
		api.GET("/jobs", handlers.ListJobs)
		api.GET("/jobs/:id", handlers.GetJob)
		api.PUT("/jobs/:id", handlers.UpdateJob)
		api.PATCH("/jobs/:id/status", handlers.TransitionJob)

		api.POST("/interviews", handlers.CreateInterview)
		api.GET("/interviews", handlers.ListInterviews)
		api.GET("/interviews/:id", handlers.GetInterview)
		api.PUT("/interviews/:id", handlers.UpdateInterview)
		api.PATCH("/interviews/:id/status", handlers.TransitionInterview)
		api.PATCH("/interviews/:id/acceptance", handlers.TransitionAcceptance)

		api.POST("/assignments", handlers.CreateAssignment)
		api.GET("/assignments", handlers.ListAssignments)
		api.GET("/assignments/:id", handlers.GetAssignment)
		api.PATCH("/assignments/:id/status", handlers.TransitionAssignment)

		api.POST("/annotation-tasks", handlers.CreateTask)
		api.GET("/annotation-tasks", handlers.ListTasks)
		api.GET("/annotation-tasks/:id", handlers.GetTask)
		api.PUT("/annotation-tasks/:id", handlers.UpdateTask)
		api.PATCH("/annotation-tasks/:id/status", handlers.TransitionTask)

		api.GET("/export/interviews", handlers.ExportInterviews)
	}
}

// Start starts the HTTP server and blocks until ctx is cancelled
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("HTTP server shutdown requested")
		return s.Stop()
	case err := <-errCh:
		s.logger.Error("HTTP server error", zap.Error(err))
		return err
	}
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop() error {
	if s.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP server shutdown error", zap.Error(err))
		return err
	}

	s.logger.Info("HTTP server stopped")
	return nil
}

// Router returns the underlying gin router (for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}
