package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/helmcode/interview-coach/pkg/coach"
	"github.com/helmcode/interview-coach/pkg/model"
)

type Options struct {
	Port        string
	CORSOrigins []string
	Version     string
	// Providers are reported by /health.
	Providers []model.Provider
	Logger    *logrus.Logger
}

// Server exposes the coach over HTTP.
type Server struct {
	coach     *coach.Coach
	engine    *gin.Engine
	port      string
	version   string
	providers []model.Provider
	logger    *logrus.Logger
}

func New(c *coach.Coach, opts Options) *Server {
	s := &Server{
		coach:     c,
		port:      opts.Port,
		version:   opts.Version,
		providers: opts.Providers,
		logger:    opts.Logger,
	}
	if s.logger == nil {
		s.logger = logrus.StandardLogger()
	}
	if s.port == "" {
		s.port = "8080"
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestID())
	engine.Use(Logger(s.logger))
	engine.Use(cors.New(corsConfig(opts.CORSOrigins)))

	engine.GET("/health", s.Health)
	api := engine.Group("/api")
	{
		api.POST("/interview-feedback", s.InterviewFeedback)
		api.POST("/evaluate-case-solution", s.EvaluateCaseSolution)
		api.GET("/case-studies", s.CaseStudies)
	}

	s.engine = engine
	return s
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader},
		ExposeHeaders: []string{"Content-Length", requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         ":" + s.port,
		Handler:      s.engine,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("port", s.port).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("Server exited gracefully")
	return nil
}
