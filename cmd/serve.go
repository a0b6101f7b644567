package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/helmcode/interview-coach/pkg/llm"
	"github.com/helmcode/interview-coach/pkg/logging"
	"github.com/helmcode/interview-coach/pkg/server"
)

var servePort string

func NewServeCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the coaching HTTP API",
		Long: `Serve the interview feedback and case evaluation endpoints over HTTP.

Endpoints:
  POST /api/interview-feedback
  POST /api/evaluate-case-solution
  GET  /api/case-studies
  GET  /health`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(version)
		},
	}

	cmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on (overrides PORT)")
	return cmd
}

func runServe(version string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Port = servePort
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	providers := llm.NewFactory(cfg).GetAvailableProviders()
	if len(providers) == 0 {
		logger.Warn("No provider API keys configured; every request will fail")
	}

	c, err := newCoach(cfg, logger)
	if err != nil {
		return err
	}

	srv := server.New(c, server.Options{
		Port:        cfg.Port,
		CORSOrigins: cfg.CORSOrigins,
		Version:     version,
		Providers:   providers,
		Logger:      logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx)
}
