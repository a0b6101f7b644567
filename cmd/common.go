package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/helmcode/interview-coach/pkg/casestudy"
	"github.com/helmcode/interview-coach/pkg/coach"
	"github.com/helmcode/interview-coach/pkg/config"
	"github.com/helmcode/interview-coach/pkg/logging"
	"github.com/helmcode/interview-coach/pkg/model"
	"github.com/helmcode/interview-coach/pkg/router"
)

// loadConfig reads an optional .env file and then the environment.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newCoach wires router, catalog and logger from cfg.
func newCoach(cfg *config.Config, logger *logrus.Logger) (*coach.Coach, error) {
	catalog, err := casestudy.Load(cfg.CaseStudiesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load case studies: %w", err)
	}
	return coach.New(router.NewFromConfig(cfg, logger), catalog, logger), nil
}

// cliLogger keeps provider logs out of the way of spinner output unless
// verbose is set.
func cliLogger(cfg *config.Config, verbose bool) *logrus.Logger {
	if verbose {
		return logging.New("debug", cfg.LogFormat)
	}
	return logging.New("warn", cfg.LogFormat)
}

func parseModelFlag(raw string) (*model.Provider, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	p, ok := model.ParseProvider(raw)
	if !ok {
		return nil, fmt.Errorf("unsupported model %q (supported: claude, openai)", raw)
	}
	return &p, nil
}

// readText returns inline if set, otherwise the contents of path ("-" is stdin).
func readText(inline, path string) (string, error) {
	if inline != "" || path == "" {
		return inline, nil
	}
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func printSuccess(msg string) {
	green := color.New(color.FgGreen)
	green.Fprintf(os.Stderr, "✓ %s\n", msg)
}

func printError(msg string) {
	red := color.New(color.FgRed)
	red.Fprintf(os.Stderr, "✗ %s\n", msg)
}
