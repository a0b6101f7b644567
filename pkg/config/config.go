package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/env"

	"github.com/helmcode/interview-coach/pkg/model"
)

const (
	DefaultClaudeModel     = "claude-sonnet-4-20250514"
	DefaultOpenAIModel     = "gpt-4o"
	DefaultProviderTimeout = 30 * time.Second
	DefaultMaxTokens       = 2000
)

// Config holds all configuration for the service. It is built once at
// startup and passed down; nothing reads the environment per request.
type Config struct {
	// Providers
	AnthropicAPIKey  string
	OpenAIAPIKey     string
	ClaudeModel      string
	OpenAIModel      string
	AnthropicBaseURL string
	OpenAIBaseURL    string
	MaxTokens        int
	ProviderTimeout  time.Duration

	// Selection heuristic
	BriefTranscriptChars int

	// Server
	Port        string
	GinMode     string
	CORSOrigins []string

	// Logging
	LogLevel  string
	LogFormat string

	// Case studies
	CaseStudiesFile string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		AnthropicAPIKey:  env.Str("ANTHROPIC_API_KEY", ""),
		OpenAIAPIKey:     env.Str("OPENAI_API_KEY", ""),
		ClaudeModel:      env.Str("CLAUDE_MODEL", DefaultClaudeModel),
		OpenAIModel:      env.Str("OPENAI_MODEL", DefaultOpenAIModel),
		AnthropicBaseURL: env.Str("ANTHROPIC_BASE_URL", ""),
		OpenAIBaseURL:    env.Str("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		MaxTokens:        env.Int("LLM_MAX_TOKENS", DefaultMaxTokens),
		ProviderTimeout:  env.Duration("PROVIDER_TIMEOUT", DefaultProviderTimeout),

		BriefTranscriptChars: env.Int("BRIEF_TRANSCRIPT_CHARS", 0),

		Port:        env.Str("PORT", "8080"),
		GinMode:     env.Str("GIN_MODE", "release"),
		CORSOrigins: env.List("CORS_ORIGINS", "*"),

		LogLevel:  env.Str("LOG_LEVEL", "info"),
		LogFormat: env.Str("LOG_FORMAT", "text"),

		CaseStudiesFile: env.Str("CASE_STUDIES_FILE", ""),
	}
}

// Validate checks value ranges. Missing API keys are not an error here:
// a key is only required once its provider is actually called.
func (c *Config) Validate() error {
	if c.MaxTokens <= 0 {
		return &ConfigError{Field: "LLM_MAX_TOKENS", Message: "LLM_MAX_TOKENS must be positive"}
	}
	if c.ProviderTimeout <= 0 {
		return &ConfigError{Field: "PROVIDER_TIMEOUT", Message: "PROVIDER_TIMEOUT must be positive"}
	}
	if c.BriefTranscriptChars < 0 {
		return &ConfigError{Field: "BRIEF_TRANSCRIPT_CHARS", Message: "BRIEF_TRANSCRIPT_CHARS must not be negative"}
	}
	if c.Port == "" {
		return &ConfigError{Field: "PORT", Message: "PORT is required"}
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return &ConfigError{Field: "LOG_FORMAT", Message: fmt.Sprintf("unsupported LOG_FORMAT %q (supported: text, json)", c.LogFormat)}
	}
	return nil
}

// APIKey returns the key for p, or a *ConfigError when it is not set.
func (c *Config) APIKey(p model.Provider) (string, error) {
	switch p {
	case model.ProviderClaude:
		if c.AnthropicAPIKey == "" {
			return "", &ConfigError{Field: "ANTHROPIC_API_KEY", Message: "ANTHROPIC_API_KEY environment variable not set"}
		}
		return c.AnthropicAPIKey, nil
	case model.ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return "", &ConfigError{Field: "OPENAI_API_KEY", Message: "OPENAI_API_KEY environment variable not set"}
		}
		return c.OpenAIAPIKey, nil
	default:
		return "", &ConfigError{Field: "provider", Message: fmt.Sprintf("unsupported LLM provider: %s", p)}
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}
