package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmcode/interview-coach/pkg/model"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "CLAUDE_MODEL", "OPENAI_MODEL",
		"LLM_MAX_TOKENS", "PROVIDER_TIMEOUT", "PORT", "LOG_FORMAT", "BRIEF_TRANSCRIPT_CHARS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, DefaultClaudeModel, cfg.ClaudeModel)
	assert.Equal(t, DefaultOpenAIModel, cfg.OpenAIModel)
	assert.Equal(t, DefaultMaxTokens, cfg.MaxTokens)
	assert.Equal(t, DefaultProviderTimeout, cfg.ProviderTimeout)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 0, cfg.BriefTranscriptChars)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("OPENAI_API_KEY", "sk-oai")
	t.Setenv("PROVIDER_TIMEOUT", "45s")
	t.Setenv("LLM_MAX_TOKENS", "1234")
	t.Setenv("PORT", "9090")

	cfg := Load()

	assert.Equal(t, "sk-ant", cfg.AnthropicAPIKey)
	assert.Equal(t, "sk-oai", cfg.OpenAIAPIKey)
	assert.Equal(t, 45*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, 1234, cfg.MaxTokens)
	assert.Equal(t, "9090", cfg.Port)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{MaxTokens: 100, ProviderTimeout: time.Second, Port: "8080", LogFormat: "text"}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"ok", func(*Config) {}, ""},
		{"zero tokens", func(c *Config) { c.MaxTokens = 0 }, "LLM_MAX_TOKENS"},
		{"zero timeout", func(c *Config) { c.ProviderTimeout = 0 }, "PROVIDER_TIMEOUT"},
		{"negative brief threshold", func(c *Config) { c.BriefTranscriptChars = -1 }, "BRIEF_TRANSCRIPT_CHARS"},
		{"no port", func(c *Config) { c.Port = "" }, "PORT"},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, "LOG_FORMAT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var cerr *ConfigError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, tt.field, cerr.Field)
		})
	}
}

func TestAPIKey(t *testing.T) {
	cfg := &Config{AnthropicAPIKey: "sk-ant"}

	key, err := cfg.APIKey(model.ProviderClaude)
	require.NoError(t, err)
	assert.Equal(t, "sk-ant", key)

	_, err = cfg.APIKey(model.ProviderOpenAI)
	var cerr *ConfigError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "OPENAI_API_KEY", cerr.Field)
}
