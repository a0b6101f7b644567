package llm

import (
	"net/http"

	"github.com/helmcode/interview-coach/pkg/config"
	"github.com/helmcode/interview-coach/pkg/model"
)

// Factory creates LLM instances from an explicit configuration.
type Factory struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewFactory creates a new LLM factory
func NewFactory(cfg *config.Config) *Factory {
	return &Factory{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.ProviderTimeout},
	}
}

// CreateLLM creates the client for provider. A missing API key yields a
// *config.ConfigError and no client.
func (f *Factory) CreateLLM(provider model.Provider) (LLM, error) {
	apiKey, err := f.cfg.APIKey(provider)
	if err != nil {
		return nil, err
	}

	switch provider {
	case model.ProviderClaude:
		return NewClaudeWithOptions(apiKey, Options{
			Model:      f.cfg.ClaudeModel,
			BaseURL:    f.cfg.AnthropicBaseURL,
			MaxTokens:  f.cfg.MaxTokens,
			HTTPClient: f.httpClient,
		}), nil

	default:
		return NewOpenAIWithOptions(apiKey, Options{
			Model:      f.cfg.OpenAIModel,
			BaseURL:    f.cfg.OpenAIBaseURL,
			MaxTokens:  f.cfg.MaxTokens,
			HTTPClient: f.httpClient,
		}), nil
	}
}

// GetAvailableProviders returns the providers that have an API key configured.
func (f *Factory) GetAvailableProviders() []model.Provider {
	var out []model.Provider
	for _, p := range []model.Provider{model.ProviderClaude, model.ProviderOpenAI} {
		if _, err := f.cfg.APIKey(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}
