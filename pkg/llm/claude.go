package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/helmcode/interview-coach/pkg/model"
)

// Options tune a provider client. Zero values fall back to defaults.
type Options struct {
	Model       string
	BaseURL     string
	MaxTokens   int
	Temperature float64
	HTTPClient  *http.Client
}

type Claude struct {
	client      anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
}

func NewClaude(apiKey string) *Claude {
	return NewClaudeWithOptions(apiKey, Options{})
}

func NewClaudeWithOptions(apiKey string, opts Options) *Claude {
	// Retries are owned by the router's fallback policy, not the SDK.
	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.HTTPClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(opts.HTTPClient))
	}

	c := &Claude{
		client:      anthropic.NewClient(reqOpts...),
		model:       "claude-sonnet-4-20250514",
		maxTokens:   2000,
		temperature: 0.7,
	}
	if opts.Model != "" {
		c.model = opts.Model
	}
	if opts.MaxTokens > 0 {
		c.maxTokens = int64(opts.MaxTokens)
	}
	if opts.Temperature > 0 {
		c.temperature = opts.Temperature
	}
	return c
}

func (c *Claude) Provider() model.Provider {
	return model.ProviderClaude
}

// GetModel returns the model being used by this Claude client
func (c *Claude) GetModel() string {
	return c.model
}

func (c *Claude) Chat(ctx context.Context, system, prompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   c.maxTokens,
		Temperature: anthropic.Float(c.temperature),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		perr := &ProviderError{Provider: model.ProviderClaude, Err: err}
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			perr.StatusCode = apiErr.StatusCode
		}
		return "", perr
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", &ProviderError{Provider: model.ProviderClaude, Message: "empty response from Claude"}
	}
	return text, nil
}
