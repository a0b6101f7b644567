package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/helmcode/interview-coach/pkg/model"
)

type OpenAI struct {
	apiKey      string
	baseURL     string
	client      *http.Client
	model       string
	maxTokens   int
	temperature float64
}

func NewOpenAI(apiKey string) *OpenAI {
	return NewOpenAIWithOptions(apiKey, Options{})
}

func NewOpenAIWithOptions(apiKey string, opts Options) *OpenAI {
	o := &OpenAI{
		apiKey:      apiKey,
		baseURL:     "https://api.openai.com/v1",
		client:      &http.Client{Timeout: 60 * time.Second},
		model:       "gpt-4o",
		maxTokens:   2000,
		temperature: 0.7,
	}
	if opts.BaseURL != "" {
		o.baseURL = strings.TrimSuffix(opts.BaseURL, "/")
	}
	if opts.HTTPClient != nil {
		o.client = opts.HTTPClient
	}
	if opts.Model != "" {
		o.model = opts.Model
	}
	if opts.MaxTokens > 0 {
		o.maxTokens = opts.MaxTokens
	}
	if opts.Temperature > 0 {
		o.temperature = opts.Temperature
	}
	return o
}

func (o *OpenAI) Provider() model.Provider {
	return model.ProviderOpenAI
}

// GetModel returns the model being used by this OpenAI client
func (o *OpenAI) GetModel() string {
	return o.model
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiRequest struct {
	Model       string          `json:"model"`
	Messages    []openaiMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
}

func (o *OpenAI) Chat(ctx context.Context, system, prompt string) (string, error) {
	var messages []openaiMessage
	if system != "" {
		messages = append(messages, openaiMessage{Role: "system", Content: system})
	}
	messages = append(messages, openaiMessage{Role: "user", Content: prompt})

	jsonBody, err := json.Marshal(openaiRequest{
		Model:       o.model,
		Messages:    messages,
		MaxTokens:   o.maxTokens,
		Temperature: o.temperature,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", o.apiKey))

	resp, err := o.client.Do(req)
	if err != nil {
		return "", &ProviderError{Provider: model.ProviderOpenAI, Err: err}
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Provider: model.ProviderOpenAI, StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &ProviderError{Provider: model.ProviderOpenAI, StatusCode: resp.StatusCode, Message: string(respBytes)}
	}

	var openaiResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
		} `json:"error"`
	}
	if err := json.Unmarshal(respBytes, &openaiResp); err != nil {
		return "", &ProviderError{Provider: model.ProviderOpenAI, StatusCode: resp.StatusCode, Message: "malformed response body", Err: err}
	}
	if openaiResp.Error.Message != "" {
		return "", &ProviderError{Provider: model.ProviderOpenAI, StatusCode: resp.StatusCode, Message: openaiResp.Error.Message}
	}
	if len(openaiResp.Choices) == 0 || strings.TrimSpace(openaiResp.Choices[0].Message.Content) == "" {
		return "", &ProviderError{Provider: model.ProviderOpenAI, StatusCode: resp.StatusCode, Message: "empty response from OpenAI"}
	}
	return strings.TrimSpace(openaiResp.Choices[0].Message.Content), nil
}
