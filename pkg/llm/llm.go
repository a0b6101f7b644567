package llm

import (
	"context"
	"fmt"

	"github.com/helmcode/interview-coach/pkg/model"
)

// LLM is a text-generation backend.
type LLM interface {
	// Chat sends a system prompt and a single user message and returns the
	// model's text reply.
	Chat(ctx context.Context, system, prompt string) (string, error)
	Provider() model.Provider
}

// ProviderError is any failure talking to a provider: transport errors,
// non-2xx responses, and bodies that carry no usable text.
type ProviderError struct {
	Provider   model.Provider
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s API error: %s", e.Provider, msg)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
