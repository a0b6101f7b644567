package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmcode/interview-coach/pkg/model"
)

const claudeOK = `{
  "id": "msg_01",
  "type": "message",
  "role": "assistant",
  "model": "claude-test",
  "content": [{"type": "text", "text": "Overall Score: 82/100"}],
  "stop_reason": "end_turn",
  "usage": {"input_tokens": 10, "output_tokens": 5}
}`

func TestClaudeChat(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/v1/messages"), r.URL.Path)
		assert.Equal(t, "sk-ant-test", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(claudeOK))
	}))
	defer srv.Close()

	c := NewClaudeWithOptions("sk-ant-test", Options{BaseURL: srv.URL + "/", Model: "claude-test"})
	out, err := c.Chat(context.Background(), "be a coach", "my answer")
	require.NoError(t, err)

	assert.Equal(t, "Overall Score: 82/100", out)
	assert.Equal(t, "claude-test", body["model"])
	assert.NotNil(t, body["system"])
	assert.Equal(t, model.ProviderClaude, c.Provider())
}

func TestClaudeChatErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		code   int
	}{
		{"server error", http.StatusInternalServerError, `{"type":"error","error":{"type":"api_error","message":"boom"}}`, http.StatusInternalServerError},
		{"empty content", http.StatusOK, `{"id":"msg","type":"message","role":"assistant","content":[]}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClaudeWithOptions("sk-ant-test", Options{BaseURL: srv.URL + "/"})
			_, err := c.Chat(context.Background(), "", "hi")

			var perr *ProviderError
			require.True(t, errors.As(err, &perr), "want *ProviderError, got %T", err)
			assert.Equal(t, model.ProviderClaude, perr.Provider)
			assert.Equal(t, tt.code, perr.StatusCode)
			assert.Equal(t, 1, calls, "client must not retry on its own")
		})
	}
}
