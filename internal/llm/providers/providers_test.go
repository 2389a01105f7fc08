package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-composer/internal/config"
	"resume-composer/internal/llm/types"
)

func testConfig(baseURL string) *config.Config {
	cfg := config.Default()
	cfg.LLM.APIKey = "test-key"
	cfg.LLM.BaseURL = baseURL
	return cfg
}

func TestOpenAIGenerateResumeSuccess(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","model":"gpt-4o-mini","choices":[{"message":{"role":"assistant","content":"` +
			"```\\nPROFESSIONAL SUMMARY\\nBuilds APIs\\n```" + `"}}],"usage":{"total_tokens":42}}`))
	}))
	defer srv.Close()

	p := NewOpenAIProvider(testConfig(srv.URL))
	text, err := p.GenerateResume(context.Background(), "system", "user")

	require.NoError(t, err)
	assert.Equal(t, "PROFESSIONAL SUMMARY\nBuilds APIs", text)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, 2000, got.MaxTokens)
	assert.InDelta(t, 0.7, got.Temperature, 0.0001)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, chatMessage{Role: "system", Content: "system"}, got.Messages[0])
	assert.Equal(t, chatMessage{Role: "user", Content: "user"}, got.Messages[1])
}

func TestOpenAIErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   types.ErrorKind
	}{
		{"rate limited", http.StatusTooManyRequests, `{"error":{"message":"Rate limit reached","type":"requests"}}`, types.KindRateLimited},
		{"quota in body", http.StatusBadRequest, `{"error":{"message":"You exceeded your current quota","code":"insufficient_quota"}}`, types.KindRateLimited},
		{"bad key", http.StatusUnauthorized, `{"error":{"message":"Incorrect API key provided","code":"invalid_api_key"}}`, types.KindAuthFailed},
		{"server error", http.StatusInternalServerError, `upstream exploded`, types.KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewOpenAIProvider(testConfig(srv.URL)).GenerateResume(context.Background(), "s", "u")

			require.Error(t, err)
			var pe *types.ProviderError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.want, pe.Kind)
			assert.Equal(t, tt.status, pe.StatusCode)
			assert.Equal(t, "openai", pe.Provider)
		})
	}
}

func TestOpenAIEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := NewOpenAIProvider(testConfig(srv.URL)).GenerateResume(context.Background(), "s", "u")
	assert.Equal(t, types.KindOther, types.KindOf(err))
}

func TestOpenAIIsHealthy(t *testing.T) {
	cfg := config.Default()
	err := NewOpenAIProvider(cfg).IsHealthy(context.Background())
	assert.Equal(t, types.KindAuthFailed, types.KindOf(err))

	cfg.LLM.APIKey = "k"
	assert.NoError(t, NewOpenAIProvider(cfg).IsHealthy(context.Background()))
}

func TestClaudeGenerateResumeSuccess(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"claude-3-7-sonnet-latest",
"content":[{"type":"text","text":"EDUCATION\nBSc Physics"}],"stop_reason":"end_turn",
"usage":{"input_tokens":10,"output_tokens":5}}`))
	}))
	defer srv.Close()

	p := NewClaudeProvider(testConfig(srv.URL))
	text, err := p.GenerateResume(context.Background(), "be concise", "write it")

	require.NoError(t, err)
	assert.Equal(t, "EDUCATION\nBSc Physics", text)
	assert.Equal(t, "claude-3-7-sonnet-latest", got["model"])
	assert.EqualValues(t, 2000, got["max_tokens"])
	require.Contains(t, got, "system")
}

func TestClaudeErrorClassification(t *testing.T) {
	tests := []struct {
		status int
		want   types.ErrorKind
	}{
		{http.StatusTooManyRequests, types.KindRateLimited},
		{http.StatusUnauthorized, types.KindAuthFailed},
		{http.StatusForbidden, types.KindAuthFailed},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"type":"error","error":{"type":"some_error","message":"nope"}}`))
			}))
			defer srv.Close()

			_, err := NewClaudeProvider(testConfig(srv.URL)).GenerateResume(context.Background(), "s", "u")

			var pe *types.ProviderError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.want, pe.Kind)
			assert.Equal(t, tt.status, pe.StatusCode)
		})
	}
}
