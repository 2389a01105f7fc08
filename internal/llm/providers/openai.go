package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"resume-composer/internal/config"
	"resume-composer/internal/llm/processors"
	"resume-composer/internal/llm/types"
	"resume-composer/internal/logging"
)

const (
	openAIBaseURL      = "https://api.openai.com/v1"
	openAIDefaultModel = "gpt-4o-mini"
	openAIName         = "openai"
)

// OpenAIProvider calls the OpenAI chat completions endpoint
type OpenAIProvider struct {
	config     *config.Config
	baseURL    string
	model      string
	httpClient *http.Client
	normalizer *processors.TextNormalizer
	logger     logging.Logger
}

// NewOpenAIProvider creates a new OpenAI provider instance. llm.base_url points it at
// any OpenAI-compatible endpoint.
func NewOpenAIProvider(cfg *config.Config) *OpenAIProvider {
	baseURL := strings.TrimRight(cfg.LLM.BaseURL, "/")
	if baseURL == "" {
		baseURL = openAIBaseURL
	}
	model := cfg.LLM.Model
	if model == "" {
		model = openAIDefaultModel
	}

	return &OpenAIProvider{
		config:     cfg,
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: cfg.LLM.Timeout},
		normalizer: processors.NewTextNormalizer(),
		logger:     logging.GetGlobalLogger(),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float32       `json:"temperature"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage,omitempty"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

func (e *apiError) text() string {
	parts := []string{e.Message}
	if e.Type != "" {
		parts = append(parts, e.Type)
	}
	if e.Code != "" {
		parts = append(parts, e.Code)
	}
	return strings.Join(parts, " | ")
}

// GenerateResume sends one chat completion request and returns the normalized text
func (op *OpenAIProvider) GenerateResume(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	start := time.Now()

	body, err := json.Marshal(chatRequest{
		Model: op.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   op.config.LLM.MaxTokens,
		Temperature: op.config.LLM.Temperature,
	})
	if err != nil {
		return "", types.NewProviderError(openAIName, 0, fmt.Errorf("encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, op.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", types.NewProviderError(openAIName, 0, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+op.config.LLM.APIKey)

	resp, err := op.httpClient.Do(req)
	if err != nil {
		return "", types.NewProviderError(openAIName, 0, fmt.Errorf("call OpenAI API: %w", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", types.NewProviderError(openAIName, resp.StatusCode, fmt.Errorf("read response: %w", err))
	}

	var parsed chatResponse
	decodeErr := json.Unmarshal(raw, &parsed)

	if resp.StatusCode >= http.StatusBadRequest {
		msg := strings.TrimSpace(string(raw))
		if decodeErr == nil && parsed.Error != nil {
			msg = parsed.Error.text()
		}
		return "", types.NewProviderError(openAIName, resp.StatusCode, fmt.Errorf("openai error: %s", msg))
	}
	if decodeErr != nil {
		return "", types.NewProviderError(openAIName, resp.StatusCode, fmt.Errorf("decode response: %w", decodeErr))
	}
	if parsed.Error != nil {
		return "", types.NewProviderError(openAIName, resp.StatusCode, fmt.Errorf("openai error: %s", parsed.Error.text()))
	}
	if len(parsed.Choices) == 0 {
		return "", types.NewProviderError(openAIName, resp.StatusCode, errors.New("empty response from OpenAI"))
	}

	text := op.normalizer.Normalize(parsed.Choices[0].Message.Content)
	if text == "" {
		return "", types.NewProviderError(openAIName, resp.StatusCode, errors.New("no text content in OpenAI response"))
	}

	fields := map[string]interface{}{
		"provider":        openAIName,
		"model":           op.model,
		"processing_time": time.Since(start),
	}
	if parsed.Usage != nil {
		fields["total_tokens"] = parsed.Usage.TotalTokens
	}
	op.logger.Debug("OpenAI completion received", fields)

	return text, nil
}

// IsHealthy checks that credentials are configured. It does not spend a request.
func (op *OpenAIProvider) IsHealthy(ctx context.Context) error {
	if strings.TrimSpace(op.config.LLM.APIKey) == "" {
		return types.NewProviderError(openAIName, 0, errors.New("OpenAI API key not configured - set LLM_API_KEY or OPENAI_API_KEY"))
	}
	return ctx.Err()
}

// GetProviderName returns the name of the LLM provider
func (op *OpenAIProvider) GetProviderName() string {
	return openAIName
}
