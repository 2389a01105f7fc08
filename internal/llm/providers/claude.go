package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"resume-composer/internal/config"
	"resume-composer/internal/llm/processors"
	"resume-composer/internal/llm/types"
	"resume-composer/internal/logging"
)

const claudeName = "claude"

// ClaudeProvider implements the LLM provider interface using Anthropic's Claude
type ClaudeProvider struct {
	client     anthropic.Client
	config     *config.Config
	model      anthropic.Model
	normalizer *processors.TextNormalizer
	logger     logging.Logger
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.LLM.APIKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(cfg.LLM.Timeout),
	}
	if cfg.LLM.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.LLM.BaseURL))
	}

	model := anthropic.ModelClaude3_7SonnetLatest
	if cfg.LLM.Model != "" {
		model = anthropic.Model(cfg.LLM.Model)
	}

	return &ClaudeProvider{
		client:     anthropic.NewClient(opts...),
		config:     cfg,
		model:      model,
		normalizer: processors.NewTextNormalizer(),
		logger:     logging.GetGlobalLogger(),
	}
}

// GenerateResume sends the prompts as one Messages call and returns the normalized text
func (cp *ClaudeProvider) GenerateResume(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	startTime := time.Now()

	response, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       cp.model,
		MaxTokens:   int64(cp.config.LLM.MaxTokens),
		Temperature: anthropic.Float(float64(cp.config.LLM.Temperature)),
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: userPrompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		status := 0
		var apierr *anthropic.Error
		if errors.As(err, &apierr) {
			status = apierr.StatusCode
		}
		return "", types.NewProviderError(claudeName, status, fmt.Errorf("failed to call Claude API: %w", err))
	}

	var parts []string
	for _, content := range response.Content {
		if content.Type == "text" {
			parts = append(parts, content.AsText().Text)
		}
	}

	text := cp.normalizer.Normalize(strings.Join(parts, "\n"))
	if text == "" {
		return "", types.NewProviderError(claudeName, 0, errors.New("no text content in Claude response"))
	}

	cp.logger.Debug("Claude completion received", map[string]interface{}{
		"provider":        claudeName,
		"model":           string(cp.model),
		"output_tokens":   response.Usage.OutputTokens,
		"processing_time": time.Since(startTime),
	})

	return text, nil
}

// IsHealthy checks that credentials are configured. It does not spend a request.
func (cp *ClaudeProvider) IsHealthy(ctx context.Context) error {
	if strings.TrimSpace(cp.config.LLM.APIKey) == "" {
		return types.NewProviderError(claudeName, 0, errors.New("Claude API key not configured - set LLM_API_KEY or ANTHROPIC_API_KEY"))
	}
	return ctx.Err()
}

// GetProviderName returns the name of the LLM provider
func (cp *ClaudeProvider) GetProviderName() string {
	return claudeName
}
