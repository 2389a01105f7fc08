package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-composer/internal/exporter"
	"resume-composer/internal/fallback"
	"resume-composer/internal/llm"
	"resume-composer/internal/logging"
	"resume-composer/pkg/models"
)

// Sentinel errors to allow precise mapping in transports
var (
	ErrValidation     = errors.New("validation_error")
	ErrAuthentication = errors.New("authentication_error")
	ErrGeneration     = errors.New("generation_error")
)

// Caller facing outcome messages
const (
	MessageGenerated = "Resume generated successfully"
	MessageFallback  = "Resume generated using fallback content (API quota exceeded)"
	MessageAuth      = "Invalid API key. Please check your API key configuration."
)

// Generator turns a generation request into a rendered document
type Generator struct {
	provider        llm.Provider
	synthesizer     *fallback.Synthesizer
	exporter        *exporter.Exporter
	logger          logging.Logger
	fallbackEnabled bool
}

// Option customizes a Generator
type Option func(*Generator)

// WithSynthesizer replaces the fallback synthesizer
func WithSynthesizer(s *fallback.Synthesizer) Option {
	return func(g *Generator) { g.synthesizer = s }
}

// WithExporter replaces the renderer dispatch
func WithExporter(e *exporter.Exporter) Option {
	return func(g *Generator) { g.exporter = e }
}

// WithLogger sets the logger
func WithLogger(l logging.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithFallback toggles synthesized content on rate-limit failures
func WithFallback(enabled bool) Option {
	return func(g *Generator) { g.fallbackEnabled = enabled }
}

// New creates a generator over the given provider
func New(provider llm.Provider, opts ...Option) *Generator {
	g := &Generator{
		provider:        provider,
		synthesizer:     fallback.NewSynthesizer(),
		fallbackEnabled: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.exporter == nil {
		g.exporter = exporter.NewDefault()
	}
	if g.logger == nil {
		g.logger = logging.GetGlobalLogger()
	}
	return g
}

// Generate validates the request, obtains resume text from the provider or the fallback
// synthesizer and renders it in the requested format
func (g *Generator) Generate(ctx context.Context, req models.GenerationRequest) (*models.RenderedDocument, error) {
	start := time.Now()

	format, err := validate(req)
	if err != nil {
		return nil, err
	}

	text, usedFallback, err := g.resumeText(ctx, req)
	if err != nil {
		return nil, err
	}

	doc, err := g.exporter.Export(text, req.Profile, format)
	if err != nil {
		g.logger.Error("Resume rendering failed", map[string]interface{}{
			"export_format": string(format),
			"error":         err.Error(),
		})
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	doc.Fallback = usedFallback
	doc.Message = MessageGenerated
	if usedFallback {
		doc.Message = MessageFallback
	}

	g.logger.Info("Resume generated", map[string]interface{}{
		"export_format":   string(format),
		"provider":        g.providerName(),
		"fallback":        usedFallback,
		"size_bytes":      len(doc.Content),
		"processing_time": time.Since(start),
	})

	return doc, nil
}

// Render renders caller supplied resume text without contacting the provider
func (g *Generator) Render(raw string, profile models.CandidateProfile, format models.ExportFormat) (*models.RenderedDocument, error) {
	format = format.Normalize()
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: unsupported export format %q", ErrValidation, string(format))
	}
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: resume text is required", ErrValidation)
	}

	doc, err := g.exporter.Export(raw, profile, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	doc.Message = MessageGenerated
	return doc, nil
}

// Synthesize exposes the fallback text for a request, used by offline tooling
func (g *Generator) Synthesize(req models.GenerationRequest) string {
	return g.synthesizer.Synthesize(req)
}

func validate(req models.GenerationRequest) (models.ExportFormat, error) {
	if strings.TrimSpace(req.JobDescription) == "" {
		return "", fmt.Errorf("%w: job description is required", ErrValidation)
	}
	format := req.ExportFormat.Normalize()
	if !format.IsValid() {
		return "", fmt.Errorf("%w: unsupported export format %q", ErrValidation, string(req.ExportFormat))
	}
	return format, nil
}

// resumeText asks the provider for resume text. Rate-limit failures are answered by
// the synthesizer when fallback is enabled.
func (g *Generator) resumeText(ctx context.Context, req models.GenerationRequest) (string, bool, error) {
	userPrompt, err := BuildUserPrompt(req)
	if err != nil {
		return "", false, fmt.Errorf("%w: build prompt: %w", ErrGeneration, err)
	}

	if g.provider == nil {
		return "", false, fmt.Errorf("%w: no AI provider configured", ErrGeneration)
	}

	text, err := g.provider.GenerateResume(ctx, SystemPrompt, userPrompt)
	if err == nil {
		if strings.TrimSpace(text) == "" {
			return "", false, fmt.Errorf("%w: empty completion from %s", ErrGeneration, g.providerName())
		}
		return text, false, nil
	}

	switch llm.KindOf(err) {
	case llm.KindRateLimited:
		if !g.fallbackEnabled {
			return "", false, fmt.Errorf("%w: Failed to generate resume: %w", ErrGeneration, err)
		}
		g.logger.Warn("API quota exceeded, generating fallback resume", map[string]interface{}{
			"provider": g.providerName(),
			"error":    err.Error(),
		})
		return g.synthesizer.Synthesize(req), true, nil
	case llm.KindAuthFailed:
		return "", false, fmt.Errorf("%w: %s: %w", ErrAuthentication, MessageAuth, err)
	default:
		return "", false, fmt.Errorf("%w: Failed to generate resume: %w", ErrGeneration, err)
	}
}

func (g *Generator) providerName() string {
	if g.provider == nil {
		return "none"
	}
	return g.provider.GetProviderName()
}
