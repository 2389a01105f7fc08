package types

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Provider defines the interface that all AI providers must implement
type Provider interface {
	// GenerateResume sends the system and user prompts to the model and returns the completion text
	GenerateResume(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// IsHealthy checks if the provider is available and configured
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the provider
	GetProviderName() string
}

// ErrorKind classifies provider failures for the generation policy
type ErrorKind string

const (
	KindRateLimited ErrorKind = "rate_limited"
	KindAuthFailed  ErrorKind = "auth_failed"
	KindOther       ErrorKind = "other"
)

// ProviderError is returned by providers for every failed call
type ProviderError struct {
	Provider   string
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s provider error (%s, status %d): %v", e.Provider, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s provider error (%s): %v", e.Provider, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError classifies err by status code first and by message second
func NewProviderError(provider string, status int, err error) *ProviderError {
	kind := ClassifyStatus(status)
	if kind == KindOther && err != nil {
		kind = ClassifyMessage(err.Error())
	}
	return &ProviderError{Provider: provider, Kind: kind, StatusCode: status, Err: err}
}

// KindOf returns the kind of the first ProviderError in err's chain. Errors that
// did not come through a provider are KindOther; only providers classify messages.
func KindOf(err error) ErrorKind {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindOther
}

// ClassifyStatus maps an HTTP status code to an error kind
func ClassifyStatus(status int) ErrorKind {
	switch status {
	case http.StatusTooManyRequests:
		return KindRateLimited
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindAuthFailed
	default:
		return KindOther
	}
}

var (
	rateLimitMarkers = []string{"429", "quota", "rate_limit", "rate limit", "insufficient_quota", "quotafailure"}
	authMarkers      = []string{"api_key", "api key", "authentication", "invalid_api_key", "unauthorized"}
)

// ClassifyMessage inspects an error message for quota or credential markers.
// Quota markers win when both appear.
func ClassifyMessage(msg string) ErrorKind {
	lower := strings.ToLower(msg)
	for _, marker := range rateLimitMarkers {
		if strings.Contains(lower, marker) {
			return KindRateLimited
		}
	}
	for _, marker := range authMarkers {
		if strings.Contains(lower, marker) {
			return KindAuthFailed
		}
	}
	return KindOther
}
