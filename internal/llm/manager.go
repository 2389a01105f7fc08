package llm

import (
	"context"
	"errors"
	"sync"
	"time"

	"resume-composer/internal/config"
	"resume-composer/internal/llm/types"
	"resume-composer/internal/logging"
)

var (
	errNotStarted    = errors.New("LLM manager not started or provider not available")
	errNotConfigured = errors.New("LLM provider is not available - check API key configuration (set LLM_API_KEY environment variable)")
)

// Manager manages LLM providers and their lifecycle. It implements Provider so the
// generator can depend on it directly.
type Manager struct {
	config   *config.Config
	factory  *LLMFactory
	provider Provider
	logger   logging.Logger
	mu       sync.RWMutex
	healthy  bool
}

// NewManager creates a new LLM manager instance
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		config:  cfg,
		factory: NewLLMFactory(cfg),
		logger:  logging.GetGlobalLogger(),
	}
}

// Start creates the provider and records whether it is usable. A failed health check
// does not stop the server; generation then falls back or reports the credential problem.
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Starting LLM manager", map[string]interface{}{
		"provider": m.config.LLM.Provider,
	})

	provider, err := m.factory.CreateProvider()
	if err != nil {
		return err
	}
	m.provider = provider

	ctx, cancel := context.WithTimeout(context.Background(), m.config.LLM.Timeout)
	defer cancel()

	if err := m.provider.IsHealthy(ctx); err != nil {
		m.logger.Warn("LLM provider health check failed - AI generation disabled", map[string]interface{}{
			"provider": m.provider.GetProviderName(),
			"error":    err.Error(),
		})
		m.healthy = false
	} else {
		m.healthy = true
		m.logger.Info("LLM manager started successfully", map[string]interface{}{
			"provider": m.provider.GetProviderName(),
		})
	}

	return nil
}

// Stop shuts down the LLM manager
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Stopping LLM manager")
	m.provider = nil
	m.healthy = false
	return nil
}

// GenerateResume forwards the prompts to the configured provider
func (m *Manager) GenerateResume(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.mu.RLock()
	provider := m.provider
	healthy := m.healthy
	m.mu.RUnlock()

	if provider == nil {
		return "", &types.ProviderError{Provider: "none", Kind: types.KindOther, Err: errNotStarted}
	}

	if !healthy {
		return "", &types.ProviderError{Provider: provider.GetProviderName(), Kind: types.KindAuthFailed, Err: errNotConfigured}
	}

	start := time.Now()
	text, err := provider.GenerateResume(ctx, systemPrompt, userPrompt)
	if err != nil {
		m.logger.Warn("LLM completion failed", map[string]interface{}{
			"provider":   provider.GetProviderName(),
			"error_kind": string(types.KindOf(err)),
			"error":      err.Error(),
		})
		return "", err
	}

	m.logger.Debug("LLM completion received", map[string]interface{}{
		"provider":        provider.GetProviderName(),
		"response_length": len(text),
		"processing_time": time.Since(start),
	})
	return text, nil
}

// IsHealthy reports the cached health state as an error
func (m *Manager) IsHealthy(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.provider == nil {
		return errNotStarted
	}
	if !m.healthy {
		return errNotConfigured
	}
	return nil
}

// Healthy reports whether the manager has a usable provider
func (m *Manager) Healthy() bool {
	return m.IsHealthy(context.Background()) == nil
}

// GetProviderName returns the name of the current LLM provider
func (m *Manager) GetProviderName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.provider != nil {
		return m.provider.GetProviderName()
	}
	return "none"
}

// CheckHealth re-runs the provider health check and updates the cached state
func (m *Manager) CheckHealth(ctx context.Context) error {
	m.mu.RLock()
	provider := m.provider
	m.mu.RUnlock()

	if provider == nil {
		return errNotStarted
	}

	err := provider.IsHealthy(ctx)

	m.mu.Lock()
	m.healthy = err == nil
	m.mu.Unlock()

	return err
}
