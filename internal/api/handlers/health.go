package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resume-composer/internal/api/middleware"
	"resume-composer/internal/logging"
	"resume-composer/pkg/models"
)

// Version is reported by the health endpoints; overridden at build time
var Version = "1.0.0"

var startTime = time.Now()

// ProviderStatus is the view of the LLM manager the health endpoints need
type ProviderStatus interface {
	IsHealthy(ctx context.Context) error
	GetProviderName() string
}

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	logging.GetGlobalLogger().Debug("Health check requested", map[string]interface{}{
		"request_id": middleware.RequestID(c),
	})

	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   Version,
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	})
}

// ReadinessHandler reports whether AI generation is available. Rendering and the
// fallback path work without a provider, so an unavailable provider degrades the
// service instead of failing readiness.
func ReadinessHandler(provider ProviderStatus) echo.HandlerFunc {
	return func(c echo.Context) error {
		logging.GetGlobalLogger().Debug("Readiness check requested", map[string]interface{}{
			"request_id": middleware.RequestID(c),
		})

		status, llmCheck := "ready", "ok"
		if err := provider.IsHealthy(c.Request().Context()); err != nil {
			status, llmCheck = "degraded", "unavailable: "+err.Error()
		}

		return c.JSON(http.StatusOK, models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   Version,
			Uptime:    time.Since(startTime),
			Checks: map[string]string{
				"api":          "ok",
				"renderers":    "ok",
				"llm":          llmCheck,
				"llm_provider": provider.GetProviderName(),
			},
		})
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   Version,
		Uptime:    time.Since(startTime),
	})
}

// StatusHandler provides detailed service status
func StatusHandler(provider ProviderStatus, fallbackEnabled bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		fallback := "disabled"
		if fallbackEnabled {
			fallback = "enabled"
		}
		llmCheck := "operational"
		if err := provider.IsHealthy(c.Request().Context()); err != nil {
			llmCheck = "unavailable"
		}

		return c.JSON(http.StatusOK, models.HealthResponse{
			Status:    "operational",
			Timestamp: time.Now(),
			Version:   Version,
			Uptime:    time.Since(startTime),
			Checks: map[string]string{
				"api":            "operational",
				"llm":            llmCheck,
				"llm_provider":   provider.GetProviderName(),
				"fallback":       fallback,
				"export_formats": "docx,html",
			},
		})
	}
}
