package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"resume-composer/internal/api/handlers"
	"resume-composer/internal/api/middleware"
	"resume-composer/internal/config"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, service handlers.ResumeService, provider handlers.ProviderStatus) {
	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation(cfg.Generation.MaxRequestBytes))
	e.Use(middleware.RequestLogger())

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(provider))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(provider, cfg.Generation.FallbackEnabled))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		resume := v1.Group("/resume",
			middleware.TimeoutConfig(cfg.Server.RequestTimeout),
			middleware.RateLimit(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst),
		)
		{
			resume.POST("/generate", handlers.GenerateResumeHandler(service))
			resume.POST("/preview", handlers.PreviewResumeHandler(service))
			resume.POST("/render", handlers.RenderResumeHandler(service))
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "Resume Composer",
			"version": handlers.Version,
			"status":  "running",
		})
	})
}
