package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"resume-composer/pkg/models"
)

// RateLimit limits generation requests per client IP. A non-positive rate disables it.
func RateLimit(requestsPerMinute, burst int) echo.MiddlewareFunc {
	if requestsPerMinute <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	if burst <= 0 {
		burst = 1
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(requestsPerMinute) / 60),
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, models.ErrorResponse{
				Error:     "rate_limit_identifier",
				Message:   "Unable to identify client",
				RequestID: RequestID(c),
				Timestamp: time.Now(),
			})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			c.Response().Header().Set("Retry-After", "60")
			return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
				Error:     "rate_limited",
				Message:   "Too many requests",
				Detail:    "generation is limited per client, retry later",
				RequestID: RequestID(c),
				Timestamp: time.Now(),
			})
		},
	})
}
