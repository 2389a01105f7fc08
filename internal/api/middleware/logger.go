package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"resume-composer/internal/logging"
)

// RequestLogger writes one structured line per request through the global logger
func RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := map[string]interface{}{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.Round(time.Microsecond).String(),
				"remote_ip":  v.RemoteIP,
				"request_id": RequestID(c),
			}
			logger := logging.GetGlobalLogger()
			if v.Status >= 500 {
				logger.Error("HTTP request", fields)
			} else {
				logger.Info("HTTP request", fields)
			}
			return nil
		},
	})
}
