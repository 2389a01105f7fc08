package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resume-composer/pkg/models"
	"resume-composer/pkg/utils"
)

// RequestIDKey is the echo context key holding the request id
const RequestIDKey = "request_id"

// RequestValidation assigns a request id and rejects POST bodies larger than maxBytes
func RequestValidation(maxBytes int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = utils.GenerateRequestID()
			}
			c.Set(RequestIDKey, requestID)
			c.Response().Header().Set(HeaderRequestID, requestID)

			if c.Request().Method == http.MethodPost && maxBytes > 0 {
				if c.Request().ContentLength > maxBytes {
					return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
						Error:     "request_too_large",
						Message:   "Request body too large",
						RequestID: requestID,
						Timestamp: time.Now(),
					})
				}
				c.Request().Body = http.MaxBytesReader(c.Response(), c.Request().Body, maxBytes)
			}

			return next(c)
		}
	}
}

// RequestID returns the id assigned by RequestValidation
func RequestID(c echo.Context) string {
	if id, ok := c.Get(RequestIDKey).(string); ok {
		return id
	}
	return c.Response().Header().Get(HeaderRequestID)
}
