package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Response headers the browser form needs to read
const (
	HeaderRequestID      = echo.HeaderXRequestID
	HeaderResumeFallback = "X-Resume-Fallback"
	HeaderResumeMessage  = "X-Resume-Message"
)

// CORSConfig returns CORS middleware configuration
func CORSConfig() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders:    []string{echo.HeaderContentDisposition, HeaderRequestID, HeaderResumeFallback, HeaderResumeMessage},
		AllowCredentials: false,
		MaxAge:           86400, // 24 hours
	})
}
