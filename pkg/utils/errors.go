package utils

import (
	"fmt"
	"net/http"
)

// CustomError represents a custom application error
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// Common error constructors
func NewBadRequestError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func NewInternalServerError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

func NewTimeoutError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusRequestTimeout,
		Message: message,
	}
}

func NewValidationError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		Detail:  detail,
	}
}

// Generation specific errors

// NewAuthenticationError is returned when the configured AI credentials were rejected upstream
func NewAuthenticationError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadGateway,
		Message: "AI provider authentication failed",
		Detail:  detail,
	}
}

func NewGenerationError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadGateway,
		Message: "Resume generation failed",
		Detail:  detail,
	}
}

func NewRenderError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusInternalServerError,
		Message: "Document rendering failed",
		Detail:  detail,
	}
}

// NewTooManyRequestsError is returned by the rate limiter
func NewTooManyRequestsError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusTooManyRequests,
		Message: "Too many requests",
		Detail:  detail,
	}
}
