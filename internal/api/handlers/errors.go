package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"resume-composer/internal/exporter"
	"resume-composer/internal/generator"
	"resume-composer/pkg/models"
	"resume-composer/pkg/utils"
)

// classifyError maps generator sentinels onto a transport error and a stable
// machine readable code
func classifyError(err error) (*utils.CustomError, string) {
	var custom *utils.CustomError
	var verrs validator.ValidationErrors

	switch {
	case errors.As(err, &custom):
		return custom, "invalid_request"
	case errors.As(err, &verrs):
		return utils.NewValidationError(verrs.Error()), "validation_failed"
	case errors.Is(err, generator.ErrValidation):
		return utils.NewValidationError(err.Error()), "validation_failed"
	case errors.Is(err, generator.ErrAuthentication):
		return utils.NewAuthenticationError(generator.MessageAuth), "authentication_failed"
	case errors.Is(err, context.DeadlineExceeded):
		return utils.NewTimeoutError("Resume generation timed out"), "timeout"
	case errors.Is(err, exporter.ErrRender):
		return utils.NewRenderError(err.Error()), "render_failed"
	case errors.Is(err, generator.ErrGeneration):
		return utils.NewGenerationError(err.Error()), "generation_failed"
	default:
		return utils.NewInternalServerError(err.Error()), "internal_error"
	}
}

func writeError(c echo.Context, requestID string, err error) error {
	custom, code := classifyError(err)
	return c.JSON(custom.Code, models.ErrorResponse{
		Error:     code,
		Message:   custom.Message,
		Detail:    custom.Detail,
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}
