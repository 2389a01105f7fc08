package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"resume-composer/internal/api/middleware"
	"resume-composer/internal/api/validation"
	"resume-composer/internal/logging"
	"resume-composer/pkg/models"
	"resume-composer/pkg/utils"
)

var resumeValidator = validation.New()

// ResumeService is the part of the generator the handlers depend on
type ResumeService interface {
	Generate(ctx context.Context, req models.GenerationRequest) (*models.RenderedDocument, error)
	Render(raw string, profile models.CandidateProfile, format models.ExportFormat) (*models.RenderedDocument, error)
}

// GenerateResumeHandler handles POST /api/v1/resume/generate
func GenerateResumeHandler(service ResumeService) echo.HandlerFunc {
	return generate(service, "")
}

// PreviewResumeHandler handles POST /api/v1/resume/preview; the format is always html
func PreviewResumeHandler(service ResumeService) echo.HandlerFunc {
	return generate(service, models.FormatHTML)
}

func generate(service ResumeService, forced models.ExportFormat) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)
		logger := logging.LogWithRequestID(requestID)

		var req models.GenerationRequest
		if err := c.Bind(&req); err != nil {
			logger.Warn("Failed to parse request body", map[string]interface{}{"error": err.Error()})
			return writeError(c, requestID, utils.NewBadRequestError("Invalid request body"))
		}
		if forced != "" {
			req.ExportFormat = forced
		}

		if err := resumeValidator.Struct(&req); err != nil {
			logger.Info("Request validation failed", map[string]interface{}{"error": err.Error()})
			return writeError(c, requestID, err)
		}

		logger.Info("Processing resume generation request", map[string]interface{}{
			"endpoint":      c.Path(),
			"export_format": string(req.ExportFormat.Normalize()),
		})

		doc, err := service.Generate(c.Request().Context(), req)
		if err != nil {
			logger.Error("Resume generation failed", map[string]interface{}{"error": err.Error()})
			return writeError(c, requestID, err)
		}

		return writeDocument(c, doc)
	}
}

// RenderResumeHandler handles POST /api/v1/resume/render, rendering supplied text without an AI call
func RenderResumeHandler(service ResumeService) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)
		logger := logging.LogWithRequestID(requestID)

		var req models.RenderRequest
		if err := c.Bind(&req); err != nil {
			return writeError(c, requestID, utils.NewBadRequestError("Invalid request body"))
		}
		if err := resumeValidator.Struct(&req); err != nil {
			return writeError(c, requestID, err)
		}

		doc, err := service.Render(req.Text, req.Profile, req.ExportFormat)
		if err != nil {
			logger.Error("Resume rendering failed", map[string]interface{}{"error": err.Error()})
			return writeError(c, requestID, err)
		}

		logger.Info("Resume rendered", map[string]interface{}{
			"export_format": string(doc.Format),
			"size_bytes":    len(doc.Content),
		})
		return writeDocument(c, doc)
	}
}

// writeDocument sends the rendered bytes; docx is an attachment, html is served inline
func writeDocument(c echo.Context, doc *models.RenderedDocument) error {
	h := c.Response().Header()
	h.Set(middleware.HeaderResumeFallback, strconv.FormatBool(doc.Fallback))
	h.Set(middleware.HeaderResumeMessage, doc.Message)

	disposition := "inline"
	if doc.Format == models.FormatDocx {
		disposition = "attachment"
	}
	h.Set(echo.HeaderContentDisposition, fmt.Sprintf("%s; filename=%q", disposition, doc.Filename))

	return c.Blob(http.StatusOK, doc.ContentType, doc.Content)
}
