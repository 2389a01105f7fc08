package exporter

import (
	"errors"
	"fmt"

	"resume-composer/internal/docx"
	"resume-composer/internal/preview"
	"resume-composer/pkg/models"
	"resume-composer/pkg/utils"
)

// Sentinel errors to allow precise mapping in handlers
var (
	ErrRender            = errors.New("render_error")
	ErrUnsupportedFormat = errors.New("unsupported_format")
)

// DocumentRenderer produces word-processing document bytes from resume text
type DocumentRenderer interface {
	Render(raw string, profile models.CandidateProfile) ([]byte, error)
}

// PreviewRenderer produces an HTML page from resume text
type PreviewRenderer interface {
	Render(raw string, profile models.CandidateProfile) (string, error)
}

// Exporter dispatches resume text to the renderer matching the requested format
type Exporter struct {
	document DocumentRenderer
	preview  PreviewRenderer
}

// New creates an exporter over the given renderers
func New(document DocumentRenderer, preview PreviewRenderer) *Exporter {
	return &Exporter{document: document, preview: preview}
}

// NewDefault wires the built-in DOCX and HTML renderers
func NewDefault() *Exporter {
	return New(docx.NewRenderer(), preview.MustNewEngine())
}

// Export renders raw text in the given format. An empty format means docx.
// Renderer failures wrap ErrRender together with the renderer's own error chain.
func (e *Exporter) Export(raw string, profile models.CandidateProfile, format models.ExportFormat) (*models.RenderedDocument, error) {
	format = format.Normalize()

	var content []byte
	switch format {
	case models.FormatDocx:
		data, err := e.document.Render(raw, profile)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRender, err)
		}
		content = data
	case models.FormatHTML:
		page, err := e.preview.Render(raw, profile)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRender, err)
		}
		content = []byte(page)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}

	return &models.RenderedDocument{
		Format:      format,
		ContentType: format.ContentType(),
		Filename:    utils.DownloadFilename(profile.Name, format.Extension()),
		Content:     content,
	}, nil
}
