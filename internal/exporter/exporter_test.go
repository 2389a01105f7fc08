package exporter

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-composer/internal/docx"
	"resume-composer/pkg/models"
)

type failingDocument struct{ err error }

func (f failingDocument) Render(string, models.CandidateProfile) ([]byte, error) {
	return nil, f.err
}

type failingPreview struct{ err error }

func (f failingPreview) Render(string, models.CandidateProfile) (string, error) {
	return "", f.err
}

const raw = "PROFESSIONAL SUMMARY\nShips reliable systems"

func TestExportDocx(t *testing.T) {
	for _, format := range []models.ExportFormat{"", "docx", "DOCX"} {
		doc, err := NewDefault().Export(raw, models.CandidateProfile{Name: "Jane Q Doe"}, format)
		require.NoError(t, err, "format %q", format)

		assert.Equal(t, models.FormatDocx, doc.Format)
		assert.Equal(t, models.DocxContentType, doc.ContentType)
		assert.Equal(t, "resume_Jane_Q_Doe.docx", doc.Filename)

		_, err = zip.NewReader(bytes.NewReader(doc.Content), int64(len(doc.Content)))
		assert.NoError(t, err)
	}
}

func TestExportHTML(t *testing.T) {
	doc, err := NewDefault().Export(raw, models.CandidateProfile{}, models.FormatHTML)
	require.NoError(t, err)

	assert.Equal(t, models.HTMLContentType, doc.ContentType)
	assert.Equal(t, "resume_generated.html", doc.Filename)
	assert.Contains(t, doc.HTML(), "Ships reliable systems")
}

func TestExportUnsupportedFormat(t *testing.T) {
	_, err := NewDefault().Export(raw, models.CandidateProfile{}, "pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExportWrapsRendererErrors(t *testing.T) {
	cause := errors.New("disk full")

	_, err := New(failingDocument{err: cause}, nil).Export(raw, models.CandidateProfile{}, models.FormatDocx)
	assert.ErrorIs(t, err, ErrRender)
	assert.ErrorIs(t, err, cause)

	wrapped := errors.Join(docx.ErrRender, cause)
	_, err = New(nil, failingPreview{err: wrapped}).Export(raw, models.CandidateProfile{}, models.FormatHTML)
	assert.ErrorIs(t, err, ErrRender)
	assert.ErrorIs(t, err, docx.ErrRender)
}
