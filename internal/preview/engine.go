package preview

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"resume-composer/internal/sections"
	"resume-composer/pkg/models"
)

// ErrRender marks any failure while producing the preview page
var ErrRender = errors.New("render_error")

//go:embed templates/resume.html.tmpl
var templateFS embed.FS

const templateName = "resume.html.tmpl"

// Engine renders resume text into a standalone HTML preview page.
//
// Unlike the document renderer, sections with no text are left out entirely and the
// additional-information section is never shown.
type Engine struct {
	tmpl *template.Template
}

// NewEngine parses the embedded page template
func NewEngine() (*Engine, error) {
	tmpl, err := template.New(templateName).ParseFS(templateFS, "templates/"+templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: parse template: %w", ErrRender, err)
	}
	return &Engine{tmpl: tmpl}, nil
}

// MustNewEngine is like NewEngine but panics if the embedded template is broken
func MustNewEngine() *Engine {
	e, err := NewEngine()
	if err != nil {
		panic(err)
	}
	return e
}

// Render parses raw resume text and returns the HTML page
func (e *Engine) Render(raw string, profile models.CandidateProfile) (string, error) {
	return e.RenderSections(sections.Parse(raw), profile)
}

// RenderSections renders already parsed sections. All text is HTML-escaped.
func (e *Engine) RenderSections(parsed models.ParsedSections, profile models.CandidateProfile) (string, error) {
	if e == nil || e.tmpl == nil {
		return "", fmt.Errorf("%w: engine not initialized", ErrRender)
	}

	var buf bytes.Buffer
	if err := e.tmpl.Execute(&buf, buildViewModel(parsed, profile)); err != nil {
		return "", fmt.Errorf("%w: execute template: %w", ErrRender, err)
	}
	return buf.String(), nil
}

// ===== View model =====

// ViewModel is the data handed to the page template
type ViewModel struct {
	DocumentTitle string
	HeaderName    string
	Email         string
	Summary       []string
	Skills        []models.SkillEntry
	Projects      []string
	Education     []string
}

func buildViewModel(parsed models.ParsedSections, profile models.CandidateProfile) ViewModel {
	name := strings.TrimSpace(profile.Name)

	vm := ViewModel{
		DocumentTitle: firstNonEmpty(name, "Generated"),
		HeaderName:    firstNonEmpty(name, "Generated Resume"),
		Email:         strings.TrimSpace(profile.Email),
		Summary:       parsed.Lines(models.SectionSummary),
		Projects:      parsed.Lines(models.SectionProjects),
		Education:     parsed.Lines(models.SectionEducation),
	}
	if parsed.Skills != "" {
		vm.Skills = sections.TokenizeSkills(parsed.Skills)
	}
	return vm
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
