package docx

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-composer/internal/sections"
	"resume-composer/pkg/models"
)

// ErrRender marks any failure while assembling a document
var ErrRender = errors.New("render_error")

// Section titles in document order. Skills sits between summary and projects.
const (
	TitleSummary    = "PROFESSIONAL SUMMARY"
	TitleSkills     = "CORE TECHNICAL SKILLS"
	TitleProjects   = "PROJECT EXPERIENCE"
	TitleEducation  = "EDUCATION"
	TitleAdditional = "ADDITIONAL INFORMATION"
)

// Renderer builds OOXML word-processing documents from resume text
type Renderer struct {
	// Creator is written to the package core properties
	Creator string
	// Modified is stamped on every zip entry
	Modified time.Time
}

// NewRenderer creates a renderer with a fixed package timestamp
func NewRenderer() *Renderer {
	return &Renderer{
		Creator:  "resume-composer",
		Modified: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Render parses raw resume text and returns the document bytes
func (r *Renderer) Render(raw string, profile models.CandidateProfile) ([]byte, error) {
	return r.RenderSections(sections.Parse(raw), profile)
}

// RenderSections lays out already parsed sections. Prose sections always get their
// title, even when empty. The skills table and its title are left out when no line
// of the skills section tokenizes into an entry.
// On failure no bytes are returned and the error wraps ErrRender.
func (r *Renderer) RenderSections(parsed models.ParsedSections, profile models.CandidateProfile) ([]byte, error) {
	var blocks []block

	blocks = append(blocks, header(profile)...)
	blocks = append(blocks, proseSection(TitleSummary, parsed.Lines(models.SectionSummary))...)
	blocks = append(blocks, skillsSection(sections.TokenizeSkills(parsed.Skills))...)
	blocks = append(blocks, proseSection(TitleProjects, parsed.Lines(models.SectionProjects))...)
	blocks = append(blocks, proseSection(TitleEducation, parsed.Lines(models.SectionEducation))...)
	blocks = append(blocks, proseSection(TitleAdditional, parsed.Lines(models.SectionAdditional))...)

	doc := document{
		W: wordprocessingNS,
		R: relationshipsNS,
		Body: body{
			Blocks:  blocks,
			Section: letterSection(),
		},
	}

	parts, err := buildParts(doc, strings.TrimSpace(profile.Name), r.creator())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	data, err := pack(parts, r.modified())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	return data, nil
}

func (r *Renderer) creator() string {
	if r == nil || r.Creator == "" {
		return "resume-composer"
	}
	return r.Creator
}

func (r *Renderer) modified() time.Time {
	if r == nil || r.Modified.IsZero() {
		return time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return r.Modified
}

// header emits the centered name and email lines, or a single empty paragraph when
// the profile has neither
func header(profile models.CandidateProfile) []block {
	var blocks []block

	if name := strings.TrimSpace(profile.Name); name != "" {
		blocks = append(blocks, newParagraph(name, nameRun, nameParagraph))
	}
	if email := strings.TrimSpace(profile.Email); email != "" {
		blocks = append(blocks, newParagraph(email, emailRun, emailParagraph))
	}

	if len(blocks) == 0 {
		blocks = append(blocks, paragraph{Runs: []run{newRun("", RunStyle{})}})
	}
	return blocks
}

func proseSection(title string, lines []string) []block {
	blocks := []block{newParagraph(title, headingRun, headingParagraph)}
	for _, line := range lines {
		blocks = append(blocks, newParagraph(line, bodyRun, bodyParagraph))
	}
	return blocks
}

func skillsSection(entries []models.SkillEntry) []block {
	if len(entries) == 0 {
		return nil
	}

	rows := make([]tableRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, tableRow{Cells: []tableCell{
			newCell(newParagraph(entry.Category, categoryRun, ParagraphStyle{}), categoryWidthPct),
			newCell(newParagraph(entry.Items, itemsRun, ParagraphStyle{}), itemsWidthPct),
		}})
	}

	return []block{
		newParagraph(TitleSkills, headingRun, headingParagraph),
		newTable(rows),
	}
}
