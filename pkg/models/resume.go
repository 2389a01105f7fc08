package models

import (
	"encoding/json"
	"strings"
)

// ExportFormat selects the output representation of a generated resume
type ExportFormat string

const (
	FormatDocx ExportFormat = "docx"
	FormatHTML ExportFormat = "html"
)

// MIME types returned alongside rendered documents
const (
	DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	HTMLContentType = "text/html; charset=utf-8"
)

// Normalize lower-cases the format and maps the empty value to docx
func (f ExportFormat) Normalize() ExportFormat {
	normalized := ExportFormat(strings.ToLower(strings.TrimSpace(string(f))))
	if normalized == "" {
		return FormatDocx
	}
	return normalized
}

// IsValid reports whether the (normalized) format is supported
func (f ExportFormat) IsValid() bool {
	switch f.Normalize() {
	case FormatDocx, FormatHTML:
		return true
	default:
		return false
	}
}

// ContentType returns the MIME type for the format
func (f ExportFormat) ContentType() string {
	if f.Normalize() == FormatHTML {
		return HTMLContentType
	}
	return DocxContentType
}

// Extension returns the file extension (without dot) for the format
func (f ExportFormat) Extension() string {
	if f.Normalize() == FormatHTML {
		return "html"
	}
	return "docx"
}

// CandidateProfile holds the personal details submitted with a generation request
type CandidateProfile struct {
	Name              string `json:"name" yaml:"name" validate:"required,min=2"`
	Email             string `json:"email,omitempty" yaml:"email" validate:"omitempty,email"`
	JobTitle          string `json:"job_title" yaml:"job_title" validate:"required,min=2"`
	YearsOfExperience string `json:"years_of_experience,omitempty" yaml:"years_of_experience" validate:"omitempty,experience_bucket"`
	Domain            string `json:"domain,omitempty" yaml:"domain"`
	Education         string `json:"education,omitempty" yaml:"education"`
}

// UnmarshalJSON accepts both snake_case keys and the camelCase keys posted by the web form
func (p *CandidateProfile) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	hasCamel := raw["jobTitle"] != nil || raw["yearsOfExperience"] != nil

	type profileAlias CandidateProfile // avoid recursion
	if !hasCamel {
		var sp profileAlias
		if err := json.Unmarshal(data, &sp); err != nil {
			return err
		}
		*p = CandidateProfile(sp)
		return nil
	}

	var cc struct {
		Name              string `json:"name"`
		Email             string `json:"email"`
		JobTitle          string `json:"jobTitle"`
		YearsOfExperience string `json:"yearsOfExperience"`
		Domain            string `json:"domain"`
		Education         string `json:"education"`
	}
	if err := json.Unmarshal(data, &cc); err != nil {
		return err
	}
	*p = CandidateProfile{
		Name:              cc.Name,
		Email:             cc.Email,
		JobTitle:          cc.JobTitle,
		YearsOfExperience: cc.YearsOfExperience,
		Domain:            cc.Domain,
		Education:         cc.Education,
	}
	return nil
}

// GenerationRequest is one form submission. It is never persisted.
type GenerationRequest struct {
	Profile              CandidateProfile `json:"profile" yaml:"profile" validate:"required"`
	JobDescription       string           `json:"job_description" yaml:"job_description" validate:"required,min=50"`
	WorkResponsibilities string           `json:"work_responsibilities" yaml:"work_responsibilities" validate:"required,min=50"`
	Skills               string           `json:"skills" yaml:"skills"`
	AdditionalNotes      string           `json:"additional_notes,omitempty" yaml:"additional_notes"`
	ExportFormat         ExportFormat     `json:"export_format,omitempty" yaml:"export_format" validate:"omitempty,oneof=docx html DOCX HTML"`
}

// UnmarshalJSON accepts both snake_case keys and the web form's camelCase layout
// (personalInfo, description, workResponsibilities, additionalNotes, exportFormat)
func (r *GenerationRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	hasSnake := raw["profile"] != nil || raw["job_description"] != nil || raw["work_responsibilities"] != nil
	hasCamel := raw["personalInfo"] != nil || raw["description"] != nil || raw["workResponsibilities"] != nil

	type requestAlias GenerationRequest
	if hasSnake || !hasCamel {
		var sr requestAlias
		if err := json.Unmarshal(data, &sr); err != nil {
			return err
		}
		*r = GenerationRequest(sr)
		return nil
	}

	var cc struct {
		PersonalInfo         CandidateProfile `json:"personalInfo"`
		Description          string           `json:"description"`
		WorkResponsibilities string           `json:"workResponsibilities"`
		Skills               string           `json:"skills"`
		AdditionalNotes      string           `json:"additionalNotes"`
		ExportFormat         ExportFormat     `json:"exportFormat"`
	}
	if err := json.Unmarshal(data, &cc); err != nil {
		return err
	}
	*r = GenerationRequest{
		Profile:              cc.PersonalInfo,
		JobDescription:       cc.Description,
		WorkResponsibilities: cc.WorkResponsibilities,
		Skills:               cc.Skills,
		AdditionalNotes:      cc.AdditionalNotes,
		ExportFormat:         cc.ExportFormat,
	}
	return nil
}

// SectionKey identifies one of the fixed resume sections
type SectionKey int

const (
	SectionSummary SectionKey = iota
	SectionSkills
	SectionProjects
	SectionEducation
	SectionAdditional
)

// SectionKeys lists every section in canonical order
var SectionKeys = []SectionKey{SectionSummary, SectionSkills, SectionProjects, SectionEducation, SectionAdditional}

// String returns the lower-case key name
func (k SectionKey) String() string {
	switch k {
	case SectionSummary:
		return "summary"
	case SectionSkills:
		return "skills"
	case SectionProjects:
		return "projects"
	case SectionEducation:
		return "education"
	case SectionAdditional:
		return "additional"
	default:
		return "unknown"
	}
}

// ParsedSections holds the text recovered for each section. Every key is always present;
// an absent section is the empty string.
type ParsedSections struct {
	Summary    string `json:"summary"`
	Skills     string `json:"skills"`
	Projects   string `json:"projects"`
	Education  string `json:"education"`
	Additional string `json:"additional"`
}

// Get returns the text stored under key
func (s ParsedSections) Get(key SectionKey) string {
	switch key {
	case SectionSummary:
		return s.Summary
	case SectionSkills:
		return s.Skills
	case SectionProjects:
		return s.Projects
	case SectionEducation:
		return s.Education
	case SectionAdditional:
		return s.Additional
	default:
		return ""
	}
}

// Set stores text under key
func (s *ParsedSections) Set(key SectionKey, text string) {
	switch key {
	case SectionSummary:
		s.Summary = text
	case SectionSkills:
		s.Skills = text
	case SectionProjects:
		s.Projects = text
	case SectionEducation:
		s.Education = text
	case SectionAdditional:
		s.Additional = text
	}
}

// Lines splits a section's text into its non-blank, trimmed lines
func (s ParsedSections) Lines(key SectionKey) []string {
	var lines []string
	for _, line := range strings.Split(s.Get(key), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// SkillEntry is one row of the skills table
type SkillEntry struct {
	Category string `json:"category"`
	Items    string `json:"items"`
}

// RenderedDocument is the transient output of a generation request
type RenderedDocument struct {
	Format      ExportFormat `json:"format"`
	ContentType string       `json:"content_type"`
	Filename    string       `json:"filename"`
	Content     []byte       `json:"-"`
	Fallback    bool         `json:"fallback"`
	Message     string       `json:"message"`
}

// HTML returns the content as text; meaningful for the html format only
func (d *RenderedDocument) HTML() string {
	if d == nil {
		return ""
	}
	return string(d.Content)
}
