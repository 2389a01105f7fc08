package fallback

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"resume-composer/pkg/models"
	"resume-composer/pkg/utils"
)

// Literal defaults used whenever the candidate left a field blank. The prompt builder
// sends the same values to the model so both paths produce the same shape.
const (
	DefaultName             = "John Doe"
	DefaultEmail            = "john.doe@email.com"
	DefaultJobTitle         = "Software Engineer"
	DefaultExperience       = "3-5 years"
	DefaultDomain           = "Technology"
	DefaultEducation        = "Bachelor's in Computer Science"
	DefaultSkills           = "JavaScript, Python, React, Node.js, AWS, Docker"
	DefaultResponsibilities = "• Led development of scalable applications\n• Implemented modern frameworks\n• Collaborated with cross-functional teams"
)

// Note appended to every synthesized resume
const Note = "Note: This resume was generated using fallback content due to API quota limitations. For a more personalized resume, please try again later or upgrade your API plan."

// ExperienceLabel renders a years-of-experience bucket for prose, e.g. "4-5" -> "4-5 years"
func ExperienceLabel(bucket string) string {
	if strings.TrimSpace(bucket) == "" {
		return DefaultExperience
	}
	return strings.TrimSpace(bucket) + " years"
}

// Synthesizer produces a deterministic resume when the model is unavailable
type Synthesizer struct {
	// Now supplies the calendar year for the job code
	Now func() time.Time
}

// NewSynthesizer creates a synthesizer using the wall clock
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{Now: time.Now}
}

func (s *Synthesizer) year() int {
	if s == nil || s.Now == nil {
		return time.Now().Year()
	}
	return s.Now().Year()
}

// Synthesize builds resume text in the heading layout the section parser understands.
// The output depends only on the request and the current calendar year.
func (s *Synthesizer) Synthesize(req models.GenerationRequest) string {
	p := req.Profile

	name := utils.GetStringOrDefault(p.Name, DefaultName)
	email := utils.GetStringOrDefault(p.Email, DefaultEmail)
	jobTitle := utils.GetStringOrDefault(p.JobTitle, DefaultJobTitle)
	experience := ExperienceLabel(p.YearsOfExperience)
	domain := utils.GetStringOrDefault(p.Domain, DefaultDomain)
	education := utils.GetStringOrDefault(p.Education, DefaultEducation)
	responsibilities := utils.GetStringOrDefault(req.WorkResponsibilities, DefaultResponsibilities)
	skills := utils.GetStringOrDefault(req.Skills, DefaultSkills)

	summary := fmt.Sprintf(
		"Experienced %s with %s of expertise in %s, specializing in modern technologies and cloud platforms. "+
			"Proven track record of delivering scalable solutions and leading cross-functional teams to achieve business objectives.",
		strings.ToLower(jobTitle), experience, strings.ToLower(domain),
	)
	// Notes share the summary line, so notes naming a section heading (e.g. "SKILLS")
	// turn that line into a heading and the parser drops the summary.
	if notes := strings.TrimSpace(req.AdditionalNotes); notes != "" {
		summary += " Additional focus: " + notes
	}

	var b strings.Builder
	b.WriteString(strings.ToUpper(name) + "\n")
	b.WriteString(email + "\n\n")
	b.WriteString("PROFESSIONAL SUMMARY\n" + summary + "\n\n")
	b.WriteString("KEY RESPONSIBILITIES / EXPERIENCE\n" + responsibilities + "\n\n")
	b.WriteString("SKILLS & QUALIFICATIONS\n" + skills + "\n\n")
	b.WriteString("EDUCATION\n" + education + "\n\n")
	b.WriteString("Job Code: " + JobCode(jobTitle, name, s.year()) + "\n\n")
	b.WriteString("---\n" + Note)

	return b.String()
}

// JobCode derives "{roleInitials}-{nameInitials}-{year}", e.g.
// ("Machine Learning Engineer", "Alice Y Jones", 2025) -> "MLE-AYJ-2025".
func JobCode(jobTitle, name string, year int) string {
	return fmt.Sprintf("%s-%s-%d", initials(jobTitle), initials(name), year)
}

func initials(s string) string {
	var b strings.Builder
	for _, word := range strings.Fields(s) {
		for _, r := range word {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}
