package generator

import (
	_ "embed"
	"strings"
	"text/template"

	"resume-composer/internal/fallback"
	"resume-composer/pkg/models"
	"resume-composer/pkg/utils"
)

const notProvided = "Not provided"

//go:embed prompts/system.txt
var systemPromptRaw string

//go:embed prompts/user.tmpl
var userPromptRaw string

// SystemPrompt is the fixed instruction sent with every completion request
var SystemPrompt = strings.TrimSpace(systemPromptRaw)

// userPromptTemplate is parsed once and reused for every request
var userPromptTemplate = template.Must(template.New("user_prompt").Parse(userPromptRaw))

type promptData struct {
	Name             string
	JobTitle         string
	Experience       string
	Domain           string
	Education        string
	Responsibilities string
	Skills           string
	JobDescription   string
	AdditionalNotes  string
	ContactName      string
	ContactEmail     string
}

// BuildUserPrompt embeds every request field, substituting the fallback defaults for
// blank optional ones
func BuildUserPrompt(req models.GenerationRequest) (string, error) {
	p := req.Profile
	data := promptData{
		Name:             utils.GetStringOrDefault(p.Name, fallback.DefaultName),
		JobTitle:         utils.GetStringOrDefault(p.JobTitle, fallback.DefaultJobTitle),
		Experience:       fallback.ExperienceLabel(p.YearsOfExperience),
		Domain:           utils.GetStringOrDefault(p.Domain, fallback.DefaultDomain),
		Education:        utils.GetStringOrDefault(p.Education, fallback.DefaultEducation),
		Responsibilities: utils.GetStringOrDefault(req.WorkResponsibilities, fallback.DefaultResponsibilities),
		Skills:           utils.GetStringOrDefault(req.Skills, fallback.DefaultSkills),
		JobDescription:   strings.TrimSpace(req.JobDescription),
		AdditionalNotes:  utils.GetStringOrDefault(req.AdditionalNotes, "None provided"),
		ContactName:      utils.GetStringOrDefault(p.Name, notProvided),
		ContactEmail:     utils.GetStringOrDefault(p.Email, notProvided),
	}

	var b strings.Builder
	if err := userPromptTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(b.String()), nil
}
