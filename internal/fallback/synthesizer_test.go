package fallback

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-composer/internal/sections"
	"resume-composer/pkg/models"
)

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 1, 12, 0, 0, 0, time.UTC)
	}
}

func TestJobCode(t *testing.T) {
	tests := []struct {
		title, name string
		year        int
		want        string
	}{
		{"Machine Learning Engineer", "Alice Y Jones", 2025, "MLE-AYJ-2025"},
		{"software engineer", "bob", 2024, "SE-B-2024"},
		{"  Data   Scientist ", "Émile  Zola", 2030, "DS-ÉZ-2030"},
		{"", "", 2025, "--2025"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, JobCode(tt.title, tt.name, tt.year))
	}
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	s := &Synthesizer{Now: fixedClock(2025)}
	req := models.GenerationRequest{
		Profile: models.CandidateProfile{
			Name:     "Alice Y Jones",
			JobTitle: "Machine Learning Engineer",
		},
		JobDescription: "Build ranking models",
	}

	first := s.Synthesize(req)
	second := s.Synthesize(req)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "Job Code: MLE-AYJ-2025")
}

func TestSynthesizeDefaults(t *testing.T) {
	s := &Synthesizer{Now: fixedClock(2025)}
	text := s.Synthesize(models.GenerationRequest{})

	assert.True(t, strings.HasPrefix(text, "JOHN DOE\njohn.doe@email.com\n"))
	assert.Contains(t, text, "Experienced software engineer with 3-5 years of expertise in technology,")
	assert.Contains(t, text, DefaultResponsibilities)
	assert.Contains(t, text, DefaultSkills)
	assert.Contains(t, text, DefaultEducation)
	assert.Contains(t, text, "Job Code: SE-JD-2025")
	assert.True(t, strings.HasSuffix(text, Note))
	assert.NotContains(t, text, "Additional focus")
}

func TestSynthesizeUsesProvidedFields(t *testing.T) {
	s := &Synthesizer{Now: fixedClock(2026)}
	text := s.Synthesize(models.GenerationRequest{
		Profile: models.CandidateProfile{
			Name:              "Grace Hopper",
			Email:             "grace@navy.mil",
			JobTitle:          "Compiler Engineer",
			YearsOfExperience: "13+",
			Domain:            "Defense",
			Education:         "PhD Mathematics, Yale",
		},
		WorkResponsibilities: "• Designed COBOL",
		Skills:               "Languages: COBOL, FLOW-MATIC",
		AdditionalNotes:      "Open to travel",
	})

	assert.Contains(t, text, "GRACE HOPPER\ngrace@navy.mil")
	assert.Contains(t, text, "Experienced compiler engineer with 13+ years of expertise in defense,")
	assert.Contains(t, text, "Additional focus: Open to travel")
	assert.Contains(t, text, "Job Code: CE-GH-2026")
}

func TestSynthesizeRoundTripsThroughParser(t *testing.T) {
	s := &Synthesizer{Now: fixedClock(2025)}
	parsed := sections.Parse(s.Synthesize(models.GenerationRequest{
		Profile: models.CandidateProfile{Name: "Alice Y Jones", JobTitle: "Machine Learning Engineer"},
		Skills:  "Languages: Python\nML | PyTorch",
	}))

	require.NotEmpty(t, parsed.Summary)
	assert.Equal(t, DefaultResponsibilities, parsed.Projects)
	assert.Len(t, sections.TokenizeSkills(parsed.Skills), 2)
	assert.Contains(t, parsed.Education, "Job Code: MLE-AYJ-2025")
	assert.Empty(t, parsed.Additional)
}

func TestSynthesizeNotesNamingHeadingReplaceSummary(t *testing.T) {
	s := &Synthesizer{Now: fixedClock(2025)}
	text := s.Synthesize(models.GenerationRequest{
		Profile:         models.CandidateProfile{Name: "Alice Y Jones", JobTitle: "Machine Learning Engineer"},
		AdditionalNotes: "Mentoring on SKILLS growth",
	})
	require.Contains(t, text, "Additional focus: Mentoring on SKILLS growth")

	parsed := sections.Parse(text)

	assert.Empty(t, parsed.Summary)
	assert.Equal(t, DefaultSkills, parsed.Skills)
	assert.Equal(t, DefaultResponsibilities, parsed.Projects)
}

func TestExperienceLabel(t *testing.T) {
	assert.Equal(t, "3-5 years", ExperienceLabel(""))
	assert.Equal(t, "4-5 years", ExperienceLabel("4-5"))
}
