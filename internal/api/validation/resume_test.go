package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-composer/pkg/models"
)

func validRequest() models.GenerationRequest {
	return models.GenerationRequest{
		Profile: models.CandidateProfile{
			Name:              "Alice Jones",
			Email:             "alice@example.com",
			JobTitle:          "Data Engineer",
			YearsOfExperience: "4-5",
		},
		JobDescription:       "Design and operate batch and streaming pipelines for the analytics platform.",
		WorkResponsibilities: "Maintained Airflow DAGs, migrated warehouse tables and tuned Spark jobs.",
	}
}

func TestGenerationRequestValid(t *testing.T) {
	assert.NoError(t, New().Struct(validRequest()))
}

func TestGenerationRequestRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.GenerationRequest)
		field  string
	}{
		{"short name", func(r *models.GenerationRequest) { r.Profile.Name = "A" }, "Name"},
		{"bad email", func(r *models.GenerationRequest) { r.Profile.Email = "not-an-email" }, "Email"},
		{"short job title", func(r *models.GenerationRequest) { r.Profile.JobTitle = "X" }, "JobTitle"},
		{"unknown bucket", func(r *models.GenerationRequest) { r.Profile.YearsOfExperience = "3-5" }, "YearsOfExperience"},
		{"short description", func(r *models.GenerationRequest) { r.JobDescription = "Too short" }, "JobDescription"},
		{"short responsibilities", func(r *models.GenerationRequest) { r.WorkResponsibilities = "Did stuff" }, "WorkResponsibilities"},
		{"bad format", func(r *models.GenerationRequest) { r.ExportFormat = "pdf" }, "ExportFormat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := New().Struct(req)
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.field, verrs[0].Field())
		})
	}
}

func TestOptionalFieldsMayBeBlank(t *testing.T) {
	req := validRequest()
	req.Profile.Email = ""
	req.Profile.YearsOfExperience = ""
	req.ExportFormat = "HTML"

	assert.NoError(t, New().Struct(req))
}

func TestEveryBucketAccepted(t *testing.T) {
	for _, bucket := range ExperienceBuckets {
		req := validRequest()
		req.Profile.YearsOfExperience = bucket
		assert.NoError(t, New().Struct(req), bucket)
	}
}
