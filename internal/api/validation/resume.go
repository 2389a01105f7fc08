package validation

import (
	"github.com/go-playground/validator/v10"
)

// ExperienceBuckets are the years-of-experience choices offered by the form
var ExperienceBuckets = []string{"0-1", "2-3", "4-5", "6-8", "9-12", "13+"}

// ValidateExperienceBucket validates that the value is one of ExperienceBuckets
func ValidateExperienceBucket(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, bucket := range ExperienceBuckets {
		if value == bucket {
			return true
		}
	}
	return false
}

// RegisterResumeValidators registers all resume-related custom validators
func RegisterResumeValidators(v *validator.Validate) {
	_ = v.RegisterValidation("experience_bucket", ValidateExperienceBucket)
}

// New returns a validator with the resume validators registered
func New() *validator.Validate {
	v := validator.New()
	RegisterResumeValidators(v)
	return v
}
