package entities

import (
	"strings"

	apperrors "github.com/clinicware/clinic-assist/pkg/errors"
)

// Gender is the patient gender selection on the intake form
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// PatientIntake holds the four intake form fields. It is transient: held
// only while the form is being submitted and replaced on every edit.
type PatientIntake struct {
	Name     string `json:"name"`
	Age      string `json:"age"`
	Gender   Gender `json:"gender"`
	Symptoms string `json:"symptoms"`
}

// Validate checks that all four intake fields are filled in and that the
// gender selection is one of the known values.
func (p *PatientIntake) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return apperrors.NewValidationError("patient name is required")
	}
	if strings.TrimSpace(p.Age) == "" {
		return apperrors.NewValidationError("patient age is required")
	}
	if strings.TrimSpace(string(p.Gender)) == "" {
		return apperrors.NewValidationError("patient gender is required")
	}
	switch p.Gender {
	case GenderMale, GenderFemale, GenderOther:
	default:
		return apperrors.NewValidationError("gender must be male, female or other")
	}
	if len(p.SymptomList()) == 0 {
		return apperrors.NewValidationError("at least one symptom is required")
	}
	return nil
}

// SymptomList derives the symptom tokens from the free-text field: split on
// commas, trim whitespace, drop empty tokens, keep order.
func (p *PatientIntake) SymptomList() []string {
	return ParseSymptoms(p.Symptoms)
}

// ParseSymptoms splits a comma-separated symptom string into clean tokens.
func ParseSymptoms(raw string) []string {
	parts := strings.Split(raw, ",")
	symptoms := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}
		symptoms = append(symptoms, token)
	}
	return symptoms
}
