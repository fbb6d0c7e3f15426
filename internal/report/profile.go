package report

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/soulful-academy/chakra-report/internal/classify"
	"github.com/soulful-academy/chakra-report/internal/questionnaire"
	"github.com/soulful-academy/chakra-report/internal/scoring"
)

// Gender is the respondent's self-identified gender.
type Gender string

// Gender values accepted by the intake form.
const (
	GenderFemale Gender = "Female"
	GenderMale   Gender = "Male"
	GenderOther  Gender = "Other"
)

// MIMEType is the media type of the finished document.
const MIMEType = "application/pdf"

// fallbackName labels the identity block when the respondent left the name
// empty.
const fallbackName = "Soulful Being"

// Profile is the complete input bundle for one report-rendering pass. It is
// created once per generate action and lives only for that cycle.
type Profile struct {
	Name           string `validate:"max=120"`
	Gender         Gender `validate:"required,oneof=Female Male Other"`
	Email          string `validate:"omitempty,email"`
	GeneratedAt    time.Time
	Scores         scoring.ScoreBoard
	Classification classify.Classification
}

var validate = validator.New()

// BuildProfile folds a complete answer set into scores and classification and
// bundles them with the identity fields. The answers map may omit indexes;
// the accumulator applies the Sometimes default.
func BuildProfile(name string, gender Gender, email string, answers map[int]questionnaire.Answer, now time.Time) Profile {
	board := scoring.Accumulate(questionnaire.Bank(), answers)
	return Profile{
		Name:           name,
		Gender:         gender,
		Email:          email,
		GeneratedAt:    now,
		Scores:         board,
		Classification: classify.Classify(board),
	}
}

// Validate checks the profile's required fields before rendering.
func (p *Profile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return &ProfileError{Message: "invalid profile", Cause: err}
	}
	if p.GeneratedAt.IsZero() {
		return &ProfileError{Message: "missing generation timestamp"}
	}
	return nil
}

// DisplayName returns the name shown in the identity block, falling back to
// the generic label when the name is empty.
func (p *Profile) DisplayName() string {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return fallbackName
	}
	return name
}

// Filename suggests the download filename for the finished document.
func (p *Profile) Filename() string {
	name := strings.ReplaceAll(Sanitize(p.DisplayName()), " ", "_")
	return name + "_chakra_report.pdf"
}
