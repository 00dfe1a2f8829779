package forms

import (
	"slices"

	"github.com/dreamplanner/inputguard/pkg/sanitizer"
	"github.com/dreamplanner/inputguard/pkg/validator"
)

const (
	MaxDreamTitleLength       = 120
	MaxDreamDescriptionLength = 2000
	MaxAnswerLength           = 1000
	MinPriority               = 1
	MaxPriority               = 5
)

// Dream creates or edits a dream.
type Dream struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	TargetDate  string          `json:"target_date"`
	ImageURL    string          `json:"image_url"`
	Priority    sanitizer.Input `json:"priority"`
}

// Sanitize drops an unsafe image URL rather than reporting it.
func (f Dream) Sanitize() Dream {
	f.Title = sanitizer.SanitizeText(f.Title, MaxDreamTitleLength)
	f.Description = sanitizer.SanitizeText(f.Description, MaxDreamDescriptionLength)
	f.Category = sanitizer.SanitizeParam(f.Category)
	f.TargetDate = sanitizer.SanitizeParam(f.TargetDate)
	f.ImageURL = sanitizer.SanitizeURL(f.ImageURL)
	f.Priority = count(f.Priority, MinPriority, MaxPriority)
	return f
}

func (f Dream) Validate() error {
	return validator.Apply(slices.Concat(
		[]validator.Rule{
			validator.Required("title", f.Title),
			validator.MaxLen("title", f.Title, MaxDreamTitleLength),
			validator.MaxLen("description", f.Description, MaxDreamDescriptionLength),
			validator.Required("category", f.Category),
		},
		numberRules("priority", f.Priority, MinPriority, MaxPriority),
	)...)
}

// CalibrationAnswer is one answer of the AI calibration questionnaire.
type CalibrationAnswer struct {
	DreamID    string `json:"dream_id"`
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

func (f CalibrationAnswer) Sanitize() CalibrationAnswer {
	f.DreamID = sanitizer.SanitizeParam(f.DreamID)
	f.QuestionID = sanitizer.SanitizeParam(f.QuestionID)
	f.Answer = sanitizer.SanitizeText(f.Answer, MaxAnswerLength)
	return f
}

func (f CalibrationAnswer) Validate() error {
	return validator.Apply(
		validator.Required("dream_id", f.DreamID),
		validator.Required("question_id", f.QuestionID),
		validator.Required("answer", f.Answer),
		validator.MaxLen("answer", f.Answer, MaxAnswerLength),
	)
}
