package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dreamplanner/inputguard/pkg/sanitizer"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MaxLen counts characters, not bytes.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// ValidEmail wraps IsValidEmail. Blank values fail too; combine with Required
// for a clearer message.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidEmail(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// StrongPassword requires a PasswordStrength score of MaxStrengthScore.
func StrongPassword(field, value string) Rule {
	result := PasswordStrength(value)
	return Rule{
		Check: result.Passed,
		Error: ValidationError{
			Field:          field,
			Message:        strings.Join(result.Errors, "; "),
			TranslationKey: "validation.password_strength",
			TranslationValues: map[string]any{
				"field": field,
				"score": result.Score,
				"label": result.Label,
			},
		},
	}
}

func InRange[T Numeric](field string, value, min, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %v and %v", min, max),
			TranslationKey: "validation.range",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

// Accepted requires a checkbox-style flag to be set.
func Accepted(field string, value bool) Rule {
	return Rule{
		Check: func() bool {
			return value
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be accepted",
			TranslationKey: "validation.accepted",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Number requires in to parse as a number. Missing input passes; pair it with
// a presence check when the field is mandatory.
func Number(field string, in sanitizer.Input) Rule {
	return Rule{
		Check: func() bool {
			if in.IsMissing() {
				return true
			}
			_, ok := sanitizer.ParseNumber(in)
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a number",
			TranslationKey: "validation.number",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
