package forms

import (
	"github.com/dreamplanner/inputguard/pkg/sanitizer"
	"github.com/dreamplanner/inputguard/pkg/validator"
)

const (
	MinPageSize     = 1
	MaxPageSize     = 50
	DefaultPageSize = 20
)

// Search is a search box plus the cursor state of an infinite-scroll list.
type Search struct {
	Query  string          `json:"query"`
	Cursor string          `json:"cursor"`
	Limit  sanitizer.Input `json:"limit"`
}

// Sanitize always yields a limit, DefaultPageSize when none was sent.
func (f Search) Sanitize() Search {
	f.Query = sanitizer.SanitizeSearch(f.Query)
	f.Cursor = sanitizer.SanitizeParam(f.Cursor)
	if f.Limit.IsMissing() {
		f.Limit = sanitizer.InputOf(float64(DefaultPageSize))
	} else {
		f.Limit = count(f.Limit, MinPageSize, MaxPageSize)
	}
	return f
}

func (f Search) Validate() error {
	return validator.Apply(numberRules("limit", f.Limit, MinPageSize, MaxPageSize)...)
}

// PageSize returns the limit as an int, DefaultPageSize when it is missing
// or not a number.
func (f Search) PageSize() int {
	n, ok := sanitizer.ParseNumber(f.Limit)
	if !ok {
		return DefaultPageSize
	}
	return int(sanitizer.Clamp(n, MinPageSize, MaxPageSize))
}
