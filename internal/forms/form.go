package forms

import (
	"errors"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/dreamplanner/inputguard/pkg/sanitizer"

	"github.com/dreamplanner/inputguard/pkg/validator"
)

var ErrUnknownForm = errors.New("unknown form")

// Form is implemented by every form type.
type Form[T any] interface {
	Sanitize() T
	Validate() error
}

// DecodeFunc fills v from a request body or any other source.
type DecodeFunc func(v any) error

// Check decodes a T, sanitizes it and validates the sanitized copy. On a
// validation failure the sanitized form is still returned alongside the
// validator.ValidationErrors.
func Check[T Form[T]](decode DecodeFunc) (T, error) {
	var raw T
	if err := decode(&raw); err != nil {
		return raw, err
	}

	clean := raw.Sanitize()
	return clean, clean.Validate()
}

// CheckFunc is Check with the form type erased.
type CheckFunc func(decode DecodeFunc) (any, error)

func checker[T Form[T]]() CheckFunc {
	return func(decode DecodeFunc) (any, error) {
		return Check[T](decode)
	}
}

// Registry maps form names to checkers. It is not safe to Register
// concurrently with Lookup; register everything before serving.
type Registry struct {
	checks map[string]CheckFunc
}

// NewRegistry returns a registry holding every DreamPlanner form.
func NewRegistry() *Registry {
	r := &Registry{checks: make(map[string]CheckFunc)}
	r.Register("registration", checker[Registration]())
	r.Register("login", checker[Login]())
	r.Register("dream", checker[Dream]())
	r.Register("calibration_answer", checker[CalibrationAnswer]())
	r.Register("circle", checker[Circle]())
	r.Register("post", checker[Post]())
	r.Register("comment", checker[Comment]())
	r.Register("search", checker[Search]())
	return r
}

// Register adds or replaces a checker.
func (r *Registry) Register(name string, fn CheckFunc) {
	r.checks[name] = fn
}

func (r *Registry) Lookup(name string) (CheckFunc, error) {
	fn, ok := r.checks[name]
	if !ok {
		return nil, ErrUnknownForm
	}
	return fn, nil
}

// Names returns the registered form names, sorted.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.checks))
}

// present keeps rules that only make sense for a non-blank value.
func present(value string, rules ...validator.Rule) []validator.Rule {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return rules
}

// count sanitizes an optional whole-number field into [min, max]. Missing
// input stays missing so the server can apply its own default.
func count(in sanitizer.Input, min, max float64) sanitizer.Input {
	if in.IsMissing() {
		return in
	}
	return sanitizer.InputOf(math.Floor(sanitizer.SanitizeNumber(in, sanitizer.Range(min, max))))
}

// numberRules checks an optional numeric field on unsanitized input too.
func numberRules(field string, in sanitizer.Input, min, max float64) []validator.Rule {
	if in.IsMissing() {
		return nil
	}
	n, ok := sanitizer.ParseNumber(in)
	if !ok {
		return []validator.Rule{validator.Number(field, in)}
	}
	return []validator.Rule{validator.InRange(field, n, min, max)}
}
