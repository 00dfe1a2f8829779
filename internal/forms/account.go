package forms

import (
	"slices"

	"github.com/dreamplanner/inputguard/pkg/sanitizer"
	"github.com/dreamplanner/inputguard/pkg/validator"
)

const (
	MaxDisplayNameLength = 50
	MaxEmailLength       = 254
)

// Registration is the sign-up form.
type Registration struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	AcceptTerms bool   `json:"accept_terms"`
}

// Sanitize leaves the password untouched; it is hashed, never rendered.
func (f Registration) Sanitize() Registration {
	f.DisplayName = sanitizer.SanitizeText(f.DisplayName, MaxDisplayNameLength)
	f.Email = sanitizer.SanitizeText(f.Email, MaxEmailLength)
	return f
}

func (f Registration) Validate() error {
	return validator.Apply(slices.Concat(
		[]validator.Rule{
			validator.Required("display_name", f.DisplayName),
			validator.MaxLen("display_name", f.DisplayName, MaxDisplayNameLength),
			validator.Required("email", f.Email),
		},
		present(f.Email, validator.ValidEmail("email", f.Email)),
		[]validator.Rule{validator.Required("password", f.Password)},
		present(f.Password, validator.StrongPassword("password", f.Password)),
		[]validator.Rule{validator.Accepted("accept_terms", f.AcceptTerms)},
	)...)
}

// Login is the sign-in form. Password strength is not checked here so that
// accounts created under older rules can still sign in.
type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (f Login) Sanitize() Login {
	f.Email = sanitizer.SanitizeText(f.Email, MaxEmailLength)
	return f
}

func (f Login) Validate() error {
	return validator.Apply(slices.Concat(
		[]validator.Rule{validator.Required("email", f.Email)},
		present(f.Email, validator.ValidEmail("email", f.Email)),
		[]validator.Rule{validator.Required("password", f.Password)},
	)...)
}
