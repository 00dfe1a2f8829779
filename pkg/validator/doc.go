// Package validator classifies form input as well-formed or not without
// transforming it.
//
// Two layers are provided:
//
//   - Predicates used directly by form handlers on every keystroke:
//     IsValidEmail, PasswordStrength, RegistrationStrength and
//     ValidateRequired. They never panic and report problems as values.
//
//   - Rule constructors (Required, MaxLen, ValidEmail, StrongPassword,
//     InRange, Accepted) that are evaluated with Apply. Failures are collected
//     into ValidationErrors, which implements error and carries translation
//     keys for localized messages.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("title", dream.Title),
//	    validator.MaxLen("title", dream.Title, 120),
//	    validator.InRange("priority", dream.Priority, 1, 5),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Fields(), verrs.Get("title"), ...
//	}
//
// # Password strength
//
// PasswordStrength scores a password 0-5 against five rules and returns the
// violated rules as messages. RegistrationStrength is a separate 3-level
// Weak/Medium/Strong heuristic shown on the sign-up screen. The two scales use
// different rules and thresholds and are kept apart on purpose.
//
// # Required fields
//
// Fields preserves the key order of a decoded JSON object so ValidateRequired
// reports missing fields in the order the form declared them.
package validator
