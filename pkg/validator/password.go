package validator

import (
	"regexp"
	"unicode/utf8"
)

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[^A-Za-z0-9]`)
)

const (
	// MinPasswordLength is the shortest password either strength scale accepts.
	MinPasswordLength = 8
	// MaxStrengthScore is the PasswordStrength score of a password that passes every rule.
	MaxStrengthScore = 5

	// MsgPasswordRequired is reported for missing or non-text passwords.
	MsgPasswordRequired = "Password is required"
)

var strengthLabels = [MaxStrengthScore + 1]string{
	"Too short",
	"Weak",
	"Fair",
	"Good",
	"Strong",
	"Very strong",
}

type passwordRule struct {
	message string
	pass    func(string) bool
}

// Evaluated and reported in this order.
var passwordRules = []passwordRule{
	{
		message: "Password must be at least 8 characters",
		pass: func(s string) bool {
			return utf8.RuneCountInString(s) >= MinPasswordLength
		},
	},
	{message: "Password must contain an uppercase letter", pass: uppercaseRegex.MatchString},
	{message: "Password must contain a lowercase letter", pass: lowercaseRegex.MatchString},
	{message: "Password must contain a number", pass: digitRegex.MatchString},
	{message: "Password must contain a special character", pass: specialCharRegex.MatchString},
}

// StrengthResult is the outcome of PasswordStrength.
type StrengthResult struct {
	Score  int      `json:"score"`
	Label  string   `json:"label"`
	Errors []string `json:"errors"`
}

// Passed reports whether every rule was satisfied.
func (r StrengthResult) Passed() bool {
	return r.Score == MaxStrengthScore
}

// PasswordStrength scores s against five rules: at least 8 characters, an
// uppercase ASCII letter, a lowercase ASCII letter, an ASCII digit and a
// character that is none of those. The score is 5 minus the number of
// violated rules, the label is indexed by the score and Errors lists the
// violated rules in rule order.
func PasswordStrength(s string) StrengthResult {
	errs := make([]string, 0, len(passwordRules))
	for _, rule := range passwordRules {
		if !rule.pass(s) {
			errs = append(errs, rule.message)
		}
	}

	score := MaxStrengthScore - len(errs)
	return StrengthResult{
		Score:  score,
		Label:  strengthLabels[score],
		Errors: errs,
	}
}

// MissingPasswordStrength is the result for a missing or non-text password.
func MissingPasswordStrength() StrengthResult {
	return StrengthResult{
		Score:  0,
		Label:  strengthLabels[0],
		Errors: []string{MsgPasswordRequired},
	}
}

// StrengthLevel is the 3-level scale shown on the registration screen.
type StrengthLevel string

const (
	StrengthWeak   StrengthLevel = "Weak"
	StrengthMedium StrengthLevel = "Medium"
	StrengthStrong StrengthLevel = "Strong"
)

// RegistrationScore counts the registration heuristics s satisfies: at least
// 8 characters, an uppercase letter, a digit, a special character and at
// least 12 characters. Lowercase letters are not counted.
func RegistrationScore(s string) int {
	n := utf8.RuneCountInString(s)

	score := 0
	if n >= MinPasswordLength {
		score++
	}
	if uppercaseRegex.MatchString(s) {
		score++
	}
	if digitRegex.MatchString(s) {
		score++
	}
	if specialCharRegex.MatchString(s) {
		score++
	}
	if n >= 12 {
		score++
	}
	return score
}

// RegistrationStrength maps RegistrationScore onto Weak (0-2), Medium (3) and
// Strong (4-5).
func RegistrationStrength(s string) StrengthLevel {
	switch score := RegistrationScore(s); {
	case score <= 2:
		return StrengthWeak
	case score == 3:
		return StrengthMedium
	default:
		return StrengthStrong
	}
}
