package sanitizer

import (
	"strings"
	"unicode"
)

const (
	// MaxParamLength caps identifiers and path segments.
	MaxParamLength = 200
	// MaxSearchLength caps search queries.
	MaxSearchLength = 200
)

// Truncate cuts s to at most n runes. n <= 0 yields "".
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}

	// Fast path: byte length bounds rune count.
	if len(s) <= n {
		return s
	}

	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}

	return s
}

// truncateClean truncates and drops whitespace exposed at the cut, keeping
// the trimmed sanitizers idempotent.
func truncateClean(s string, n int) string {
	cut := Truncate(s, n)
	if len(cut) == len(s) {
		return s
	}
	return strings.TrimRightFunc(cut, unicode.IsSpace)
}

// SanitizeText is the general-purpose cleaner for free text such as dream
// titles, descriptions, posts and comments. It strips tags, trims whitespace
// and, when maxLength is positive, truncates to maxLength runes.
func SanitizeText(s string, maxLength int) string {
	s = strings.TrimSpace(StripHTML(s))
	if maxLength > 0 {
		s = truncateClean(s, maxLength)
	}
	return s
}

// SanitizeParam keeps only ASCII letters, digits, '-' and '_' and caps the
// result at MaxParamLength characters. Use it for values placed in URL path
// segments or used as identifiers.
func SanitizeParam(s string) string {
	return Truncate(unsafeParamRegex.ReplaceAllString(s, ""), MaxParamLength)
}

// SanitizeSearch removes < > " ' ` ; and \ from a search query, trims it and
// caps it at MaxSearchLength characters. Characters are removed before
// trimming, so a query made only of removed characters and spaces becomes "".
func SanitizeSearch(s string) string {
	s = strings.TrimSpace(unsafeSearchRegex.ReplaceAllString(s, ""))
	return truncateClean(s, MaxSearchLength)
}
