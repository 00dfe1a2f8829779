package sanitizer

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	htmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#039;",
	)

	// UGC policy keeps formatting, links and images and drops scripts,
	// event handlers and unsafe URL schemes. Safe for concurrent use.
	richTextPolicy = bluemonday.UGCPolicy()
)

// StripHTML removes everything that looks like an opening or closing tag.
// Text between tags and surrounding whitespace are left untouched.
//
// This is a best-effort stripper: entity-encoded tags survive and a '>' inside
// an attribute value ends the match early.
func StripHTML(s string) string {
	return htmlTagRegex.ReplaceAllString(s, "")
}

// EscapeHTML encodes &, <, >, " and ' as named entities so the text can be
// shown verbatim inside markup. The ampersand is encoded first, so entities
// introduced by the other substitutions are not double-escaped.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// SanitizeRichText filters untrusted HTML through an allowlist policy and
// returns markup that is safe to render.
func SanitizeRichText(s string) string {
	return strings.TrimSpace(richTextPolicy.Sanitize(s))
}
