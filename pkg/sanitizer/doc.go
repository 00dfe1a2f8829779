// Package sanitizer cleans user-supplied form values before they are stored,
// sent to the DreamPlanner API or rendered back to the user.
//
// The helpers fall into a few groups:
//
//   - Markup – StripHTML removes tags, EscapeHTML encodes the five HTML
//     metacharacters and SanitizeRichText runs untrusted HTML through a vetted
//     allowlist policy.
//
//   - Text – SanitizeText (titles, descriptions, post content, comments),
//     SanitizeParam (path segments and identifiers) and SanitizeSearch
//     (free-text search queries).
//
//   - URLs – SanitizeURL rejects script-capable schemes and accepts only
//     absolute http(s), protocol-relative and site-relative URLs.
//
//   - Numbers – SanitizeNumber parses loosely typed input and clamps it to an
//     optional range.
//
// # Loosely typed input
//
// Values decoded from JSON arrive as any. Input is a closed sum over
// {missing, text, other} built with InputOf, so callers cannot forget the
// non-string case:
//
//	in := sanitizer.InputOf(payload["title"])
//	title := in.Sanitize(func(s string) string {
//	    return sanitizer.SanitizeText(s, 120)
//	})
//	// title == "" when the value was null, a number, an object, ...
//
// # Pipelines
//
// Apply and Compose chain transformations of the same type:
//
//	clean := sanitizer.Compose(sanitizer.StripHTML, strings.TrimSpace)
//	clean("  <b>Hi</b> ") // "Hi"
//
// # Error handling
//
// None of the helpers returns an error or panics. Invalid input always yields
// a safe default: an empty string, zero or the lower bound of a range. These
// functions run on every keystroke of a form and must not destabilise the
// caller.
//
// # Idempotence
//
// Every sanitizer satisfies f(f(x)) == f(x). EscapeHTML is an encoder rather
// than a sanitizer and intentionally encodes its own output again.
//
// # Known limitations
//
// StripHTML is a regular-expression tag stripper, not an HTML parser. It does
// not understand entity-encoded tags or stray '>' characters inside attribute
// values. Use SanitizeRichText when the result is rendered as HTML.
package sanitizer
