package sanitizer

import "strings"

// MaxURLLength caps accepted URLs.
const MaxURLLength = 2000

// SanitizeURL returns a trimmed URL that is safe to use as a link target, or ""
// when the URL is rejected.
//
// javascript:, data: and vbscript: URLs are always rejected. Of the rest only
// absolute http(s) URLs, protocol-relative URLs ("//cdn.example.com/a") and
// site-relative paths ("/dream/42") are accepted, truncated to MaxURLLength.
// Bare hosts, mailto:, ftp:// and other schemes fall through to "".
func SanitizeURL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	if dangerousSchemeRegex.MatchString(s) {
		return ""
	}

	if absoluteURLRegex.MatchString(s) || isSiteRelative(s) {
		return truncateClean(s, MaxURLLength)
	}

	return ""
}

func isSiteRelative(s string) bool {
	return len(s) > 1 && s[0] == '/' && s[1] != '/'
}
