package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// HTML stripping
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

	// URL path segments and identifiers
	unsafeParamRegex = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

	// Search queries
	unsafeSearchRegex = regexp.MustCompile("[<>\"'`;\\\\]")

	// URL schemes that can execute script
	dangerousSchemeRegex = regexp.MustCompile(`(?i)^(javascript|data|vbscript):`)

	// Absolute http(s) and protocol-relative URLs
	absoluteURLRegex = regexp.MustCompile(`(?i)^(https?:)?//`)
)
