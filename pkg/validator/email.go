package validator

import (
	"regexp"
	"strings"
)

// local@domain.tld where no part contains whitespace or '@'.
var emailRegex = regexp.MustCompile(`^[^\s\v\p{Z}@]+@[^\s\v\p{Z}@]+\.[^\s\v\p{Z}@]+$`)

// IsValidEmail performs a minimal structural check: after trimming, the value
// must look like local@domain.tld. It is not an RFC 5322 parser; subdomains,
// plus-addressing and multiple dots are all accepted.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}
