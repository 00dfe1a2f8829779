package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// GetIP returns the first valid address found in headers, in the given
// order, and falls back to RemoteAddr. Comma-separated headers such as
// X-Forwarded-For yield their left-most valid entry. The result is "" when
// nothing parses.
func GetIP(r *http.Request, headers ...string) string {
	for _, header := range headers {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}
		for part := range strings.SplitSeq(value, ",") {
			if ip := parseIP(part); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP normalizes s, unmapping IPv4-in-IPv6 addresses and dropping zones.
func parseIP(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
