package ratelimiter

import (
	"net/http"
	"strconv"

	"github.com/dreamplanner/inputguard/pkg/clientip"
)

// KeyFunc extracts the rate limit key from a request.
type KeyFunc func(r *http.Request) string

// ByClientIP keys on the address stored by clientip.Middleware, falling back
// to the connection address.
func ByClientIP(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.GetIP(r)
}

// Middleware limits requests per key and sets the X-RateLimit-* headers.
// Denied requests are passed to denied, which should write a 429. Requests
// whose key is empty or whose check fails are let through.
func Middleware(b *Bucket, key KeyFunc, denied http.Handler) func(http.Handler) http.Handler {
	if denied == nil {
		denied = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		})
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := b.Allow(r.Context(), key(r))
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed {
				seconds := int(res.RetryAfter(b.now()).Seconds())
				w.Header().Set("Retry-After", strconv.Itoa(max(1, seconds)))
				denied.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
