package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dreamplanner/inputguard/pkg/sanitizer"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if !isValidRequestID(requestID) {
			requestID = uuid.New().String()
		}
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
	})
}

// A valid id is already in SanitizeParam form.
func isValidRequestID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	return sanitizer.SanitizeParam(id) == id
}
