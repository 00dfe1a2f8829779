package i18n

import (
	"net/http"
	"slices"
)

// QueryParam overrides Accept-Language when it names a supported language.
const QueryParam = "lang"

// Middleware negotiates the request language and stores it with SetLocale.
func Middleware(supported []string, defaultLang string) func(http.Handler) http.Handler {
	if defaultLang == "" {
		defaultLang = DefaultLanguage
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := r.URL.Query().Get(QueryParam)
			if !slices.Contains(supported, lang) {
				lang = Negotiate(r.Header.Get("Accept-Language"), supported, defaultLang)
			}
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
