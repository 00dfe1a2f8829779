// Package i18n localizes validation messages.
//
// Translations are YAML documents keyed by language at the root, with nested
// maps below addressed by dot-separated keys:
//
//	en:
//	  validation:
//	    required: "%{field} is required"
//
// Placeholders use the %{name} form and are filled from a values map. The
// catalog shipped with the package is embedded and covers English and
// Spanish; NewTranslator accepts any fs.FS for other catalogs.
//
// The request language is negotiated from the Accept-Language header with
// golang.org/x/text/language and stored in the request context by
// Middleware:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.Embedded())
//	router.Use(i18n.Middleware(tr.SupportedLanguages(), "en"))
//	msg := tr.Tc(r.Context(), "validation.required", map[string]any{"field": "email"})
package i18n
