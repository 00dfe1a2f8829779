package api

import (
	"maps"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dreamplanner/inputguard/pkg/i18n"
	"github.com/dreamplanner/inputguard/pkg/logger"
	"github.com/dreamplanner/inputguard/pkg/validator"
)

type formsResponse struct {
	Forms []string `json:"forms"`
}

func (h *Handler) listForms(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.log, JSON(formsResponse{Forms: h.forms.Names()}))
}

// checkForm sanitizes and validates the named form. Invalid forms are
// answered with 422 and still carry the sanitized data.
func (h *Handler) checkForm(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "form")
	log := h.log.With(logger.Form(name))

	check, err := h.forms.Lookup(name)
	if err != nil {
		render(w, r, log, JSONError(ErrUnknownForm))
		return
	}

	clean, err := check(func(v any) error { return h.bind(r, v) })
	meta := map[string]any{"form": name}

	switch {
	case err == nil:
		log.DebugContext(r.Context(), "form checked", logger.Valid(true))
		meta["valid"] = true
		render(w, r, log, JSON(clean, WithMeta(meta)))

	case validator.IsValidationError(err):
		errs := validator.ExtractValidationErrors(err)
		log.InfoContext(r.Context(), "form rejected", logger.Valid(false), logger.Fields(errs.Fields()))
		meta["valid"] = false
		render(w, r, log, JSONError(&ErrorDetail{
			Code:    ErrUnprocessableEntity.Key,
			Message: h.translate(i18n.GetLocale(r.Context()), "validation.failed", validator.ErrValidationFailed.Error()),
			Details: h.localize(i18n.GetLocale(r.Context()), errs),
		}, WithStatus(http.StatusUnprocessableEntity), WithData(clean), WithMeta(meta)))

	default:
		log.DebugContext(r.Context(), "form binding failed", logger.Error(err))
		render(w, r, log, JSONError(err))
	}
}

// localize renders every validation error in lang, keyed by field. The
// field placeholder is replaced by the localized field label.
func (h *Handler) localize(lang string, errs validator.ValidationErrors) map[string][]string {
	details := make(map[string][]string, len(errs))
	for _, e := range errs {
		msg := e.Message
		if h.translator != nil && e.TranslationKey != "" {
			values := maps.Clone(e.TranslationValues)
			if values == nil {
				values = make(map[string]any, 1)
			}
			values["field"] = h.translator.FieldLabel(lang, e.Field)
			msg = h.translator.Td(lang, e.TranslationKey, e.Message, values)
		}
		details[e.Field] = append(details[e.Field], msg)
	}
	return details
}

func (h *Handler) translate(lang, key, fallback string) string {
	if h.translator == nil {
		return fallback
	}
	return h.translator.Td(lang, key, fallback, nil)
}
