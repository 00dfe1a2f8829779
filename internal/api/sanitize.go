package api

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"

	"github.com/dreamplanner/inputguard/pkg/logger"
	"github.com/dreamplanner/inputguard/pkg/sanitizer"
)

type sanitizeRequest struct {
	Op        string          `json:"op"`
	Value     sanitizer.Input `json:"value"`
	MaxLength int             `json:"max_length"`
	Min       *float64        `json:"min"`
	Max       *float64        `json:"max"`
}

type sanitizeResponse struct {
	Value any `json:"value"`
}

type sanitizeOp func(req sanitizeRequest) any

var sanitizeOps = map[string]sanitizeOp{
	"strip_html":  textOp(sanitizer.StripHTML),
	"escape_html": textOp(sanitizer.EscapeHTML),
	"rich_text":   textOp(sanitizer.SanitizeRichText),
	"param":       textOp(sanitizer.SanitizeParam),
	"search":      textOp(sanitizer.SanitizeSearch),
	"url":         textOp(sanitizer.SanitizeURL),
	"text": func(req sanitizeRequest) any {
		return req.Value.Sanitize(func(s string) string {
			return sanitizer.SanitizeText(s, req.MaxLength)
		})
	},
	"number": numberOp,
}

func textOp(fn func(string) string) sanitizeOp {
	return func(req sanitizeRequest) any {
		return req.Value.Sanitize(fn)
	}
}

// numberOp reports infinite results as null, which JSON cannot encode.
func numberOp(req sanitizeRequest) any {
	var opts []sanitizer.NumberOption
	if req.Min != nil {
		opts = append(opts, sanitizer.Min(*req.Min))
	}
	if req.Max != nil {
		opts = append(opts, sanitizer.Max(*req.Max))
	}

	n := sanitizer.SanitizeNumber(req.Value, opts...)
	if math.IsInf(n, 0) {
		return nil
	}
	return n
}

func (h *Handler) sanitize(r *http.Request, req sanitizeRequest) Response {
	op, ok := sanitizeOps[req.Op]
	if !ok {
		return JSONError(fmt.Errorf("%w: %q", ErrUnknownOperation, req.Op))
	}
	if req.Min != nil && req.Max != nil && *req.Min > *req.Max {
		return JSONError(fmt.Errorf("%w: min %v is greater than max %v", ErrInvalidRange, *req.Min, *req.Max))
	}

	h.log.DebugContext(r.Context(), "sanitize", logger.Op(req.Op), slog.String("kind", req.Value.Kind().String()))
	return JSON(sanitizeResponse{Value: op(req)})
}
