package api

import (
	"log/slog"
	"net/http"

	"github.com/dreamplanner/inputguard/pkg/binder"
	"github.com/dreamplanner/inputguard/pkg/logger"
)

// HandlerFunc handles a request whose body has already been bound into req.
type HandlerFunc[R any] func(r *http.Request, req R) Response

// Wrap binds the request body into an R, calls h and renders the result.
// Binding failures are rendered with JSONError without calling h.
func Wrap[R any](h HandlerFunc[R], bind binder.Bind, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req R
		var resp Response

		if err := bind(r, &req); err != nil {
			log.DebugContext(r.Context(), "request binding failed", logger.Error(err))
			resp = JSONError(err)
		} else {
			resp = h(r, req)
		}

		if resp == nil {
			resp = JSONError(ErrInternalServerError)
		}
		if err := resp.Render(w, r); err != nil {
			log.ErrorContext(r.Context(), "failed to render response", logger.Error(err))
		}
	}
}

// render writes resp and logs a failure, for handlers that bind on their own.
func render(w http.ResponseWriter, r *http.Request, log *slog.Logger, resp Response) {
	if err := resp.Render(w, r); err != nil {
		log.ErrorContext(r.Context(), "failed to render response", logger.Error(err))
	}
}
