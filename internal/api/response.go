package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dreamplanner/inputguard/pkg/binder"
	"github.com/dreamplanner/inputguard/pkg/environment"
)

// JSONResponse is the envelope of every response.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Details maps field names to
// localized messages for validation failures.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

type jsonResponse struct {
	status int
	body   JSONResponse
	err    error
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	status := j.status
	body := j.body
	if j.err != nil {
		body.Error = errorToDetail(r, j.err, &status)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

func WithStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

func WithMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// WithData attaches data to an error response.
func WithData(data any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Data = data
	}
}

// JSON renders v as the data of a 200 response.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusOK,
		body:   JSONResponse{Data: v},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err, or an *ErrorDetail as-is with a 500 unless
// WithStatus overrides it. The status of other errors is derived from their
// type when rendering.
func JSONError(err any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusInternalServerError}

	switch e := err.(type) {
	case *ErrorDetail:
		r.body.Error = e
	case error:
		r.err = e
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// errorToDetail maps err onto an ErrorDetail and a status. Messages of
// unclassified errors are hidden in production.
func errorToDetail(r *http.Request, err error, status *int) *ErrorDetail {
	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		httpErr = ErrUnsupportedMediaType
	case errors.Is(err, binder.ErrBodyTooLarge):
		httpErr = ErrRequestEntityTooLarge
	case errors.Is(err, binder.ErrFailedToParseJSON):
		httpErr = ErrBadRequest
	default:
		*status = http.StatusInternalServerError
		message := http.StatusText(http.StatusInternalServerError)
		if !environment.IsProduction(r.Context()) {
			message = err.Error()
		}
		return &ErrorDetail{Code: ErrInternalServerError.Key, Message: message}
	}

	*status = httpErr.Code
	message := err.Error()
	if message == httpErr.Key {
		message = http.StatusText(httpErr.Code)
	}
	return &ErrorDetail{Code: httpErr.Key, Message: message}
}
