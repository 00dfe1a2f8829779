package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dreamplanner/inputguard/internal/forms"
	"github.com/dreamplanner/inputguard/pkg/binder"
	"github.com/dreamplanner/inputguard/pkg/clientip"
	"github.com/dreamplanner/inputguard/pkg/environment"
	"github.com/dreamplanner/inputguard/pkg/httpserver"
	"github.com/dreamplanner/inputguard/pkg/i18n"
	"github.com/dreamplanner/inputguard/pkg/logger"
	"github.com/dreamplanner/inputguard/pkg/ratelimiter"
	"github.com/dreamplanner/inputguard/pkg/requestid"
)

// Handler serves the inputguard HTTP API.
type Handler struct {
	log        *slog.Logger
	env        environment.Environment
	translator *i18n.Translator
	forms      *forms.Registry
	bind       binder.Bind
	limiter    *ratelimiter.Bucket
	ipHeaders  []string
}

type Option func(*Handler)

func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

func WithEnvironment(env environment.Environment) Option {
	return func(h *Handler) {
		h.env = env
	}
}

// WithRegistry replaces the default form registry.
func WithRegistry(reg *forms.Registry) Option {
	return func(h *Handler) {
		if reg != nil {
			h.forms = reg
		}
	}
}

// WithMaxBodySize bounds request bodies. Defaults to binder.DefaultMaxJSONSize.
func WithMaxBodySize(n int64) Option {
	return func(h *Handler) {
		h.bind = binder.JSON(binder.WithMaxSize(n))
	}
}

// WithRateLimiter limits /v1 requests per client address.
func WithRateLimiter(b *ratelimiter.Bucket) Option {
	return func(h *Handler) {
		h.limiter = b
	}
}

// WithTrustedProxyHeaders names the headers, in priority order, that carry
// the client address when the service runs behind a proxy.
func WithTrustedProxyHeaders(headers ...string) Option {
	return func(h *Handler) {
		h.ipHeaders = headers
	}
}

// New creates a Handler. A nil translator leaves validation messages in
// their built-in English form.
func New(translator *i18n.Translator, opts ...Option) *Handler {
	h := &Handler{
		log:        logger.Discard(),
		env:        environment.Development,
		translator: translator,
		forms:      forms.NewRegistry(),
		bind:       binder.JSON(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With(logger.Component("api"))
	return h
}

// Routes builds the router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware(h.ipHeaders...))
	r.Use(environment.Middleware(h.env))
	r.Use(requestLogger(h.log))
	r.Use(middleware.Recoverer)
	r.Use(i18n.Middleware(h.languages(), h.defaultLanguage()))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render(w, r, h.log, JSONError(ErrNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		render(w, r, h.log, JSONError(ErrMethodNotAllowed))
	})

	r.Get("/health", httpserver.HealthCheckHandler(h.log))

	r.Route("/v1", func(r chi.Router) {
		if h.limiter != nil {
			r.Use(ratelimiter.Middleware(h.limiter, ratelimiter.ByClientIP, http.HandlerFunc(h.tooManyRequests)))
		}

		r.Post("/sanitize", Wrap[sanitizeRequest](h.sanitize, h.bind, h.log))

		r.Route("/validate", func(r chi.Router) {
			r.Post("/email", Wrap[valueRequest](h.validateEmail, h.bind, h.log))
			r.Post("/password", Wrap[valueRequest](h.validatePassword, h.bind, h.log))
			r.Post("/required", Wrap[requiredRequest](h.validateRequired, h.bind, h.log))
		})

		r.Get("/forms", h.listForms)
		r.Post("/forms/{form}", h.checkForm)
	})

	return r
}

func (h *Handler) languages() []string {
	if h.translator == nil {
		return []string{i18n.DefaultLanguage}
	}
	return h.translator.SupportedLanguages()
}

func (h *Handler) defaultLanguage() string {
	if h.translator == nil {
		return i18n.DefaultLanguage
	}
	return h.translator.DefaultLanguage()
}

func (h *Handler) tooManyRequests(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.log, JSONError(ErrTooManyRequests))
}
