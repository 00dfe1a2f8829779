package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamplanner/inputguard/internal/api"
	"github.com/dreamplanner/inputguard/pkg/i18n"
	"github.com/dreamplanner/inputguard/pkg/ratelimiter"
	"github.com/dreamplanner/inputguard/pkg/requestid"
)

type envelope struct {
	Data  json.RawMessage  `json:"data"`
	Meta  map[string]any   `json:"meta"`
	Error *api.ErrorDetail `json:"error"`
}

func newRouter(t *testing.T, opts ...api.Option) http.Handler {
	t.Helper()
	tr, err := i18n.NewTranslator(context.Background(), i18n.Embedded())
	require.NoError(t, err)
	return api.New(tr, opts...).Routes()
}

func do(t *testing.T, h http.Handler, method, target, body string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func TestHealth(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	rec, _ := do(t, h, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(requestid.Header))
}

func TestRequestIDIsEchoed(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	rec, _ := do(t, h, http.MethodGet, "/health", "", map[string]string{requestid.Header: "req-123"})
	assert.Equal(t, "req-123", rec.Header().Get(requestid.Header))
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	rec, env := do(t, h, http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "not_found", env.Error.Code)

	rec, env = do(t, h, http.MethodGet, "/v1/sanitize", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "method_not_allowed", env.Error.Code)
}

func TestSanitize(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	tests := []struct {
		name string
		body string
		want any
	}{
		{"strip html", `{"op":"strip_html","value":"<b>hi</b> there"}`, "hi there"},
		{"escape html", `{"op":"escape_html","value":"<a href=\"x\">'&'</a>"}`, "&lt;a href=&quot;x&quot;&gt;&#039;&amp;&#039;&lt;/a&gt;"},
		{"text with max length", `{"op":"text","value":"  <p>Hello world</p> ","max_length":5}`, "Hello"},
		{"text without max length", `{"op":"text","value":" <i>a</i> b "}`, "a b"},
		{"rich text", `{"op":"rich_text","value":"<p onclick=\"x()\">hi</p>"}`, "<p>hi</p>"},
		{"param", `{"op":"param","value":"ab c!d"}`, "abcd"},
		{"search", `{"op":"search","value":"  \"hi\"; "}`, "hi"},
		{"dangerous url", `{"op":"url","value":"javascript:alert(1)"}`, ""},
		{"absolute url", `{"op":"url","value":" https://x.io/a "}`, "https://x.io/a"},
		{"number clamped", `{"op":"number","value":"42","min":0,"max":10}`, 10.0},
		{"unparsable number with min", `{"op":"number","value":"abc","min":3}`, 3.0},
		{"boolean is not a number", `{"op":"number","value":true}`, 0.0},
		{"infinite number", `{"op":"number","value":"Infinity"}`, nil},
		{"non-string value", `{"op":"strip_html","value":42}`, ""},
		{"null value", `{"op":"param","value":null}`, ""},
		{"absent value", `{"op":"search"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, env := do(t, h, http.MethodPost, "/v1/sanitize", tt.body, nil)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			got := decodeData[map[string]any](t, env)
			assert.Equal(t, tt.want, got["value"])
		})
	}
}

func TestSanitizeErrors(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	tests := []struct {
		name     string
		body     string
		headers  map[string]string
		wantCode int
		wantKey  string
	}{
		{"unknown op", `{"op":"shout","value":"x"}`, nil, http.StatusBadRequest, "unknown_operation"},
		{"inverted range", `{"op":"number","value":1,"min":5,"max":1}`, nil, http.StatusBadRequest, "invalid_range"},
		{"unknown field", `{"op":"text","value":"x","extra":true}`, nil, http.StatusBadRequest, "bad_request"},
		{"malformed json", `{"op":`, nil, http.StatusBadRequest, "bad_request"},
		{"trailing data", `{"op":"text","value":"x"} {}`, nil, http.StatusBadRequest, "bad_request"},
		{"wrong content type", `{"op":"text"}`, map[string]string{"Content-Type": "text/plain"}, http.StatusUnsupportedMediaType, "unsupported_media_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, env := do(t, h, http.MethodPost, "/v1/sanitize", tt.body, tt.headers)
			assert.Equal(t, tt.wantCode, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantKey, env.Error.Code)
			assert.NotEmpty(t, env.Error.Message)
		})
	}
}

func TestBodyTooLarge(t *testing.T) {
	t.Parallel()
	h := newRouter(t, api.WithMaxBodySize(16))

	rec, env := do(t, h, http.MethodPost, "/v1/sanitize", `{"op":"text","value":"`+strings.Repeat("x", 64)+`"}`, nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "request_entity_too_large", env.Error.Code)
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	tests := []struct {
		body string
		want bool
	}{
		{`{"value":" user@example.com "}`, true},
		{`{"value":"user@example"}`, false},
		{`{"value":5}`, false},
		{`{}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			t.Parallel()

			rec, env := do(t, h, http.MethodPost, "/v1/validate/email", tt.body, nil)
			require.Equal(t, http.StatusOK, rec.Code)
			got := decodeData[map[string]bool](t, env)
			assert.Equal(t, tt.want, got["valid"])
		})
	}
}

type passwordData struct {
	Strength struct {
		Score  int      `json:"score"`
		Label  string   `json:"label"`
		Errors []string `json:"errors"`
	} `json:"strength"`
	Registration struct {
		Score int    `json:"score"`
		Level string `json:"level"`
	} `json:"registration"`
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	t.Run("strong", func(t *testing.T) {
		t.Parallel()

		rec, env := do(t, h, http.MethodPost, "/v1/validate/password", `{"value":"Str0ng!Pass"}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeData[passwordData](t, env)
		assert.Equal(t, 5, got.Strength.Score)
		assert.Equal(t, "Very strong", got.Strength.Label)
		assert.Empty(t, got.Strength.Errors)
		assert.Equal(t, 4, got.Registration.Score)
		assert.Equal(t, "Strong", got.Registration.Level)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		rec, env := do(t, h, http.MethodPost, "/v1/validate/password", `{"value":null}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeData[passwordData](t, env)
		assert.Equal(t, 0, got.Strength.Score)
		assert.Equal(t, "Too short", got.Strength.Label)
		assert.Equal(t, []string{"Password is required"}, got.Strength.Errors)
		assert.Equal(t, "Weak", got.Registration.Level)
	})
}

func TestValidateRequired(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	rec, env := do(t, h, http.MethodPost, "/v1/validate/required", `{"b":"  ","a":1,"c":null,"d":"x","e":"","f":false}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[map[string][]string](t, env)
	assert.Equal(t, []string{"b", "c", "e"}, got["missing"])

	rec, env = do(t, h, http.MethodPost, "/v1/validate/required", `{}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"missing":[]}`, string(env.Data))

	rec, _ = do(t, h, http.MethodPost, "/v1/validate/required", `["a"]`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListForms(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	rec, env := do(t, h, http.MethodGet, "/v1/forms", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[map[string][]string](t, env)
	assert.Contains(t, got["forms"], "registration")
	assert.Contains(t, got["forms"], "search")
}

func TestCheckForm(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		body := `{"display_name":" <b>Ana</b> ","email":"ana@example.com","password":"Str0ng!Pass","accept_terms":true}`
		rec, env := do(t, h, http.MethodPost, "/v1/forms/registration", body, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Nil(t, env.Error)
		assert.Equal(t, true, env.Meta["valid"])
		assert.Equal(t, "registration", env.Meta["form"])

		got := decodeData[map[string]any](t, env)
		assert.Equal(t, "Ana", got["display_name"])
	})

	t.Run("invalid in spanish", func(t *testing.T) {
		t.Parallel()

		rec, env := do(t, h, http.MethodPost, "/v1/forms/registration", `{"display_name":"Ana","accept_terms":false}`,
			map[string]string{"Accept-Language": "es-MX,es;q=0.9"})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "es", rec.Header().Get("Content-Language"))
		assert.Equal(t, false, env.Meta["valid"])

		require.NotNil(t, env.Error)
		assert.Equal(t, "validation_error", env.Error.Code)
		assert.Equal(t, "Corrige los campos indicados", env.Error.Message)
		assert.Equal(t, map[string][]string{
			"email":        {"Correo electrónico es obligatorio"},
			"password":     {"Contraseña es obligatorio"},
			"accept_terms": {"Debes aceptar los términos del servicio"},
		}, env.Error.Details)

		got := decodeData[map[string]any](t, env)
		assert.Equal(t, "Ana", got["display_name"])
	})

	t.Run("invalid in english", func(t *testing.T) {
		t.Parallel()

		rec, env := do(t, h, http.MethodPost, "/v1/forms/dream", `{"title":"<br>","category":"travel","priority":"7"}`, nil)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, map[string][]string{"title": {"Title is required"}}, env.Error.Details)

		got := decodeData[map[string]any](t, env)
		assert.Equal(t, 5.0, got["priority"])
	})

	t.Run("unknown form", func(t *testing.T) {
		t.Parallel()

		rec, env := do(t, h, http.MethodPost, "/v1/forms/payment", `{}`, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "unknown_form", env.Error.Code)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		rec, env := do(t, h, http.MethodPost, "/v1/forms/login", `{"email":"a@b.co","password":"x","remember":true}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "bad_request", env.Error.Code)
	})
}

func TestCheckFormWithoutTranslator(t *testing.T) {
	t.Parallel()
	h := api.New(nil).Routes()

	rec, env := do(t, h, http.MethodPost, "/v1/forms/comment", `{"post_id":"p1"}`, nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "validation failed", env.Error.Message)
	assert.Equal(t, map[string][]string{"content": {"field is required"}}, env.Error.Details)
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	bucket, err := ratelimiter.NewBucket(ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Hour},
		ratelimiter.WithCleanupInterval(0))
	require.NoError(t, err)
	t.Cleanup(bucket.Close)

	h := newRouter(t, api.WithRateLimiter(bucket), api.WithTrustedProxyHeaders("X-Real-IP"))
	body := `{"value":"a@b.co"}`
	client := map[string]string{"X-Real-IP": "198.51.100.10"}

	rec, _ := do(t, h, http.MethodPost, "/v1/validate/email", body, client)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := do(t, h, http.MethodPost, "/v1/validate/email", body, client)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "too_many_requests", env.Error.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	rec, _ = do(t, h, http.MethodPost, "/v1/validate/email", body, map[string]string{"X-Real-IP": "198.51.100.11"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, h, http.MethodGet, "/health", "", client)
	assert.Equal(t, http.StatusOK, rec.Code, "health checks are not limited")
}
