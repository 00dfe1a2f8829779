package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dreamplanner/inputguard/pkg/sanitizer"
)

func TestInputOf(t *testing.T) {
	t.Parallel()

	title := "My dream"
	var nilTitle *string
	var nilMap *map[string]any

	tests := []struct {
		name     string
		value    any
		expected sanitizer.Kind
	}{
		{name: "nil is missing", value: nil, expected: sanitizer.KindMissing},
		{name: "string is text", value: "hello", expected: sanitizer.KindText},
		{name: "empty string is text", value: "", expected: sanitizer.KindText},
		{name: "string pointer is text", value: &title, expected: sanitizer.KindText},
		{name: "nil string pointer is missing", value: nilTitle, expected: sanitizer.KindMissing},
		{name: "nil map pointer is missing", value: nilMap, expected: sanitizer.KindMissing},
		{name: "number is other", value: 42, expected: sanitizer.KindOther},
		{name: "float is other", value: 4.2, expected: sanitizer.KindOther},
		{name: "bool is other", value: true, expected: sanitizer.KindOther},
		{name: "object is other", value: map[string]any{}, expected: sanitizer.KindOther},
		{name: "array is other", value: []any{}, expected: sanitizer.KindOther},
		{name: "input passes through", value: sanitizer.Text("x"), expected: sanitizer.KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.InputOf(tt.value).Kind())
		})
	}
}

func TestInputAccessors(t *testing.T) {
	t.Parallel()

	t.Run("text input", func(t *testing.T) {
		t.Parallel()
		in := sanitizer.Text("abc")
		s, ok := in.AsText()
		assert.True(t, ok)
		assert.Equal(t, "abc", s)
		assert.False(t, in.IsMissing())
		assert.Equal(t, "abc", in.Raw())
		assert.Equal(t, "text", in.Kind().String())
	})

	t.Run("zero value is missing", func(t *testing.T) {
		t.Parallel()
		var in sanitizer.Input
		assert.True(t, in.IsMissing())
		assert.Equal(t, sanitizer.Missing, in)
		_, ok := in.AsText()
		assert.False(t, ok)
		assert.Equal(t, "missing", in.Kind().String())
	})

	t.Run("other input keeps raw value", func(t *testing.T) {
		t.Parallel()
		in := sanitizer.InputOf(7)
		assert.Equal(t, 7, in.Raw())
		assert.Equal(t, "other", in.Kind().String())
	})
}

func TestNonTextInputYieldsDefaults(t *testing.T) {
	t.Parallel()

	sanitizers := map[string]func(string) string{
		"StripHTML":        sanitizer.StripHTML,
		"EscapeHTML":       sanitizer.EscapeHTML,
		"SanitizeParam":    sanitizer.SanitizeParam,
		"SanitizeSearch":   sanitizer.SanitizeSearch,
		"SanitizeURL":      sanitizer.SanitizeURL,
		"SanitizeRichText": sanitizer.SanitizeRichText,
		"SanitizeText": func(s string) string {
			return sanitizer.SanitizeText(s, 0)
		},
	}

	values := []any{nil, 42, map[string]any{}, []any{}, true}

	for name, fn := range sanitizers {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for _, v := range values {
				assert.Equal(t, "", sanitizer.InputOf(v).Sanitize(fn), "value %#v", v)
			}
		})
	}

	t.Run("Check is false for non-text", func(t *testing.T) {
		t.Parallel()
		always := func(string) bool { return true }
		for _, v := range values {
			assert.False(t, sanitizer.InputOf(v).Check(always), "value %#v", v)
		}
		assert.True(t, sanitizer.Text("").Check(always))
	})
}
