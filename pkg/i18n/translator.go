package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"path"
	"regexp"
	"slices"
	"strings"
)

// DefaultLanguage is used when nothing better can be negotiated.
const DefaultLanguage = "en"

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Translator is immutable after construction and safe for concurrent use.
type Translator struct {
	translations map[string]map[string]any
	defaultLang  string
	logMissing   bool
	logger       *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging logs a warning for every key lookup that
// falls back. Off by default.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) {
		t.logMissing = enabled
	}
}

// NewTranslator loads every *.yaml and *.yml file at the root of fsys.
// Files may share languages; later files (in lexical order) override keys of
// earlier ones.
func NewTranslator(ctx context.Context, fsys fs.FS, opts ...Option) (*Translator, error) {
	t := &Translator{
		translations: make(map[string]map[string]any),
		defaultLang:  DefaultLanguage,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	for _, entry := range entries {
		ext := strings.ToLower(path.Ext(entry.Name()))
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		content, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, fmt.Errorf("%s: %w", entry.Name(), err))
		}
		parsed, err := parseYAML(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		for lang, messages := range parsed {
			if existing, ok := t.translations[lang]; ok {
				maps.Copy(existing, messages)
				continue
			}
			t.translations[lang] = messages
		}
	}

	if len(t.translations) == 0 {
		return nil, ErrNoTranslations
	}

	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", t.SupportedLanguages()))
	return t, nil
}

// SupportedLanguages returns the catalog languages, sorted.
func (t *Translator) SupportedLanguages() []string {
	return slices.Sorted(maps.Keys(t.translations))
}

func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Lookup returns the message for key in lang without any fallback.
func (t *Translator) Lookup(lang, key string, values map[string]any) (string, bool) {
	messages, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	val, ok := getTranslation(messages, key)
	if !ok {
		return "", false
	}
	tmpl, ok := val.(string)
	if !ok {
		return "", false
	}
	return namedSprintf(tmpl, values), true
}

// T translates key into lang, falling back to the default language and
// finally to the key itself.
func (t *Translator) T(lang, key string, values map[string]any) string {
	return t.Td(lang, key, key, values)
}

// Td is T with an explicit fallback message, which is formatted with the
// same values.
func (t *Translator) Td(lang, key, fallback string, values map[string]any) string {
	if msg, ok := t.Lookup(lang, key, values); ok {
		return msg
	}
	if lang != t.defaultLang {
		if msg, ok := t.Lookup(t.defaultLang, key, values); ok {
			return msg
		}
	}
	if t.logMissing {
		t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	return namedSprintf(fallback, values)
}

// Tc translates using the language stored in ctx by Middleware.
func (t *Translator) Tc(ctx context.Context, key string, values map[string]any) string {
	return t.T(GetLocale(ctx), key, values)
}

// getTranslation walks a nested map using dot-separated keys.
func getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		next, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return next, true
		}
		current, ok = next.(map[string]any)
		if !ok {
			return nil, false
		}
	}
	return nil, false
}

// namedSprintf replaces %{name} placeholders. Unknown placeholders are kept.
func namedSprintf(tmpl string, values map[string]any) string {
	if len(values) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := values[match[2:len(match)-1]]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

// FieldLabel returns the localized label for a form field, or name itself.
func (t *Translator) FieldLabel(lang, name string) string {
	return t.Td(lang, "fields."+name, name, nil)
}
