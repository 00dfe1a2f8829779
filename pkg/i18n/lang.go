package i18n

import (
	"golang.org/x/text/language"
)

// maxAcceptLanguageLength bounds the header before it reaches the parser.
const maxAcceptLanguageLength = 4096

// Negotiate picks the best supported language for an Accept-Language header.
// Region variants match their base language (es-MX -> es). defaultLang is
// returned when the header is empty, malformed or matches nothing.
func Negotiate(header string, supported []string, defaultLang string) string {
	if header == "" || len(supported) == 0 {
		return defaultLang
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return defaultLang
	}

	tags := make([]language.Tag, 0, len(supported))
	for _, lang := range supported {
		tag, err := language.Parse(lang)
		if err != nil {
			tag = language.Und
		}
		tags = append(tags, tag)
	}

	_, index, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No || index < 0 || index >= len(supported) {
		return defaultLang
	}
	return supported[index]
}
