package i18n

import "errors"

var (
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrNoTranslations       = errors.New("no translations found")
)
