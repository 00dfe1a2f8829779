package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNotObject is returned when Fields is decoded from JSON that is not an object.
	ErrNotObject = errors.New("fields must be a JSON object")
)
