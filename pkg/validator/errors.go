package validator

import "errors"

var (
	// ErrValidationFailed matches every error returned by Apply.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidTranslations is returned when a translations document cannot be parsed.
	ErrInvalidTranslations = errors.New("invalid translations")
)
