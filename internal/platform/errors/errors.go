package apperrors

import "errors"

var (
	// ErrInvalidInput marks a malformed request parameter; HTTP maps it to 400.
	ErrInvalidInput = errors.New("invalid input")
	// ErrSourceUnavailable marks an operation whose backing store is absent.
	ErrSourceUnavailable = errors.New("source unavailable")
)
