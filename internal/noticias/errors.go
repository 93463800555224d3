package noticias

import "errors"

// Error taxonomy surfaced to transport layers. Wrapped values are matched
// with errors.Is; anything else is treated as a store failure.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation failed")
)
