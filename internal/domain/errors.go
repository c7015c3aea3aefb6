package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// place or contributor does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing name, no story and no story points).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a unique key is already taken, such as a
// username at signup.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrUnauthorized is returned when login credentials do not match.
var ErrUnauthorized = errors.New("unauthorized")

// ErrPersistence wraps I/O failures of the durable record store.
// The corrupt-source recovery in FileStore.Load is not a persistence error.
var ErrPersistence = errors.New("persistence error")

// ErrExternal wraps failures of external collaborators (translation,
// story generation). Handlers should map this to HTTP 502.
var ErrExternal = errors.New("external service error")
