package shared

import "errors"

var (
	// validation errors
	ErrInvalidInput = errors.New("invalid input")

	// auth-specific errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")

	// store-specific errors
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrStoreUnavailable  = errors.New("store unavailable")
)
