package auth

import "errors"

var (
	// ErrInvalidCredentials covers unknown username, inactive account and
	// password mismatch alike, so a caller cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrUnauthenticated = errors.New("no authenticated session")

	ErrAccountNotFound = errors.New("account not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrConflict        = errors.New("resource already exists")
)
