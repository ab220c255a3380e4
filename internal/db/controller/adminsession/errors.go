package adminsession

import "errors"

var (
	// ErrSessionNotFound is returned for unknown or expired tokens.
	ErrSessionNotFound = errors.New("admin session not found")
	// ErrTokenEmpty is returned when creating a session without token.
	ErrTokenEmpty = errors.New("admin session token cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)
