package credentials

import "errors"

var (
	// ErrNotSetUp is returned when the admin credential document is missing.
	ErrNotSetUp = errors.New("admin credentials not set up")
	// ErrEmptyPassword is returned when storing an empty password.
	ErrEmptyPassword = errors.New("admin password cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)
