package auth

import "errors"

var (
	// ErrNotSetUp is returned when no admin credentials exist.
	ErrNotSetUp = errors.New("admin credentials not set up")

	// ErrEmptyPassword is returned when the submitted password is blank.
	ErrEmptyPassword = errors.New("please enter a password")

	// ErrIncorrectPassword is returned when the password does not match.
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrNoSession is returned when a token has no valid session.
	ErrNoSession = errors.New("no valid admin session")
)
