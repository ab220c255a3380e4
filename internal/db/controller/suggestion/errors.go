package suggestion

import "errors"

var (
	// ErrSuggestionNotFound is returned when no suggestion has the requested id.
	ErrSuggestionNotFound = errors.New("suggestion not found")
	// ErrNameOrURLEmpty is returned when a suggestion lacks a name or url.
	ErrNameOrURLEmpty = errors.New("suggestion name and url are required")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)
