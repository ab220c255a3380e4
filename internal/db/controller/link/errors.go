package link

import "errors"

var (
	// ErrLinkNotFound is returned when no link has the requested id.
	ErrLinkNotFound = errors.New("link not found")
	// ErrNameOrURLEmpty is returned when a link lacks a name or url.
	ErrNameOrURLEmpty = errors.New("link name and url are required")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)
