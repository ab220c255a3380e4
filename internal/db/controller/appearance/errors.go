package appearance

import "errors"

// ErrEmptyBackground is returned when applying an empty background url.
var ErrEmptyBackground = errors.New("background image url cannot be empty")
