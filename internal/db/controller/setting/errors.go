package setting

import "errors"

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingNameEmpty is returned when a setting name is empty.
	ErrSettingNameEmpty = errors.New("setting name cannot be empty")
	// ErrFieldNameEmpty is returned when a document field name is empty.
	ErrFieldNameEmpty = errors.New("setting field name cannot be empty")
	// ErrInvalidDocument is returned when a stored value is not a JSON object.
	ErrInvalidDocument = errors.New("setting value is not a valid document")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)
