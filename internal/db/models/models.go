// Package models contains database model definitions.
//
// Every collection of the link directory is a table. Rows carry a store
// generated string id (see package docid) so handlers and URLs never see
// sequential numbers.
package models

import (
	"strings"

	"gorm.io/gorm"

	"github.com/linkshelf/linkshelf/internal/docid"
)

// All returns one instance of every model, in migration order.
func All() []any {
	return []any{
		&Link{},
		&Suggestion{},
		&AdminCredential{},
		&AdminSession{},
		&Setting{},
		&VisitorSession{},
	}
}

// AutoMigrate creates or updates the schema of every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}

// OptionalString trims s and returns nil when nothing is left.
// Blank optional fields are stored as NULL, never as "".
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	return &s
}

// StringValue returns the pointed to string or "" for nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func ensureID(id *string) {
	if *id == "" {
		*id = docid.New()
	}
}
