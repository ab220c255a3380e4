package models

import (
	"time"
)

// Setting is a named document. Value holds a JSON object so single fields
// can be merged or removed without touching their siblings.
type Setting struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:128;not null"`
	Value     []byte
	UpdatedAt time.Time
}
