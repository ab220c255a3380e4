package models

import (
	"time"

	"gorm.io/gorm"
)

// Link is a directory entry.
//
// A link with a Folder but no Subfolder is shown directly under the folder,
// one with both under the named subfolder of that folder. Password is
// compared as plaintext.
type Link struct {
	ID          string    `gorm:"primaryKey;size:32"`
	Name        string    `gorm:"size:255;not null"`
	URL         string    `gorm:"size:2048;not null"`
	Visible     bool      `gorm:"not null;index"`
	Folder      *string   `gorm:"size:255"`
	Subfolder   *string   `gorm:"size:255"`
	Password    *string   `gorm:"size:255"`
	Description *string   `gorm:"type:text"`
	ImageURL    *string   `gorm:"size:2048"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

// BeforeCreate assigns a document id.
func (l *Link) BeforeCreate(_ *gorm.DB) error {
	ensureID(&l.ID)
	return nil
}

// HasPassword reports whether the link is password gated.
func (l *Link) HasPassword() bool {
	return l.Password != nil
}
