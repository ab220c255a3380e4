package models

import (
	"time"

	"gorm.io/gorm"
)

// Suggestion is a visitor submitted candidate link awaiting admin review.
type Suggestion struct {
	ID          string    `gorm:"primaryKey;size:32"`
	Name        string    `gorm:"size:255;not null"`
	URL         string    `gorm:"size:2048;not null"`
	Description *string   `gorm:"type:text"`
	ImageURL    *string   `gorm:"size:2048"`
	Folder      *string   `gorm:"size:255"`
	Subfolder   *string   `gorm:"size:255"`
	CreatedAt   time.Time `gorm:"index"`
}

// BeforeCreate assigns a document id.
func (s *Suggestion) BeforeCreate(_ *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}

// ToLink builds the link an approved suggestion turns into:
// visible and without password.
func (s *Suggestion) ToLink() Link {
	return Link{
		Name:        s.Name,
		URL:         s.URL,
		Visible:     true,
		Password:    nil,
		Folder:      s.Folder,
		Subfolder:   s.Subfolder,
		Description: s.Description,
		ImageURL:    s.ImageURL,
	}
}
