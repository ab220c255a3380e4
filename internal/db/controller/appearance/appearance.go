// Package appearance stores the site wide look of every page.
package appearance

import (
	"errors"

	"gorm.io/gorm"

	"github.com/linkshelf/linkshelf/internal/db/controller/setting"
)

const (
	// SettingName is the name of the appearance setting document.
	SettingName = "appearance"
	// FieldBackgroundImage is the document field holding the background url.
	FieldBackgroundImage = "backgroundImage"
)

// Settings is the decoded appearance document.
type Settings struct {
	BackgroundImage string
}

// Load reads the appearance document. A missing document yields zero Settings.
func Load(db *gorm.DB) (Settings, error) {
	doc, err := setting.GetDocument(db, SettingName)
	if errors.Is(err, setting.ErrSettingNotFound) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, err
	}

	var s Settings
	if v, ok := doc[FieldBackgroundImage].(string); ok {
		s.BackgroundImage = v
	}

	return s, nil
}

// ApplyBackground merges the background image url into the document.
func ApplyBackground(db *gorm.DB, url string) error {
	if url == "" {
		return ErrEmptyBackground
	}

	return setting.MergeField(db, SettingName, FieldBackgroundImage, url)
}

// RemoveBackground deletes only the background image field.
func RemoveBackground(db *gorm.DB) error {
	return setting.DeleteField(db, SettingName, FieldBackgroundImage)
}
