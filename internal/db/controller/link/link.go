// Package link provides CRUD operations for directory links.
package link

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/linkshelf/linkshelf/internal/db/models"
)

// editableColumns are written by Update, including NULLs and false.
var editableColumns = []string{
	"Name", "URL", "Visible", "Folder", "Subfolder", "Password", "Description", "ImageURL",
}

// Create inserts a new link. ID and timestamps are assigned by the store.
func Create(db *gorm.DB, l *models.Link) error {
	if db == nil {
		return ErrDBNil
	}
	if l.Name == "" || l.URL == "" {
		return ErrNameOrURLEmpty
	}

	if err := db.Create(l).Error; err != nil {
		return fmt.Errorf("create link: %w", err)
	}

	return nil
}

// List returns every link, newest first.
func List(db *gorm.DB) ([]models.Link, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var links []models.Link
	if err := db.Order("created_at DESC, id DESC").Find(&links).Error; err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}

	return links, nil
}

// ListVisible returns the links shown on the public page, oldest first.
// The order decides which link defines a folder password.
func ListVisible(db *gorm.DB) ([]models.Link, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var links []models.Link
	err := db.Where("visible = ?", true).Order("created_at ASC, id ASC").Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("list visible links: %w", err)
	}

	return links, nil
}

// Get retrieves a link by id.
func Get(db *gorm.DB, id string) (*models.Link, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if id == "" {
		return nil, ErrLinkNotFound
	}

	var l models.Link
	result := db.Where("id = ?", id).First(&l)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("get link: %w", result.Error)
	}

	return &l, nil
}

// Update overwrites the editable fields of the link with the given id.
// Nil optional fields clear the stored value.
func Update(db *gorm.DB, id string, changes *models.Link) (*models.Link, error) {
	if changes.Name == "" || changes.URL == "" {
		return nil, ErrNameOrURLEmpty
	}

	existing, err := Get(db, id)
	if err != nil {
		return nil, err
	}

	err = db.Model(existing).Select(editableColumns).Updates(changes).Error
	if err != nil {
		return nil, fmt.Errorf("update link: %w", err)
	}

	return Get(db, id)
}

// Delete removes the link with the given id.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where("id = ?", id).Delete(&models.Link{})
	if result.Error != nil {
		return fmt.Errorf("delete link: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLinkNotFound
	}

	return nil
}
