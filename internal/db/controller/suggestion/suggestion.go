// Package suggestion manages visitor submitted links awaiting review.
package suggestion

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/linkshelf/linkshelf/internal/db/models"
)

// Create stores a new suggestion.
func Create(db *gorm.DB, s *models.Suggestion) error {
	if db == nil {
		return ErrDBNil
	}
	if s.Name == "" || s.URL == "" {
		return ErrNameOrURLEmpty
	}

	if err := db.Create(s).Error; err != nil {
		return fmt.Errorf("create suggestion: %w", err)
	}

	return nil
}

// List returns every suggestion, newest first.
func List(db *gorm.DB) ([]models.Suggestion, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var out []models.Suggestion
	if err := db.Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list suggestions: %w", err)
	}

	return out, nil
}

// Get retrieves a suggestion by id.
func Get(db *gorm.DB, id string) (*models.Suggestion, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if id == "" {
		return nil, ErrSuggestionNotFound
	}

	var s models.Suggestion
	result := db.Where("id = ?", id).First(&s)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSuggestionNotFound
		}
		return nil, fmt.Errorf("get suggestion: %w", result.Error)
	}

	return &s, nil
}

// Delete removes the suggestion with the given id.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where("id = ?", id).Delete(&models.Suggestion{})
	if result.Error != nil {
		return fmt.Errorf("delete suggestion: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSuggestionNotFound
	}

	return nil
}

// Approve turns the suggestion into a visible link without password and
// deletes the suggestion. Both writes commit together or not at all.
func Approve(db *gorm.DB, id string) (*models.Link, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var created models.Link
	err := db.Transaction(func(tx *gorm.DB) error {
		s, err := Get(tx, id)
		if err != nil {
			return err
		}

		created = s.ToLink()
		if err = tx.Create(&created).Error; err != nil {
			return fmt.Errorf("create approved link: %w", err)
		}

		return Delete(tx, id)
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}
