// Package setting provides CRUD operations for named setting documents.
//
// A setting value is a JSON object. MergeField and DeleteField change a
// single field and leave every sibling field untouched.
package setting

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/linkshelf/linkshelf/internal/db/models"
)

const (
	nameQueryPattern = "name = ?"
)

// Document is the decoded value of a setting.
type Document map[string]any

// Get retrieves a setting by its name.
func Get(db *gorm.DB, name string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrSettingNameEmpty
	}

	var setting models.Setting
	result := db.Where(nameQueryPattern, name).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, result.Error
	}

	return &setting, nil
}

// Set creates or replaces a setting by name (upsert operation).
func Set(db *gorm.DB, name string, value []byte) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrSettingNameEmpty
	}

	var setting models.Setting
	result := db.Where(nameQueryPattern, name).First(&setting)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		setting = models.Setting{Name: name, Value: value}
		if err := db.Create(&setting).Error; err != nil {
			return nil, err
		}
		return &setting, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	setting.Value = value
	result = db.Save(&setting)
	if result.Error != nil {
		return nil, result.Error
	}

	return &setting, nil
}

// GetDocument decodes the named setting. A missing setting yields
// ErrSettingNotFound, an empty value an empty document.
func GetDocument(db *gorm.DB, name string) (Document, error) {
	s, err := Get(db, name)
	if err != nil {
		return nil, err
	}

	return decode(s.Value)
}

// MergeField sets one field of the named document, creating the
// document if it does not exist yet.
func MergeField(db *gorm.DB, name, field string, value any) error {
	if db == nil {
		return ErrDBNil
	}
	if field == "" {
		return ErrFieldNameEmpty
	}

	return db.Transaction(func(tx *gorm.DB) error {
		doc, err := GetDocument(tx, name)
		if err != nil && !errors.Is(err, ErrSettingNotFound) {
			return err
		}
		if doc == nil {
			doc = Document{}
		}

		doc[field] = value

		return store(tx, name, doc)
	})
}

// DeleteField removes one field from the named document. Removing a field
// that is not there, or from a missing document, is not an error.
func DeleteField(db *gorm.DB, name, field string) error {
	if db == nil {
		return ErrDBNil
	}
	if field == "" {
		return ErrFieldNameEmpty
	}

	return db.Transaction(func(tx *gorm.DB) error {
		doc, err := GetDocument(tx, name)
		if errors.Is(err, ErrSettingNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if _, ok := doc[field]; !ok {
			return nil
		}
		delete(doc, field)

		return store(tx, name, doc)
	})
}

func decode(raw []byte) (Document, error) {
	doc := Document{}
	if len(raw) == 0 {
		return doc, nil
	}

	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return doc, nil
}

func store(db *gorm.DB, name string, doc Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	_, err = Set(db, name, raw)

	return err
}
