// Package credentials reads and writes the singleton admin credential.
//
// The stored password is compared as plaintext, exactly as entered. A value
// written as an argon2id encoded hash is verified with argon2id instead.
package credentials

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/alexedwards/argon2id"
	"gorm.io/gorm"

	"github.com/linkshelf/linkshelf/internal/db/models"
)

const argon2idPrefix = "$argon2id$"

// Get returns the admin credential document.
func Get(db *gorm.DB) (*models.AdminCredential, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var cred models.AdminCredential
	result := db.Where("id = ?", models.AdminCredentialID).First(&cred)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotSetUp
		}
		return nil, fmt.Errorf("get admin credentials: %w", result.Error)
	}

	return &cred, nil
}

// Exists reports whether admin credentials have been set up.
func Exists(db *gorm.DB) (bool, error) {
	_, err := Get(db)
	if errors.Is(err, ErrNotSetUp) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// Set stores password as the admin credential, replacing any previous value.
func Set(db *gorm.DB, password string) error {
	if db == nil {
		return ErrDBNil
	}
	if password == "" {
		return ErrEmptyPassword
	}

	cred := models.AdminCredential{ID: models.AdminCredentialID, Password: password}
	if err := db.Save(&cred).Error; err != nil {
		return fmt.Errorf("set admin credentials: %w", err)
	}

	return nil
}

// Hash returns the argon2id encoding of password.
func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	return argon2id.CreateHash(password, argon2id.DefaultParams)
}

// IsHashed reports whether stored is an argon2id encoded hash.
func IsHashed(stored string) bool {
	return strings.HasPrefix(stored, argon2idPrefix)
}

// Verify compares entered against the stored admin password.
// It returns ErrNotSetUp when no credential exists.
func Verify(db *gorm.DB, entered string) (bool, error) {
	cred, err := Get(db)
	if err != nil {
		return false, err
	}

	if IsHashed(cred.Password) {
		ok, err := argon2id.ComparePasswordAndHash(entered, cred.Password)
		if err != nil {
			return false, fmt.Errorf("verify admin password: %w", err)
		}
		return ok, nil
	}

	return subtle.ConstantTimeCompare([]byte(entered), []byte(cred.Password)) == 1, nil
}
