// Package adminsession persists admin login sessions.
package adminsession

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/linkshelf/linkshelf/internal/db/models"
)

// Create stores a session for token that expires after ttl.
func Create(db *gorm.DB, token string, ttl time.Duration, now time.Time) (*models.AdminSession, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if token == "" {
		return nil, ErrTokenEmpty
	}

	s := &models.AdminSession{
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := db.Create(s).Error; err != nil {
		return nil, fmt.Errorf("create admin session: %w", err)
	}

	return s, nil
}

// Lookup returns the session for token if it has not expired at now.
func Lookup(db *gorm.DB, token string, now time.Time) (*models.AdminSession, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if token == "" {
		return nil, ErrSessionNotFound
	}

	var s models.AdminSession
	result := db.Where("token = ? AND expires_at > ?", token, now).Order("expires_at DESC").First(&s)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("lookup admin session: %w", result.Error)
	}

	return &s, nil
}

// Extend pushes the expiry of s to now + ttl.
func Extend(db *gorm.DB, s *models.AdminSession, ttl time.Duration, now time.Time) error {
	if db == nil {
		return ErrDBNil
	}

	expires := now.Add(ttl)
	if err := db.Model(s).Update("expires_at", expires).Error; err != nil {
		return fmt.Errorf("extend admin session: %w", err)
	}
	s.ExpiresAt = expires

	return nil
}

// DeleteByToken removes every session row carrying token.
func DeleteByToken(db *gorm.DB, token string) error {
	if db == nil {
		return ErrDBNil
	}
	if token == "" {
		return nil
	}

	if err := db.Where("token = ?", token).Delete(&models.AdminSession{}).Error; err != nil {
		return fmt.Errorf("delete admin session: %w", err)
	}

	return nil
}

// PurgeExpired removes sessions that expired before now and returns how many.
func PurgeExpired(db *gorm.DB, now time.Time) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Where("expires_at <= ?", now).Delete(&models.AdminSession{})
	if result.Error != nil {
		return 0, fmt.Errorf("purge admin sessions: %w", result.Error)
	}

	return result.RowsAffected, nil
}
