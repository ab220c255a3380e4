package session

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/linkshelf/linkshelf/internal/db/models"
)

// GormStorage is a fiber.Storage on top of the visitor_sessions table.
// It backs visitor sessions when the database engine is sqlite.
type GormStorage struct {
	db  *gorm.DB
	now func() time.Time
}

var _ fiber.Storage = (*GormStorage)(nil)

// NewGormStorage returns a storage using db. The table must be migrated.
func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Get returns the value for key, or nil if it is missing or expired.
func (s *GormStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}

	var row models.VisitorSession
	err := s.db.Where("sid = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if !row.ExpiresAt.IsZero() && !s.now().Before(row.ExpiresAt) {
		return nil, nil
	}

	return row.Value, nil
}

// Set stores val for key. A zero exp never expires.
func (s *GormStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}

	row := models.VisitorSession{Key: key, Value: val}
	if exp > 0 {
		row.ExpiresAt = s.now().Add(exp)
	}

	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sid"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at"}),
	}).Create(&row).Error
}

// Delete removes key.
func (s *GormStorage) Delete(key string) error {
	if key == "" {
		return nil
	}

	return s.db.Where("sid = ?", key).Delete(&models.VisitorSession{}).Error
}

// Reset removes every entry.
func (s *GormStorage) Reset() error {
	return s.db.Where("1 = 1").Delete(&models.VisitorSession{}).Error
}

// Close is a no-op, the database is owned by the caller.
func (s *GormStorage) Close() error {
	return nil
}

// GC removes expired entries.
func (s *GormStorage) GC() (int64, error) {
	result := s.db.Where("expires_at > ? AND expires_at <= ?", time.Time{}, s.now()).
		Delete(&models.VisitorSession{})

	return result.RowsAffected, result.Error
}

// RunGC calls GC every interval until done is closed.
func (s *GormStorage) RunGC(interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if n, err := s.GC(); err != nil {
				log.Warn().Err(err).Msg("failed to purge visitor sessions")
			} else if n > 0 {
				log.Debug().Int64("count", n).Msg("purged visitor sessions")
			}
		}
	}
}
