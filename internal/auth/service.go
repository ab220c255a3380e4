package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/linkshelf/linkshelf/internal/db/controller/adminsession"
	"github.com/linkshelf/linkshelf/internal/db/controller/credentials"
)

// Service provides admin authentication.
type Service struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

// NewService creates a new auth service. Sessions live for ttl after
// their last use.
func NewService(db *gorm.DB, ttl time.Duration) *Service {
	return &Service{
		db:  db,
		ttl: ttl,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// TTL returns the session lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Login checks password against the admin credentials and creates a
// session on success. The password is trimmed first.
func (s *Service) Login(ctx context.Context, password string) (*Session, error) {
	password = strings.TrimSpace(password)
	if password == "" {
		return nil, ErrEmptyPassword
	}

	db := s.db.WithContext(ctx)

	ok, err := credentials.Verify(db, password)
	if errors.Is(err, credentials.ErrNotSetUp) {
		return nil, ErrNotSetUp
	}
	if err != nil {
		return nil, fmt.Errorf("failed to verify admin password: %w", err)
	}
	if !ok {
		return nil, ErrIncorrectPassword
	}

	token, err := NewToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	now := s.now()

	row, err := adminsession.Create(db, token, s.ttl, now)
	if err != nil {
		return nil, err
	}

	if n, err := adminsession.PurgeExpired(db, now); err != nil {
		log.Warn().Err(err).Msg("failed to purge expired admin sessions")
	} else if n > 0 {
		log.Debug().Int64("count", n).Msg("purged expired admin sessions")
	}

	return &Session{Token: row.Token, ExpiresAt: row.ExpiresAt}, nil
}

// Resume returns the live session for token and extends its expiry.
func (s *Service) Resume(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	db := s.db.WithContext(ctx)
	now := s.now()

	row, err := adminsession.Lookup(db, token, now)
	if errors.Is(err, adminsession.ErrSessionNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	if err = adminsession.Extend(db, row, s.ttl, now); err != nil {
		return nil, err
	}

	return &Session{Token: row.Token, ExpiresAt: row.ExpiresAt}, nil
}

// Logout removes every session row for token.
func (s *Service) Logout(ctx context.Context, token string) error {
	return adminsession.DeleteByToken(s.db.WithContext(ctx), token)
}

// PurgeExpired deletes expired session rows.
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	return adminsession.PurgeExpired(s.db.WithContext(ctx), s.now())
}
