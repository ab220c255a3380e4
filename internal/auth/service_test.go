package auth

import (
	"context"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkshelf/linkshelf/internal/db/controller/credentials"
	"github.com/linkshelf/linkshelf/internal/db/dbtest"
	"github.com/linkshelf/linkshelf/internal/db/models"
)

func newTestService(t *testing.T, password string) (*Service, *time.Time) {
	t.Helper()

	db := dbtest.New(t)
	if password != "" {
		require.NoError(t, credentials.Set(db, password))
	}

	clock := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewService(db, time.Hour)
	s.now = func() time.Time { return clock }

	return s, &clock
}

func TestNewToken(t *testing.T) {
	a, err := NewToken()
	require.NoError(t, err)
	b, err := NewToken()
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)

	_, err = hex.DecodeString(a)
	assert.NoError(t, err)
}

func TestLogin(t *testing.T) {
	testCases := []struct {
		name     string
		stored   string
		entered  string
		expected error
	}{
		{"not set up", "", "secret", ErrNotSetUp},
		{"empty password", "secret", "   ", ErrEmptyPassword},
		{"empty beats not set up", "", "", ErrEmptyPassword},
		{"wrong password", "secret", "wrong", ErrIncorrectPassword},
		{"correct password", "secret", "secret", nil},
		{"trimmed input", "secret", "  secret\n", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestService(t, tc.stored)

			sess, err := s.Login(context.Background(), tc.entered)
			if tc.expected != nil {
				require.ErrorIs(t, err, tc.expected)
				assert.Nil(t, sess)
				return
			}

			require.NoError(t, err)
			assert.Len(t, sess.Token, 32)
			assert.Equal(t, time.Hour, sess.TTL(s.now()))
		})
	}
}

func TestResumeSlidesExpiry(t *testing.T) {
	s, clock := newTestService(t, "secret")
	ctx := context.Background()

	sess, err := s.Login(ctx, "secret")
	require.NoError(t, err)

	*clock = clock.Add(45 * time.Minute)
	resumed, err := s.Resume(ctx, sess.Token)
	require.NoError(t, err)
	assert.True(t, resumed.ExpiresAt.Equal(clock.Add(time.Hour)))

	// past the original hour, still alive thanks to the extension
	*clock = clock.Add(30 * time.Minute)
	_, err = s.Resume(ctx, sess.Token)
	require.NoError(t, err)

	// idle for longer than the ttl
	*clock = clock.Add(2 * time.Hour)
	_, err = s.Resume(ctx, sess.Token)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestResumeUnknownToken(t *testing.T) {
	s, _ := newTestService(t, "secret")

	_, err := s.Resume(context.Background(), "deadbeef")
	require.ErrorIs(t, err, ErrNoSession)

	_, err = s.Resume(context.Background(), "")
	require.ErrorIs(t, err, ErrNoSession)
}

func TestLogout(t *testing.T) {
	s, _ := newTestService(t, "secret")
	ctx := context.Background()

	sess, err := s.Login(ctx, "secret")
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx, sess.Token))

	_, err = s.Resume(ctx, sess.Token)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestLoginPurgesExpired(t *testing.T) {
	s, clock := newTestService(t, "secret")
	ctx := context.Background()

	_, err := s.Login(ctx, "secret")
	require.NoError(t, err)

	*clock = clock.Add(3 * time.Hour)
	_, err = s.Login(ctx, "secret")
	require.NoError(t, err)

	var count int64
	require.NoError(t, s.db.Model(&models.AdminSession{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
