package models

import (
	"time"
)

// AdminCredentialID is the id of the singleton credentials row.
const AdminCredentialID = "credentials"

// AdminCredential holds the admin password. The value is plaintext unless it
// was written as an argon2id hash.
type AdminCredential struct {
	ID        string `gorm:"primaryKey;size:32"`
	Password  string `gorm:"size:255;not null"`
	UpdatedAt time.Time
}

// AdminSession mirrors the adminSession cookie.
type AdminSession struct {
	ID        uint64 `gorm:"primaryKey"`
	Token     string `gorm:"size:64;not null;index"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"not null;index"`
}

// Expired reports whether the session is no longer valid at now.
func (s *AdminSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
