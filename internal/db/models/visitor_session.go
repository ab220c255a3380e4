package models

import (
	"time"
)

// VisitorSession is a raw fiber session entry: which folders a visitor
// opened and which gates they unlocked. A zero ExpiresAt never expires.
type VisitorSession struct {
	Key       string `gorm:"primaryKey;column:sid;size:128"`
	Value     []byte
	ExpiresAt time.Time `gorm:"index"`
}
