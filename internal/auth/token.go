package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// tokenBytes is the amount of randomness in a session token.
const tokenBytes = 16

// NewToken returns a random session token of 32 hex characters.
func NewToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}
