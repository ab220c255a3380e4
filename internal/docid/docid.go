// Package docid generates store document identifiers.
//
// Ids are 20 characters drawn uniformly from [A-Za-z0-9], the same shape as
// hosted document store auto ids, giving roughly 119 bits of entropy.
package docid

import (
	"crypto/rand"
)

const (
	// Len is the length of a generated id.
	Len = 20

	// maxByte is the largest random byte accepted; anything above would bias
	// the modulo towards the first characters of the alphabet.
	maxByte = 255 - (256 % len(alphabet))

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// New returns a new random document id. It panics only if the system
// random source fails.
func New() string {
	return NewLen(Len)
}

// NewLen returns a random id of the given length.
func NewLen(length int) string {
	if length <= 0 {
		return ""
	}

	out := make([]byte, 0, length)
	// 25% head room covers the rejected bytes in nearly every round
	buf := make([]byte, length+length/4+1)

	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			panic("docid: error reading random bytes: " + err.Error())
		}

		for _, b := range buf {
			if int(b) > maxByte {
				continue
			}

			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}

	return string(out)
}
