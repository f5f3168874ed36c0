// Package password wraps bcrypt hashing so that services never touch the
// hash representation directly.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes plaintext passwords and verifies candidates against stored hashes.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Matches(plaintext, hash string) bool
}

type bcryptHasher struct {
	cost int
}

// NewHasher creates a bcrypt-backed Hasher with the default cost.
func NewHasher() Hasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (h *bcryptHasher) Matches(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
