package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with the configured cost. bcrypt
// generates a fresh random salt per call and embeds it in the digest, so two
// hashes of the same password differ while both still verify.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value using
// bcrypt's constant-time comparison. An empty digest never verifies.
func ComparePassword(hashed, plain string) error {
	if hashed == "" {
		return errors.New("empty password digest")
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
