package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned when an empty password is hashed.
var ErrEmptyPassword = errors.New("password must not be empty")

// bcrypt encodes algorithm, cost, and salt into the digest, so the cost can
// be raised later without breaking digests already stored.
const passwordHashCost = 12

// HashPassword generates a salted bcrypt digest for the given password.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	return string(h), err
}

// VerifyPassword reports whether password matches the stored digest.
// Malformed digests count as a mismatch; there is no error path.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
