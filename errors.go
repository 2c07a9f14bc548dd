package auth

import (
	"errors"
	"strings"
)

// ErrUserNotFound is the error we return when no record matches a lookup
var ErrUserNotFound = errors.New("user not found")

// ErrUserExists marks a uniqueness constraint violation on insert
var ErrUserExists = errors.New("user already exists")

// ErrNoEmptyString rejects hashing an empty password
var ErrNoEmptyString = errors.New("password must not be empty")

// ErrMismatchedHashAndPassword is the constant time compare failure
var ErrMismatchedHashAndPassword = errors.New("password does not match")

// ErrMissingSigningKey means the token service was built without a secret
var ErrMissingSigningKey = errors.New("missing signing key")

// IsUniqueConstraintError will check if a store error was caused by a
// uniqueness constraint. Covers the sqlite and postgres driver messages.
func IsUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "duplicate key value violates unique constraint")
}
