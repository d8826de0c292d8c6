package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword computes a bcrypt hash of the given plaintext using the
// default cost. The per-hash random salt is embedded in the output, so two
// hashes of the same plaintext differ.
//
// The same primitive is used for account passwords and app-unlock PINs;
// only the length policy differs and is enforced by the caller.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the given bcrypt hash.
// The comparison is constant-time inside bcrypt. A malformed or empty hash
// yields false, never an error: verification failure is an expected outcome.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
