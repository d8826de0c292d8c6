package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// refreshTokenBytes is the entropy of a refresh token before encoding.
const refreshTokenBytes = 32

// GenerateRefreshToken returns a cryptographically random opaque string
// handed to the client alongside every access token. It carries no claims;
// the refresh flow treats it as an opaque pairing value.
func GenerateRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating refresh token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
