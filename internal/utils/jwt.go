package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Elayaraja1609/TodoApplication/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT access token for the
// given user.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Audience  (aud): the intended token consumer (the mobile client)
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - email, role:     user attributes the client renders without an extra
//     profile round-trip
//
// All parameters are required. Returns an error if any of them are empty or
// zero.
func GenerateJWTToken(issuer, audience string, user models.User, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || audience == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			Subject:   strconv.FormatInt(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: user.Email,
		Role:  user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		AccessClaims: *claims,
		SignedString: tokenString,
		UserID:       user.ID,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims. This is the ordinary request-path validation: an expired token
// is rejected here.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against tokenIssuer
//   - Audience (aud) claim check against tokenAudience
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and conversion to int64 UserID
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer, tokenAudience string) (models.Token, error) {
	var claims models.AccessClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithAudience(tokenAudience), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := subjectUserID(&claims)
	if err != nil {
		return models.Token{}, err
	}

	return models.Token{Token: token, AccessClaims: claims, SignedString: tokenString, UserID: userID}, nil
}

// ParseExpiredJWTToken validates a JWT token string while deliberately
// tolerating an elapsed expiry claim. It is used exclusively by the refresh
// flow, which must recover the identity embedded in an access token that has
// just expired.
//
// Every other check stays strict: a bad signature, a wrong issuer, a wrong
// audience or a missing subject rejects the token regardless of expiry.
func ParseExpiredJWTToken(tokenString, tokenSignKey, tokenIssuer, tokenAudience string) (models.Token, error) {
	var claims models.AccessClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithoutClaimsValidation(), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred parsing expired token: %w", err)
	}

	// Claims validation was disabled above, so issuer and audience are
	// checked by hand; only the expiry check is skipped.
	if claims.Issuer != tokenIssuer {
		return models.Token{}, errors.New("unexpected token issuer")
	}
	if !containsAudience(claims.Audience, tokenAudience) {
		return models.Token{}, errors.New("unexpected token audience")
	}

	userID, err := subjectUserID(&claims)
	if err != nil {
		return models.Token{}, err
	}

	return models.Token{Token: token, AccessClaims: claims, SignedString: tokenString, UserID: userID}, nil
}

func subjectUserID(claims *models.AccessClaims) (int64, error) {
	userIDStr, err := claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if userIDStr == "" {
		return 0, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error occurred during converting subject to user ID: %w", err)
	}

	return userID, nil
}

func containsAudience(aud jwt.ClaimStrings, expected string) bool {
	for _, a := range aud {
		if a == expected {
			return true
		}
	}
	return false
}
