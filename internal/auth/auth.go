// Package auth issues and validates the bearer tokens that identify users to
// the API endpoints.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 30 * 24 * time.Hour

var ErrUnauthorized = errors.New("auth: invalid or missing token")

type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateToken signs a token identifying userID.
func GenerateToken(secret []byte, userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken parses and verifies a token, returning its claims.
func ValidateToken(secret []byte, tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.UserID == "" {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

// UserIDFromHeaders extracts and validates the bearer token from request
// headers, returning the authenticated user id. API Gateway does not
// normalize header casing, so both spellings are checked.
func UserIDFromHeaders(secret []byte, headers map[string]string) (string, error) {
	authHeader := headers["Authorization"]
	if authHeader == "" {
		authHeader = headers["authorization"]
	}
	if authHeader == "" {
		return "", fmt.Errorf("%w: missing authorization header", ErrUnauthorized)
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return "", fmt.Errorf("%w: malformed authorization header", ErrUnauthorized)
	}
	claims, err := ValidateToken(secret, token)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}
