// Package auth implements the credential primitives of the server: bcrypt
// password hashing and HS256 bearer tokens.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/r2vault/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken mints a signed HS256 token whose subject is the given
// username. The token carries issued-at and expiry claims; expiry is
// validityDuration from now.
func GenerateToken(subject string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetSubjectFromToken verifies signature and expiry of tokenString and
// returns its subject claim. Expired tokens yield common.ErrTokenExpired;
// every other verification failure yields common.ErrInvalidToken.
func GetSubjectFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
