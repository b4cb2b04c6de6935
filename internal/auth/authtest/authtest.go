// Package authtest mints bearer tokens for tests. Production tokens come
// from the authentication service.
package authtest

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/party-model/backend/internal/auth"
)

// Sign signs claims with secret using HS256.
func Sign(t testing.TB, secret string, claims auth.Claims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

// Token returns a valid one-hour token for userID with role.
func Token(t testing.TB, secret string, userID int64, role string) string {
	t.Helper()
	now := time.Now()
	return Sign(t, secret, auth.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    auth.Issuer,
		},
	})
}
