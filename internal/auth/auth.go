// Package auth implements the admin credential check and the signed
// session tokens gating catalogue mutations.
package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"shopfront/internal/config"
	"shopfront/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Authenticator checks the configured admin credential pair and issues
// time-bounded HS256 session tokens.
type Authenticator struct {
	cfg config.AdminConfig
}

// New creates an authenticator from the admin configuration.
func New(cfg config.AdminConfig) *Authenticator {
	return &Authenticator{cfg: cfg}
}

// Login verifies the credential pair and returns a signed session
// token on success, model.ErrInvalidCredentials otherwise. The
// password comparison uses bcrypt when a hash is configured and a
// constant-time byte comparison otherwise.
func (a *Authenticator) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.cfg.Username)) == 1

	var passOK bool
	if a.cfg.PasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(a.cfg.PasswordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(a.cfg.Password)) == 1
	}

	if !userOK || !passOK {
		return "", model.ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.cfg.TokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(a.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a session token, returning the admin
// username it was issued to. Expired, malformed or foreign-signed
// tokens map to model.ErrUnauthorised.
func (a *Authenticator) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(a.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", model.ErrUnauthorised
	}

	return claims.Subject, nil
}
