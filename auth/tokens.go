// Package auth issues and validates the JWT session tokens that tie a
// learner's progress records together. Sessions are anonymous; the token
// carries a session ID and nothing else about the learner.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long a learner session token stays valid.
const DefaultTokenTTL = 30 * 24 * time.Hour

// TokenService signs and validates learner session tokens
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service. A zero ttl falls back to
// DefaultTokenTTL.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue generates a signed session token for a session ID
func (s *TokenService) Issue(sessionID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"type":       "session",
		"exp":        now.Add(s.ttl).Unix(),
		"iat":        now.Unix(),
	})

	return token.SignedString(s.secret)
}

// Validate checks a session token and returns the session ID it carries
func (s *TokenService) Validate(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secret, nil
	})

	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "session" {
		return "", errors.New("not a session token")
	}

	sessionID, ok := claims["session_id"].(string)
	if !ok || sessionID == "" {
		return "", errors.New("invalid session id in token")
	}

	return sessionID, nil
}
