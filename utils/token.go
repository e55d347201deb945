package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionIssuer = "cart-widget"

type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func GenerateSessionToken(secret, sessionID string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("session secret is not configured")
	}

	now := time.Now()
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateSessionToken(secret, tokenString string) (*SessionClaims, error) {
	keyFunc := func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}
	if !token.Valid || claims.SessionID == "" {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}
