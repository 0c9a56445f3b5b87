package util

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the fallback expiry applied when Generate is called
// without an explicit ttl. The service layer passes its own configured
// default (30 minutes) on every call, so this only covers direct callers.
const DefaultTokenTTL = 15 * time.Minute

type Claims struct {
	jwt.RegisteredClaims
}

type JWTManager struct {
	secret []byte
	method *jwt.SigningMethodHMAC
}

func NewJWTManager(secret, algorithm string) (*JWTManager, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must not be empty")
	}
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok || method == nil {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	return &JWTManager{secret: []byte(secret), method: method}, nil
}

// Generate signs a token with sub=subject expiring after ttl. A
// non-positive ttl falls back to DefaultTokenTTL.
func (m *JWTManager) Generate(subject string, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(m.method, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse validates signature and expiry. Callers get a single opaque error
// for every failure mode; they must not distinguish expired from
// malformed.
func (m *JWTManager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != m.method.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, errors.New("invalid token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
