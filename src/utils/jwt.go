package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const adminTokenTTL = 12 * time.Hour

type AdminClaims struct {
	Admin string `json:"admin"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies admin tokens with one HMAC secret.
type TokenIssuer struct {
	secret []byte
	now    func() time.Time
}

func NewTokenIssuer(secret string) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("JWT_SECRET not configured")
	}
	return &TokenIssuer{secret: []byte(secret), now: time.Now}, nil
}

func (ti *TokenIssuer) Generate(admin string) (string, error) {
	now := ti.now()
	claims := AdminClaims{
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(adminTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ti.secret)
}

func (ti *TokenIssuer) Parse(tokenStr string) (*AdminClaims, error) {
	if tokenStr == "" {
		return nil, fmt.Errorf("empty token string")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &AdminClaims{}, func(t *jwt.Token) (interface{}, error) {
		return ti.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(ti.now))

	if err != nil || token == nil {
		return nil, fmt.Errorf("token parsing failed: %v", err)
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid || claims.Admin == "" {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
