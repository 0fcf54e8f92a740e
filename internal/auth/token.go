package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrSigningSecretMissing indicates the signing secret was never
// configured. This is a startup fault, not a per-request condition.
var ErrSigningSecretMissing = errors.New("token signing secret not configured")

// TokenManager issues and verifies the signed credentials presented on
// every sensitive request.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttlMinutes int) *TokenManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &TokenManager{secret: []byte(secret), ttl: time.Duration(ttlMinutes) * time.Minute}
}

// Claims describes the JWT payload. Identity is the email alone; the
// role is deliberately not embedded so admin checks always consult the
// directory (see RequireAdmin).
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Issue builds and signs a credential for the given email. Issuance is
// unconditional: the email's existence is not checked here.
func (tm *TokenManager) Issue(email string) (string, time.Time, error) {
	if len(tm.secret) == 0 {
		return "", time.Time{}, ErrSigningSecretMissing
	}

	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Parse validates signature and expiry and returns the claims. Callers
// must not surface the distinction between a bad signature, an expired
// token, and garbage input.
func (tm *TokenManager) Parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// TTL reports the configured credential lifetime.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}
