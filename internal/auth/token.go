package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hongminglow/yapekuna/internal/models"
)

// ErrInvalidToken covers malformed, tampered and expired session tokens.
var ErrInvalidToken = errors.New("auth: invalid session token")

// Claims is what a session token asserts once verified.
type Claims struct {
	UserID   models.UserID
	IssuedAt time.Time
}

// TokenManager signs and verifies the session tokens kept on disk.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a manager with the provided secret, issuer, and lifetime.
func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Generate issues a signed HS256 token for the user.
func (t *TokenManager) Generate(id models.UserID) (string, time.Time, error) {
	if id.IsZero() {
		return "", time.Time{}, errors.New("generate token: empty user id")
	}
	now := t.now().Truncate(time.Second)
	claims := jwt.RegisteredClaims{
		Issuer:    t.issuer,
		Subject:   id.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, now, nil
}

// Parse verifies a token and returns its claims.
func (t *TokenManager) Parse(raw string) (Claims, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" || claims.IssuedAt == nil {
		return Claims{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return Claims{UserID: models.UserID(claims.Subject), IssuedAt: claims.IssuedAt.Time}, nil
}
