package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSecret is returned when tokens are requested without a signing secret
var ErrNoSecret = errors.New("jwt secret is not configured")

// AdminTokenService issues and validates admin session tokens
type AdminTokenService struct {
	secret []byte
	ttl    time.Duration
}

// AdminClaims are the claims carried by an admin session token
type AdminClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// NewAdminTokenService creates a token service. ttlSeconds <= 0 means 24 hours.
func NewAdminTokenService(secret string, ttlSeconds int) *AdminTokenService {
	ttl := time.Duration(ttlSeconds) * time.Second
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AdminTokenService{secret: []byte(secret), ttl: ttl}
}

// Enabled reports whether a signing secret is configured
func (s *AdminTokenService) Enabled() bool {
	return len(s.secret) > 0
}

// Issue signs a token for the admin email
func (s *AdminTokenService) Issue(email string) (string, error) {
	if !s.Enabled() {
		return "", ErrNoSecret
	}
	now := time.Now()
	claims := AdminClaims{
		Email: email,
		Role:  "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign admin token: %w", err)
	}
	return signed, nil
}

// Parse validates a token string and returns its claims
func (s *AdminTokenService) Parse(tokenString string) (*AdminClaims, error) {
	if !s.Enabled() {
		return nil, ErrNoSecret
	}
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Role != "admin" {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
