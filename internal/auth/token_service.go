package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and validates HS256 admin tokens
type TokenService struct {
	secretKey []byte
}

func NewTokenService(secretKey []byte) *TokenService {
	return &TokenService{secretKey: secretKey}
}

// Generate signs an admin token for subject valid for ttl
func (s *TokenService) Generate(subject string, ttl time.Duration) (string, error) {
	if len(s.secretKey) == 0 {
		return "", errors.New("admin token secret is not configured")
	}

	now := time.Now()
	claims := AdminClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Validate parses tokenString and checks signature, expiry and role
func (s *TokenService) Validate(tokenString string) (*AdminClaims, error) {
	if len(s.secretKey) == 0 {
		return nil, ErrInvalidToken
	}

	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || !claims.IsAdmin() {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
