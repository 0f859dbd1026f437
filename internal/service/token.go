package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gatherly/api/internal/model"
)

// Error definitions moved to errors.go

const defaultTokenDuration = time.Hour

// tokenClaims is the signed claim set. Identity fields are copied from the
// user record at issue time; a token reflects the record as it was then and
// is not invalidated by later profile edits.
type tokenClaims struct {
	UserID    string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
	IsAdmin   bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies access tokens. It keeps no per-token
// state; verification needs only the signing secret.
type TokenService struct {
	secret   []byte
	issuer   string
	duration time.Duration
}

// TokenServiceConfig holds configuration for the token service
type TokenServiceConfig struct {
	Secret   string
	Issuer   string
	Duration time.Duration // Default: 1 hour
}

// NewTokenService creates a new token service
func NewTokenService(cfg TokenServiceConfig) *TokenService {
	if cfg.Duration == 0 {
		cfg.Duration = defaultTokenDuration
	}
	if cfg.Issuer == "" {
		cfg.Issuer = "gatherly-api"
	}

	return &TokenService{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		duration: cfg.Duration,
	}
}

// Issue signs a token carrying the user's identity claims.
func (s *TokenService) Issue(user *model.User) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
		IsAdmin:   user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a signed token. Expired tokens return
// ErrTokenExpired; any other failure returns ErrTokenInvalid.
func (s *TokenService) Verify(tokenString string) (*model.TokenClaims, error) {
	claims := &tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	return &model.TokenClaims{
		UserID:    claims.UserID,
		Name:      claims.Name,
		Email:     claims.Email,
		CreatedAt: claims.CreatedAt,
		IsAdmin:   claims.IsAdmin,
	}, nil
}
