package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates the administrator and issues short-lived JWTs
// for the admin endpoints.
type AuthService interface {
	Login(password string) (string, error)
}

type authService struct {
	passwordHash  []byte
	jwtSecret     string
	tokenDuration time.Duration
}

// NewAuthService takes either a precomputed bcrypt hash or, when hash is
// empty, hashes the plain password once at startup.
func NewAuthService(password, hash, jwtSecret string, tokenDuration time.Duration) (AuthService, error) {
	passwordHash := []byte(hash)
	if hash == "" {
		if password == "" {
			return nil, fmt.Errorf("no admin password configured")
		}
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing admin password: %w", err)
		}
		passwordHash = h
	}
	return &authService{
		passwordHash:  passwordHash,
		jwtSecret:     jwtSecret,
		tokenDuration: tokenDuration,
	}, nil
}

func (s *authService) Login(password string) (string, error) {
	if bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) != nil {
		log.Warn().Msg("Login: rejected admin authentication attempt")
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(s.tokenDuration).Unix(),
	})
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("signing admin token: %w", err)
	}
	return signed, nil
}
