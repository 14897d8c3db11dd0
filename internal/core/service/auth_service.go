package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/liquidglass/portfolio-api/internal/core/domain"
	"github.com/liquidglass/portfolio-api/internal/core/ports"
)

// AuthService authenticates the site operator against a bcrypt password hash
// from configuration and issues HS256 tokens for the admin surface.
type AuthService struct {
	passwordHash string
	jwtSecret    string
	tokenTTL     time.Duration
}

func NewAuthService(passwordHash, jwtSecret string, tokenTTL time.Duration) ports.AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{passwordHash: passwordHash, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Login verifies the operator password and returns a signed token. An empty
// configured hash disables the admin surface entirely.
func (s *AuthService) Login(ctx context.Context, password string) (string, error) {
	if s.passwordHash == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": domain.RoleAdmin,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
