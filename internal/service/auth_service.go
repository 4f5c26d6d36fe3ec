package service

import (
	"context"
	"fmt"

	"scorekeeper/internal/auth"
)

// AuthService handles login and token refresh. Each operation picks its
// strategy explicitly; there is no shared strategy registry.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Refresh(tokenString string) (string, error)
}

type authService struct {
	passwordStrategy *auth.PasswordStrategy
	tokenStrategy    *auth.TokenStrategy
	jwtService       *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(passwordStrategy *auth.PasswordStrategy, tokenStrategy *auth.TokenStrategy, jwtService *auth.JWTService) AuthService {
	return &authService{
		passwordStrategy: passwordStrategy,
		tokenStrategy:    tokenStrategy,
		jwtService:       jwtService,
	}
}

// Login authenticates the credentials and issues a fresh auth token.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.passwordStrategy.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}

	token, err := s.jwtService.CreateAuthToken(user.Serialize())
	if err != nil {
		return "", fmt.Errorf("create auth token: %w", err)
	}
	return token, nil
}

// Refresh exchanges a still-valid token for a new one, extending the session
// without a password round trip.
func (s *authService) Refresh(tokenString string) (string, error) {
	user, err := s.tokenStrategy.Authenticate(tokenString)
	if err != nil {
		return "", err
	}

	token, err := s.jwtService.CreateAuthToken(user)
	if err != nil {
		return "", fmt.Errorf("create auth token: %w", err)
	}
	return token, nil
}
