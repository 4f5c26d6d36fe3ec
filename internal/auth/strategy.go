package auth

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperr "scorekeeper/internal/errors"
	"scorekeeper/internal/model"
)

// UserFinder is the slice of the credential store the password strategy needs.
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

// PasswordStrategy authenticates a username/password pair against the
// credential store.
type PasswordStrategy struct {
	users UserFinder
}

// NewPasswordStrategy creates a password-based auth strategy.
func NewPasswordStrategy(users UserFinder) *PasswordStrategy {
	return &PasswordStrategy{users: users}
}

// Authenticate looks the user up and verifies the password. An unknown
// username and a wrong password both yield ErrLoginFailed so the response
// never reveals which one it was. Store failures pass through as hard errors.
func (s *PasswordStrategy) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrLoginFailed
		}
		return nil, err
	}

	if !CheckPassword(password, user.PasswordHash) {
		return nil, apperr.ErrLoginFailed
	}

	return user, nil
}

// TokenStrategy authenticates a bearer token and yields the identity
// embedded in its claims.
type TokenStrategy struct {
	jwtService *JWTService
}

// NewTokenStrategy creates a token-based auth strategy.
func NewTokenStrategy(jwtService *JWTService) *TokenStrategy {
	return &TokenStrategy{jwtService: jwtService}
}

// Authenticate verifies the token signature and expiry and extracts the
// embedded user claim.
func (s *TokenStrategy) Authenticate(tokenString string) (model.SerializedUser, error) {
	claims, err := s.jwtService.ValidateToken(tokenString)
	if err != nil {
		return model.SerializedUser{}, ErrInvalidToken
	}
	return claims.User, nil
}
