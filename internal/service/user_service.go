package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"scorekeeper/internal/auth"
	apperr "scorekeeper/internal/errors"
	"scorekeeper/internal/model"
	"scorekeeper/internal/repository"
)

// UserService handles user registration.
type UserService interface {
	Register(ctx context.Context, payload map[string]interface{}) (model.SerializedUser, error)
}

type userService struct {
	users repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// Register validates the payload, enforces username uniqueness, hashes the
// password and persists the user. The lookup and insert are two separate
// operations; the unique index on username backstops concurrent duplicates,
// which then surface as persistence errors rather than silent overwrites.
func (s *userService) Register(ctx context.Context, payload map[string]interface{}) (model.SerializedUser, error) {
	if verr := ValidateNewUser(payload); verr != nil {
		return model.SerializedUser{}, verr
	}

	username := payload["username"].(string)
	password := payload["password"].(string)
	firstName := strings.TrimSpace(stringField(payload, "firstName"))
	lastName := strings.TrimSpace(stringField(payload, "lastName"))

	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return model.SerializedUser{}, apperr.NewValidationError("Username already taken", "username")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.SerializedUser{}, fmt.Errorf("check username: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return model.SerializedUser{}, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return model.SerializedUser{}, fmt.Errorf("create user: %w", err)
	}

	return user.Serialize(), nil
}

// stringField returns the string at key, or "" when the key is absent.
func stringField(payload map[string]interface{}, key string) string {
	v, _ := payload[key].(string)
	return v
}
