package service

import (
	"fmt"
	"strings"

	apperr "scorekeeper/internal/errors"
)

var (
	requiredFields          = []string{"username", "password"}
	stringFields            = []string{"username", "password", "firstName", "lastName"}
	explicitlyTrimmedFields = []string{"username", "password"}
)

const (
	minUsernameLen = 1
	minPasswordLen = 8
	// maxPasswordLen matches the 72-byte bcrypt input limit.
	maxPasswordLen = 72
)

// ValidateNewUser checks a raw registration payload and returns the first
// failure, or nil when the payload is acceptable. It is pure: the payload is
// never mutated, and name trimming happens later in the registration flow.
func ValidateNewUser(payload map[string]interface{}) *apperr.ValidationError {
	for _, field := range requiredFields {
		if _, ok := payload[field]; !ok {
			return apperr.NewValidationError("Missing field", field)
		}
	}

	for _, field := range stringFields {
		if v, ok := payload[field]; ok {
			if _, isString := v.(string); !isString {
				return apperr.NewValidationError("Incorrect field type: expected string", field)
			}
		}
	}

	// Whitespace padding is rejected, never silently trimmed.
	for _, field := range explicitlyTrimmedFields {
		value := payload[field].(string)
		if strings.TrimSpace(value) != value {
			return apperr.NewValidationError("Cannot start or end with whitespace", field)
		}
	}

	username := payload["username"].(string)
	password := payload["password"].(string)

	if len(username) < minUsernameLen {
		return apperr.NewValidationError(
			fmt.Sprintf("Must be at least %d characters long", minUsernameLen), "username")
	}
	if len(password) < minPasswordLen {
		return apperr.NewValidationError(
			fmt.Sprintf("Must be at least %d characters long", minPasswordLen), "password")
	}
	if len(password) > maxPasswordLen {
		return apperr.NewValidationError(
			fmt.Sprintf("Must be at most %d characters long", maxPasswordLen), "password")
	}

	return nil
}
