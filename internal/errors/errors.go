package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrLoginFailed is returned for any bad credential. The message is
// deliberately generic so callers cannot probe which field was wrong.
var ErrLoginFailed = errors.New("Incorrect username or password")

// ValidationError reports a client input failure at a specific field.
type ValidationError struct {
	Message  string
	Location string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Location)
}

// NewValidationError creates a validation error located at a field.
func NewValidationError(message, location string) *ValidationError {
	return &ValidationError{
		Message:  message,
		Location: location,
	}
}

// ValidationResponse is the transport body for a rejected registration.
type ValidationResponse struct {
	Code     int    `json:"code"`
	Reason   string `json:"reason"`
	Message  string `json:"message"`
	Location string `json:"location"`
}

// ToResponse converts a ValidationError to its 422 response body.
func (e *ValidationError) ToResponse() ValidationResponse {
	return ValidationResponse{
		Code:     http.StatusUnprocessableEntity,
		Reason:   "ValidationError",
		Message:  e.Message,
		Location: e.Location,
	}
}

// LoginFailureResponse is the generic body for rejected credentials.
type LoginFailureResponse struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// NewLoginFailureResponse builds the login failure body.
func NewLoginFailureResponse() LoginFailureResponse {
	return LoginFailureResponse{
		Reason:  "LoginError",
		Message: ErrLoginFailed.Error(),
	}
}

// InternalResponse is the opaque body for unexpected registration failures.
type InternalResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewInternalResponse builds the generic 500 body.
func NewInternalResponse() InternalResponse {
	return InternalResponse{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	}
}

// QueryFailureResponse is the opaque body for failed record operations.
type QueryFailureResponse struct {
	Error string `json:"error"`
}

// NewQueryFailureResponse builds the generic record failure body.
func NewQueryFailureResponse() QueryFailureResponse {
	return QueryFailureResponse{Error: "Something went wrong"}
}
