package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"scorekeeper/internal/model"
)

var testUser = model.SerializedUser{
	Username:  "gopher",
	FirstName: "Go",
	LastName:  "Pher",
}

func TestJWTServiceRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.CreateAuthToken(testUser)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "gopher", claims.Subject)
	assert.Equal(t, testUser, claims.User)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTServiceRejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)

	token, err := svc.CreateAuthToken(testUser)
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTServiceRejectsTamperedToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.CreateAuthToken(testUser)
	assert.NoError(t, err)

	// Flip a character in the payload segment.
	parts := strings.Split(token, ".")
	assert.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = svc.ValidateToken(tampered)
	assert.Error(t, err)
}

func TestJWTServiceRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService("issuer-secret", time.Hour)
	verifier := NewJWTService("other-secret", time.Hour)

	token, err := issuer.CreateAuthToken(testUser)
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}
