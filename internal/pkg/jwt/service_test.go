package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACService_RoundTrip(t *testing.T) {
	svc := NewHMACService("test-secret", 100*time.Hour)
	userID := uuid.New()

	token, err := svc.Generate(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestHMACService_RejectsTamperedSignature(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)

	token, err := svc.Generate(uuid.New())
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.Validate(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestHMACService_RejectsWrongSecret(t *testing.T) {
	token, err := NewHMACService("secret-a", time.Hour).Generate(uuid.New())
	require.NoError(t, err)

	_, err = NewHMACService("secret-b", time.Hour).Validate(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestHMACService_RejectsExpiredToken(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	issued := time.Now()
	svc.now = func() time.Time { return issued }

	token, err := svc.Generate(uuid.New())
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestHMACService_RejectsGarbage(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	_, err := svc.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
