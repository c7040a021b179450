package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	token, user, err := svc.Register("alice@example.com", "password123", "Alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Zero(t, user.TotalRaces)

	userID, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	token, loggedIn, err := svc.Login("alice@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, _, err := svc.Register("alice@example.com", "password123", "Alice")
	require.NoError(t, err)

	_, _, err = svc.Register("alice@example.com", "different", "Alice Again")
	assert.EqualError(t, err, "email already registered")
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, _, err := svc.Register("alice@example.com", "password123", "Alice")
	require.NoError(t, err)

	_, _, err = svc.Login("alice@example.com", "nope")
	assert.EqualError(t, err, "invalid email or password")

	_, _, err = svc.Login("nobody@example.com", "password123")
	assert.EqualError(t, err, "invalid email or password")
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)

	// A token signed with another secret must not validate.
	other := NewAuthService(db, "other-secret")
	token, err := other.GenerateToken("some-user")
	require.NoError(t, err)
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
