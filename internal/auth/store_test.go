package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SignupAndLogin(t *testing.T) {
	s := NewStore()

	token, err := s.Signup("user@example.com", "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, ok := s.Authenticate(token)
	require.True(t, ok)
	assert.Equal(t, "user@example.com", email)

	// Login issues a fresh token; both stay valid.
	token2, err := s.Login("user@example.com", "hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, token, token2)
	_, ok = s.Authenticate(token2)
	assert.True(t, ok)
	_, ok = s.Authenticate(token)
	assert.True(t, ok)
}

func TestStore_DuplicateSignup(t *testing.T) {
	s := NewStore()
	_, err := s.Signup("user@example.com", "pw")
	require.NoError(t, err)
	_, err = s.Signup("user@example.com", "other")
	assert.Error(t, err)
}

func TestStore_LoginRejectsBadCredentials(t *testing.T) {
	s := NewStore()
	_, err := s.Signup("user@example.com", "correct")
	require.NoError(t, err)

	_, err = s.Login("user@example.com", "wrong")
	assert.Error(t, err)
	_, err = s.Login("nobody@example.com", "correct")
	assert.Error(t, err)
}

func TestStore_SignupValidation(t *testing.T) {
	s := NewStore()
	_, err := s.Signup("", "pw")
	assert.Error(t, err)
	_, err = s.Signup("user@example.com", "")
	assert.Error(t, err)
}

func TestStore_AuthenticateUnknownToken(t *testing.T) {
	s := NewStore()
	_, ok := s.Authenticate("deadbeef")
	assert.False(t, ok)
}
