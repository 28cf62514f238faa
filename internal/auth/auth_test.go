package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mrossetti/notekeep/internal/apperror"
	"github.com/mrossetti/notekeep/internal/storage"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(storage.NewSession(zap.NewNop()))
}

func TestSignup_LogsInImmediately(t *testing.T) {
	m := newTestManager(t)

	s, err := m.Signup("User@Example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", s.Email)
	assert.False(t, s.LoggedInAt.IsZero())

	assert.True(t, m.IsAuthenticated())
	u := m.CurrentUser()
	require.NotNil(t, u)
	assert.Equal(t, "user@example.com", u.Email)
}

func TestSignup_Validation(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		password  string
		wantField string
	}{
		{"missing email", "", "password123", apperror.FieldEmail},
		{"malformed email", "not-an-email", "password123", apperror.FieldEmail},
		{"missing password", "a@b.com", "", apperror.FieldPassword},
		{"short password", "a@b.com", "short", apperror.FieldPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager(t)
			_, err := m.Signup(tt.email, tt.password)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperror.ErrValidation))
			assert.Equal(t, tt.wantField, apperror.FieldOf(err))
			assert.False(t, m.IsAuthenticated())
		})
	}
}

func TestSignup_RejectsDuplicateEmail(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Signup("a@b.com", "password123")
	require.NoError(t, err)

	_, err = m.Signup("A@B.COM", "otherpassword")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrDuplicate))
	assert.Equal(t, apperror.FieldEmail, apperror.FieldOf(err))
}

func TestLogin(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Signup("a@b.com", "password123")
	require.NoError(t, err)
	m.Logout()

	s, err := m.Login("a@b.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", s.Email)
	assert.True(t, m.IsAuthenticated())
}

func TestLogin_UnknownEmail(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Login("ghost@b.com", "password123")
	require.Error(t, err)
	assert.Equal(t, apperror.FieldEmail, apperror.FieldOf(err))
	assert.Equal(t, "no account found with this email", err.Error())
}

func TestLogin_WrongPasswordLeavesSessionUntouched(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Signup("a@b.com", "password123")
	require.NoError(t, err)

	_, err = m.Login("a@b.com", "wrong-password")
	require.Error(t, err)
	assert.Equal(t, apperror.FieldPassword, apperror.FieldOf(err))
	assert.Equal(t, "incorrect password", err.Error())

	// The session from signup is still there.
	assert.True(t, m.IsAuthenticated())
}

func TestLogout(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Signup("a@b.com", "password123")
	require.NoError(t, err)

	m.Logout()
	assert.False(t, m.IsAuthenticated())
	assert.Nil(t, m.CurrentUser())

	// Logging out while logged out is harmless.
	m.Logout()
}

func TestChangePassword(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Signup("a@b.com", "password123")
	require.NoError(t, err)

	require.NoError(t, m.ChangePassword("password123", "newpassword1"))

	m.Logout()
	_, err = m.Login("a@b.com", "password123")
	require.Error(t, err)
	_, err = m.Login("a@b.com", "newpassword1")
	require.NoError(t, err)
}

func TestChangePassword_Failures(t *testing.T) {
	m := newTestManager(t)

	err := m.ChangePassword("x", "newpassword1")
	assert.True(t, errors.Is(err, apperror.ErrUnauthorized))

	_, err = m.Signup("a@b.com", "password123")
	require.NoError(t, err)

	err = m.ChangePassword("wrong", "newpassword1")
	assert.True(t, errors.Is(err, apperror.ErrValidation))

	err = m.ChangePassword("password123", "short")
	assert.True(t, errors.Is(err, apperror.ErrValidation))

	err = m.ChangePassword("password123", "password123")
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}
