package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/alem-lms/internal/domain/shared"
)

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleAdministrator.IsValid())
	assert.True(t, RoleTeacher.IsValid())
	assert.True(t, RoleStudent.IsValid())
	assert.False(t, Role("janitor").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestNewIdentity(t *testing.T) {
	tests := []struct {
		name    string
		params  NewIdentityParams
		wantErr error
	}{
		{
			name: "valid student",
			params: NewIdentityParams{
				Username: "student1",
				Email:    "student1@example.com",
				Password: "studentpass",
				Role:     RoleStudent,
			},
		},
		{
			name: "empty username",
			params: NewIdentityParams{
				Username: "   ",
				Email:    "student1@example.com",
				Password: "studentpass",
				Role:     RoleStudent,
			},
			wantErr: shared.ErrEmptyValue,
		},
		{
			name: "username too long",
			params: NewIdentityParams{
				Username: strings.Repeat("a", 101),
				Email:    "student1@example.com",
				Password: "studentpass",
				Role:     RoleStudent,
			},
			wantErr: shared.ErrEmptyValue,
		},
		{
			name: "malformed email",
			params: NewIdentityParams{
				Username: "student1",
				Email:    "student1example.com",
				Password: "studentpass",
				Role:     RoleStudent,
			},
			wantErr: shared.ErrInvalidFormat,
		},
		{
			name: "empty password",
			params: NewIdentityParams{
				Username: "student1",
				Email:    "student1@example.com",
				Password: "",
				Role:     RoleStudent,
			},
			wantErr: shared.ErrEmptyValue,
		},
		{
			name: "unknown role",
			params: NewIdentityParams{
				Username: "student1",
				Email:    "student1@example.com",
				Password: "studentpass",
				Role:     Role("janitor"),
			},
			wantErr: shared.ErrInvalidInput,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, err := NewIdentity(tc.params)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, id.ID)
			assert.Equal(t, "student1", id.Username)
			assert.Equal(t, RoleStudent, id.Role)
		})
	}
}

func TestUsernameFromEmail(t *testing.T) {
	assert.Equal(t, "student1", UsernameFromEmail("student1@example.com"))
	assert.Equal(t, "first.last", UsernameFromEmail("first.last@example.com"))
	assert.Equal(t, "no-at-sign", UsernameFromEmail("no-at-sign"))
}

func TestIdentityStringOmitsPassword(t *testing.T) {
	id, err := NewIdentity(NewIdentityParams{
		Username: "admin1",
		Email:    "admin1@example.com",
		Password: "adminpass",
		Role:     RoleAdministrator,
	})
	require.NoError(t, err)
	assert.NotContains(t, id.String(), "adminpass")
}
