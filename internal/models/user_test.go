package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() User {
	return User{Email: "ada@example.com", FirstName: "Ada", LastName: "King", Role: RoleUser}
}

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*User)
		want   error
	}{
		{"valid user", func(*User) {}, nil},
		{"valid admin", func(u *User) { u.Role = RoleAdmin }, nil},
		{"missing email", func(u *User) { u.Email = "" }, ErrUserEmailInvalid},
		{"malformed email", func(u *User) { u.Email = "ada.example.com" }, ErrUserEmailInvalid},
		{"blank first name", func(u *User) { u.FirstName = "  " }, ErrUserNameRequired},
		{"missing last name", func(u *User) { u.LastName = "" }, ErrUserNameRequired},
		{"group role is not a platform role", func(u *User) { u.Role = string(GroupRoleOwner) }, ErrUserRoleInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)
			err := u.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUser_BeforeCreate_DefaultsRoleAndID(t *testing.T) {
	u := validUser()
	u.Role = ""

	require.NoError(t, u.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Equal(t, RoleUser, u.Role)

	bad := validUser()
	bad.Email = "nope"
	assert.ErrorIs(t, bad.BeforeCreate(nil), ErrUserEmailInvalid)
}

func TestUser_RegisterFailedLogin_LocksAtThreshold(t *testing.T) {
	at := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	u := validUser()

	for i := 1; i < MaxFailedLoginAttempts; i++ {
		assert.False(t, u.RegisterFailedLogin(at))
		assert.Equal(t, i, u.FailedLoginAttempts)
	}
	assert.False(t, u.IsLocked())

	assert.True(t, u.RegisterFailedLogin(at), "threshold attempt locks")
	require.True(t, u.IsLocked())
	assert.Equal(t, at, *u.LockedAt)

	assert.False(t, u.RegisterFailedLogin(at.Add(time.Hour)), "already locked")
	assert.Equal(t, MaxFailedLoginAttempts, u.FailedLoginAttempts)
	assert.Equal(t, at, *u.LockedAt)
}

func TestUser_ClearFailedLogins(t *testing.T) {
	u := validUser()
	u.RegisterFailedLogin(time.Now())
	u.RegisterFailedLogin(time.Now())

	u.ClearFailedLogins()
	assert.Zero(t, u.FailedLoginAttempts)
	assert.False(t, u.IsLocked())
}

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "Ada King", (&User{FirstName: "Ada", LastName: "King"}).FullName())
	assert.Equal(t, "Ada", (&User{FirstName: "Ada"}).FullName())
}
