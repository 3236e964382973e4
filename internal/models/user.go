package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Platform roles. Group permissions live on GroupMember; the platform role
// only separates administrators from everyone else.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// MaxFailedLoginAttempts consecutive wrong passwords lock the account.
const MaxFailedLoginAttempts = 5

var emailRule = validator.New()

var (
	ErrUserEmailInvalid = errors.New("user email is invalid")
	ErrUserNameRequired = errors.New("user first and last name are required")
	ErrUserRoleInvalid  = errors.New("user role is invalid")
)

type User struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email               string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash        string         `gorm:"type:varchar(255);not null" json:"-"`
	FirstName           string         `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName            string         `gorm:"type:varchar(100);not null" json:"lastName"`
	Role                string         `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	FailedLoginAttempts int            `gorm:"not null;default:0" json:"-"`
	LockedAt            *time.Time     `json:"lockedAt,omitempty"`
	LastLoginAt         *time.Time     `json:"lastLoginAt,omitempty"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	return u.Validate()
}

func (u *User) BeforeUpdate(tx *gorm.DB) error {
	// Column updates (Update/Updates with a map) carry no full record.
	if _, partial := tx.Statement.Dest.(map[string]any); partial {
		return nil
	}
	return u.Validate()
}

func (u *User) Validate() error {
	if err := emailRule.Var(u.Email, "required,email"); err != nil {
		return fmt.Errorf("%w: %q", ErrUserEmailInvalid, u.Email)
	}
	if strings.TrimSpace(u.FirstName) == "" || strings.TrimSpace(u.LastName) == "" {
		return ErrUserNameRequired
	}
	if u.Role != RoleUser && u.Role != RoleAdmin {
		return fmt.Errorf("%w: %q", ErrUserRoleInvalid, u.Role)
	}
	return nil
}

func (u *User) IsLocked() bool { return u.LockedAt != nil }

// RegisterFailedLogin counts a wrong password and reports whether this attempt
// locked the account.
func (u *User) RegisterFailedLogin(at time.Time) bool {
	if u.IsLocked() {
		return false
	}
	u.FailedLoginAttempts++
	if u.FailedLoginAttempts < MaxFailedLoginAttempts {
		return false
	}
	u.LockedAt = &at
	return true
}

// ClearFailedLogins resets the counter after a successful login.
func (u *User) ClearFailedLogins() {
	u.FailedLoginAttempts = 0
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
