package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client is an external party a group bills or pays. Recurring obligations may
// reference one.
type Client struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	GroupID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"group_id"`
	Name      string         `gorm:"type:varchar(200);not null" json:"name"`
	Email     string         `gorm:"type:varchar(255)" json:"email,omitempty"`
	Notes     string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

func (c *Client) Validate() error {
	if c.GroupID == uuid.Nil {
		return ErrGroupRequired
	}
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("client name is required")
	}
	if c.Email != "" && emailRule.Var(c.Email, "email") != nil {
		return errors.New("invalid email format")
	}
	return nil
}

func (c *Client) TableName() string {
	return "clients"
}
