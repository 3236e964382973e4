package dto

import (
	"time"

	"group-ledger/internal/models"

	"github.com/google/uuid"
)

// ClientRequest creates or replaces a client
type ClientRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"omitempty,email"`
	Notes string `json:"notes" validate:"max=2000"`
}

// ClientResponse represents a group's client
type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	GroupID   uuid.UUID `json:"groupId"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewClientResponse converts a stored client.
func NewClientResponse(c *models.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		GroupID:   c.GroupID,
		Name:      c.Name,
		Email:     c.Email,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}
