package dto

import (
	"time"

	"group-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateGroupRequest contains the data for a new group
type CreateGroupRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=100"`
	Currency string          `json:"currency" validate:"omitempty,currency"`
	TaxRate  decimal.Decimal `json:"taxRate" validate:"percent"`
}

// UpdateGroupRequest contains the editable group settings
type UpdateGroupRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=100"`
	Currency string          `json:"currency" validate:"required,currency"`
	TaxRate  decimal.Decimal `json:"taxRate" validate:"percent"`
}

// JoinGroupRequest carries an invite key
type JoinGroupRequest struct {
	InviteKey string `json:"inviteKey" validate:"required,invite_key"`
}

// AddMemberRequest enrolls an existing user by email
type AddMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,member_role"`
}

// ChangeRoleRequest changes a member's role
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,member_role"`
}

// TransferOwnershipRequest names the member who becomes owner
type TransferOwnershipRequest struct {
	NewOwnerID uuid.UUID `json:"newOwnerId" validate:"required"`
}

// MemberResponse is one membership as seen by other members
type MemberResponse struct {
	UserID   uuid.UUID `json:"userId"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
	Email    string    `json:"email,omitempty"`
	Name     string    `json:"name,omitempty"`
}

// GroupResponse is a group with its members. InviteKey is only filled for owners.
type GroupResponse struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Currency  string           `json:"currency"`
	TaxRate   string           `json:"taxRate"`
	OwnerID   uuid.UUID        `json:"ownerId"`
	InviteKey string           `json:"inviteKey,omitempty"`
	Role      string           `json:"role,omitempty"`
	Members   []MemberResponse `json:"members"`
	CreatedAt time.Time        `json:"createdAt"`
}

// InviteKeyResponse returns a freshly generated invite key
type InviteKeyResponse struct {
	InviteKey string `json:"inviteKey"`
}

// NewGroupResponse converts a group for a viewer holding role.
func NewGroupResponse(g *models.Group, role models.GroupRole) GroupResponse {
	resp := GroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		Currency:  g.Currency,
		TaxRate:   g.TaxRate.StringFixed(2),
		OwnerID:   g.OwnerID,
		Role:      string(role),
		Members:   make([]MemberResponse, 0, len(g.Members)),
		CreatedAt: g.CreatedAt,
	}
	if role == models.GroupRoleOwner {
		resp.InviteKey = g.InviteKey
	}
	for _, m := range g.Members {
		member := MemberResponse{
			UserID:   m.UserID,
			Role:     string(m.Role),
			JoinedAt: m.JoinedAt,
		}
		if m.User != nil {
			member.Email = m.User.Email
			member.Name = m.User.FullName()
		}
		resp.Members = append(resp.Members, member)
	}
	return resp
}

// GroupSummary is a group as listed for one of its members
type GroupSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Currency string    `json:"currency"`
	Role     string    `json:"role"`
}

// NewGroupSummaries lists groups with the role userID holds in each.
func NewGroupSummaries(groups []models.Group, userID uuid.UUID) []GroupSummary {
	out := make([]GroupSummary, 0, len(groups))
	for i := range groups {
		member, _ := groups[i].MemberFor(userID)
		out = append(out, GroupSummary{
			ID:       groups[i].ID,
			Name:     groups[i].Name,
			Currency: groups[i].Currency,
			Role:     string(member.Role),
		})
	}
	return out
}
