package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GroupRole is the closed set of roles a member can hold inside a group.
type GroupRole string

const (
	GroupRoleOwner  GroupRole = "owner"
	GroupRoleEditor GroupRole = "editor"
	GroupRoleViewer GroupRole = "viewer"
)

var (
	ErrNotAMember         = errors.New("user is not a member of this group")
	ErrInsufficientRole   = errors.New("member role is not allowed to perform this action")
	ErrInvalidGroupRole   = errors.New("invalid group role")
	ErrAlreadyMember      = errors.New("user is already a member of this group")
	ErrOwnerImmutable     = errors.New("the group owner cannot be removed or demoted")
	ErrInvalidCurrency    = errors.New("invalid currency code")
	ErrInvalidTaxRate     = errors.New("tax rate must be between 0 and 100")
	ErrOwnerNotInMembers  = errors.New("group owner must be a member with the owner role")
	ErrInvalidOwnerChange = errors.New("new owner must be an existing member other than the current owner")
)

// AllGroupRoles lists every valid role, highest privilege first.
var AllGroupRoles = []GroupRole{GroupRoleOwner, GroupRoleEditor, GroupRoleViewer}

// ParseGroupRole converts user input into a GroupRole, rejecting unknown values.
func ParseGroupRole(s string) (GroupRole, error) {
	role := GroupRole(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidGroupRole, s)
	}
	return role, nil
}

func (r GroupRole) IsValid() bool {
	switch r {
	case GroupRoleOwner, GroupRoleEditor, GroupRoleViewer:
		return true
	default:
		return false
	}
}

func (r GroupRole) String() string {
	return string(r)
}

var supportedCurrencies = map[string]bool{
	"USD": true,
	"EUR": true,
	"GBP": true,
	"CHF": true,
	"CAD": true,
	"AUD": true,
	"JPY": true,
	"INR": true,
}

// IsValidCurrency reports whether code is one of the supported ISO currency codes.
func IsValidCurrency(code string) bool {
	return supportedCurrencies[code]
}

// Group is the tenant boundary: members share transactions, recurring
// obligations and clients.
type Group struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name      string          `gorm:"type:varchar(100);not null" json:"name"`
	Currency  string          `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	TaxRate   decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"tax_rate"`
	OwnerID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	InviteKey string          `gorm:"type:varchar(8);uniqueIndex;not null" json:"invite_key"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`

	Members []GroupMember `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"members"`
}

// GroupMember records one user's membership. The (group_id, user_id) pair is unique.
type GroupMember struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	GroupID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_group_members_group_user" json:"group_id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_group_members_group_user;index" json:"user_id"`
	Role     GroupRole `gorm:"type:varchar(20);not null;default:'viewer'" json:"role"`
	JoinedAt time.Time `gorm:"not null" json:"joined_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// NewGroup builds a group whose owner is already enrolled with the owner role.
func NewGroup(name, currency string, taxRate decimal.Decimal, ownerID uuid.UUID, now time.Time) *Group {
	g := &Group{
		ID:       uuid.New(),
		Name:     name,
		Currency: currency,
		TaxRate:  taxRate,
		OwnerID:  ownerID,
	}
	g.Members = []GroupMember{{
		ID:       uuid.New(),
		GroupID:  g.ID,
		UserID:   ownerID,
		Role:     GroupRoleOwner,
		JoinedAt: now,
	}}
	return g
}

func (g *Group) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.Currency == "" {
		g.Currency = "USD"
	}

	now := time.Now()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	if g.UpdatedAt.IsZero() {
		g.UpdatedAt = now
	}

	return g.Validate()
}

func (g *Group) BeforeUpdate(tx *gorm.DB) error {
	g.UpdatedAt = time.Now()
	return nil
}

// Validate checks field ranges and the owner membership invariant.
func (g *Group) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return errors.New("group name is required")
	}
	if !IsValidCurrency(g.Currency) {
		return ErrInvalidCurrency
	}
	if g.TaxRate.IsNegative() || g.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidTaxRate
	}
	if g.OwnerID == uuid.Nil {
		return errors.New("group owner is required")
	}
	if m, ok := g.MemberIndex()[g.OwnerID]; !ok || m.Role != GroupRoleOwner {
		return ErrOwnerNotInMembers
	}
	return nil
}

// MemberIndex returns the members keyed by user id.
func (g *Group) MemberIndex() map[uuid.UUID]GroupMember {
	index := make(map[uuid.UUID]GroupMember, len(g.Members))
	for _, m := range g.Members {
		if _, seen := index[m.UserID]; seen {
			continue
		}
		index[m.UserID] = m
	}
	return index
}

// MemberFor returns the membership record of userID, if any.
func (g *Group) MemberFor(userID uuid.UUID) (GroupMember, bool) {
	m, ok := g.MemberIndex()[userID]
	return m, ok
}

// AddMember enrolls userID with role. Owners are only created through NewGroup
// or TransferOwnership.
func (g *Group) AddMember(userID uuid.UUID, role GroupRole, now time.Time) (GroupMember, error) {
	if !role.IsValid() || role == GroupRoleOwner {
		return GroupMember{}, ErrInvalidGroupRole
	}
	if _, exists := g.MemberFor(userID); exists {
		return GroupMember{}, ErrAlreadyMember
	}

	m := GroupMember{
		ID:       uuid.New(),
		GroupID:  g.ID,
		UserID:   userID,
		Role:     role,
		JoinedAt: now,
	}
	g.Members = append(g.Members, m)
	return m, nil
}

// ChangeRole updates a non-owner member's role.
func (g *Group) ChangeRole(userID uuid.UUID, role GroupRole) error {
	if !role.IsValid() || role == GroupRoleOwner {
		return ErrInvalidGroupRole
	}
	if userID == g.OwnerID {
		return ErrOwnerImmutable
	}
	for i := range g.Members {
		if g.Members[i].UserID == userID {
			g.Members[i].Role = role
			return nil
		}
	}
	return ErrNotAMember
}

// RemoveMember drops a non-owner member.
func (g *Group) RemoveMember(userID uuid.UUID) error {
	if userID == g.OwnerID {
		return ErrOwnerImmutable
	}
	for i := range g.Members {
		if g.Members[i].UserID == userID {
			g.Members = append(g.Members[:i], g.Members[i+1:]...)
			return nil
		}
	}
	return ErrNotAMember
}

// TransferOwnership promotes an existing member to owner and demotes the
// previous owner to editor.
func (g *Group) TransferOwnership(newOwnerID uuid.UUID) error {
	if newOwnerID == g.OwnerID {
		return ErrInvalidOwnerChange
	}
	if _, ok := g.MemberFor(newOwnerID); !ok {
		return ErrInvalidOwnerChange
	}
	for i := range g.Members {
		switch g.Members[i].UserID {
		case g.OwnerID:
			g.Members[i].Role = GroupRoleEditor
		case newOwnerID:
			g.Members[i].Role = GroupRoleOwner
		}
	}
	g.OwnerID = newOwnerID
	return nil
}

// Authorize decides whether userID may perform an action gated to allowed.
// It returns the member's role on success, ErrNotAMember when there is no
// membership and ErrInsufficientRole when the role is not in allowed.
func Authorize(g *Group, userID uuid.UUID, allowed ...GroupRole) (GroupRole, error) {
	m, ok := g.MemberFor(userID)
	if !ok {
		return "", ErrNotAMember
	}
	for _, role := range allowed {
		if m.Role == role {
			return m.Role, nil
		}
	}
	return m.Role, ErrInsufficientRole
}

func (g *Group) TableName() string {
	return "groups"
}

func (m *GroupMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.JoinedAt.IsZero() {
		m.JoinedAt = time.Now()
	}
	if !m.Role.IsValid() {
		return ErrInvalidGroupRole
	}
	return nil
}

func (m *GroupMember) TableName() string {
	return "group_members"
}
