package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGroup(t *testing.T) *Group {
	t.Helper()
	return NewGroup("Household", "EUR", decimal.NewFromInt(19), uuid.New(), time.Now())
}

func TestNewGroup_EnrollsOwner(t *testing.T) {
	ownerID := uuid.New()
	g := NewGroup("Studio", "USD", decimal.Zero, ownerID, time.Now())

	require.Len(t, g.Members, 1)
	assert.Equal(t, ownerID, g.Members[0].UserID)
	assert.Equal(t, GroupRoleOwner, g.Members[0].Role)
	assert.Equal(t, g.ID, g.Members[0].GroupID)
	assert.NoError(t, g.Validate())
}

func TestParseGroupRole(t *testing.T) {
	tests := []struct {
		input   string
		want    GroupRole
		wantErr bool
	}{
		{input: "owner", want: GroupRoleOwner},
		{input: " Editor ", want: GroupRoleEditor},
		{input: "VIEWER", want: GroupRoleViewer},
		{input: "admin", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			role, err := ParseGroupRole(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidGroupRole)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, role)
		})
	}
}

func TestGroup_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(g *Group)
		wantErr error
	}{
		{name: "valid", mutate: func(g *Group) {}},
		{name: "unsupported currency", mutate: func(g *Group) { g.Currency = "XYZ" }, wantErr: ErrInvalidCurrency},
		{name: "negative tax rate", mutate: func(g *Group) { g.TaxRate = decimal.NewFromInt(-1) }, wantErr: ErrInvalidTaxRate},
		{name: "tax rate above 100", mutate: func(g *Group) { g.TaxRate = decimal.NewFromFloat(100.5) }, wantErr: ErrInvalidTaxRate},
		{name: "owner missing from members", mutate: func(g *Group) { g.Members = nil }, wantErr: ErrOwnerNotInMembers},
		{name: "owner demoted", mutate: func(g *Group) { g.Members[0].Role = GroupRoleEditor }, wantErr: ErrOwnerNotInMembers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGroup(t)
			tt.mutate(g)
			err := g.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGroup_AddMember(t *testing.T) {
	g := newTestGroup(t)
	userID := uuid.New()

	m, err := g.AddMember(userID, GroupRoleViewer, time.Now())
	require.NoError(t, err)
	assert.Equal(t, GroupRoleViewer, m.Role)
	assert.Len(t, g.Members, 2)

	_, err = g.AddMember(userID, GroupRoleEditor, time.Now())
	assert.ErrorIs(t, err, ErrAlreadyMember)

	_, err = g.AddMember(uuid.New(), GroupRoleOwner, time.Now())
	assert.ErrorIs(t, err, ErrInvalidGroupRole)
	assert.Len(t, g.Members, 2)
}

func TestGroup_ChangeRoleAndRemove(t *testing.T) {
	g := newTestGroup(t)
	userID := uuid.New()
	_, err := g.AddMember(userID, GroupRoleViewer, time.Now())
	require.NoError(t, err)

	require.NoError(t, g.ChangeRole(userID, GroupRoleEditor))
	m, ok := g.MemberFor(userID)
	require.True(t, ok)
	assert.Equal(t, GroupRoleEditor, m.Role)

	assert.ErrorIs(t, g.ChangeRole(g.OwnerID, GroupRoleViewer), ErrOwnerImmutable)
	assert.ErrorIs(t, g.ChangeRole(uuid.New(), GroupRoleViewer), ErrNotAMember)
	assert.ErrorIs(t, g.RemoveMember(g.OwnerID), ErrOwnerImmutable)

	require.NoError(t, g.RemoveMember(userID))
	_, ok = g.MemberFor(userID)
	assert.False(t, ok)
	assert.ErrorIs(t, g.RemoveMember(userID), ErrNotAMember)
}

func TestGroup_TransferOwnership(t *testing.T) {
	g := newTestGroup(t)
	oldOwner := g.OwnerID
	newOwner := uuid.New()

	assert.ErrorIs(t, g.TransferOwnership(newOwner), ErrInvalidOwnerChange)
	assert.ErrorIs(t, g.TransferOwnership(oldOwner), ErrInvalidOwnerChange)

	_, err := g.AddMember(newOwner, GroupRoleViewer, time.Now())
	require.NoError(t, err)
	require.NoError(t, g.TransferOwnership(newOwner))

	assert.Equal(t, newOwner, g.OwnerID)
	m, _ := g.MemberFor(newOwner)
	assert.Equal(t, GroupRoleOwner, m.Role)
	m, _ = g.MemberFor(oldOwner)
	assert.Equal(t, GroupRoleEditor, m.Role)
	assert.NoError(t, g.Validate())
}

func TestAuthorize(t *testing.T) {
	g := newTestGroup(t)
	editor := uuid.New()
	viewer := uuid.New()
	_, err := g.AddMember(editor, GroupRoleEditor, time.Now())
	require.NoError(t, err)
	_, err = g.AddMember(viewer, GroupRoleViewer, time.Now())
	require.NoError(t, err)

	writers := []GroupRole{GroupRoleOwner, GroupRoleEditor}

	tests := []struct {
		name     string
		userID   uuid.UUID
		allowed  []GroupRole
		wantRole GroupRole
		wantErr  error
	}{
		{name: "owner may write", userID: g.OwnerID, allowed: writers, wantRole: GroupRoleOwner},
		{name: "editor may write", userID: editor, allowed: writers, wantRole: GroupRoleEditor},
		{name: "viewer may not write", userID: viewer, allowed: writers, wantRole: GroupRoleViewer, wantErr: ErrInsufficientRole},
		{name: "viewer may read", userID: viewer, allowed: AllGroupRoles, wantRole: GroupRoleViewer},
		{name: "stranger", userID: uuid.New(), allowed: AllGroupRoles, wantErr: ErrNotAMember},
		{name: "empty allowed set", userID: g.OwnerID, wantRole: GroupRoleOwner, wantErr: ErrInsufficientRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := Authorize(g, tt.userID, tt.allowed...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantRole, role)
		})
	}
}

func TestGroup_MemberIndexFirstEntryWins(t *testing.T) {
	g := newTestGroup(t)
	g.Members = append(g.Members, GroupMember{UserID: g.OwnerID, Role: GroupRoleViewer})

	m, ok := g.MemberFor(g.OwnerID)
	require.True(t, ok)
	assert.Equal(t, GroupRoleOwner, m.Role)
}
