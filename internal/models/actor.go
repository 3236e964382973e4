package models

import (
	"time"

	"github.com/google/uuid"
)

// Actor identifies who performs a mutating operation and where the request came from.
type Actor struct {
	UserID    uuid.UUID
	IPAddress string
	UserAgent string
}

// GroupAccess is the outcome of an authorization check: the resolved group and
// the caller's role in it. The zero value means no access.
type GroupAccess struct {
	Group *Group
	Role  GroupRole
}

// IsMember reports whether the access carries a membership.
func (a *GroupAccess) IsMember() bool {
	return a != nil && a.Group != nil && a.Role != ""
}

// GroupID returns the resolved group id or uuid.Nil.
func (a *GroupAccess) GroupID() uuid.UUID {
	if a == nil || a.Group == nil {
		return uuid.Nil
	}
	return a.Group.ID
}

// DueObligation pairs an obligation with the time it will run.
type DueObligation struct {
	Obligation RecurringObligation
	NextRun    time.Time
}

// InviteKeyLookup reports whether a key is already assigned to a group.
type InviteKeyLookup func(key string) (bool, error)
