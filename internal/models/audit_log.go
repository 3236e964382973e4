package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audit actions. Group-scoped actions are recorded against the group resource
// so they show up in the group activity feed.
const (
	AuditActionRegister      = "register"
	AuditActionLogin         = "login"
	AuditActionFailedLogin   = "failed_login"
	AuditActionAccountLocked = "account_locked"
	AuditActionTokenRefresh  = "token_refresh"
	AuditActionLogout        = "logout"

	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"

	AuditActionGroupCreated     = "group_created"
	AuditActionGroupJoined      = "group_joined"
	AuditActionGroupLeft        = "group_left"
	AuditActionMemberAdded      = "member_added"
	AuditActionMemberRemoved    = "member_removed"
	AuditActionRoleChanged      = "role_changed"
	AuditActionOwnershipMoved   = "ownership_transferred"
	AuditActionInviteKeyRotated = "invite_key_regenerated"

	AuditActionRecurringExecuted = "recurring_executed"
	AuditActionRecurringDisabled = "recurring_deactivated"
)

// AuditLog is one append-only entry of the activity trail.
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"userId,omitempty"`
	Action     string     `gorm:"type:varchar(64);not null;index" json:"action"`
	Resource   string     `gorm:"type:varchar(64);not null;index:idx_audit_resource" json:"resource"`
	ResourceID string     `gorm:"type:varchar(64);index:idx_audit_resource" json:"resourceId,omitempty"`
	IPAddress  string     `gorm:"type:varchar(45)" json:"ipAddress,omitempty"`
	UserAgent  string     `gorm:"type:text" json:"userAgent,omitempty"`
	Metadata   Metadata   `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;index" json:"createdAt"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
}

func (AuditLog) TableName() string { return "audit_logs" }

func (l *AuditLog) BeforeCreate(*gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	return nil
}

// SetMetadata adds one key, allocating the map on first use.
func (l *AuditLog) SetMetadata(key string, value any) {
	l.Metadata = l.Metadata.With(key, value)
}

// Metadata is free-form context attached to an audit entry. It is persisted as
// JSON text so the same column works on postgres and sqlite.
type Metadata map[string]any

// With returns m with key set, allocating m when it is nil.
func (m Metadata) With(key string, value any) Metadata {
	if m == nil {
		m = make(Metadata, 1)
	}
	m[key] = value
	return m
}

// String reads a string value, returning "" when the key is absent or holds
// another type.
func (m Metadata) String(key string) string {
	s, _ := m[key].(string)
	return s
}

func (m Metadata) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(map[string]any(m))
	if err != nil {
		return nil, fmt.Errorf("encoding audit metadata: %w", err)
	}
	return string(raw), nil
}

func (m *Metadata) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("scanning audit metadata: unsupported type %T", src)
	}
	if len(raw) == 0 {
		*m = nil
		return nil
	}
	decoded := Metadata{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("decoding audit metadata: %w", err)
	}
	*m = decoded
	return nil
}
