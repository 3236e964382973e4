package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Token kinds carried in Claims.Kind. An access token is never accepted where
// a refresh token is expected and vice versa.
const (
	TokenKindAccess  = "access"
	TokenKindRefresh = "refresh"
)

// Claims is the JWT payload issued to ledger users. The subject is the user id.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	Kind  string `json:"kind"`
}

// UserID parses the subject.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// Expiry returns the expiration time in UTC, or the zero time when absent.
func (c *Claims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time.UTC()
}

// RefreshToken is one login session. Only the SHA-256 of the token is
// stored; the client address lets a user tell sessions apart.
type RefreshToken struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	TokenHash string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	IPAddress string     `gorm:"type:varchar(45)"`
	UserAgent string     `gorm:"type:text"`
	ExpiresAt time.Time  `gorm:"not null;index"`
	RevokedAt *time.Time `gorm:"index"`
	CreatedAt time.Time  `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (RefreshToken) TableName() string { return "refresh_tokens" }

func (rt *RefreshToken) BeforeCreate(*gorm.DB) error {
	rt.ID = ensureID(rt.ID)
	return nil
}

// UsableAt reports whether the session can still mint tokens at now.
func (rt *RefreshToken) UsableAt(now time.Time) bool {
	return rt.RevokedAt == nil && now.Before(rt.ExpiresAt)
}

// BlacklistedToken keeps a logged-out access token's JWT id until the token
// would have expired on its own.
type BlacklistedToken struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	JTI           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpiresAt     time.Time `gorm:"not null;index"`
	BlacklistedAt time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (BlacklistedToken) TableName() string { return "blacklisted_tokens" }

func (bt *BlacklistedToken) BeforeCreate(*gorm.DB) error {
	bt.ID = ensureID(bt.ID)
	if bt.BlacklistedAt.IsZero() {
		bt.BlacklistedAt = time.Now().UTC()
	}
	return nil
}

// ExpiredAt reports whether the entry can be purged at now.
func (bt *BlacklistedToken) ExpiredAt(now time.Time) bool {
	return !now.Before(bt.ExpiresAt)
}

func ensureID(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}
	return id
}
