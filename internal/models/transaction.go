package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const maxCategoryLength = 100

var (
	ErrGroupRequired       = errors.New("group ID is required")
	ErrInvalidAmount       = errors.New("transaction amount must be positive")
	ErrDescriptionRequired = errors.New("transaction description is required")
	ErrCategoryTooLong     = errors.New("category must be at most 100 characters")
)

// Transaction is one income or expense entry in a group's ledger.
// RecurringObligationID is a weak back reference: it survives deletion of
// the obligation that spawned the entry.
type Transaction struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primary_key"`
	GroupID               uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedBy             uuid.UUID       `gorm:"type:uuid;not null"`
	Amount                decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type                  string          `gorm:"type:varchar(10);not null"`
	Category              string          `gorm:"type:varchar(100)"`
	Description           string          `gorm:"type:text"`
	Date                  time.Time       `gorm:"not null;index"`
	Participants          Participants    `gorm:"type:text"`
	RecurringObligationID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt             time.Time       `gorm:"not null;index"`
	UpdatedAt             time.Time       `gorm:"not null"`
}

func (*Transaction) TableName() string { return "transactions" }

func (t *Transaction) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	now := time.Now().UTC()
	if t.Date.IsZero() {
		t.Date = now
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = t.CreatedAt
	return t.Validate()
}

func (t *Transaction) BeforeUpdate(*gorm.DB) error {
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// Validate checks the entry on its own. Whether the participant shares
// balance against Amount is the caller's decision.
func (t *Transaction) Validate() error {
	switch {
	case t.GroupID == uuid.Nil:
		return ErrGroupRequired
	case !IsValidEntryType(t.Type):
		return ErrInvalidEntryType
	case !t.Amount.IsPositive():
		return ErrInvalidAmount
	case strings.TrimSpace(t.Description) == "":
		return ErrDescriptionRequired
	case len(t.Category) > maxCategoryLength:
		return ErrCategoryTooLong
	}
	return nil
}

// IsRecurring reports whether a recurring obligation produced the entry.
func (t *Transaction) IsRecurring() bool {
	return t.RecurringObligationID != nil
}

// SignedAmount is the entry's effect on the group balance.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == EntryTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
