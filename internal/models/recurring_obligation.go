package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Frequency is how often a recurring obligation repeats.
type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

const (
	EntryTypeIncome  = "income"
	EntryTypeExpense = "expense"
)

var (
	ErrInvalidFrequency       = errors.New("invalid frequency")
	ErrInvalidEntryType       = errors.New("invalid entry type")
	ErrNegativeAmount         = errors.New("amount cannot be negative")
	ErrEndBeforeStart         = errors.New("end date must not be before start date")
	ErrOptimisticLockConflict = errors.New("optimistic lock conflict: version mismatch")
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly,
		FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	default:
		return false
	}
}

// ParseFrequency converts user input into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", ErrInvalidFrequency
	}
	return f, nil
}

// IsValidEntryType reports whether t is income or expense.
func IsValidEntryType(t string) bool {
	return t == EntryTypeIncome || t == EntryTypeExpense
}

// RecurringObligation is a template for periodically generating a transaction.
type RecurringObligation struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	GroupID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"group_id"`
	ClientID        *uuid.UUID      `gorm:"type:uuid;index" json:"client_id,omitempty"`
	CreatedBy       uuid.UUID       `gorm:"type:uuid;not null" json:"created_by"`
	Title           string          `gorm:"type:varchar(200);not null" json:"title"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type            string          `gorm:"type:varchar(10);not null" json:"type"`
	Category        string          `gorm:"type:varchar(100)" json:"category"`
	Frequency       Frequency       `gorm:"type:varchar(20);not null" json:"frequency"`
	StartDate       time.Time       `gorm:"not null" json:"start_date"`
	EndDate         *time.Time      `json:"end_date,omitempty"`
	LastProcessedAt *time.Time      `gorm:"index" json:"last_processed_at,omitempty"`
	Participants    Participants    `gorm:"type:text" json:"participants"`
	Active          bool            `gorm:"not null;default:true;index" json:"active"`
	Version         int             `gorm:"not null;default:1" json:"version"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`
}

func (r *RecurringObligation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Version == 0 {
		r.Version = 1
	}

	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}

	return r.Validate()
}

func (r *RecurringObligation) BeforeUpdate(tx *gorm.DB) error {
	r.UpdatedAt = time.Now()
	return nil
}

// Validate checks the field constraints. Share balance is checked separately
// through ValidateShares so callers decide when to enforce it.
func (r *RecurringObligation) Validate() error {
	if r.GroupID == uuid.Nil {
		return ErrGroupRequired
	}
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required")
	}
	if r.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if !IsValidEntryType(r.Type) {
		return ErrInvalidEntryType
	}
	if !r.Frequency.IsValid() {
		return ErrInvalidFrequency
	}
	if r.StartDate.IsZero() {
		return errors.New("start date is required")
	}
	if r.EndDate != nil && r.EndDate.Before(r.StartDate) {
		return ErrEndBeforeStart
	}
	return nil
}

// Deactivate retires the obligation without deleting it.
func (r *RecurringObligation) Deactivate() {
	r.Active = false
}

// Spawn builds the transaction mirroring one occurrence of the obligation.
func (r *RecurringObligation) Spawn(date time.Time, actor uuid.UUID) *Transaction {
	participants := make(Participants, len(r.Participants))
	copy(participants, r.Participants)

	id := r.ID
	return &Transaction{
		GroupID:               r.GroupID,
		CreatedBy:             actor,
		Amount:                r.Amount,
		Type:                  r.Type,
		Category:              r.Category,
		Description:           r.Title,
		Date:                  date,
		Participants:          participants,
		RecurringObligationID: &id,
	}
}

func (r *RecurringObligation) TableName() string {
	return "recurring_obligations"
}
