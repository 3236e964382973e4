package dto

import (
	"time"

	"group-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateRecurringRequest contains the template of a recurring obligation
type CreateRecurringRequest struct {
	Title        string               `json:"title" validate:"required,min=1,max=200"`
	Amount       decimal.Decimal      `json:"amount" validate:"money"`
	Type         string               `json:"type" validate:"required,entry_type"`
	Category     string               `json:"category" validate:"max=100"`
	Frequency    string               `json:"frequency" validate:"required,frequency"`
	StartDate    time.Time            `json:"startDate" validate:"required"`
	EndDate      *time.Time           `json:"endDate"`
	ClientID     *uuid.UUID           `json:"clientId"`
	Participants []ParticipantRequest `json:"participants" validate:"omitempty,dive"`
}

// UpdateRecurringRequest replaces the editable fields. Version must match the
// stored version.
type UpdateRecurringRequest struct {
	Title        string               `json:"title" validate:"required,min=1,max=200"`
	Amount       decimal.Decimal      `json:"amount" validate:"money"`
	Category     string               `json:"category" validate:"max=100"`
	Frequency    string               `json:"frequency" validate:"required,frequency"`
	EndDate      *time.Time           `json:"endDate"`
	ClientID     *uuid.UUID           `json:"clientId"`
	Participants []ParticipantRequest `json:"participants" validate:"omitempty,dive"`
	Active       *bool                `json:"active"`
	Version      int                  `json:"version" validate:"required,min=1"`
}

// RecurringResponse represents a recurring obligation and its schedule
type RecurringResponse struct {
	ID              uuid.UUID             `json:"id"`
	GroupID         uuid.UUID             `json:"groupId"`
	ClientID        *uuid.UUID            `json:"clientId,omitempty"`
	CreatedBy       uuid.UUID             `json:"createdBy"`
	Title           string                `json:"title"`
	Amount          string                `json:"amount"`
	Type            string                `json:"type"`
	Category        string                `json:"category,omitempty"`
	Frequency       string                `json:"frequency"`
	StartDate       time.Time             `json:"startDate"`
	EndDate         *time.Time            `json:"endDate,omitempty"`
	LastProcessedAt *time.Time            `json:"lastProcessedAt,omitempty"`
	NextRun         *time.Time            `json:"nextRun,omitempty"`
	IsDue           bool                  `json:"isDue"`
	Participants    []ParticipantResponse `json:"participants"`
	Active          bool                  `json:"active"`
	Version         int                   `json:"version"`
}

// ExecuteRecurringResponse is the outcome of one execution
type ExecuteRecurringResponse struct {
	Recurring   RecurringResponse   `json:"recurring"`
	Transaction TransactionResponse `json:"transaction"`
}

// NewRecurringResponse converts an obligation. nextRun is nil when the
// obligation will not run again.
func NewRecurringResponse(o *models.RecurringObligation, nextRun *time.Time, due bool) RecurringResponse {
	return RecurringResponse{
		ID:              o.ID,
		GroupID:         o.GroupID,
		ClientID:        o.ClientID,
		CreatedBy:       o.CreatedBy,
		Title:           o.Title,
		Amount:          o.Amount.StringFixed(2),
		Type:            o.Type,
		Category:        o.Category,
		Frequency:       string(o.Frequency),
		StartDate:       o.StartDate,
		EndDate:         o.EndDate,
		LastProcessedAt: o.LastProcessedAt,
		NextRun:         nextRun,
		IsDue:           due,
		Participants:    newParticipantResponses(o.Participants),
		Active:          o.Active,
		Version:         o.Version,
	}
}
