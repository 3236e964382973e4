package dto

import (
	"time"

	"group-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParticipantRequest is one user's share of an amount
type ParticipantRequest struct {
	UserID uuid.UUID       `json:"userId" validate:"required"`
	Share  decimal.Decimal `json:"share" validate:"money"`
}

// CreateTransactionRequest contains the data for a manual transaction
type CreateTransactionRequest struct {
	Amount       decimal.Decimal      `json:"amount" validate:"positive_money"`
	Type         string               `json:"type" validate:"required,entry_type"`
	Category     string               `json:"category" validate:"max=100"`
	Description  string               `json:"description" validate:"required,min=1,max=500"`
	Date         *time.Time           `json:"date"`
	Participants []ParticipantRequest `json:"participants" validate:"omitempty,dive"`
}

// ParticipantResponse is one stored share
type ParticipantResponse struct {
	UserID uuid.UUID `json:"userId"`
	Share  string    `json:"share"`
}

// TransactionResponse represents a stored transaction
type TransactionResponse struct {
	ID                    uuid.UUID             `json:"id"`
	GroupID               uuid.UUID             `json:"groupId"`
	CreatedBy             uuid.UUID             `json:"createdBy"`
	Amount                string                `json:"amount"`
	Type                  string                `json:"type"`
	Category              string                `json:"category,omitempty"`
	Description           string                `json:"description"`
	Date                  time.Time             `json:"date"`
	Participants          []ParticipantResponse `json:"participants"`
	RecurringObligationID *uuid.UUID            `json:"recurringObligationId,omitempty"`
	CreatedAt             time.Time             `json:"createdAt"`
}

// TransactionListResponse is a page of transactions
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationMeta        `json:"pagination"`
}

// CategorySummaryResponse aggregates transactions of one type and category
type CategorySummaryResponse struct {
	Type             string `json:"type"`
	Category         string `json:"category"`
	TransactionCount int64  `json:"transactionCount"`
	TotalAmount      string `json:"totalAmount"`
	AverageAmount    string `json:"averageAmount"`
}

// GroupSummaryResponse is the category breakdown plus income/expense totals
type GroupSummaryResponse struct {
	Categories   []CategorySummaryResponse `json:"categories"`
	TotalIncome  string                    `json:"totalIncome"`
	TotalExpense string                    `json:"totalExpense"`
	Net          string                    `json:"net"`
}

// ToParticipants converts request shares into model participants.
func ToParticipants(in []ParticipantRequest) models.Participants {
	if len(in) == 0 {
		return nil
	}
	out := make(models.Participants, 0, len(in))
	for _, p := range in {
		out = append(out, models.Participant{UserID: p.UserID, Share: p.Share})
	}
	return out
}

func newParticipantResponses(ps models.Participants) []ParticipantResponse {
	out := make([]ParticipantResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, ParticipantResponse{UserID: p.UserID, Share: p.Share.StringFixed(2)})
	}
	return out
}

// NewTransactionResponse converts a stored transaction.
func NewTransactionResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                    t.ID,
		GroupID:               t.GroupID,
		CreatedBy:             t.CreatedBy,
		Amount:                t.Amount.StringFixed(2),
		Type:                  t.Type,
		Category:              t.Category,
		Description:           t.Description,
		Date:                  t.Date,
		Participants:          newParticipantResponses(t.Participants),
		RecurringObligationID: t.RecurringObligationID,
		CreatedAt:             t.CreatedAt,
	}
}

// NewGroupSummaryResponse folds category rows into per-type totals.
func NewGroupSummaryResponse(rows []models.CategorySummary) GroupSummaryResponse {
	income, expense := decimal.Zero, decimal.Zero
	resp := GroupSummaryResponse{Categories: make([]CategorySummaryResponse, 0, len(rows))}
	for _, r := range rows {
		switch r.Type {
		case models.EntryTypeIncome:
			income = income.Add(r.TotalAmount)
		case models.EntryTypeExpense:
			expense = expense.Add(r.TotalAmount)
		}
		resp.Categories = append(resp.Categories, CategorySummaryResponse{
			Type:             r.Type,
			Category:         r.Category,
			TransactionCount: r.TransactionCount,
			TotalAmount:      r.TotalAmount.StringFixed(2),
			AverageAmount:    r.AverageAmount.StringFixed(2),
		})
	}
	resp.TotalIncome = income.StringFixed(2)
	resp.TotalExpense = expense.StringFixed(2)
	resp.Net = income.Sub(expense).StringFixed(2)
	return resp
}
