package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	EventTransactionCreated = "transaction.created"
	EventTransactionDeleted = "transaction.deleted"
)

// TransactionEvent announces a change to a group's ledger.
type TransactionEvent struct {
	Type                  string          `json:"type"`
	GroupID               uuid.UUID       `json:"group_id"`
	TransactionID         uuid.UUID       `json:"transaction_id"`
	RecurringObligationID *uuid.UUID      `json:"recurring_obligation_id,omitempty"`
	EntryType             string          `json:"entry_type,omitempty"`
	Amount                decimal.Decimal `json:"amount"`
	OccurredAt            time.Time       `json:"occurred_at"`
}

// RoutingKey is the topic the event is published under.
func (e TransactionEvent) RoutingKey() string {
	return e.Type
}

func (e TransactionEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func TransactionEventFromJSON(body []byte) (*TransactionEvent, error) {
	var e TransactionEvent
	if err := json.Unmarshal(body, &e); err != nil {
		return nil, fmt.Errorf("unmarshal transaction event: %w", err)
	}
	return &e, nil
}
