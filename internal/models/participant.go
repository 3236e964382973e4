package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrUnbalancedShares = errors.New("participant shares do not sum to the amount")

// ShareTolerance is the absolute difference allowed between the sum of shares
// and the amount. It is not proportional to the amount.
var ShareTolerance = decimal.NewFromFloat(0.01)

// Participant is one user's portion of a split amount.
type Participant struct {
	UserID uuid.UUID       `json:"user_id"`
	Share  decimal.Decimal `json:"share"`
}

// Participants is stored as a JSON text column.
type Participants []Participant

// SharesBalance reports whether the shares reconstruct amount within ShareTolerance.
func SharesBalance(amount decimal.Decimal, participants []Participant) bool {
	sum := decimal.Zero
	for _, p := range participants {
		sum = sum.Add(p.Share)
	}
	return sum.Sub(amount).Abs().LessThan(ShareTolerance)
}

// ValidateShares rejects negative shares and unbalanced splits.
func ValidateShares(amount decimal.Decimal, participants []Participant) error {
	for _, p := range participants {
		if p.Share.IsNegative() {
			return fmt.Errorf("%w: negative share for %s", ErrUnbalancedShares, p.UserID)
		}
	}
	if !SharesBalance(amount, participants) {
		return ErrUnbalancedShares
	}
	return nil
}

// UserIDs returns the participant user ids in order.
func (ps Participants) UserIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(ps))
	for _, p := range ps {
		ids = append(ids, p.UserID)
	}
	return ids
}

// Value implements driver.Valuer
func (ps Participants) Value() (driver.Value, error) {
	if ps == nil {
		return "[]", nil
	}
	bytes, err := json.Marshal([]Participant(ps))
	if err != nil {
		return nil, err
	}
	// string keeps SQLite and Postgres text columns happy
	return string(bytes), nil
}

// Scan implements sql.Scanner
func (ps *Participants) Scan(value interface{}) error {
	if value == nil {
		*ps = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Participants", value)
	}

	if len(bytes) == 0 {
		*ps = nil
		return nil
	}

	return json.Unmarshal(bytes, ps)
}
