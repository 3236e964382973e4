package models

import "github.com/shopspring/decimal"

// CategorySummary is one aggregate row of a group's ledger, keyed by entry
// type and category. Columns are scanned by name from the summary query.
type CategorySummary struct {
	Type             string
	Category         string
	TransactionCount int64
	TotalAmount      decimal.Decimal
	AverageAmount    decimal.Decimal
}
