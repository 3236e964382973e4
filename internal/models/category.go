package models

// Suggested categories. Categories are free-form on transactions; these are
// the values the categorizer assigns when a client leaves the field empty.
const (
	CategoryRent          = "rent"
	CategoryUtilities     = "utilities"
	CategoryGroceries     = "groceries"
	CategoryDining        = "dining"
	CategoryTransport     = "transport"
	CategoryTravel        = "travel"
	CategorySubscriptions = "subscriptions"
	CategoryInsurance     = "insurance"
	CategoryTaxes         = "taxes"
	CategorySupplies      = "supplies"
	CategorySalary        = "salary"
	CategoryInvoice       = "invoice"
	CategoryRefund        = "refund"
	CategoryOther         = "other"
)
