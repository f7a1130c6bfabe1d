package domain

import "github.com/shopspring/decimal"

// StateRate maps a two-letter state code to its effective income-tax rate.
// Entries are reference data: built once at startup and never mutated; rate
// corrections arrive as a full-table replacement.
type StateRate struct {
	Code string
	Name string
	Rate decimal.Decimal
}
