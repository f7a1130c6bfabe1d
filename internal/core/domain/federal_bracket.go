package domain

import "github.com/shopspring/decimal"

// FederalBracket is one entry of the representative effective-rate menu
// offered to clients. UpTo is nil for the open-ended top bracket.
//
// The server never infers a rate from these; the caller picks one and sends
// it back as the federal_rate on a calculation request.
type FederalBracket struct {
	UpTo *decimal.Decimal
	Rate decimal.Decimal
}
