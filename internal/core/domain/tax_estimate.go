package domain

import "github.com/shopspring/decimal"

// Disclaimer accompanies every estimate surfaced to a client. The engine
// produces planning figures, not a filed tax liability.
const Disclaimer = "Estimates only. This tool does not provide tax, legal or accounting advice; consult a professional before filing."

// TaxEstimate is the breakdown produced for a single gross NIL payment.
// All values are rounded to cents; RecommendedReserve is the sum of the three
// tax components and UsableCash is the gross minus the reserve, floored at zero.
type TaxEstimate struct {
	GrossIncome        decimal.Decimal
	SelfEmploymentTax  decimal.Decimal
	FederalTax         decimal.Decimal
	StateTax           decimal.Decimal
	RecommendedReserve decimal.Decimal
	UsableCash         decimal.Decimal
}
