package dto

import (
	"github.com/lukemcknight/reserve/internal/core/domain"
)

// CalculateTaxRequest defines the data needed to estimate a tax reserve for
// one gross NIL payment. Pointers distinguish "absent" from a legitimate zero;
// range validation is performed by the estimator so it can fail with its
// specific error kinds.
type CalculateTaxRequest struct {
	Amount      *float64 `json:"amount" binding:"required"`
	State       string   `json:"state"`
	FederalRate *float64 `json:"federal_rate" binding:"required"`
}

// TaxEstimateResponse defines the data returned for a calculation.
type TaxEstimateResponse struct {
	GrossIncome        float64 `json:"gross_income"`
	SelfEmploymentTax  float64 `json:"self_employment_tax"`
	FederalTax         float64 `json:"federal_tax"`
	StateTax           float64 `json:"state_tax"`
	RecommendedReserve float64 `json:"recommended_reserve"`
	UsableCash         float64 `json:"usable_cash"`
	Disclaimer         string  `json:"disclaimer"`
}

// ToTaxEstimateResponse converts a domain.TaxEstimate to TaxEstimateResponse DTO.
// Estimate values are already rounded to cents, so the float conversion is exact
// for any realistic payment size.
func ToTaxEstimateResponse(est *domain.TaxEstimate) TaxEstimateResponse {
	return TaxEstimateResponse{
		GrossIncome:        est.GrossIncome.InexactFloat64(),
		SelfEmploymentTax:  est.SelfEmploymentTax.InexactFloat64(),
		FederalTax:         est.FederalTax.InexactFloat64(),
		StateTax:           est.StateTax.InexactFloat64(),
		RecommendedReserve: est.RecommendedReserve.InexactFloat64(),
		UsableCash:         est.UsableCash.InexactFloat64(),
		Disclaimer:         domain.Disclaimer,
	}
}

// FederalBracketResponse is one entry of the effective-rate menu. UpTo is
// omitted for the open-ended top bracket.
type FederalBracketResponse struct {
	UpTo *float64 `json:"up_to,omitempty"`
	Rate float64  `json:"rate"`
}

// FederalBracketsResponse wraps the full menu.
type FederalBracketsResponse struct {
	Brackets []FederalBracketResponse `json:"brackets"`
}

// ToFederalBracketsResponse converts domain brackets to their DTO form.
func ToFederalBracketsResponse(brackets []domain.FederalBracket) FederalBracketsResponse {
	res := FederalBracketsResponse{Brackets: make([]FederalBracketResponse, len(brackets))}
	for i, b := range brackets {
		entry := FederalBracketResponse{Rate: b.Rate.InexactFloat64()}
		if b.UpTo != nil {
			upTo := b.UpTo.InexactFloat64()
			entry.UpTo = &upTo
		}
		res.Brackets[i] = entry
	}
	return res
}
