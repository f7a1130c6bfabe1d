package services

import (
	"context"
	"fmt"
	"math"

	"github.com/lukemcknight/reserve/internal/apperrors"
	"github.com/lukemcknight/reserve/internal/core/domain"
	portssvc "github.com/lukemcknight/reserve/internal/core/ports/services"
	"github.com/lukemcknight/reserve/internal/dto"
	"github.com/shopspring/decimal"
)

// Self-employment tax: 92.35% of gross is subject to the combined 15.3%
// Social Security + Medicare rate. Flat at every income level; the wage-base
// cap and the additional Medicare surtax are deliberately not modeled.
var (
	seTaxableShare = decimal.RequireFromString("0.9235")
	seTaxRate      = decimal.RequireFromString("0.153")
)

// federalBrackets is the representative effective-rate menu offered to
// clients. The estimator never picks from it; the caller does.
var federalBrackets = []domain.FederalBracket{
	{UpTo: decimalPtr(decimal.NewFromInt(11000)), Rate: decimal.RequireFromString("0.10")},
	{UpTo: decimalPtr(decimal.NewFromInt(44000)), Rate: decimal.RequireFromString("0.12")},
	{UpTo: decimalPtr(decimal.NewFromInt(95000)), Rate: decimal.RequireFromString("0.22")},
	{UpTo: nil, Rate: decimal.RequireFromString("0.24")},
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

// TaxService is the estimation engine: a pure calculation from a validated
// request to a tax breakdown. It holds no state beyond its rate lookup
// dependency, so identical inputs always produce identical outputs.
type TaxService struct {
	rateSvc portssvc.StateRateReaderSvc
}

func NewTaxService(rateSvc portssvc.StateRateReaderSvc) *TaxService {
	return &TaxService{rateSvc: rateSvc}
}

// CalculateReserve computes the self-employment, federal and state tax on one
// gross payment and derives the recommended reserve and the usable cash.
//
// Validation happens before any arithmetic. The amount and the federal rate
// are never defaulted; only the state code degrades gracefully (unknown code
// means 0% state tax). Intermediate math keeps full precision, each output is
// rounded to cents once at the end.
func (s *TaxService) CalculateReserve(ctx context.Context, req dto.CalculateTaxRequest) (*domain.TaxEstimate, error) {
	if req.Amount == nil || !isFinite(*req.Amount) || *req.Amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	if req.FederalRate == nil || !isFinite(*req.FederalRate) || *req.FederalRate < 0 || *req.FederalRate > 1 {
		return nil, apperrors.ErrInvalidFederalRate
	}

	stateRate, err := s.rateSvc.LookupStateRate(ctx, req.State)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve state rate for calculation: %w", err)
	}

	gross := decimal.NewFromFloat(*req.Amount)
	federalRate := decimal.NewFromFloat(*req.FederalRate)

	selfEmploymentTax := gross.Mul(seTaxableShare).Mul(seTaxRate)
	federalTax := gross.Mul(federalRate)
	stateTax := gross.Mul(stateRate.Rate)

	recommendedReserve := selfEmploymentTax.Add(federalTax).Add(stateTax)

	// The reserve may exceed the gross for high combined rates; usable cash
	// is reported as zero in that case, never negative.
	usableCash := gross.Sub(recommendedReserve)
	if usableCash.IsNegative() {
		usableCash = decimal.Zero
	}

	return &domain.TaxEstimate{
		GrossIncome:        gross.Round(2),
		SelfEmploymentTax:  selfEmploymentTax.Round(2),
		FederalTax:         federalTax.Round(2),
		StateTax:           stateTax.Round(2),
		RecommendedReserve: recommendedReserve.Round(2),
		UsableCash:         usableCash.Round(2),
	}, nil
}

// ListFederalBrackets returns the effective-rate menu in ascending threshold order.
func (s *TaxService) ListFederalBrackets(ctx context.Context) []domain.FederalBracket {
	out := make([]domain.FederalBracket, len(federalBrackets))
	copy(out, federalBrackets)
	return out
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
