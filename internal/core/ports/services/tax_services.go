package services

import (
	"context"

	"github.com/lukemcknight/reserve/internal/core/domain"
	"github.com/lukemcknight/reserve/internal/dto"
)

// TaxEstimatorSvc defines the reserve calculation.
type TaxEstimatorSvc interface {
	// CalculateReserve turns a gross payment, a state code and a federal
	// effective rate into a tax breakdown and a recommended reserve.
	// Fails with apperrors.ErrInvalidAmount / ErrInvalidFederalRate on bad
	// input; unknown state codes are accepted at a 0% rate.
	CalculateReserve(ctx context.Context, req dto.CalculateTaxRequest) (*domain.TaxEstimate, error)
}

// FederalBracketReaderSvc exposes the effective-rate menu shown to clients.
type FederalBracketReaderSvc interface {
	ListFederalBrackets(ctx context.Context) []domain.FederalBracket
}

// TaxSvcFacade combines all tax-related service interfaces.
type TaxSvcFacade interface {
	TaxEstimatorSvc
	FederalBracketReaderSvc
}
