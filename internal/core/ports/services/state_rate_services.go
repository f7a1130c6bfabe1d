package services

import (
	"context"

	"github.com/lukemcknight/reserve/internal/core/domain"
	"github.com/lukemcknight/reserve/internal/dto"
)

// StateRateReaderSvc defines read operations for state tax rate data.
type StateRateReaderSvc interface {
	// LookupStateRate resolves a raw state code (any case, padded with
	// whitespace) to its entry. Unknown codes resolve to a synthetic
	// zero-rate entry rather than an error.
	LookupStateRate(ctx context.Context, code string) (domain.StateRate, error)

	// ListStateRates retrieves every curated entry, sorted by display name.
	ListStateRates(ctx context.Context) ([]domain.StateRate, error)
}

// StateRateAdminSvc defines the table-reload operation.
type StateRateAdminSvc interface {
	// ReplaceStateRates validates and installs a full replacement table.
	ReplaceStateRates(ctx context.Context, req dto.ReplaceStateRatesRequest) error
}

// StateRateSvcFacade combines all state-rate service interfaces.
type StateRateSvcFacade interface {
	StateRateReaderSvc
	StateRateAdminSvc
}
