package repositories

import (
	"context"

	"github.com/lukemcknight/reserve/internal/core/domain"
)

// StateRateReader defines read operations for the state rate table.
type StateRateReader interface {
	// FindStateRateByCode retrieves the entry for an already-normalized
	// two-letter code. Returns apperrors.ErrNotFound when the code is not curated.
	FindStateRateByCode(ctx context.Context, code string) (*domain.StateRate, error)

	// ListStateRates retrieves every curated entry in insertion order.
	ListStateRates(ctx context.Context) ([]domain.StateRate, error)
}

// StateRateReplacer defines the reload operation for the state rate table.
type StateRateReplacer interface {
	// ReplaceStateRates swaps the entire table in one atomic step. Concurrent
	// readers see either the old table or the new one, never a mix.
	ReplaceStateRates(ctx context.Context, rates []domain.StateRate) error
}

// StateRateRepositoryFacade combines all state-rate repository interfaces.
type StateRateRepositoryFacade interface {
	StateRateReader
	StateRateReplacer
}
