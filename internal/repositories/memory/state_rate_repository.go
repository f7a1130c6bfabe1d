package memory

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/lukemcknight/reserve/internal/apperrors"
	"github.com/lukemcknight/reserve/internal/core/domain"
	portsrepo "github.com/lukemcknight/reserve/internal/core/ports/repositories"
)

// stateRateTable is one immutable snapshot of the rate table. Lookups and
// listings always operate on a single snapshot, so concurrent readers need no
// locking and never observe a half-updated table.
type stateRateTable struct {
	entries []domain.StateRate
	byCode  map[string]domain.StateRate
}

func newStateRateTable(rates []domain.StateRate) (*stateRateTable, error) {
	table := &stateRateTable{
		entries: make([]domain.StateRate, len(rates)),
		byCode:  make(map[string]domain.StateRate, len(rates)),
	}
	copy(table.entries, rates)
	for _, sr := range table.entries {
		if _, exists := table.byCode[sr.Code]; exists {
			return nil, fmt.Errorf("%w: state code %q appears more than once", apperrors.ErrDuplicate, sr.Code)
		}
		table.byCode[sr.Code] = sr
	}
	return table, nil
}

// StateRateRepository keeps the rate table in process memory. Reloads install
// a whole new snapshot via an atomic pointer swap.
type StateRateRepository struct {
	table atomic.Pointer[stateRateTable]
}

// NewStateRateRepository builds a repository seeded with the given entries.
func NewStateRateRepository(rates []domain.StateRate) (*StateRateRepository, error) {
	table, err := newStateRateTable(rates)
	if err != nil {
		return nil, err
	}
	repo := &StateRateRepository{}
	repo.table.Store(table)
	return repo, nil
}

// FindStateRateByCode retrieves the entry for an already-normalized code.
func (r *StateRateRepository) FindStateRateByCode(ctx context.Context, code string) (*domain.StateRate, error) {
	sr, ok := r.table.Load().byCode[code]
	if !ok {
		return nil, fmt.Errorf("state rate for %q: %w", code, apperrors.ErrNotFound)
	}
	return &sr, nil
}

// ListStateRates retrieves every entry in insertion order.
func (r *StateRateRepository) ListStateRates(ctx context.Context) ([]domain.StateRate, error) {
	entries := r.table.Load().entries
	out := make([]domain.StateRate, len(entries))
	copy(out, entries)
	return out, nil
}

// ReplaceStateRates installs a full replacement table. The previous snapshot
// stays valid for readers that already hold it.
func (r *StateRateRepository) ReplaceStateRates(ctx context.Context, rates []domain.StateRate) error {
	table, err := newStateRateTable(rates)
	if err != nil {
		return err
	}
	r.table.Store(table)
	return nil
}

var _ portsrepo.StateRateRepositoryFacade = (*StateRateRepository)(nil)
