package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lukemcknight/reserve/internal/apperrors"
	"github.com/lukemcknight/reserve/internal/core/domain"
	portsrepo "github.com/lukemcknight/reserve/internal/core/ports/repositories"
	"github.com/lukemcknight/reserve/internal/dto"
	"github.com/shopspring/decimal"
)

// StateRateService resolves state codes against the rate table and owns the
// "0% unless known" policy for codes that are not curated.
type StateRateService struct {
	rateRepo portsrepo.StateRateRepositoryFacade
}

func NewStateRateService(rateRepo portsrepo.StateRateRepositoryFacade) *StateRateService {
	return &StateRateService{rateRepo: rateRepo}
}

// NormalizeStateCode trims surrounding whitespace and upper-cases the code.
func NormalizeStateCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// LookupStateRate resolves a raw code to its entry. Unknown or empty codes
// produce a synthetic zero-rate entry, never an error: unlisted states are
// treated as having no income tax rather than being rejected.
func (s *StateRateService) LookupStateRate(ctx context.Context, code string) (domain.StateRate, error) {
	normalized := NormalizeStateCode(code)

	sr, err := s.rateRepo.FindStateRateByCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.StateRate{Code: normalized, Name: normalized, Rate: decimal.Zero}, nil
		}
		return domain.StateRate{}, fmt.Errorf("failed to look up state rate in service: %w", err)
	}
	return *sr, nil
}

// ListStateRates retrieves every curated entry sorted by display name, ready
// for a client-side state selector.
func (s *StateRateService) ListStateRates(ctx context.Context) ([]domain.StateRate, error) {
	rates, err := s.rateRepo.ListStateRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list state rates in service: %w", err)
	}
	sort.Slice(rates, func(i, j int) bool {
		return rates[i].Name < rates[j].Name
	})
	if rates == nil {
		return []domain.StateRate{}, nil
	}
	return rates, nil
}

// ReplaceStateRates validates a replacement table and installs it atomically.
func (s *StateRateService) ReplaceStateRates(ctx context.Context, req dto.ReplaceStateRatesRequest) error {
	rates := make([]domain.StateRate, len(req.States))
	for i, entry := range req.States {
		rates[i] = domain.StateRate{
			Code: NormalizeStateCode(entry.Code),
			Name: entry.Name,
			Rate: decimal.NewFromFloat(entry.Rate),
		}
	}
	if err := s.rateRepo.ReplaceStateRates(ctx, rates); err != nil {
		return fmt.Errorf("failed to replace state rates in service: %w", err)
	}
	return nil
}
