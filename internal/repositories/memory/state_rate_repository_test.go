package memory_test

import (
	"context"
	"testing"

	"github.com/lukemcknight/reserve/internal/apperrors"
	"github.com/lukemcknight/reserve/internal/core/domain"
	"github.com/lukemcknight/reserve/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededRepo(t *testing.T) *memory.StateRateRepository {
	t.Helper()
	repo, err := memory.NewStateRateRepository(memory.DefaultStateRates())
	require.NoError(t, err)
	return repo
}

func TestDefaultStateRates_WellFormed(t *testing.T) {
	rates := memory.DefaultStateRates()
	require.NotEmpty(t, rates)

	seen := make(map[string]bool, len(rates))
	for _, sr := range rates {
		assert.Len(t, sr.Code, 2, "code %q must be two letters", sr.Code)
		assert.NotEmpty(t, sr.Name)
		assert.False(t, seen[sr.Code], "code %q appears twice", sr.Code)
		seen[sr.Code] = true
		assert.True(t, sr.Rate.GreaterThanOrEqual(decimal.Zero), "rate for %s is negative", sr.Code)
		assert.True(t, sr.Rate.LessThanOrEqual(decimal.NewFromInt(1)), "rate for %s exceeds 1", sr.Code)
	}
}

func TestFindStateRateByCode(t *testing.T) {
	repo := newSeededRepo(t)
	ctx := context.Background()

	oh, err := repo.FindStateRateByCode(ctx, "OH")
	require.NoError(t, err)
	assert.Equal(t, "Ohio", oh.Name)
	assert.True(t, oh.Rate.Equal(decimal.RequireFromString("0.03")))

	fl, err := repo.FindStateRateByCode(ctx, "FL")
	require.NoError(t, err)
	assert.True(t, fl.Rate.IsZero(), "Florida has no income tax")

	_, err = repo.FindStateRateByCode(ctx, "ZZ")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestNewStateRateRepository_RejectsDuplicates(t *testing.T) {
	_, err := memory.NewStateRateRepository([]domain.StateRate{
		{Code: "OH", Name: "Ohio", Rate: decimal.RequireFromString("0.03")},
		{Code: "OH", Name: "Ohio again", Rate: decimal.RequireFromString("0.04")},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestReplaceStateRates_SwapsWholeTable(t *testing.T) {
	repo := newSeededRepo(t)
	ctx := context.Background()

	err := repo.ReplaceStateRates(ctx, []domain.StateRate{
		{Code: "OH", Name: "Ohio", Rate: decimal.RequireFromString("0.035")},
	})
	require.NoError(t, err)

	oh, err := repo.FindStateRateByCode(ctx, "OH")
	require.NoError(t, err)
	assert.True(t, oh.Rate.Equal(decimal.RequireFromString("0.035")))

	// Entries absent from the replacement are gone, not merged.
	_, err = repo.FindStateRateByCode(ctx, "FL")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	rates, err := repo.ListStateRates(ctx)
	require.NoError(t, err)
	assert.Len(t, rates, 1)
}

func TestReplaceStateRates_DuplicateLeavesTableIntact(t *testing.T) {
	repo := newSeededRepo(t)
	ctx := context.Background()

	err := repo.ReplaceStateRates(ctx, []domain.StateRate{
		{Code: "CA", Name: "California", Rate: decimal.RequireFromString("0.06")},
		{Code: "CA", Name: "California again", Rate: decimal.RequireFromString("0.07")},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	rates, err := repo.ListStateRates(ctx)
	require.NoError(t, err)
	assert.Len(t, rates, len(memory.DefaultStateRates()), "failed reload must not touch the table")
}

func TestListStateRates_ReturnsCopy(t *testing.T) {
	repo := newSeededRepo(t)
	ctx := context.Background()

	rates, err := repo.ListStateRates(ctx)
	require.NoError(t, err)
	rates[0] = domain.StateRate{Code: "XX", Name: "Mutated", Rate: decimal.NewFromInt(1)}

	fresh, err := repo.ListStateRates(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "XX", fresh[0].Code, "callers must not be able to mutate the table")
}
