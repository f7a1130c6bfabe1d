package services_test

import (
	"context"
	"testing"

	"github.com/lukemcknight/reserve/internal/apperrors"
	"github.com/lukemcknight/reserve/internal/core/domain"
	portsrepo "github.com/lukemcknight/reserve/internal/core/ports/repositories"
	"github.com/lukemcknight/reserve/internal/core/services"
	"github.com/lukemcknight/reserve/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock StateRateRepository ---
type MockStateRateRepository struct {
	mock.Mock
}

func (m *MockStateRateRepository) FindStateRateByCode(ctx context.Context, code string) (*domain.StateRate, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StateRate), args.Error(1)
}

func (m *MockStateRateRepository) ListStateRates(ctx context.Context) ([]domain.StateRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StateRate), args.Error(1)
}

func (m *MockStateRateRepository) ReplaceStateRates(ctx context.Context, rates []domain.StateRate) error {
	args := m.Called(ctx, rates)
	return args.Error(0)
}

var _ portsrepo.StateRateRepositoryFacade = (*MockStateRateRepository)(nil)

// --- Test Suite ---
type StateRateServiceTestSuite struct {
	suite.Suite
	mockRepo *MockStateRateRepository
	service  *services.StateRateService
}

func (suite *StateRateServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockStateRateRepository)
	suite.service = services.NewStateRateService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *StateRateServiceTestSuite) TestLookupStateRate_NormalizesCode() {
	ctx := context.Background()
	expected := &domain.StateRate{Code: "OH", Name: "Ohio", Rate: decimal.RequireFromString("0.03")}

	suite.mockRepo.On("FindStateRateByCode", ctx, "OH").Return(expected, nil).Once()

	sr, err := suite.service.LookupStateRate(ctx, "  oh ")

	suite.Require().NoError(err)
	suite.Equal("OH", sr.Code)
	suite.Equal("Ohio", sr.Name)
	suite.True(sr.Rate.Equal(expected.Rate))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StateRateServiceTestSuite) TestLookupStateRate_UnknownCodeIsSyntheticZero() {
	ctx := context.Background()
	suite.mockRepo.On("FindStateRateByCode", ctx, "ZZ").Return(nil, apperrors.ErrNotFound).Once()

	sr, err := suite.service.LookupStateRate(ctx, "zz")

	suite.Require().NoError(err, "unknown codes degrade to 0%%, they never error")
	suite.Equal("ZZ", sr.Code)
	suite.Equal("ZZ", sr.Name)
	suite.True(sr.Rate.IsZero())
}

func (suite *StateRateServiceTestSuite) TestLookupStateRate_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError
	suite.mockRepo.On("FindStateRateByCode", ctx, "OH").Return(nil, expectedErr).Once()

	_, err := suite.service.LookupStateRate(ctx, "OH")

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
}

func (suite *StateRateServiceTestSuite) TestListStateRates_SortedByName() {
	ctx := context.Background()
	unsorted := []domain.StateRate{
		{Code: "WY", Name: "Wyoming", Rate: decimal.Zero},
		{Code: "AL", Name: "Alabama", Rate: decimal.RequireFromString("0.04")},
		{Code: "OH", Name: "Ohio", Rate: decimal.RequireFromString("0.03")},
	}
	suite.mockRepo.On("ListStateRates", ctx).Return(unsorted, nil).Once()

	rates, err := suite.service.ListStateRates(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(rates, 3)
	suite.Equal("Alabama", rates[0].Name)
	suite.Equal("Ohio", rates[1].Name)
	suite.Equal("Wyoming", rates[2].Name)
}

func (suite *StateRateServiceTestSuite) TestListStateRates_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListStateRates", ctx).Return(nil, assert.AnError).Once()

	rates, err := suite.service.ListStateRates(ctx)

	suite.Require().Error(err)
	suite.Nil(rates)
}

func (suite *StateRateServiceTestSuite) TestReplaceStateRates_NormalizesCodes() {
	ctx := context.Background()
	req := dto.ReplaceStateRatesRequest{
		States: []dto.ReplaceStateRateEntry{
			{Code: "oh", Name: "Ohio", Rate: 0.035},
			{Code: "fl", Name: "Florida", Rate: 0},
		},
	}

	suite.mockRepo.On("ReplaceStateRates", ctx, mock.MatchedBy(func(rates []domain.StateRate) bool {
		return len(rates) == 2 &&
			rates[0].Code == "OH" && rates[0].Rate.Equal(decimal.RequireFromString("0.035")) &&
			rates[1].Code == "FL" && rates[1].Rate.IsZero()
	})).Return(nil).Once()

	err := suite.service.ReplaceStateRates(ctx, req)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StateRateServiceTestSuite) TestReplaceStateRates_DuplicateSurfaces() {
	ctx := context.Background()
	req := dto.ReplaceStateRatesRequest{
		States: []dto.ReplaceStateRateEntry{
			{Code: "OH", Name: "Ohio", Rate: 0.03},
			{Code: "OH", Name: "Ohio again", Rate: 0.04},
		},
	}
	suite.mockRepo.On("ReplaceStateRates", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	err := suite.service.ReplaceStateRates(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func TestStateRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StateRateServiceTestSuite))
}
