package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prepay-engine/domain"
	"prepay-engine/repository"
)

func newTestComparisonService(repo *MockCalculationRepository, cache repository.CacheRepository) *ComparisonService {
	if cache == nil {
		cache = repository.NewMockCache()
	}
	return NewComparisonService(NewScheduleService(), repo, cache)
}

func TestCompareScenarios_CombinedPrepaymentStrategy(t *testing.T) {
	repo := &MockCalculationRepository{}
	service := newTestComparisonService(repo, nil)

	plan := domain.PrepaymentPlan{
		Monthly:   decimal.NewFromInt(29_700),
		Quarterly: decimal.NewFromInt(50_000),
	}

	result, err := service.CompareScenarios(context.Background(), homeLoan(), plan)
	require.NoError(t, err)

	assert.Equal(t, 384, result.Baseline.TenureMonths)
	assert.Equal(t, 103, result.WithPrepayment.TenureMonths)
	assert.Equal(t, 281, result.Savings.MonthsSaved)
	assert.InDelta(t, 281.0/12, result.Savings.YearsSaved, 1e-9)

	assert.True(t, result.Savings.InterestSaved.Equal(dec(11265120.10)),
		"interest saved %s", result.Savings.InterestSaved)
	assert.True(t, result.Savings.TotalPrepaid.Equal(dec(4729400)),
		"total prepaid %s", result.Savings.TotalPrepaid)
	assert.True(t, result.Savings.EffectiveSavingsRate.IsPositive())

	assert.NotEmpty(t, result.Explanation)

	require.True(t, repo.SaveCalled)
	require.Len(t, repo.Saved, 1)
	saved := repo.Saved[0]
	assert.True(t, saved.InterestSaved.Equal(result.Savings.InterestSaved))
	assert.Equal(t, 103, saved.TenureMonths)
}

func TestCompareScenarios_ZeroPlanHasZeroSavings(t *testing.T) {
	service := newTestComparisonService(&MockCalculationRepository{}, nil)

	result, err := service.CompareScenarios(context.Background(), homeLoan(), domain.PrepaymentPlan{})
	require.NoError(t, err)

	assert.True(t, result.Savings.InterestSaved.IsZero(),
		"interest saved %s", result.Savings.InterestSaved)
	assert.Equal(t, 0, result.Savings.MonthsSaved)
	assert.True(t, result.Savings.TotalPrepaid.IsZero())
	assert.True(t, result.Savings.EffectiveSavingsRate.IsZero())
	assert.Equal(t, result.Baseline, result.WithPrepayment)
}

func TestCompareScenarios_Monotonicity(t *testing.T) {
	service := newTestComparisonService(&MockCalculationRepository{}, nil)
	ctx := context.Background()

	// Savings never go negative for any non-negative prepayment amount.
	plans := []domain.PrepaymentPlan{
		{},
		{Monthly: decimal.NewFromInt(1)},
		{Monthly: decimal.NewFromInt(1_000)},
		{Quarterly: decimal.NewFromInt(25_000)},
		{Monthly: decimal.NewFromInt(10_000), Quarterly: decimal.NewFromInt(100_000)},
	}

	for _, plan := range plans {
		result, err := service.CompareScenarios(ctx, homeLoan(), plan)
		require.NoError(t, err)

		assert.False(t, result.Savings.InterestSaved.IsNegative(),
			"plan %+v produced negative interest savings", plan)
		assert.GreaterOrEqual(t, result.Savings.MonthsSaved, 0,
			"plan %+v produced negative tenure savings", plan)
		assert.LessOrEqual(t, result.WithPrepayment.TenureMonths, result.Baseline.TenureMonths)
		assert.True(t, result.WithPrepayment.TotalInterest.LessThanOrEqual(result.Baseline.TotalInterest))
	}
}

func TestCompareScenarios_CachesResult(t *testing.T) {
	repo := &MockCalculationRepository{}
	cache := repository.NewMockCache()
	service := newTestComparisonService(repo, cache)
	ctx := context.Background()

	plan := domain.PrepaymentPlan{Monthly: decimal.NewFromInt(5_000)}

	first, err := service.CompareScenarios(ctx, homeLoan(), plan)
	require.NoError(t, err)
	require.Len(t, cache.Data, 1)
	require.Len(t, repo.Saved, 1)

	second, err := service.CompareScenarios(ctx, homeLoan(), plan)
	require.NoError(t, err)

	// Second call is answered from cache: same figures, no second save.
	assert.Len(t, repo.Saved, 1)
	assert.True(t, first.Savings.InterestSaved.Equal(second.Savings.InterestSaved))
	assert.Equal(t, first.WithPrepayment.TenureMonths, second.WithPrepayment.TenureMonths)
}

func TestCompareScenarios_PropagatesValidationErrors(t *testing.T) {
	service := newTestComparisonService(&MockCalculationRepository{}, nil)

	_, err := service.CompareScenarios(context.Background(), domain.LoanInput{
		Principal:  decimal.NewFromInt(100_000),
		AnnualRate: 8.5,
		TermMonths: 120,
	}, domain.PrepaymentPlan{Monthly: decimal.NewFromInt(-50)})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidPrepayment)
}
