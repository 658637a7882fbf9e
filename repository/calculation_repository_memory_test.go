package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prepay-engine/domain"
)

func TestCalculationRepositoryMemory_Save(t *testing.T) {
	repo := NewCalculationRepositoryMemory()

	record := domain.NewCalculationRecord(domain.LoanInput{
		Principal:  decimal.NewFromInt(10_000),
		AnnualRate: 12,
		TermMonths: 24,
	}, domain.PrepaymentPlan{})

	require.NoError(t, repo.Save(context.Background(), record))

	stored := repo.All()
	require.Len(t, stored, 1)
	assert.Equal(t, record.ID, stored[0].ID)
	assert.False(t, stored[0].CreatedAt.IsZero())
}

func TestMockCache_RoundTrip(t *testing.T) {
	cache := NewMockCache()
	ctx := context.Background()

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "k", "v"))
	val, ok := cache.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)
}
