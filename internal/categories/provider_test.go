package categories

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-report/internal/planner"
	"github.com/carson-networks/budget-report/internal/visualization"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchTransactions(ctx context.Context, userID string) ([]planner.Transaction, error) {
	args := m.Called(ctx, userID)
	if txs := args.Get(0); txs != nil {
		return txs.([]planner.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestFixtureProvider(t *testing.T) {
	provider := NewFixtureProvider()

	items, err := provider.Categories(context.Background(), "anyone")

	require.NoError(t, err)
	require.Len(t, items, 8)
	assert.Equal(t, visualization.IncomeCategory, items[0].Category)
	assert.True(t, items[0].Amount.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, "#84CC16", items[7].Color)

	summary := visualization.Summarize(items)
	assert.True(t, summary.TotalExpenses.Equal(decimal.NewFromInt(43000)))
	assert.True(t, summary.NetSavings.Equal(decimal.NewFromInt(7000)))
}

func TestStaticProvider_ReturnsCopies(t *testing.T) {
	source := []visualization.CategoryAmount{{Category: "Rent", Amount: decimal.NewFromInt(10)}}
	provider := NewStaticProvider(source)
	source[0].Category = "changed"

	first, err := provider.Categories(context.Background(), "")
	require.NoError(t, err)
	first[0].Amount = decimal.NewFromInt(99)

	second, err := provider.Categories(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "Rent", second[0].Category)
	assert.True(t, second[0].Amount.Equal(decimal.NewFromInt(10)))
}

func TestPlannerProvider(t *testing.T) {
	fetcher := &mockFetcher{}
	fetcher.On("FetchTransactions", mock.Anything, "demo_user").Return([]planner.Transaction{
		{Amount: decimal.NewFromInt(1000), Description: "salary", Type: planner.TypeCredit},
		{Amount: decimal.NewFromInt(-300), Description: "uber", Type: planner.TypeDebit},
		{Amount: decimal.NewFromInt(-500), Description: "rent", Type: planner.TypeDebit},
	}, nil)

	items, err := NewPlannerProvider(fetcher).Categories(context.Background(), "demo_user")

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, visualization.IncomeCategory, items[0].Category)
	assert.True(t, items[0].Amount.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, planner.CategoryRent, items[1].Category)
	assert.Equal(t, visualization.Palette[1], items[1].Color)
	assert.Equal(t, planner.CategoryTransport, items[2].Category)
	fetcher.AssertExpectations(t)
}

func TestPlannerProvider_FetchError(t *testing.T) {
	fetcher := &mockFetcher{}
	fetcher.On("FetchTransactions", mock.Anything, "u").Return(nil, errors.New("aggregator down"))

	_, err := NewPlannerProvider(fetcher).Categories(context.Background(), "u")

	assert.ErrorContains(t, err, "aggregator down")
}

func TestFromAnalysis_Empty(t *testing.T) {
	items := FromAnalysis(planner.Analyze(nil))

	require.Len(t, items, 1)
	assert.True(t, items[0].Amount.IsZero())
}
