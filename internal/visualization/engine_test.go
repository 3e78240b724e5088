package visualization

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func mockCategories() []CategoryAmount {
	return []CategoryAmount{
		{Category: "Income", Amount: amount(50000), Color: "#10B981"},
		{Category: "Groceries", Amount: amount(8000), Color: "#F59E0B"},
		{Category: "Utilities", Amount: amount(3000), Color: "#EF4444"},
		{Category: "Rent", Amount: amount(15000), Color: "#8B5CF6"},
		{Category: "Transport", Amount: amount(4000), Color: "#06B6D4"},
		{Category: "Dining Out", Amount: amount(6000), Color: "#F97316"},
		{Category: "Shopping", Amount: amount(5000), Color: "#EC4899"},
		{Category: "Entertainment", Amount: amount(2000), Color: "#84CC16"},
	}
}

func TestSummarize_IncomeAndExpenses(t *testing.T) {
	summary := Summarize(mockCategories())

	assert.True(t, summary.TotalIncome.Equal(amount(50000)))
	assert.True(t, summary.TotalExpenses.Equal(amount(43000)))
	assert.True(t, summary.NetSavings.Equal(amount(7000)))
}

func TestSummarize_NoIncome(t *testing.T) {
	summary := Summarize([]CategoryAmount{{Category: "Groceries", Amount: amount(8000)}})

	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.TotalExpenses.Equal(amount(8000)))
	assert.True(t, summary.NetSavings.Equal(amount(-8000)))
}

func TestSummarize_NegativeSavingsNotClamped(t *testing.T) {
	summary := Summarize([]CategoryAmount{
		{Category: "Income", Amount: amount(1000)},
		{Category: "Rent", Amount: amount(1500)},
	})

	assert.True(t, summary.NetSavings.Equal(amount(-500)))
	assert.Equal(t, "₹-500", summary.Display().NetSavings)
}

func TestSummarize_FirstIncomeWins(t *testing.T) {
	summary := Summarize([]CategoryAmount{
		{Category: "Rent", Amount: amount(100)},
		{Category: "Income", Amount: amount(1000)},
		{Category: "Income", Amount: amount(9000)},
	})

	assert.True(t, summary.TotalIncome.Equal(amount(1000)))
	assert.True(t, summary.TotalExpenses.Equal(amount(100)))
}

func TestBuild_Empty(t *testing.T) {
	for _, input := range [][]CategoryAmount{nil, {}} {
		breakdown := Build(input)

		assert.NotNil(t, breakdown.Bar)
		assert.NotNil(t, breakdown.Pie)
		assert.Empty(t, breakdown.Bar)
		assert.Empty(t, breakdown.Pie)
		assert.True(t, breakdown.Summary.TotalIncome.IsZero())
		assert.True(t, breakdown.Summary.TotalExpenses.IsZero())
		assert.True(t, breakdown.Summary.NetSavings.IsZero())
	}
}

func TestBarSeries_KeepsOrderAndIncome(t *testing.T) {
	items := mockCategories()
	bars := BarSeries(items)

	require.Len(t, bars, len(items))
	for i, item := range items {
		assert.Equal(t, item.Category, bars[i].Category)
		assert.True(t, item.Amount.Equal(bars[i].Amount))
	}
	assert.Equal(t, "Income", bars[0].Category)
}

func TestPieSeries_ExcludesIncomeAnywhere(t *testing.T) {
	items := []CategoryAmount{
		{Category: "Rent", Amount: amount(100)},
		{Category: "Income", Amount: amount(1000)},
		{Category: "Groceries", Amount: amount(100)},
	}

	slices := PieSeries(items)

	require.Len(t, slices, 2)
	for _, slice := range slices {
		assert.NotEqual(t, IncomeCategory, slice.Category)
	}
	assert.Equal(t, "Rent", slices[0].Category)
	assert.Equal(t, "Groceries", slices[1].Category)
}

func TestPieSeries_EqualSharesLabelFiftyPercent(t *testing.T) {
	slices := PieSeries([]CategoryAmount{
		{Category: "Rent", Amount: amount(1000)},
		{Category: "Groceries", Amount: amount(1000)},
	})

	require.Len(t, slices, 2)
	assert.Equal(t, int64(50), slices[0].Percentage)
	assert.Equal(t, "Rent 50%", slices[0].Label)
	assert.Equal(t, "Groceries 50%", slices[1].Label)
}

func TestPieSeries_MockDataLabels(t *testing.T) {
	slices := PieSeries(mockCategories())

	labels := make([]string, len(slices))
	for i, slice := range slices {
		labels[i] = slice.Label
	}
	// 8000/43000 = 18.6%, 3000/43000 = 6.98%, 15000/43000 = 34.9%, ...
	assert.Equal(t, []string{
		"Groceries 19%",
		"Utilities 7%",
		"Rent 35%",
		"Transport 9%",
		"Dining Out 14%",
		"Shopping 12%",
		"Entertainment 5%",
	}, labels)
}

func TestPieSeries_RoundsHalfAwayFromZero(t *testing.T) {
	slices := PieSeries([]CategoryAmount{
		{Category: "A", Amount: amount(1)},
		{Category: "B", Amount: amount(7)},
	})

	assert.Equal(t, int64(13), slices[0].Percentage)
	assert.Equal(t, int64(88), slices[1].Percentage)
}

func TestPieSeries_ZeroTotal(t *testing.T) {
	slices := PieSeries([]CategoryAmount{
		{Category: "Income", Amount: amount(500)},
		{Category: "Rent", Amount: decimal.Zero},
		{Category: "Groceries", Amount: decimal.Zero},
	})

	require.Len(t, slices, 2)
	assert.Equal(t, int64(0), slices[0].Percentage)
	assert.Equal(t, "Rent 0%", slices[0].Label)
	assert.Equal(t, "Groceries 0%", slices[1].Label)
}

func TestPieSeries_PaletteCyclesByFilteredIndex(t *testing.T) {
	items := []CategoryAmount{{Category: "Income", Amount: amount(1)}}
	for i := 0; i < 10; i++ {
		items = append(items, CategoryAmount{Category: string(rune('A' + i)), Amount: amount(10), Color: "#000000"})
	}

	slices := PieSeries(items)

	require.Len(t, slices, 10)
	assert.Equal(t, Palette[0], slices[0].Color)
	assert.Equal(t, Palette[7], slices[7].Color)
	assert.Equal(t, Palette[0], slices[8].Color)
	assert.Equal(t, Palette[1], slices[9].Color)
}

func TestPieSeries_DuplicateExpenseCategoriesKept(t *testing.T) {
	slices := PieSeries([]CategoryAmount{
		{Category: "Rent", Amount: amount(300)},
		{Category: "Rent", Amount: amount(100)},
	})

	require.Len(t, slices, 2)
	assert.Equal(t, "Rent 75%", slices[0].Label)
	assert.Equal(t, "Rent 25%", slices[1].Label)
}

func TestBuild_Deterministic(t *testing.T) {
	first := Build(mockCategories())
	second := Build(mockCategories())

	assert.Equal(t, first, second)
}

func TestBuild_DoesNotModifyInput(t *testing.T) {
	items := mockCategories()
	before := mockCategories()

	Build(items)

	assert.Equal(t, before, items)
}
