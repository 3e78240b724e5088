// Package visualization turns a flat list of category amounts into chart
// series and summary figures. Every function is pure: nothing is cached and
// equal inputs always produce equal outputs.
package visualization

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// IncomeCategory is the reserved category that denotes inflow.
const IncomeCategory = "Income"

// Palette is cycled by position over the pie series.
var Palette = [...]string{
	"#10B981",
	"#F59E0B",
	"#EF4444",
	"#8B5CF6",
	"#06B6D4",
	"#F97316",
	"#EC4899",
	"#84CC16",
}

var hundred = decimal.NewFromInt(100)

// CategoryAmount is one category total. Color is a display hint only.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
	Color    string
}

// BarPoint is one bar of the all-categories chart.
type BarPoint struct {
	Category string
	Amount   decimal.Decimal
}

// PieSlice is one slice of the expense distribution chart.
type PieSlice struct {
	Category   string
	Amount     decimal.Decimal
	Color      string
	Percentage int64
	Label      string
}

// Summary holds the three derived scalars. NetSavings may be negative.
type Summary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetSavings    decimal.Decimal
}

// Breakdown is everything a report view needs to draw its charts.
type Breakdown struct {
	Bar     []BarPoint
	Pie     []PieSlice
	Summary Summary
}

// Build derives all outputs from items.
func Build(items []CategoryAmount) Breakdown {
	return Breakdown{
		Bar:     BarSeries(items),
		Pie:     PieSeries(items),
		Summary: Summarize(items),
	}
}

// BarSeries keeps every entry, income included, in input order.
func BarSeries(items []CategoryAmount) []BarPoint {
	points := make([]BarPoint, len(items))
	for i, item := range items {
		points[i] = BarPoint{Category: item.Category, Amount: item.Amount}
	}
	return points
}

// PieSeries drops the income entry and labels each remaining slice with its
// share of the filtered total, rounded half away from zero. A zero total
// yields 0% for every slice.
func PieSeries(items []CategoryAmount) []PieSlice {
	expenses := expensesOf(items)
	total := sum(expenses)

	slices := make([]PieSlice, len(expenses))
	for i, item := range expenses {
		percentage := percentOf(item.Amount, total)
		slices[i] = PieSlice{
			Category:   item.Category,
			Amount:     item.Amount,
			Color:      Palette[i%len(Palette)],
			Percentage: percentage,
			Label:      fmt.Sprintf("%s %d%%", item.Category, percentage),
		}
	}
	return slices
}

// Summarize computes total income, total expenses and net savings. When more
// than one income entry is present the first one wins.
func Summarize(items []CategoryAmount) Summary {
	income := decimal.Zero
	for _, item := range items {
		if item.Category == IncomeCategory {
			income = item.Amount
			break
		}
	}

	expenses := sum(expensesOf(items))

	return Summary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetSavings:    income.Sub(expenses),
	}
}

func expensesOf(items []CategoryAmount) []CategoryAmount {
	expenses := make([]CategoryAmount, 0, len(items))
	for _, item := range items {
		if item.Category != IncomeCategory {
			expenses = append(expenses, item)
		}
	}
	return expenses
}

func sum(items []CategoryAmount) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}

func percentOf(amount, total decimal.Decimal) int64 {
	if total.IsZero() {
		return 0
	}
	return amount.Mul(hundred).Div(total).Round(0).IntPart()
}
