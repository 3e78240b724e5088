package breakdown

import (
	"github.com/carson-networks/budget-report/internal/visualization"
)

// CategoryAmount is the API model for one category total.
type CategoryAmount struct {
	Category string `json:"category" doc:"Category name, Income denotes inflow"`
	Amount   string `json:"amount" doc:"Non-negative decimal amount"`
	Color    string `json:"color,omitempty" doc:"Display color hint"`
}

// BarPoint is the API model for one bar.
type BarPoint struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// PieSlice is the API model for one expense slice.
type PieSlice struct {
	Category   string `json:"category"`
	Amount     string `json:"amount"`
	Color      string `json:"color"`
	Percentage int64  `json:"percentage" doc:"Rounded share of total expenses"`
	Label      string `json:"label"`
}

// Summary is the API model for the summary scalars, raw and formatted.
type Summary struct {
	TotalIncome          string `json:"totalIncome"`
	TotalExpenses        string `json:"totalExpenses"`
	NetSavings           string `json:"netSavings"`
	TotalIncomeDisplay   string `json:"totalIncomeDisplay"`
	TotalExpensesDisplay string `json:"totalExpensesDisplay"`
	NetSavingsDisplay    string `json:"netSavingsDisplay"`
}

// Breakdown is the API model for the chart data of a report.
type Breakdown struct {
	Bar     []BarPoint `json:"bar"`
	Pie     []PieSlice `json:"pie"`
	Summary Summary    `json:"summary"`
}

// FromEngine converts engine output to its API model.
func FromEngine(b visualization.Breakdown) Breakdown {
	out := Breakdown{
		Bar: make([]BarPoint, len(b.Bar)),
		Pie: make([]PieSlice, len(b.Pie)),
	}
	for i, point := range b.Bar {
		out.Bar[i] = BarPoint{Category: point.Category, Amount: point.Amount.String()}
	}
	for i, slice := range b.Pie {
		out.Pie[i] = PieSlice{
			Category:   slice.Category,
			Amount:     slice.Amount.String(),
			Color:      slice.Color,
			Percentage: slice.Percentage,
			Label:      slice.Label,
		}
	}

	display := b.Summary.Display()
	out.Summary = Summary{
		TotalIncome:          b.Summary.TotalIncome.String(),
		TotalExpenses:        b.Summary.TotalExpenses.String(),
		NetSavings:           b.Summary.NetSavings.String(),
		TotalIncomeDisplay:   display.TotalIncome,
		TotalExpensesDisplay: display.TotalExpenses,
		NetSavingsDisplay:    display.NetSavings,
	}
	return out
}
