// Package categories supplies the category amounts drawn next to a budget
// report.
package categories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-report/internal/visualization"
)

// Provider returns the categories for a user. The list may contain an
// "Income" entry; every other entry is an expense.
type Provider interface {
	Categories(ctx context.Context, userID string) ([]visualization.CategoryAmount, error)
}

// StaticProvider serves the same list to every user.
type StaticProvider struct {
	items []visualization.CategoryAmount
}

func NewStaticProvider(items []visualization.CategoryAmount) *StaticProvider {
	return &StaticProvider{items: clone(items)}
}

// NewFixtureProvider serves Fixture.
func NewFixtureProvider() *StaticProvider {
	return &StaticProvider{items: Fixture()}
}

func (p *StaticProvider) Categories(_ context.Context, _ string) ([]visualization.CategoryAmount, error) {
	return clone(p.items), nil
}

// Fixture is the demo monthly budget.
func Fixture() []visualization.CategoryAmount {
	return []visualization.CategoryAmount{
		{Category: visualization.IncomeCategory, Amount: decimal.NewFromInt(50000), Color: "#10B981"},
		{Category: "Groceries", Amount: decimal.NewFromInt(8000), Color: "#F59E0B"},
		{Category: "Utilities", Amount: decimal.NewFromInt(3000), Color: "#EF4444"},
		{Category: "Rent", Amount: decimal.NewFromInt(15000), Color: "#8B5CF6"},
		{Category: "Transport", Amount: decimal.NewFromInt(4000), Color: "#06B6D4"},
		{Category: "Dining Out", Amount: decimal.NewFromInt(6000), Color: "#F97316"},
		{Category: "Shopping", Amount: decimal.NewFromInt(5000), Color: "#EC4899"},
		{Category: "Entertainment", Amount: decimal.NewFromInt(2000), Color: "#84CC16"},
	}
}

func clone(items []visualization.CategoryAmount) []visualization.CategoryAmount {
	out := make([]visualization.CategoryAmount, len(items))
	copy(out, items)
	return out
}
