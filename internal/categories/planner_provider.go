package categories

import (
	"context"
	"fmt"

	"github.com/carson-networks/budget-report/internal/planner"
	"github.com/carson-networks/budget-report/internal/visualization"
)

type transactionFetcher interface {
	FetchTransactions(ctx context.Context, userID string) ([]planner.Transaction, error)
}

// PlannerProvider derives the categories from the user's transactions.
type PlannerProvider struct {
	fetcher transactionFetcher
}

func NewPlannerProvider(fetcher transactionFetcher) *PlannerProvider {
	return &PlannerProvider{fetcher: fetcher}
}

func (p *PlannerProvider) Categories(ctx context.Context, userID string) ([]visualization.CategoryAmount, error) {
	txs, err := p.fetcher.FetchTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}
	return FromAnalysis(planner.Analyze(txs)), nil
}

// FromAnalysis turns an analysis into one Income entry holding total income
// followed by the expense categories in descending order. Colors follow the
// palette by position.
func FromAnalysis(a planner.Analysis) []visualization.CategoryAmount {
	out := make([]visualization.CategoryAmount, 0, len(a.ExpenseBreakdown)+1)
	out = append(out, visualization.CategoryAmount{
		Category: visualization.IncomeCategory,
		Amount:   a.TotalIncome,
		Color:    colorAt(0),
	})
	for _, line := range a.ExpenseBreakdown {
		out = append(out, visualization.CategoryAmount{
			Category: line.Category,
			Amount:   line.Amount,
			Color:    colorAt(len(out)),
		})
	}
	return out
}

func colorAt(i int) string {
	return visualization.Palette[i%len(visualization.Palette)]
}
