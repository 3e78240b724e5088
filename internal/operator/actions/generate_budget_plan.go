package actions

import (
	"context"
	"time"

	"github.com/carson-networks/budget-report/internal/planner"
)

type TransactionFetcher interface {
	FetchTransactions(ctx context.Context, userID string) ([]planner.Transaction, error)
}

// GenerateBudgetPlan fetches the user's transactions and writes the markdown
// plan into Report.
type GenerateBudgetPlan struct {
	UserID  string
	Fetcher TransactionFetcher
	Now     func() time.Time

	Report   string
	Analysis planner.Analysis

	IAction
}

func (g *GenerateBudgetPlan) Perform(ctx context.Context) error {
	txs, err := g.Fetcher.FetchTransactions(ctx, g.UserID)
	if err != nil {
		return err
	}

	now := time.Now
	if g.Now != nil {
		now = g.Now
	}

	g.Analysis = planner.Analyze(txs)
	g.Report = planner.Report(g.Analysis, now())

	return nil
}
