// Package aggregator fetches account transactions for a user. Only the demo
// data source is implemented.
package aggregator

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-report/internal/planner"
)

type fixtureRow struct {
	date        string
	amount      int64
	description string
	kind        string
}

var fixture = []fixtureRow{
	{"2024-01-15", -2500, "ZOMATO ONLINE ORDER", planner.TypeDebit},
	{"2024-01-16", -1200, "UBER RIDE", planner.TypeDebit},
	{"2024-01-17", -15000, "RENT PAYMENT", planner.TypeDebit},
	{"2024-01-18", 50000, "SALARY CREDIT", planner.TypeCredit},
	{"2024-01-20", -3500, "GROCERY STORE", planner.TypeDebit},
	{"2024-01-22", -800, "NETFLIX SUBSCRIPTION", planner.TypeDebit},
	{"2024-01-25", -4500, "SWIGGY ORDER", planner.TypeDebit},
	{"2024-01-28", -2000, "ELECTRICITY BILL", planner.TypeDebit},
	{"2024-02-01", -5000, "SHOPPING MALL", planner.TypeDebit},
	{"2024-02-05", -1500, "MOVIE TICKETS", planner.TypeDebit},
}

// MockClient serves the same ten demo transactions for every user.
type MockClient struct {
	logger *logrus.Logger
}

func NewMockClient(logger *logrus.Logger) *MockClient {
	return &MockClient{logger: logger}
}

func (c *MockClient) FetchTransactions(ctx context.Context, userID string) ([]planner.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]planner.Transaction, 0, len(fixture))
	for _, row := range fixture {
		date, err := time.Parse(time.DateOnly, row.date)
		if err != nil {
			return nil, err
		}
		out = append(out, planner.Transaction{
			Date:        date,
			Amount:      decimal.NewFromInt(row.amount),
			Description: row.description,
			Type:        row.kind,
		})
	}

	c.logger.WithFields(logrus.Fields{
		"userID": userID,
		"count":  len(out),
	}).Debug("Aggregator.FetchTransactions.Fetched")

	return out, nil
}
