package aggregator

import (
	"context"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-report/internal/planner"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestMockClient_FetchTransactions(t *testing.T) {
	client := NewMockClient(quietLogger())

	txs, err := client.FetchTransactions(context.Background(), "demo_user")

	require.NoError(t, err)
	require.Len(t, txs, 10)
	assert.Equal(t, "ZOMATO ONLINE ORDER", txs[0].Description)
	assert.Equal(t, 2024, txs[0].Date.Year())
	assert.Equal(t, planner.TypeCredit, txs[3].Type)
	assert.True(t, txs[3].Amount.Equal(decimal.NewFromInt(50000)))

	analysis := planner.Analyze(txs)
	assert.True(t, analysis.TotalExpenses.Equal(decimal.NewFromInt(36000)))
}

func TestMockClient_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMockClient(quietLogger()).FetchTransactions(ctx, "demo_user")

	assert.ErrorIs(t, err, context.Canceled)
}
