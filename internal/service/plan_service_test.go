package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-report/internal/operator/actions"
	"github.com/carson-networks/budget-report/internal/planner"
)

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

type staticFetcher struct {
	txs []planner.Transaction
}

func (s *staticFetcher) FetchTransactions(_ context.Context, _ string) ([]planner.Transaction, error) {
	return s.txs, nil
}

func newPlanTestService(t *testing.T) (*PlanService, *mockProcessor) {
	t.Helper()
	processor := &mockProcessor{}
	fetcher := &staticFetcher{txs: []planner.Transaction{
		{Amount: decimal.NewFromInt(2000), Description: "salary", Type: planner.TypeCredit},
		{Amount: decimal.NewFromInt(-500), Description: "rent", Type: planner.TypeDebit},
	}}
	svc := NewService(processor, fetcher).Plan
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { processor.AssertExpectations(t) })
	return svc, processor
}

func TestGenerateBudgetPlan_Success(t *testing.T) {
	svc, processor := newPlanTestService(t)

	processor.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		plan, ok := a.(*actions.GenerateBudgetPlan)
		return ok && plan.UserID == "demo_user"
	})).Run(func(args mock.Arguments) {
		_ = args.Get(1).(actions.IAction).Perform(args.Get(0).(context.Context))
	}).Return(nil)

	report, err := svc.GenerateBudgetPlan(context.Background(), "demo_user")

	assert.NoError(t, err)
	assert.Contains(t, report, "- **Total Income**: Rs.2,000")
	assert.Contains(t, report, "2024-05-01 08:00:00")
}

func TestGenerateBudgetPlan_ProcessorError(t *testing.T) {
	svc, processor := newPlanTestService(t)

	processor.On("Process", mock.Anything, mock.Anything).Return(errors.New("operator delegator stopped"))

	report, err := svc.GenerateBudgetPlan(context.Background(), "demo_user")

	assert.EqualError(t, err, "operator delegator stopped")
	assert.Empty(t, report)
}
