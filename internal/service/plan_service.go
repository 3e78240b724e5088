package service

import (
	"context"
	"time"

	"github.com/carson-networks/budget-report/internal/operator/actions"
)

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// PlanService generates budget plans on the operator's worker pool.
type PlanService struct {
	processor actionProcessor
	fetcher   actions.TransactionFetcher
	now       func() time.Time
}

// NewPlanService creates a new PlanService.
func NewPlanService(processor actionProcessor, fetcher actions.TransactionFetcher) *PlanService {
	return &PlanService{
		processor: processor,
		fetcher:   fetcher,
		now:       time.Now,
	}
}

// GenerateBudgetPlan returns the markdown budget plan for userID.
func (s *PlanService) GenerateBudgetPlan(ctx context.Context, userID string) (string, error) {
	action := &actions.GenerateBudgetPlan{
		UserID:  userID,
		Fetcher: s.fetcher,
		Now:     s.now,
	}

	if err := s.processor.Process(ctx, action); err != nil {
		return "", err
	}

	return action.Report, nil
}
