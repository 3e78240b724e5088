package service

import (
	"github.com/carson-networks/budget-report/internal/operator/actions"
)

// Service holds all business logic services.
type Service struct {
	Plan *PlanService
}

// NewService creates a new Service that runs its work through processor.
func NewService(processor actionProcessor, fetcher actions.TransactionFetcher) *Service {
	return &Service{
		Plan: NewPlanService(processor, fetcher),
	}
}
