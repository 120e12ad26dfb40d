package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusconnect/backend/internal/model"
	"github.com/campusconnect/backend/internal/repository"
)

// BillingService derives a student's tuition position from registrations
// and payments. Nothing is cached; every call reads current rows.
type BillingService struct {
	billing BillingStore
}

// NewBillingService creates a new BillingService.
func NewBillingService(billing BillingStore) *BillingService {
	return &BillingService{billing: billing}
}

// Compute returns the billing summary for a student.
func (s *BillingService) Compute(ctx context.Context, studentID string) (*model.BillingSummary, error) {
	due, err := s.billing.TuitionDue(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("tuition due: %w", err)
	}
	paid, err := s.billing.TotalPaid(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("total paid: %w", err)
	}

	last, err := s.billing.LastPayment(ctx, studentID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("last payment: %w", err)
	}

	return &model.BillingSummary{
		StudentID:   studentID,
		AmountDue:   due,
		TotalPaid:   paid,
		Remaining:   model.RemainingBalance(due, paid),
		Status:      model.DeriveBillingStatus(due, paid),
		LastPayment: last,
	}, nil
}
