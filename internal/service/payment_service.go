package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/logger"
	"github.com/campusconnect/backend/internal/model"
)

const maxPaymentMethodLen = 50

// PaymentService settles the outstanding tuition remainder in one payment.
type PaymentService struct {
	tx       Transactor
	payments PaymentStore
	billing  *BillingService
	log      zerolog.Logger
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(tx Transactor, payments PaymentStore, billing *BillingService, log zerolog.Logger) *PaymentService {
	return &PaymentService{
		tx:       tx,
		payments: payments,
		billing:  billing,
		log:      logger.Component(log, "payment"),
	}
}

// Pay appends a payment of exactly the remaining balance. Concurrent calls for
// the same student are serialized so only one of them pays.
func (s *PaymentService) Pay(ctx context.Context, studentID, method string) (*model.Payment, error) {
	method = normalizePaymentMethod(method)

	var payment *model.Payment
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.payments.LockLedger(ctx, studentID); err != nil {
			return fmt.Errorf("lock ledger: %w", err)
		}

		summary, err := s.billing.Compute(ctx, studentID)
		if err != nil {
			return err
		}
		if summary.AmountDue == 0 {
			return ErrNoOutstandingBalance
		}
		if summary.Remaining <= 0 {
			return ErrAlreadyPaid
		}

		p := &model.Payment{
			StudentID:     studentID,
			AmountPaid:    summary.Remaining,
			PaymentMethod: method,
		}
		if err := s.payments.Create(ctx, p); err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
		payment = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("student_id", studentID).
		Float64("amount", payment.AmountPaid).
		Str("method", payment.PaymentMethod).
		Msg("Payment recorded")
	return payment, nil
}

func normalizePaymentMethod(method string) string {
	method = strings.TrimSpace(method)
	if method == "" {
		return model.DefaultPaymentMethod
	}
	if r := []rune(method); len(r) > maxPaymentMethodLen {
		method = string(r[:maxPaymentMethodLen])
	}
	return method
}
