package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusconnect/backend/internal/model"
)

// PaymentRepository appends to the payment ledger.
type PaymentRepository struct {
	base
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{base{pool: pool}}
}

// LockLedger serializes payments for one student until the surrounding
// transaction ends. Must be called inside a transaction.
func (r *PaymentRepository) LockLedger(ctx context.Context, studentID string) error {
	_, err := r.conn(ctx).Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('payments:' || $1))`, studentID)
	return err
}

// Create appends a payment.
func (r *PaymentRepository) Create(ctx context.Context, p *model.Payment) error {
	return r.conn(ctx).QueryRow(ctx,
		`INSERT INTO payments (student_id, amount_paid, payment_method) VALUES ($1, $2, $3)
		 RETURNING id, paid_at`,
		p.StudentID, p.AmountPaid, p.PaymentMethod,
	).Scan(&p.ID, &p.PaidAt)
}
