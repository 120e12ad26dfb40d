package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusconnect/backend/internal/model"
)

// BillingRepository aggregates tuition and payments for a student.
type BillingRepository struct {
	base
}

// NewBillingRepository creates a new BillingRepository.
func NewBillingRepository(pool *pgxpool.Pool) *BillingRepository {
	return &BillingRepository{base{pool: pool}}
}

// TuitionDue sums the fees of every course the student is registered for.
func (r *BillingRepository) TuitionDue(ctx context.Context, studentID string) (float64, error) {
	var due float64
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT COALESCE(SUM(c.tuition_fee), 0)::float8
		 FROM registrations reg
		 JOIN courses c ON c.id = reg.course_id
		 WHERE reg.student_id = $1`, studentID,
	).Scan(&due)
	return due, err
}

// TotalPaid sums every payment the student has made.
func (r *BillingRepository) TotalPaid(ctx context.Context, studentID string) (float64, error) {
	var paid float64
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT COALESCE(SUM(amount_paid), 0)::float8 FROM payments WHERE student_id = $1`, studentID,
	).Scan(&paid)
	return paid, err
}

// LastPayment returns the most recent payment, or ErrNotFound.
func (r *BillingRepository) LastPayment(ctx context.Context, studentID string) (*model.Payment, error) {
	p := &model.Payment{}
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT id, student_id, amount_paid::float8, payment_method, paid_at
		 FROM payments WHERE student_id = $1
		 ORDER BY id DESC LIMIT 1`, studentID,
	).Scan(&p.ID, &p.StudentID, &p.AmountPaid, &p.PaymentMethod, &p.PaidAt)
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}
