package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusconnect/backend/internal/database"
)

var (
	ErrNotFound              = errors.New("record not found")
	ErrDuplicateRegistration = errors.New("student already registered for this course")
)

const registrationUniqueConstraint = "registrations_student_course_key"

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// base resolves the connection for a call: the transaction bound to the
// context if there is one, the pool otherwise.
type base struct {
	pool *pgxpool.Pool
}

func (b base) conn(ctx context.Context) DBTX {
	if tx, ok := database.TxFromContext(ctx); ok {
		return tx
	}
	return b.pool
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraint
}
