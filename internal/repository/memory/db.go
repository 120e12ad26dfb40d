// Package memory is an in-process implementation of the service stores.
// Transactions snapshot the tables and restore them when fn fails.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/campusconnect/backend/internal/model"
)

type (
	DB struct {
		mu   sync.RWMutex
		txMu sync.Mutex

		courses       map[string]model.Course
		students      map[string]model.Student
		registrations []model.Registration
		payments      []model.Payment
		sessions      map[string]time.Time

		regPK     int64
		paymentPK int64

		now func() time.Time
	}

	tables struct {
		courses       map[string]model.Course
		students      map[string]model.Student
		registrations []model.Registration
		payments      []model.Payment
		regPK         int64
		paymentPK     int64
	}
)

// Open returns an empty database.
func Open() *DB {
	return &DB{
		courses:  make(map[string]model.Course),
		students: make(map[string]model.Student),
		sessions: make(map[string]time.Time),
		now:      time.Now,
	}
}

// SetClock overrides the time source used for timestamps and session expiry.
func (db *DB) SetClock(now func() time.Time) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.now = now
}

func (db *DB) snapshot() tables {
	db.mu.RLock()
	defer db.mu.RUnlock()

	t := tables{
		courses:       make(map[string]model.Course, len(db.courses)),
		students:      make(map[string]model.Student, len(db.students)),
		registrations: append([]model.Registration(nil), db.registrations...),
		payments:      append([]model.Payment(nil), db.payments...),
		regPK:         db.regPK,
		paymentPK:     db.paymentPK,
	}
	for k, v := range db.courses {
		t.courses[k] = v
	}
	for k, v := range db.students {
		t.students[k] = v
	}
	return t
}

func (db *DB) restore(t tables) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.courses = t.courses
	db.students = t.students
	db.registrations = t.registrations
	db.payments = t.payments
	db.regPK = t.regPK
	db.paymentPK = t.paymentPK
}

type txKey struct{}

// Transactor serializes transactions and rolls back on error or panic.
type Transactor struct {
	db *DB
}

func NewTransactor(db *DB) *Transactor {
	return &Transactor{db: db}
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	t.db.txMu.Lock()
	defer t.db.txMu.Unlock()

	snap := t.db.snapshot()
	defer func() {
		if r := recover(); r != nil {
			t.db.restore(snap)
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		t.db.restore(snap)
		return err
	}
	return nil
}
