package memory

import (
	"context"
	"time"

	"github.com/campusconnect/backend/internal/service"
)

type SessionRepository struct {
	db *DB
}

var _ service.SessionStore = (*SessionRepository)(nil) // interface compliance check

func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Save(_ context.Context, tokenID, _ string, ttl time.Duration) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.sessions[tokenID] = r.db.now().Add(ttl)
	return nil
}

func (r *SessionRepository) Exists(_ context.Context, tokenID string) (bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	exp, ok := r.db.sessions[tokenID]
	return ok && r.db.now().Before(exp), nil
}

func (r *SessionRepository) Delete(_ context.Context, tokenID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, tokenID)
	return nil
}
