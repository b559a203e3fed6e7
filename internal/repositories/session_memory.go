package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-movie-watchlist/internal/models"
)

type memorySession struct {
	session   models.Session
	search    []models.Candidate
	expiresAt time.Time
}

// SessionMemoryRepository is the in-process session store used when Redis is
// not configured. Sessions do not survive a restart and are not shared
// between replicas.
type SessionMemoryRepository struct {
	mu        sync.Mutex
	exp       time.Duration
	now       func() time.Time
	lastSweep time.Time
	sessions  map[string]*memorySession
}

func NewSessionMemoryRepository(expiration time.Duration) *SessionMemoryRepository {
	return &SessionMemoryRepository{
		exp:      expiration,
		now:      time.Now,
		sessions: make(map[string]*memorySession),
	}
}

func (r *SessionMemoryRepository) Save(_ context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)
	r.sessions[session.ID] = &memorySession{
		session:   *session,
		expiresAt: now.Add(r.exp),
	}
	return nil
}

func (r *SessionMemoryRepository) Get(_ context.Context, id string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := r.live(id)
	if entry == nil {
		return nil, nil
	}
	session := entry.session
	return &session, nil
}

func (r *SessionMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}

// SaveSearch is a no-op for unknown sessions: the batch cannot outlive them.
func (r *SessionMemoryRepository) SaveSearch(_ context.Context, sessionID string, batch []models.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry := r.live(sessionID); entry != nil {
		entry.search = make([]models.Candidate, len(batch))
		copy(entry.search, batch)
	}
	return nil
}

func (r *SessionMemoryRepository) GetSearch(_ context.Context, sessionID string) ([]models.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := r.live(sessionID)
	if entry == nil || entry.search == nil {
		return nil, nil
	}
	batch := make([]models.Candidate, len(entry.search))
	copy(batch, entry.search)
	return batch, nil
}

// sweep drops expired sessions, at most once per expiration period.
// Callers hold mu.
func (r *SessionMemoryRepository) sweep(now time.Time) {
	if now.Sub(r.lastSweep) < r.exp {
		return
	}
	for id, entry := range r.sessions {
		if !now.Before(entry.expiresAt) {
			delete(r.sessions, id)
		}
	}
	r.lastSweep = now
}

// live returns the entry if present and unexpired, evicting it otherwise.
// Callers hold mu.
func (r *SessionMemoryRepository) live(id string) *memorySession {
	entry, ok := r.sessions[id]
	if !ok {
		return nil
	}
	if !r.now().Before(entry.expiresAt) {
		delete(r.sessions, id)
		return nil
	}
	return entry
}
