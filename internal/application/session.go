// internal/application/session.go
package application

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rkarim/chatcart/internal/domain"
)

// Session is the state of one logical conversation: the logged-in user, the
// cart, the partially collected login fields and the detected language.
// The dispatcher holds mu for the whole request so concurrent requests for
// the same session serialize.
type Session struct {
	ID string

	mu           sync.Mutex
	User         *domain.UserProfile
	Cart         domain.Cart
	PendingLogin map[string]string
	Lang         domain.Language
	LastSeen     time.Time
}

// SessionStore keeps sessions by ID and expires the idle ones.
type SessionStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]*Session
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{ttl: ttl, sessions: make(map[string]*Session)}
}

func (st *SessionStore) Create() *Session {
	s := &Session{
		ID:           uuid.NewString(),
		PendingLogin: make(map[string]string),
		Lang:         domain.LangEnglish,
		LastSeen:     time.Now(),
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, false
	}
	s.mu.Lock()
	s.LastSeen = time.Now()
	s.mu.Unlock()
	return s, true
}

func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep drops sessions idle longer than the store TTL until ctx is done.
func (st *SessionStore) Sweep(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			st.purgeExpired(now)
		}
	}
}

func (st *SessionStore) purgeExpired(now time.Time) {
	if st.ttl <= 0 {
		return
	}
	st.mu.RLock()
	candidates := make([]*Session, 0, len(st.sessions))
	for _, s := range st.sessions {
		candidates = append(candidates, s)
	}
	st.mu.RUnlock()

	// Idleness is checked without holding the store lock, and a session
	// serving a request holds its own mutex: it is busy, not idle, so it
	// is skipped rather than waited on. Waiting here would stall Create
	// and Get behind one slow in-flight request.
	var expired []string
	for _, s := range candidates {
		if !s.mu.TryLock() {
			continue
		}
		idle := now.Sub(s.LastSeen)
		s.mu.Unlock()
		if idle > st.ttl {
			expired = append(expired, s.ID)
		}
	}
	if len(expired) == 0 {
		return
	}
	st.mu.Lock()
	for _, id := range expired {
		delete(st.sessions, id)
	}
	st.mu.Unlock()
}
