// internal/application/session_test.go
package application

import (
	"testing"
	"time"
)

func TestSessionStore_CreateAndGet(t *testing.T) {
	st := NewSessionStore(time.Hour)

	s := st.Create()
	if s.ID == "" {
		t.Fatal("session must get an id")
	}
	if s.PendingLogin == nil {
		t.Error("pending login map must be initialized")
	}
	if s.Lang != "en" {
		t.Errorf("default language = %s, want en", s.Lang)
	}

	got, ok := st.Get(s.ID)
	if !ok || got != s {
		t.Error("Get must return the created session")
	}
	if _, ok := st.Get("unknown"); ok {
		t.Error("unknown id must not resolve")
	}
}

func TestSessionStore_PurgeExpired(t *testing.T) {
	st := NewSessionStore(time.Minute)

	stale := st.Create()
	stale.mu.Lock()
	stale.LastSeen = time.Now().Add(-2 * time.Minute)
	stale.mu.Unlock()
	fresh := st.Create()

	st.purgeExpired(time.Now())

	if _, ok := st.Get(stale.ID); ok {
		t.Error("stale session must be purged")
	}
	if _, ok := st.Get(fresh.ID); !ok {
		t.Error("fresh session must survive")
	}
	if st.Len() != 1 {
		t.Errorf("store size = %d, want 1", st.Len())
	}
}

// A sweep firing while one session is mid-request must neither wait on that
// session's mutex nor hold up other store traffic behind it.
func TestSessionStore_PurgeSkipsBusySession(t *testing.T) {
	st := NewSessionStore(time.Minute)

	busy := st.Create()
	busy.mu.Lock()
	busy.LastSeen = time.Now().Add(-2 * time.Minute)
	defer busy.mu.Unlock()

	stale := st.Create()
	stale.mu.Lock()
	stale.LastSeen = time.Now().Add(-2 * time.Minute)
	stale.mu.Unlock()

	done := make(chan struct{})
	go func() {
		st.purgeExpired(time.Now())
		st.Create()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("sweep stalled behind an in-flight session")
	}

	st.mu.RLock()
	_, busyKept := st.sessions[busy.ID]
	_, staleKept := st.sessions[stale.ID]
	st.mu.RUnlock()
	if !busyKept {
		t.Error("session mid-request must not be purged, stale timestamp or not")
	}
	if staleKept {
		t.Error("idle stale session must be purged")
	}
}

func TestSessionStore_SessionsAreIsolated(t *testing.T) {
	st := NewSessionStore(time.Hour)

	a := st.Create()
	b := st.Create()
	a.PendingLogin["name"] = "Hamid"

	if len(b.PendingLogin) != 0 {
		t.Error("sessions must not share state")
	}
}
