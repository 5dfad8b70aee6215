package server

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/observability"
)

// SessionCookie holds the id of the caller's editing session.
const SessionCookie = "resume_session"

// Session is one in-memory editing session.
type Session struct {
	ID    uuid.UUID
	Store *editor.Store

	mu       sync.Mutex
	lastSeen time.Time
	flash    string
}

// SetFlash stores a message to show once on the next editor page.
func (s *Session) SetFlash(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flash = msg
}

// TakeFlash returns and clears the pending message.
func (s *Session) TakeFlash() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.flash
	s.flash = ""
	return msg
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen.Before(cutoff)
}

// SessionStore keeps sessions in memory and drops the ones left idle for ttl.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// NewSessionStore creates a store. A positive sweepInterval starts the idle sweeper.
func NewSessionStore(ttl, sweepInterval time.Duration) *SessionStore {
	st := &SessionStore{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	if ttl > 0 && sweepInterval > 0 {
		go st.sweep(sweepInterval)
	}
	return st
}

// Create starts a fresh session.
func (st *SessionStore) Create() *Session {
	sess := &Session{
		ID:       uuid.New(),
		Store:    editor.NewStore(),
		lastSeen: st.now(),
	}

	st.mu.Lock()
	st.sessions[sess.ID] = sess
	n := len(st.sessions)
	st.mu.Unlock()

	observability.SetActiveSessions(n)
	log.Printf("[SESSION] Created %s (%d active)", sess.ID, n)
	return sess
}

// Get returns the session with id and marks it as used.
func (st *SessionStore) Get(id uuid.UUID) (*Session, bool) {
	st.mu.RLock()
	sess, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		sess.touch(st.now())
	}
	return sess, ok
}

// Resolve returns the session named by the request cookie, creating one and
// setting the cookie when it is missing or unknown.
func (st *SessionStore) Resolve(w http.ResponseWriter, r *http.Request) *Session {
	if c, err := r.Cookie(SessionCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			if sess, ok := st.Get(id); ok {
				return sess
			}
		}
	}

	sess := st.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.ID.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

// Len returns the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Expire drops sessions idle for longer than the ttl and returns how many were removed.
func (st *SessionStore) Expire() int {
	if st.ttl <= 0 {
		return 0
	}
	cutoff := st.now().Add(-st.ttl)

	st.mu.Lock()
	removed := 0
	for id, sess := range st.sessions {
		if sess.idleSince(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	n := len(st.sessions)
	st.mu.Unlock()

	if removed > 0 {
		observability.SetActiveSessions(n)
		log.Printf("[SESSION] Expired %d idle sessions (%d active)", removed, n)
	}
	return removed
}

func (st *SessionStore) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			st.Expire()
		case <-st.stop:
			return
		}
	}
}

// Stop ends the sweeper.
func (st *SessionStore) Stop() {
	st.stopOnce.Do(func() { close(st.stop) })
}
