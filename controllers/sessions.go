package controllers

import (
	"sync"
	"time"

	"hotel-website/services"
)

// toastBuffer collects workflow notifications between requests so every HTTP
// response can carry the toasts raised since the previous one.
type toastBuffer struct {
	mu     sync.Mutex
	toasts []services.Notification
}

func (b *toastBuffer) Notify(n services.Notification) {
	b.mu.Lock()
	b.toasts = append(b.toasts, n)
	b.mu.Unlock()
}

// Drain returns and clears the pending toasts.
func (b *toastBuffer) Drain() []services.Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.toasts
	b.toasts = nil
	if out == nil {
		out = []services.Notification{}
	}
	return out
}

// bookingSession pairs one visitor's workflow with its pending toasts.
type bookingSession struct {
	workflow *services.BookingWorkflow
	toasts   *toastBuffer
	lastSeen time.Time
}

// SessionStore keeps booking sessions in memory. Entries idle longer than
// the TTL are dropped; a lost session is just an empty form again.
type SessionStore struct {
	mu   sync.Mutex
	ttl  time.Duration
	byID map[string]*bookingSession
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{ttl: ttl, byID: make(map[string]*bookingSession)}
}

func (s *SessionStore) get(id string) (*bookingSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	if time.Since(sess.lastSeen) > s.ttl {
		delete(s.byID, id)
		return nil, false
	}
	sess.lastSeen = time.Now()
	return sess, true
}

func (s *SessionStore) put(id string, sess *bookingSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess.lastSeen = time.Now()
	s.byID[id] = sess
}

// Sweep drops expired sessions; main runs it on a ticker.
func (s *SessionStore) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().Add(-s.ttl)
	for id, sess := range s.byID {
		if sess.lastSeen.Before(cutoff) {
			delete(s.byID, id)
		}
	}
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}
