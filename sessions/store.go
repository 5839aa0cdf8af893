package sessions

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// Session associates an opaque token with a logged-in user.
type Session struct {
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Store keeps sessions in process memory, keyed by token. Sessions do not
// survive a restart, which matches the cookie-scoped lifecycle.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]Session),
		ttl:      ttl,
	}
}

// Start creates a session for userID and returns its token.
func (s *Store) Start(userID string) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = Session{
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	return token, nil
}

// Get resolves a token to a user ID. Expired tokens behave as absent and
// are evicted on read.
func (s *Store) Get(token string) (string, bool) {
	if token == "" {
		return "", false
	}

	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}

	if time.Now().After(sess.ExpiresAt) {
		s.End(token)
		return "", false
	}
	return sess.UserID, true
}

// End destroys a session. Ending an unknown token is a no-op.
func (s *Store) End(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
