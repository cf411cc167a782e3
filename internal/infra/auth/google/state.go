package google

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"docgate/internal/errors"
)

const (
	stateBytes = 32
	stateTTL   = 10 * time.Minute
)

// stateStore keeps the CSRF states handed out with authorization URLs.
// A state is valid once, for stateTTL.
type stateStore struct {
	mu     sync.Mutex
	states map[string]time.Time
	ttl    time.Duration
	now    func() time.Time
}

func newStateStore(ttl time.Duration, now func() time.Time) *stateStore {
	return &stateStore{
		states: make(map[string]time.Time),
		ttl:    ttl,
		now:    now,
	}
}

// issue generates a cryptographically secure random state and remembers it.
func (s *stateStore) issue() (string, error) {
	raw := make([]byte, stateBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "generate oauth state")
	}
	state := hex.EncodeToString(raw)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cleanupExpiredLocked()
	s.states[state] = s.now().Add(s.ttl)

	return state, nil
}

// consume reports whether state was issued and has not expired. It removes the
// state either way so it cannot be replayed.
func (s *stateStore) consume(state string) bool {
	if state == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, exists := s.states[state]
	if !exists {
		return false
	}
	delete(s.states, state)

	return s.now().Before(expiry)
}

func (s *stateStore) cleanupExpiredLocked() {
	now := s.now()
	for state, expiry := range s.states {
		if !now.Before(expiry) {
			delete(s.states, state)
		}
	}
}
