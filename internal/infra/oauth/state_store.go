// Package oauth implements the authorization-code flow infrastructure:
// per-flow state correlation and the concrete provider clients.
package oauth

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"

	"pulse/internal/domain/service"
	"pulse/internal/errors"
)

const (
	stateTokenBytes = 32
	stateTTL        = 10 * time.Minute
)

type stateEntry struct {
	flow      service.OAuthFlow
	expiresAt time.Time
}

// memoryStateStore keeps pending consent flows in process memory. Entries
// are single-use and expire after ten minutes; expired entries are reaped
// lazily on every Issue.
type memoryStateStore struct {
	mu      sync.Mutex
	entries map[string]stateEntry
	now     func() time.Time
}

// NewMemoryStateStore creates the in-memory OAuthStateStore.
func NewMemoryStateStore() service.OAuthStateStore {
	return &memoryStateStore{
		entries: make(map[string]stateEntry),
		now:     time.Now,
	}
}

// Issue generates a fresh random state token and stashes the flow under it.
func (s *memoryStateStore) Issue(flow service.OAuthFlow) (string, error) {
	buf := make([]byte, stateTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "generate state token")
	}
	state := base64.RawURLEncoding.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.reapLocked()
	s.entries[state] = stateEntry{
		flow:      flow,
		expiresAt: s.now().Add(stateTTL),
	}

	return state, nil
}

// Consume retrieves and deletes the flow for a state token.
func (s *memoryStateStore) Consume(state string) (*service.OAuthFlow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[state]
	if !ok {
		return nil, service.ErrStateNotFound
	}
	delete(s.entries, state)

	if s.now().After(entry.expiresAt) {
		return nil, service.ErrStateNotFound
	}

	flow := entry.flow

	return &flow, nil
}

func (s *memoryStateStore) reapLocked() {
	now := s.now()
	for state, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, state)
		}
	}
}
