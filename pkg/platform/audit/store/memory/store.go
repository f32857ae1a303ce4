package memory

import (
	"context"
	"sync"

	id "warden/pkg/domain"
	"warden/pkg/platform/audit"
)

// Store keeps audit events in process memory. Default sink when no Postgres
// DSN is configured; events do not survive a restart.
type Store struct {
	mu     sync.RWMutex
	events []audit.Event
}

func New() *Store {
	return &Store{}
}

func (s *Store) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *Store) ListBySanction(_ context.Context, sanctionID id.SanctionID) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []audit.Event
	for _, e := range s.events {
		if e.SanctionID == sanctionID {
			out = append(out, e)
		}
	}
	return out, nil
}
