package pending

import (
	"context"
	"sync"

	id "warden/pkg/domain"
)

// MemoryEvidenceTracker is the default in-process evidence expectation map.
type MemoryEvidenceTracker struct {
	mu       sync.Mutex
	expected map[id.UserID]id.SanctionID
}

func NewMemoryEvidenceTracker() *MemoryEvidenceTracker {
	return &MemoryEvidenceTracker{expected: make(map[id.UserID]id.SanctionID)}
}

func (t *MemoryEvidenceTracker) Expect(_ context.Context, actor id.UserID, sanctionID id.SanctionID) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.expected[actor] = sanctionID
	return nil
}

func (t *MemoryEvidenceTracker) Consume(_ context.Context, actor id.UserID) (id.SanctionID, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	sid, ok := t.expected[actor]
	if ok {
		delete(t.expected, actor)
	}
	return sid, ok, nil
}

// MemoryDisputeTokens is the default in-process dispute token set.
type MemoryDisputeTokens struct {
	mu   sync.Mutex
	open map[string]struct{}
}

func NewMemoryDisputeTokens() *MemoryDisputeTokens {
	return &MemoryDisputeTokens{open: make(map[string]struct{})}
}

func (t *MemoryDisputeTokens) Open(_ context.Context, sanctionID id.SanctionID) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := Token(sanctionID)
	if _, exists := t.open[key]; exists {
		return false, nil
	}
	t.open[key] = struct{}{}
	return true, nil
}

func (t *MemoryDisputeTokens) IsOpen(_ context.Context, sanctionID id.SanctionID) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.open[Token(sanctionID)]
	return ok, nil
}

func (t *MemoryDisputeTokens) Close(_ context.Context, sanctionID id.SanctionID) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := Token(sanctionID)
	_, ok := t.open[key]
	delete(t.open, key)
	return ok, nil
}
