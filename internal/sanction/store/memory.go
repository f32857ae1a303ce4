package store

import (
	"context"
	"sync"

	"warden/internal/sanction/models"
)

// MemoryLedgerStore keeps the ledger in process memory. It deep-copies on
// both Load and Save so callers observe the same round-trip isolation the
// file store provides: mutating a loaded ledger has no effect until Save.
type MemoryLedgerStore struct {
	mu     sync.Mutex
	ledger *models.Ledger
}

func NewMemoryLedgerStore() *MemoryLedgerStore {
	return &MemoryLedgerStore{ledger: models.NewLedger()}
}

func (s *MemoryLedgerStore) Load(_ context.Context) *models.Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyLedger(s.ledger)
}

func (s *MemoryLedgerStore) Save(_ context.Context, ledger *models.Ledger) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger = copyLedger(ledger)
	return nil
}

func copyLedger(in *models.Ledger) *models.Ledger {
	out := &models.Ledger{
		LastID:  in.LastID,
		Records: make(map[string]*models.SanctionRecord, len(in.Records)),
	}
	for k, rec := range in.Records {
		cp := *rec
		if rec.ResolvedAt != nil {
			t := *rec.ResolvedAt
			cp.ResolvedAt = &t
		}
		out.Records[k] = &cp
	}
	return out
}
