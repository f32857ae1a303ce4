package store

import (
	"context"

	"warden/internal/sanction/models"
)

// LedgerStore owns the persisted sanction ledger. No other component touches
// the backing medium. Implementations are interface-driven so the engine can
// run against the file store in production and the memory store in tests.
type LedgerStore interface {
	// Load reads the ledger. It never fails upward: any read or decode
	// problem yields a fresh empty ledger and a logged condition.
	Load(ctx context.Context) *models.Ledger

	// Save persists the ledger such that a crash mid-write can never
	// leave the backing medium empty or truncated. A failed Save is
	// fatal to the in-progress operation: the mutation is not visible
	// to subsequent Load calls.
	Save(ctx context.Context, ledger *models.Ledger) error
}
