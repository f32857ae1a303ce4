package store

import (
	"context"
	"sync"
	"time"

	"warden/internal/sanction/metrics"
	"warden/internal/sanction/models"
	dErrors "warden/pkg/domain-errors"
)

// LedgerTx provides the load-mutate-save boundary for ledger mutations. Every
// mutation round-trips through it so two operations can never interleave on a
// stale in-memory snapshot; the persisted document stays the source of truth
// between operations.
type LedgerTx interface {
	RunInTx(ctx context.Context, fn func(ledger *models.Ledger) error) error

	// View runs fn over the loaded ledger under the same lock as RunInTx
	// but never persists. Reads go through here so they cannot observe the
	// transient state of an in-flight save.
	View(ctx context.Context, fn func(ledger *models.Ledger) error) error
}

// defaultTxTimeout bounds how long one ledger mutation may run. Sanction
// traffic is human-paced, so a coarse single lock is acceptable.
const defaultTxTimeout = 5 * time.Second

type serialLedgerTx struct {
	mu      sync.Mutex
	store   LedgerStore
	metrics *metrics.Metrics
	timeout time.Duration
}

// NewLedgerTx wraps a LedgerStore in a serializing transaction boundary.
// metrics may be nil.
func NewLedgerTx(store LedgerStore, m *metrics.Metrics) LedgerTx {
	return &serialLedgerTx{store: store, metrics: m, timeout: defaultTxTimeout}
}

func (t *serialLedgerTx) RunInTx(ctx context.Context, fn func(ledger *models.Ledger) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "ledger transaction aborted")
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "ledger transaction aborted")
	}

	ledger := t.store.Load(ctx)
	if err := fn(ledger); err != nil {
		return err
	}

	start := time.Now()
	err := t.store.Save(ctx, ledger)
	t.metrics.ObserveLedgerSave(time.Since(start))
	return err
}

func (t *serialLedgerTx) View(ctx context.Context, fn func(ledger *models.Ledger) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "ledger transaction aborted")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	return fn(t.store.Load(ctx))
}
