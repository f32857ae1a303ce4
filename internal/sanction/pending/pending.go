// Package pending holds the short-lived expectations the workflow engine
// keeps between a command and its follow-up input: which sanction an actor's
// next upload is evidence for, and which dispute tokens are still actionable.
//
// State here is intentionally ephemeral. The default stores live in process
// memory and a restart silently drops any mid-flight expectation; the Redis
// stores are the opt-in durable variant.
package pending

import (
	"context"
	"fmt"

	id "warden/pkg/domain"
)

// EvidenceTracker remembers, per actor, the single sanction their next file
// upload should be routed to. A new expectation for the same actor replaces
// the old one silently.
type EvidenceTracker interface {
	// Expect records that actor's next upload belongs to sanctionID.
	Expect(ctx context.Context, actor id.UserID, sanctionID id.SanctionID) error

	// Consume atomically removes and returns the actor's expectation.
	// At-most-once: a second concurrent consume sees nothing.
	Consume(ctx context.Context, actor id.UserID) (id.SanctionID, bool, error)
}

// DisputeTokens tracks which disputes are still actionable. Token presence is
// the sole authority: whichever side (resolution or expiry) removes the token
// first wins the race, and the loser's action becomes a no-op.
type DisputeTokens interface {
	// Open registers a dispute token. Returns false when one is already
	// outstanding for this sanction.
	Open(ctx context.Context, sanctionID id.SanctionID) (bool, error)

	// IsOpen reports whether the dispute is still actionable.
	IsOpen(ctx context.Context, sanctionID id.SanctionID) (bool, error)

	// Close removes the token. Idempotent; reports whether the token was
	// present, which is what resolves the resolution/expiry race.
	Close(ctx context.Context, sanctionID id.SanctionID) (bool, error)
}

// Token renders the opaque dispute token for a sanction.
func Token(sanctionID id.SanctionID) string {
	return fmt.Sprintf("redress_%d", int64(sanctionID))
}
