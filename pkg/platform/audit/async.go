package audit

import (
	"context"

	id "warden/pkg/domain"
)

// ChannelSink is a Store whose writes go through an inbox drained by a
// Worker. Reads go straight to the backing store, so a just-emitted event may
// lag a List by one worker iteration.
type ChannelSink struct {
	inbox   chan<- Event
	backing Store
}

func NewChannelSink(inbox chan<- Event, backing Store) *ChannelSink {
	return &ChannelSink{inbox: inbox, backing: backing}
}

func (s *ChannelSink) Append(ctx context.Context, event Event) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case s.inbox <- event:
		return nil
	}
}

func (s *ChannelSink) ListBySanction(ctx context.Context, sanctionID id.SanctionID) ([]Event, error) {
	return s.backing.ListBySanction(ctx, sanctionID)
}
