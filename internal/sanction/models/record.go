package models

import (
	"time"

	id "warden/pkg/domain"
)

// Field length bounds for sanction content, enforced at issue time.
const (
	MaxRuleLen         = 200
	MaxRequirementLen  = 500
	MaxDeadlineLen     = 100
	MaxCustomStatusLen = 200
)

// SanctionRecord is the durable unit representing one issued sanction.
// Identity and content are immutable after creation; status, thread, and
// resolution fields mutate through the workflow engine only.
type SanctionRecord struct {
	// ID is the ledger key, assigned once from the monotonic counter.
	// Not serialized: the record's position in the ledger map carries it.
	ID id.SanctionID `json:"-"`

	MessageID id.MessageID `json:"message_id"`
	ChannelID id.ChannelID `json:"channel_id"`
	ThreadID  id.ThreadID  `json:"thread_id,omitempty"`

	Status     Status `json:"status"`
	StatusText string `json:"status_text"`

	ViolatorID id.UserID `json:"violator_id"`
	VictimID   id.UserID `json:"victim_id"`
	IssuerID   id.UserID `json:"issuer_id"`

	Rule        string `json:"rule"`
	Requirement string `json:"requirement"`
	Deadline    string `json:"deadline"`

	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy id.UserID  `json:"resolved_by,omitempty"`
}

// Resolved reports whether a dispute resolution has been stamped.
func (r SanctionRecord) Resolved() bool {
	return r.ResolvedAt != nil
}

// Ledger is the single persisted document: a monotonic ID counter plus the
// keyed record set. Invariant: LastID never decreases and is always >= the
// highest numeric key in Records.
type Ledger struct {
	LastID  int64                      `json:"last_id"`
	Records map[string]*SanctionRecord `json:"fines"`
}

// NewLedger returns the empty ledger shape.
func NewLedger() *Ledger {
	return &Ledger{LastID: 0, Records: make(map[string]*SanctionRecord)}
}

// NextID allocates the next sanction identifier and advances the counter.
func (l *Ledger) NextID() id.SanctionID {
	l.LastID++
	return id.SanctionID(l.LastID)
}

// Record looks up a sanction by ID, populating the non-serialized ID field.
func (l *Ledger) Record(sid id.SanctionID) (*SanctionRecord, bool) {
	rec, ok := l.Records[sid.String()]
	if !ok || rec == nil {
		return nil, false
	}
	rec.ID = sid
	return rec, true
}

// Put stores a record under its ID.
func (l *Ledger) Put(sid id.SanctionID, rec *SanctionRecord) {
	rec.ID = sid
	l.Records[sid.String()] = rec
}

// Remove deletes a record. Reports whether it existed.
func (l *Ledger) Remove(sid id.SanctionID) bool {
	key := sid.String()
	if _, ok := l.Records[key]; !ok {
		return false
	}
	delete(l.Records, key)
	return true
}
