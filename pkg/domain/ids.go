package domain

import (
	"strconv"

	dErrors "warden/pkg/domain-errors"
)

// Identifiers handed to us by the messaging platform are opaque numeric
// snowflakes rendered as strings. Distinct types keep a user ID from being
// passed where a channel ID belongs; the compiler enforces the boundary.
type (
	// UserID identifies a member of the community.
	UserID string

	// ChannelID identifies a channel the gateway can resolve.
	ChannelID string

	// MessageID identifies a single message inside a channel.
	MessageID string

	// ThreadID identifies a discussion thread hanging off a message.
	ThreadID string
)

// SanctionID is the ledger-assigned identifier of one sanction record.
// It is allocated from the ledger's monotonic counter, never reused.
type SanctionID int64

// ParseUserID validates a user identifier at a trust boundary.
func ParseUserID(s string) (UserID, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "user id must not be empty")
	}
	return UserID(s), nil
}

// ParseSanctionID validates and converts a string-encoded sanction ID.
// Ledger keys and command arguments both arrive in this form.
func ParseSanctionID(s string) (SanctionID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "sanction id must be a positive integer")
	}
	return SanctionID(n), nil
}

func (id UserID) String() string    { return string(id) }
func (id ChannelID) String() string { return string(id) }
func (id MessageID) String() string { return string(id) }
func (id ThreadID) String() string  { return string(id) }

func (id UserID) IsNil() bool    { return id == "" }
func (id ChannelID) IsNil() bool { return id == "" }
func (id MessageID) IsNil() bool { return id == "" }
func (id ThreadID) IsNil() bool  { return id == "" }

// String renders the ID the way ledger keys store it.
func (id SanctionID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// IsNil reports whether the ID was never assigned.
func (id SanctionID) IsNil() bool { return id <= 0 }
