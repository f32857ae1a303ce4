package models

import (
	"fmt"
	"time"

	id "warden/pkg/domain"
)

// Notice is the transport-agnostic rendering payload for a message the
// gateway posts or edits. The engine fills in structured content; how the
// platform turns it into an embed, card, or plain text is the gateway's
// concern.
type Notice struct {
	Title       string
	Description string
	Fields      []NoticeField
	Footer      string
	Color       Color
	Timestamp   time.Time
}

// NoticeField is one labeled value inside a notice body.
type NoticeField struct {
	Name   string
	Value  string
	Inline bool
}

// StatusFieldName is the field the engine updates in place when a sanction
// changes status.
const StatusFieldName = "Status"

// SanctionTitle renders the canonical zero-padded sanction heading.
func SanctionTitle(sid id.SanctionID) string {
	return fmt.Sprintf("Fine #%04d", int64(sid))
}

// EvidenceThreadName names the side thread that collects proof attachments.
func EvidenceThreadName(sid id.SanctionID) string {
	return fmt.Sprintf("Evidence #%04d", int64(sid))
}

// SanctionNotice builds the public notice for a freshly issued sanction.
func SanctionNotice(sid id.SanctionID, rec SanctionRecord, issuerName string) Notice {
	return Notice{
		Title: SanctionTitle(sid),
		Fields: []NoticeField{
			{Name: "Violator", Value: rec.ViolatorID.String(), Inline: true},
			{Name: "Victim", Value: rec.VictimID.String(), Inline: true},
			{Name: "Violated rule", Value: rec.Rule},
			{Name: "Requirement", Value: rec.Requirement, Inline: true},
			{Name: "Deadline", Value: rec.Deadline, Inline: true},
			{Name: StatusFieldName, Value: rec.Status.Label()},
		},
		Footer:    "Issued by: " + issuerName,
		Color:     rec.Status.AccentColor(),
		Timestamp: rec.CreatedAt,
	}
}

// ViolatorNotice builds the private notice sent to the violator on issue.
func ViolatorNotice(sid id.SanctionID, rec SanctionRecord) Notice {
	return Notice{
		Title: fmt.Sprintf("You have been issued fine #%04d", int64(sid)),
		Description: fmt.Sprintf("**Reason:** %s\n**Requirement:** %s\n**Deadline:** %s",
			rec.Rule, rec.Requirement, rec.Deadline),
		Color: ColorOrange,
	}
}

// VictimNotice builds the private notice sent to the victim on issue.
func VictimNotice(sid id.SanctionID, rec SanctionRecord) Notice {
	return Notice{
		Title: fmt.Sprintf("Fine #%04d was issued on your complaint", int64(sid)),
		Description: fmt.Sprintf("Violator: %s\n**Requirement:** %s",
			rec.ViolatorID, rec.Requirement),
		Color: ColorGreen,
	}
}

// DisputePrompt builds the private confirmation prompt sent to the victim
// when the violator claims compliance.
func DisputePrompt(sid id.SanctionID, rec SanctionRecord) Notice {
	return Notice{
		Title: fmt.Sprintf("Confirmation request for fine #%04d", int64(sid)),
		Description: fmt.Sprintf(
			"%s claims the requirement has been fulfilled.\n\n**Requirement:** %s\n\n"+
				"Do you confirm?\n\nThe request stays valid for 24 hours.",
			rec.ViolatorID, rec.Requirement),
		Color: ColorBlue,
	}
}
