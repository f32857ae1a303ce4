package models

// Status is the lifecycle state of a sanction record. Every non-initial
// status is a resting state: an administrative override can move the record
// to any other status at any time. The only terminal state is removal from
// the ledger (pardon).
type Status string

const (
	StatusIssued       Status = "issued"
	StatusSatisfied    Status = "satisfied"
	StatusNotSatisfied Status = "not_satisfied"
	StatusOtherReason  Status = "other_reason"
	StatusCustom       Status = "custom"
)

// IsValid reports whether the status is one of the canonical codes.
func (s Status) IsValid() bool {
	switch s {
	case StatusIssued, StatusSatisfied, StatusNotSatisfied, StatusOtherReason, StatusCustom:
		return true
	default:
		return false
	}
}

func (s Status) String() string { return string(s) }

// Color is the accent color a rendered notice carries, as a 24-bit RGB value
// understood by the messaging platform.
type Color int

const (
	ColorLightGray Color = 0x99AAB5
	ColorGreen     Color = 0x2ECC71
	ColorRed       Color = 0xE74C3C
	ColorOrange    Color = 0xE67E22
	ColorPurple    Color = 0x9B59B6
	ColorBlue      Color = 0x3498DB
	ColorDarkGray  Color = 0x546E7A
)

// statusPresentation is the closed status → presentation table. The mapping
// functions below are total: an unrecognized status must never crash
// formatting, it degrades to the neutral presentation instead.
var statusPresentation = map[Status]struct {
	label string
	color Color
}{
	StatusIssued:       {"Issued", ColorLightGray},
	StatusSatisfied:    {"Requirement satisfied", ColorGreen},
	StatusNotSatisfied: {"Requirement not satisfied", ColorRed},
	StatusOtherReason:  {"Other reason", ColorOrange},
	StatusCustom:       {"Custom status", ColorPurple},
}

// Label returns the human-readable label for the status.
func (s Status) Label() string {
	if p, ok := statusPresentation[s]; ok {
		return p.label
	}
	return "Issued"
}

// AccentColor returns the notice color for the status.
func (s Status) AccentColor() Color {
	if p, ok := statusPresentation[s]; ok {
		return p.color
	}
	return ColorLightGray
}
