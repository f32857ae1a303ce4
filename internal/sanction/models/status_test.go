package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_IsValid(t *testing.T) {
	for _, status := range []Status{StatusIssued, StatusSatisfied, StatusNotSatisfied, StatusOtherReason, StatusCustom} {
		assert.True(t, status.IsValid(), "expected %q to be valid", status)
	}
	assert.False(t, Status("archived").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatus_Presentation(t *testing.T) {
	tests := []struct {
		status Status
		label  string
		color  Color
	}{
		{StatusIssued, "Issued", ColorLightGray},
		{StatusSatisfied, "Requirement satisfied", ColorGreen},
		{StatusNotSatisfied, "Requirement not satisfied", ColorRed},
		{StatusOtherReason, "Other reason", ColorOrange},
		{StatusCustom, "Custom status", ColorPurple},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.label, tt.status.Label(), "label for %q", tt.status)
		assert.Equal(t, tt.color, tt.status.AccentColor(), "color for %q", tt.status)
	}
}

// Unknown statuses read back from a hand-edited ledger must still render.
func TestStatus_PresentationFallback(t *testing.T) {
	unknown := Status("archived")
	assert.Equal(t, "Issued", unknown.Label())
	assert.Equal(t, ColorLightGray, unknown.AccentColor())
}
