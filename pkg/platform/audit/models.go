package audit

import (
	"time"

	id "warden/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose. This
// enables different retention policies and storage backends per category.
type EventCategory string

const (
	// CategoryCompliance covers events with formal significance for the
	// community record: a sanction came into existence, was resolved, or
	// was expunged. These want durable storage.
	CategoryCompliance EventCategory = "compliance"

	// CategorySecurity covers rejected privileged actions, useful when
	// reviewing moderator-permission incidents.
	CategorySecurity EventCategory = "security"

	// CategoryOperations covers routine workflow activity kept for
	// debugging and visibility.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from the workflow engine to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp  time.Time
	Action     Action
	SanctionID id.SanctionID
	// ActorID is who performed the action.
	ActorID id.UserID
	// SubjectID is who the action was about, when different from the actor
	// (the violator on issue, the victim on dispute open).
	SubjectID id.UserID
	// Outcome records how the action concluded (e.g. "accepted",
	// "rejected", "expired", a new status code).
	Outcome string
	Reason  string
	// RequestID is the correlation ID from the request context.
	RequestID string
}

// Action names one auditable workflow step.
type Action string

const (
	ActionSanctionIssued   Action = "sanction_issued"
	ActionEvidenceAttached Action = "evidence_attached"
	ActionStatusChanged    Action = "status_changed"
	ActionDisputeOpened    Action = "dispute_opened"
	ActionDisputeResolved  Action = "dispute_resolved"
	ActionDisputeExpired   Action = "dispute_expired"
	ActionSanctionPardoned Action = "sanction_pardoned"
	ActionUnauthorized     Action = "unauthorized_attempt"
)

// actionCategories maps each action to its category.
var actionCategories = map[Action]EventCategory{
	ActionSanctionIssued:   CategoryCompliance,
	ActionDisputeResolved:  CategoryCompliance,
	ActionSanctionPardoned: CategoryCompliance,

	ActionUnauthorized: CategorySecurity,

	ActionEvidenceAttached: CategoryOperations,
	ActionStatusChanged:    CategoryOperations,
	ActionDisputeOpened:    CategoryOperations,
	ActionDisputeExpired:   CategoryOperations,
}

// Category returns the EventCategory for the action. Unknown actions default
// to CategoryOperations.
func (a Action) Category() EventCategory {
	if cat, ok := actionCategories[a]; ok {
		return cat
	}
	return CategoryOperations
}
