// Package service implements the sanction workflow engine: the state machine
// over the durable ledger, the pending-action expectations around it, and the
// dispute deadline. Transport adapters call in; ports lead out.
package service

import (
	"context"
	"log/slog"
	"time"

	"warden/internal/sanction/metrics"
	"warden/internal/sanction/models"
	"warden/internal/sanction/pending"
	"warden/internal/sanction/ports"
	"warden/internal/sanction/prompt"
	"warden/internal/sanction/scheduler"
	"warden/internal/sanction/store"
	id "warden/pkg/domain"
	dErrors "warden/pkg/domain-errors"
	"warden/pkg/platform/audit"
	"warden/pkg/requestcontext"
)

// DefaultDisputeTTL is how long a dispute confirmation stays actionable.
const DefaultDisputeTTL = 24 * time.Hour

// Service is the workflow engine. All ledger mutations run through the
// transaction boundary; all external effects go through ports.
type Service struct {
	logger   *slog.Logger
	tx       store.LedgerTx
	gateway  ports.ChannelGateway
	notifier ports.Notifier
	authz    ports.Authorizer
	audit    ports.AuditPort
	evidence pending.EvidenceTracker
	disputes pending.DisputeTokens
	prompts  *prompt.Registry
	timers   *scheduler.Scheduler
	metrics  *metrics.Metrics

	// channel is where public sanction notices are posted.
	channel    id.ChannelID
	disputeTTL time.Duration
}

// Config carries the engine's dependencies. Every store is injected with
// construction and teardown tied to the engine's lifetime; nothing here is
// ambient process state.
type Config struct {
	Logger   *slog.Logger
	Ledger   store.LedgerStore
	Gateway  ports.ChannelGateway
	Notifier ports.Notifier
	Authz    ports.Authorizer
	Audit    ports.AuditPort
	Evidence pending.EvidenceTracker
	Disputes pending.DisputeTokens
	Metrics  *metrics.Metrics

	Channel    id.ChannelID
	DisputeTTL time.Duration

	// SchedulerClock overrides the wall clock driving dispute deadlines.
	// Tests inject a manual clock here; production leaves it nil.
	SchedulerClock Clock
}

func New(cfg Config) *Service {
	ttl := cfg.DisputeTTL
	if ttl <= 0 {
		ttl = DefaultDisputeTTL
	}
	timers := scheduler.New(cfg.Logger)
	if cfg.SchedulerClock != nil {
		timers = scheduler.NewWithClock(cfg.Logger, cfg.SchedulerClock)
	}
	return &Service{
		logger:     cfg.Logger,
		tx:         store.NewLedgerTx(cfg.Ledger, cfg.Metrics),
		gateway:    cfg.Gateway,
		notifier:   cfg.Notifier,
		authz:      cfg.Authz,
		audit:      cfg.Audit,
		evidence:   cfg.Evidence,
		disputes:   cfg.Disputes,
		prompts:    prompt.NewRegistry(),
		timers:     timers,
		metrics:    cfg.Metrics,
		channel:    cfg.Channel,
		disputeTTL: ttl,
	}
}

// Clock is re-exported so main and tests configure the scheduler without
// importing it directly.
type Clock = scheduler.Clock

// requireManager evaluates the external permission predicate, emitting a
// security audit event on refusal.
func (s *Service) requireManager(ctx context.Context, actor id.UserID, action audit.Action) error {
	ok, err := s.authz.CanManageSanctions(ctx, actor)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not evaluate permissions")
	}
	if !ok {
		s.emitAudit(ctx, audit.Event{
			Action:  audit.ActionUnauthorized,
			ActorID: actor,
			Reason:  string(action),
		})
		return dErrors.New(dErrors.CodeUnauthorized, "you do not have permission to manage sanctions")
	}
	return nil
}

// emitAudit is best-effort: the audit trail never fails a command.
func (s *Service) emitAudit(ctx context.Context, event audit.Event) {
	if s.audit == nil {
		return
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"action", event.Action, "sanction_id", event.SanctionID, "error", err)
	}
}

// lookup finds one record through the transaction boundary, so a read racing
// an in-flight save never observes a half-written ledger.
func (s *Service) lookup(ctx context.Context, sanctionID id.SanctionID) (*models.SanctionRecord, error) {
	var rec *models.SanctionRecord
	err := s.tx.View(ctx, func(ledger *models.Ledger) error {
		cur, ok := ledger.Record(sanctionID)
		if !ok {
			return dErrors.Newf(dErrors.CodeNotFound, "no sanction with ID %d", int64(sanctionID))
		}
		rec = cur
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// noticeRef locates the public notice of a record.
func noticeRef(rec *models.SanctionRecord) ports.MessageRef {
	return ports.MessageRef{Channel: rec.ChannelID, Message: rec.MessageID}
}
