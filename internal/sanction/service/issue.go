package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"warden/internal/sanction/models"
	id "warden/pkg/domain"
	dErrors "warden/pkg/domain-errors"
	"warden/pkg/platform/audit"
	"warden/pkg/requestcontext"
)

// IssueRequest carries everything needed to create a sanction record.
type IssueRequest struct {
	Violator    id.UserID
	Victim      id.UserID
	Rule        string
	Requirement string
	Deadline    string
	Issuer      id.UserID
	// IssuerName is the display name rendered in the notice footer; the
	// engine never resolves display names itself.
	IssuerName string
}

func (r IssueRequest) validate() error {
	switch {
	case r.Violator.IsNil():
		return dErrors.New(dErrors.CodeInvalidInput, "violator is required")
	case r.Victim.IsNil():
		return dErrors.New(dErrors.CodeInvalidInput, "victim is required")
	case r.Issuer.IsNil():
		return dErrors.New(dErrors.CodeInvalidInput, "issuer is required")
	}

	rule := strings.TrimSpace(r.Rule)
	requirement := strings.TrimSpace(r.Requirement)
	deadline := strings.TrimSpace(r.Deadline)
	switch {
	case rule == "":
		return dErrors.New(dErrors.CodeInvalidInput, "rule is required")
	case len(rule) > models.MaxRuleLen:
		return dErrors.Newf(dErrors.CodeInvalidInput, "rule must be at most %d characters", models.MaxRuleLen)
	case requirement == "":
		return dErrors.New(dErrors.CodeInvalidInput, "requirement is required")
	case len(requirement) > models.MaxRequirementLen:
		return dErrors.Newf(dErrors.CodeInvalidInput, "requirement must be at most %d characters", models.MaxRequirementLen)
	case deadline == "":
		return dErrors.New(dErrors.CodeInvalidInput, "deadline is required")
	case len(deadline) > models.MaxDeadlineLen:
		return dErrors.Newf(dErrors.CodeInvalidInput, "deadline must be at most %d characters", models.MaxDeadlineLen)
	}
	return nil
}

// Issue creates a sanction: allocates the next ID, posts the public notice,
// persists the record, and notifies both parties best-effort. When the target
// channel cannot be resolved no record is created.
func (s *Service) Issue(ctx context.Context, req IssueRequest) (id.SanctionID, error) {
	if err := s.requireManager(ctx, req.Issuer, audit.ActionSanctionIssued); err != nil {
		s.metrics.ObserveCommand("issue", "unauthorized")
		return 0, err
	}
	if err := req.validate(); err != nil {
		s.metrics.ObserveCommand("issue", "invalid")
		return 0, err
	}

	if err := s.gateway.ResolveChannel(ctx, s.channel); err != nil {
		s.metrics.ObserveCommand("issue", "channel_unavailable")
		return 0, dErrors.Wrap(err, dErrors.CodeChannelUnavailable, "the sanction channel could not be found")
	}

	var (
		sanctionID id.SanctionID
		record     models.SanctionRecord
	)
	err := s.tx.RunInTx(ctx, func(ledger *models.Ledger) error {
		sanctionID = ledger.NextID()
		record = models.SanctionRecord{
			ChannelID:   s.channel,
			Status:      models.StatusIssued,
			StatusText:  models.StatusIssued.Label(),
			ViolatorID:  req.Violator,
			VictimID:    req.Victim,
			IssuerID:    req.Issuer,
			Rule:        strings.TrimSpace(req.Rule),
			Requirement: strings.TrimSpace(req.Requirement),
			Deadline:    strings.TrimSpace(req.Deadline),
			CreatedAt:   requestcontext.Now(ctx),
		}

		messageID, err := s.gateway.SendNotice(ctx, s.channel, models.SanctionNotice(sanctionID, record, req.IssuerName))
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeChannelUnavailable, "could not post the sanction notice")
		}
		record.MessageID = messageID

		ledger.Put(sanctionID, &record)
		return nil
	})
	if err != nil {
		s.metrics.ObserveCommand("issue", string(dErrors.CodeOf(err)))
		return 0, err
	}

	s.notifyParties(ctx, sanctionID, record)

	s.emitAudit(ctx, audit.Event{
		Action:     audit.ActionSanctionIssued,
		SanctionID: sanctionID,
		ActorID:    req.Issuer,
		SubjectID:  req.Violator,
	})
	s.metrics.ObserveCommand("issue", "ok")
	s.logger.InfoContext(ctx, "sanction issued",
		"sanction_id", sanctionID, "violator", req.Violator, "issuer", req.Issuer)
	return sanctionID, nil
}

// notifyParties delivers the private issue notices. Failures are logged and
// never surface as command failure. bestEffortTimeout keeps a slow DM path
// from pinning the command.
const bestEffortTimeout = 10 * time.Second

func (s *Service) notifyParties(ctx context.Context, sanctionID id.SanctionID, rec models.SanctionRecord) {
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), bestEffortTimeout)
	defer cancel()

	var g errgroup.Group
	g.Go(func() error {
		if !s.notifier.SendPrivateNotice(nctx, rec.ViolatorID, models.ViolatorNotice(sanctionID, rec)) {
			s.logger.InfoContext(nctx, "could not notify violator",
				"sanction_id", sanctionID, "violator", rec.ViolatorID)
		}
		return nil
	})
	g.Go(func() error {
		if !s.notifier.SendPrivateNotice(nctx, rec.VictimID, models.VictimNotice(sanctionID, rec)) {
			s.logger.InfoContext(nctx, "could not notify victim",
				"sanction_id", sanctionID, "victim", rec.VictimID)
		}
		return nil
	})
	_ = g.Wait()
}
