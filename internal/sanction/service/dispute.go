package service

import (
	"context"
	"fmt"

	"warden/internal/sanction/models"
	"warden/internal/sanction/pending"
	"warden/internal/sanction/ports"
	"warden/internal/sanction/prompt"
	id "warden/pkg/domain"
	dErrors "warden/pkg/domain-errors"
	"warden/pkg/platform/audit"
	"warden/pkg/requestcontext"
)

// Prompt option keys the transport reports back on a dispute response.
const (
	PromptOptionAccept = "accept"
	PromptOptionReject = "reject"
)

// OpenDispute starts a redress flow: the violator claims compliance and the
// victim gets a confirmation prompt valid for the dispute TTL. One open
// dispute per sanction; the token is rolled back when the prompt cannot be
// delivered at all.
func (s *Service) OpenDispute(ctx context.Context, actor id.UserID, sanctionID id.SanctionID) error {
	rec, err := s.lookup(ctx, sanctionID)
	if err != nil {
		s.metrics.ObserveCommand("open_dispute", "not_found")
		return err
	}
	if actor != rec.ViolatorID {
		s.metrics.ObserveCommand("open_dispute", "unauthorized")
		return dErrors.New(dErrors.CodeUnauthorized, "you are not the violator on this sanction")
	}

	opened, err := s.disputes.Open(ctx, sanctionID)
	if err != nil {
		s.metrics.ObserveCommand("open_dispute", "error")
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not register the dispute")
	}
	if !opened {
		s.metrics.ObserveCommand("open_dispute", "already_open")
		return dErrors.New(dErrors.CodeConflict, "a confirmation request for this sanction is already pending")
	}

	token := pending.Token(sanctionID)
	req := ports.PromptRequest{
		Token:     token,
		Recipient: rec.VictimID,
		Notice:    models.DisputePrompt(sanctionID, *rec),
		Options: []ports.PromptOption{
			{Key: PromptOptionAccept, Label: "Confirm fulfillment"},
			{Key: PromptOptionReject, Label: "Reject fulfillment"},
		},
	}

	ref, err := s.notifier.SendPrompt(ctx, req)
	if err != nil {
		// Roll the token back so the violator can retry once the victim
		// is reachable again.
		if _, cerr := s.disputes.Close(ctx, sanctionID); cerr != nil {
			s.logger.ErrorContext(ctx, "could not roll back dispute token",
				"sanction_id", sanctionID, "error", cerr)
		}
		s.metrics.ObserveCommand("open_dispute", "delivery_failed")
		return dErrors.Wrap(err, dErrors.CodeDeliveryFailed, "could not deliver the confirmation request to the victim")
	}

	s.prompts.Register(prompt.Prompt{
		Token:      token,
		SanctionID: sanctionID,
		Ref:        ref,
		Notice:     req.Notice,
	})
	s.timers.Arm(token, s.disputeTTL, func() {
		s.expireDispute(sanctionID)
	})

	s.emitAudit(ctx, audit.Event{
		Action:     audit.ActionDisputeOpened,
		SanctionID: sanctionID,
		ActorID:    actor,
		SubjectID:  rec.VictimID,
	})
	s.metrics.ObserveCommand("open_dispute", "ok")
	s.metrics.DisputeOpened()
	s.logger.InfoContext(ctx, "dispute opened",
		"sanction_id", sanctionID, "violator", actor, "victim", rec.VictimID)
	return nil
}

// ResolveDispute records the victim's verdict. Token possession decides the
// race against expiry: whichever side removes the token first wins, and the
// loser's work becomes a no-op.
func (s *Service) ResolveDispute(ctx context.Context, actor id.UserID, sanctionID id.SanctionID, accepted bool) error {
	open, err := s.disputes.IsOpen(ctx, sanctionID)
	if err != nil {
		s.metrics.ObserveCommand("resolve_dispute", "error")
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not check the dispute")
	}
	if !open {
		s.metrics.ObserveCommand("resolve_dispute", "stale")
		return dErrors.New(dErrors.CodeStaleDispute, "this confirmation request is no longer valid")
	}

	rec, err := s.lookup(ctx, sanctionID)
	if err != nil {
		s.metrics.ObserveCommand("resolve_dispute", "not_found")
		return err
	}
	if actor != rec.VictimID {
		s.metrics.ObserveCommand("resolve_dispute", "unauthorized")
		return dErrors.New(dErrors.CodeUnauthorized, "only the victim can confirm fulfillment of this sanction")
	}

	taken, err := s.disputes.Close(ctx, sanctionID)
	if err != nil {
		s.metrics.ObserveCommand("resolve_dispute", "error")
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not claim the dispute")
	}
	if !taken {
		// Expiry won between the check above and now.
		s.metrics.ObserveCommand("resolve_dispute", "stale")
		return dErrors.New(dErrors.CodeStaleDispute, "this confirmation request is no longer valid")
	}

	token := pending.Token(sanctionID)
	s.timers.Cancel(token)

	status := models.StatusNotSatisfied
	if accepted {
		status = models.StatusSatisfied
	}
	statusText := status.Label()
	resolvedAt := requestcontext.Now(ctx)

	err = s.tx.RunInTx(ctx, func(ledger *models.Ledger) error {
		cur, ok := ledger.Record(sanctionID)
		if !ok {
			return dErrors.Newf(dErrors.CodeNotFound, "no sanction with ID %d", int64(sanctionID))
		}
		cur.Status = status
		cur.StatusText = statusText
		cur.ResolvedAt = &resolvedAt
		cur.ResolvedBy = actor
		return nil
	})
	if err != nil {
		s.metrics.ObserveCommand("resolve_dispute", string(dErrors.CodeOf(err)))
		return err
	}
	s.metrics.DisputeClosed()

	// External effects after the record is authoritative: tolerated as
	// partial state, never rolled back.
	if err := s.updateNoticeStatus(ctx, noticeRef(rec), statusText, status.AccentColor()); err != nil {
		s.logger.WarnContext(ctx, "could not update public notice after resolution",
			"sanction_id", sanctionID, "error", err)
	}
	s.annotatePrompt(ctx, token, resolutionAnnotation(accepted), status.AccentColor())

	if rec.ViolatorID != actor {
		outcome := "rejected"
		if accepted {
			outcome = "confirmed"
		}
		notice := models.Notice{
			Description: fmt.Sprintf("Fulfillment of fine #%04d was %s.", int64(sanctionID), outcome),
			Color:       status.AccentColor(),
		}
		if !s.notifier.SendPrivateNotice(ctx, rec.ViolatorID, notice) {
			s.logger.InfoContext(ctx, "could not notify violator of resolution",
				"sanction_id", sanctionID, "violator", rec.ViolatorID)
		}
	}

	s.emitAudit(ctx, audit.Event{
		Action:     audit.ActionDisputeResolved,
		SanctionID: sanctionID,
		ActorID:    actor,
		SubjectID:  rec.ViolatorID,
		Outcome:    status.String(),
	})
	s.metrics.ObserveCommand("resolve_dispute", "ok")
	s.logger.InfoContext(ctx, "dispute resolved",
		"sanction_id", sanctionID, "resolved_by", actor, "status", status)
	return nil
}

// expireDispute is the deadline action. It re-checks token possession, so a
// dispute resolved moments before the timer fired is a clean no-op, as is a
// duplicate fire. The record's status is deliberately left unchanged.
func (s *Service) expireDispute(sanctionID id.SanctionID) {
	ctx, cancel := context.WithTimeout(context.Background(), bestEffortTimeout)
	defer cancel()

	taken, err := s.disputes.Close(ctx, sanctionID)
	if err != nil {
		s.logger.ErrorContext(ctx, "could not close dispute on expiry",
			"sanction_id", sanctionID, "error", err)
		return
	}
	if !taken {
		return
	}
	s.metrics.DisputeExpired()

	token := pending.Token(sanctionID)
	s.annotatePrompt(ctx, token, "The confirmation request expired.", models.ColorDarkGray)

	s.emitAudit(ctx, audit.Event{
		Action:     audit.ActionDisputeExpired,
		SanctionID: sanctionID,
		Outcome:    "expired",
	})
	s.logger.Info("dispute expired", "sanction_id", sanctionID)
}

// annotatePrompt appends an outcome line to a delivered prompt, recolors it,
// and drops its interactive controls. Best-effort.
func (s *Service) annotatePrompt(ctx context.Context, token, annotation string, color models.Color) {
	p, ok := s.prompts.Lookup(token)
	if !ok {
		return
	}
	notice := p.Notice
	notice.Description += "\n\n" + annotation
	notice.Color = color
	if err := s.notifier.EditPrompt(ctx, p.Ref, notice); err != nil {
		s.logger.WarnContext(ctx, "could not annotate confirmation prompt",
			"token", token, "error", err)
	}
	s.prompts.Remove(token)
}

func resolutionAnnotation(accepted bool) string {
	if accepted {
		return "Fulfillment confirmed."
	}
	return "Fulfillment rejected."
}
