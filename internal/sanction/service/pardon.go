package service

import (
	"context"

	"warden/internal/sanction/models"
	"warden/internal/sanction/pending"
	id "warden/pkg/domain"
	dErrors "warden/pkg/domain-errors"
	"warden/pkg/platform/audit"
)

// Pardon expunges a sanction: the record leaves the ledger entirely and the
// public notice and evidence thread are deleted best-effort. Pardoning an
// unknown ID fails with not-found and has no side effect.
func (s *Service) Pardon(ctx context.Context, actor id.UserID, sanctionID id.SanctionID) error {
	if err := s.requireManager(ctx, actor, audit.ActionSanctionPardoned); err != nil {
		s.metrics.ObserveCommand("pardon", "unauthorized")
		return err
	}

	rec, err := s.lookup(ctx, sanctionID)
	if err != nil {
		s.metrics.ObserveCommand("pardon", "not_found")
		return err
	}

	if err := s.gateway.ResolveChannel(ctx, rec.ChannelID); err != nil {
		s.metrics.ObserveCommand("pardon", "channel_unavailable")
		return dErrors.Wrap(err, dErrors.CodeChannelUnavailable, "the sanction channel could not be found")
	}

	if err := s.gateway.DeleteMessage(ctx, noticeRef(rec)); err != nil {
		s.logger.WarnContext(ctx, "could not delete sanction notice",
			"sanction_id", sanctionID, "error", err)
	}
	if !rec.ThreadID.IsNil() {
		if err := s.gateway.DeleteThread(ctx, rec.ThreadID); err != nil {
			s.logger.WarnContext(ctx, "could not delete evidence thread",
				"sanction_id", sanctionID, "thread_id", rec.ThreadID, "error", err)
		}
	}

	err = s.tx.RunInTx(ctx, func(ledger *models.Ledger) error {
		if !ledger.Remove(sanctionID) {
			return dErrors.Newf(dErrors.CodeNotFound, "no sanction with ID %d", int64(sanctionID))
		}
		return nil
	})
	if err != nil {
		s.metrics.ObserveCommand("pardon", string(dErrors.CodeOf(err)))
		return err
	}

	// An open dispute on a pardoned sanction is dead weight: release the
	// token and timer so the prompt reports staleness immediately.
	if taken, err := s.disputes.Close(ctx, sanctionID); err == nil && taken {
		s.timers.Cancel(pending.Token(sanctionID))
		s.metrics.DisputeClosed()
	}

	s.emitAudit(ctx, audit.Event{
		Action:     audit.ActionSanctionPardoned,
		SanctionID: sanctionID,
		ActorID:    actor,
		SubjectID:  rec.ViolatorID,
	})
	s.metrics.ObserveCommand("pardon", "ok")
	s.logger.InfoContext(ctx, "sanction pardoned", "sanction_id", sanctionID, "actor", actor)
	return nil
}
