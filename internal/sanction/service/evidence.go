package service

import (
	"context"
	"errors"
	"fmt"

	"warden/internal/sanction/models"
	"warden/internal/sanction/ports"
	id "warden/pkg/domain"
	dErrors "warden/pkg/domain-errors"
	"warden/pkg/platform/audit"
	"warden/pkg/platform/sentinel"
)

// RequestEvidence registers that the actor's next file upload is evidence for
// the given sanction. The record must exist before the expectation is armed.
// A newer request from the same actor replaces the old one.
func (s *Service) RequestEvidence(ctx context.Context, actor id.UserID, sanctionID id.SanctionID) error {
	if err := s.requireManager(ctx, actor, audit.ActionEvidenceAttached); err != nil {
		s.metrics.ObserveCommand("request_evidence", "unauthorized")
		return err
	}
	if _, err := s.lookup(ctx, sanctionID); err != nil {
		s.metrics.ObserveCommand("request_evidence", "not_found")
		return err
	}
	if err := s.evidence.Expect(ctx, actor, sanctionID); err != nil {
		s.metrics.ObserveCommand("request_evidence", "error")
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not register the evidence request")
	}
	s.metrics.ObserveCommand("request_evidence", "ok")
	return nil
}

// Upload is an incoming message with attachments from the platform. Ref
// locates the upload itself so it can be cleaned up after processing.
type Upload struct {
	Actor id.UserID
	Ref   ports.MessageRef
	Files []ports.File
}

// SubmitEvidence routes an upload to the sanction the actor was expected to
// prove. Returns handled=false when no expectation exists for the actor, so
// the transport can ignore unrelated uploads.
//
// The expectation is consumed up front: a rejected upload (missing record,
// zero attachments) does not retry automatically.
func (s *Service) SubmitEvidence(ctx context.Context, up Upload) (handled bool, err error) {
	sanctionID, ok, err := s.evidence.Consume(ctx, up.Actor)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "could not check the evidence expectation")
	}
	if !ok {
		return false, nil
	}

	rec, err := s.lookup(ctx, sanctionID)
	if err != nil {
		s.metrics.ObserveCommand("submit_evidence", "not_found")
		return true, err
	}
	if len(up.Files) == 0 {
		s.metrics.ObserveCommand("submit_evidence", "no_files")
		return true, dErrors.New(dErrors.CodeInvalidInput, "you did not attach any files")
	}

	thread, err := s.resolveEvidenceThread(ctx, sanctionID, rec)
	if err != nil {
		s.metrics.ObserveCommand("submit_evidence", string(dErrors.CodeOf(err)))
		return true, err
	}

	caption := fmt.Sprintf("Evidence from %s:", up.Actor)
	if err := s.gateway.SendFiles(ctx, thread, caption, up.Files); err != nil {
		s.metrics.ObserveCommand("submit_evidence", "send_failed")
		return true, dErrors.Wrap(err, dErrors.CodeInternal, "could not attach the evidence")
	}

	// The processed upload is removed so evidence lives only in the thread.
	if err := s.gateway.DeleteMessage(ctx, up.Ref); err != nil {
		s.logger.WarnContext(ctx, "could not delete processed upload",
			"sanction_id", sanctionID, "error", err)
	}

	s.emitAudit(ctx, audit.Event{
		Action:     audit.ActionEvidenceAttached,
		SanctionID: sanctionID,
		ActorID:    up.Actor,
		Outcome:    fmt.Sprintf("%d files", len(up.Files)),
	})
	s.metrics.ObserveCommand("submit_evidence", "ok")
	return true, nil
}

// resolveEvidenceThread returns the sanction's evidence thread, creating it
// lazily under the public notice. Self-healing: a recorded thread that no
// longer resolves is cleared and recreated rather than failing the upload.
func (s *Service) resolveEvidenceThread(ctx context.Context, sanctionID id.SanctionID, rec *models.SanctionRecord) (id.ThreadID, error) {
	if !rec.ThreadID.IsNil() {
		err := s.gateway.ResolveThread(ctx, rec.ThreadID)
		if err == nil {
			return rec.ThreadID, nil
		}
		if !errors.Is(err, sentinel.ErrNotFound) && !errors.Is(err, sentinel.ErrForbidden) {
			return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not resolve the evidence thread")
		}
		s.logger.InfoContext(ctx, "recorded evidence thread no longer resolves, recreating",
			"sanction_id", sanctionID, "thread_id", rec.ThreadID)
	}

	thread, err := s.gateway.CreateThread(ctx, noticeRef(rec), models.EvidenceThreadName(sanctionID))
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not create the evidence thread")
	}

	err = s.tx.RunInTx(ctx, func(ledger *models.Ledger) error {
		cur, ok := ledger.Record(sanctionID)
		if !ok {
			return dErrors.Newf(dErrors.CodeNotFound, "no sanction with ID %d", int64(sanctionID))
		}
		cur.ThreadID = thread
		return nil
	})
	if err != nil {
		// The thread exists but its coordinates were not persisted. The
		// self-healing lookup makes this safe: a later upload recreates
		// or re-resolves, so no rollback of the external effect.
		s.logger.ErrorContext(ctx, "could not persist evidence thread id",
			"sanction_id", sanctionID, "thread_id", thread, "error", err)
		return "", err
	}
	rec.ThreadID = thread
	return thread, nil
}
