package service

import (
	"context"
	"strings"

	"warden/internal/sanction/models"
	"warden/internal/sanction/ports"
	id "warden/pkg/domain"
	dErrors "warden/pkg/domain-errors"
	"warden/pkg/platform/audit"
)

// ChangeStatus is the administrative override: it moves a record to any
// canonical status at any time, regardless of the record's current state.
// customText is used only when status is StatusCustom.
func (s *Service) ChangeStatus(ctx context.Context, actor id.UserID, sanctionID id.SanctionID, status models.Status, customText string) (string, error) {
	if err := s.requireManager(ctx, actor, audit.ActionStatusChanged); err != nil {
		s.metrics.ObserveCommand("change_status", "unauthorized")
		return "", err
	}
	if !status.IsValid() {
		s.metrics.ObserveCommand("change_status", "invalid")
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown status %q", status)
	}
	customText = strings.TrimSpace(customText)
	if len(customText) > models.MaxCustomStatusLen {
		s.metrics.ObserveCommand("change_status", "invalid")
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "custom status must be at most %d characters", models.MaxCustomStatusLen)
	}

	rec, err := s.lookup(ctx, sanctionID)
	if err != nil {
		s.metrics.ObserveCommand("change_status", "not_found")
		return "", err
	}

	statusText := status.Label()
	if status == models.StatusCustom && customText != "" {
		statusText = customText
	}

	if err := s.updateNoticeStatus(ctx, noticeRef(rec), statusText, status.AccentColor()); err != nil {
		s.metrics.ObserveCommand("change_status", string(dErrors.CodeOf(err)))
		return "", err
	}

	err = s.tx.RunInTx(ctx, func(ledger *models.Ledger) error {
		cur, ok := ledger.Record(sanctionID)
		if !ok {
			return dErrors.Newf(dErrors.CodeNotFound, "no sanction with ID %d", int64(sanctionID))
		}
		cur.Status = status
		cur.StatusText = statusText
		return nil
	})
	if err != nil {
		s.metrics.ObserveCommand("change_status", string(dErrors.CodeOf(err)))
		return "", err
	}

	s.emitAudit(ctx, audit.Event{
		Action:     audit.ActionStatusChanged,
		SanctionID: sanctionID,
		ActorID:    actor,
		Outcome:    status.String(),
		Reason:     statusText,
	})
	s.metrics.ObserveCommand("change_status", "ok")
	return statusText, nil
}

// updateNoticeStatus rewrites the status field of the public notice in place
// and recolors it. Load-bearing: a notice that cannot be updated fails the
// status change before anything is persisted.
func (s *Service) updateNoticeStatus(ctx context.Context, ref ports.MessageRef, statusText string, color models.Color) error {
	notice, err := s.gateway.FetchNotice(ctx, ref)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeChannelUnavailable, "could not fetch the sanction notice")
	}

	updated := false
	for i := range notice.Fields {
		if notice.Fields[i].Name == models.StatusFieldName {
			notice.Fields[i].Value = statusText
			updated = true
			break
		}
	}
	if !updated {
		notice.Fields = append(notice.Fields, models.NoticeField{Name: models.StatusFieldName, Value: statusText})
	}
	notice.Color = color

	if err := s.gateway.EditNotice(ctx, ref, notice); err != nil {
		return dErrors.Wrap(err, dErrors.CodeChannelUnavailable, "could not update the sanction notice")
	}
	return nil
}
