package service

import (
	"errors"
	"time"

	"go.uber.org/mock/gomock"

	"warden/internal/sanction/models"
	"warden/internal/sanction/pending"
	"warden/internal/sanction/ports"
	id "warden/pkg/domain"
	dErrors "warden/pkg/domain-errors"
)

var promptRef = ports.MessageRef{Channel: "chan-dm", Message: "msg-prompt"}

// openDispute runs one successful OpenDispute for the given sanction.
func (s *ServiceSuite) openDispute(sid id.SanctionID) {
	s.T().Helper()
	s.notifier.EXPECT().SendPrompt(gomock.Any(), gomock.Any()).Return(promptRef, nil)
	s.Require().NoError(s.svc.OpenDispute(s.ctx, testViolator, sid))
}

func (s *ServiceSuite) TestOpenDispute_DeliversPromptAndArmsDeadline() {
	sid := s.issueSanction()

	var prompt ports.PromptRequest
	s.notifier.EXPECT().SendPrompt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req ports.PromptRequest) (ports.MessageRef, error) {
			prompt = req
			return promptRef, nil
		})

	s.Require().NoError(s.svc.OpenDispute(s.ctx, testViolator, sid))

	s.Equal("redress_1", prompt.Token)
	s.Equal(testVictim, prompt.Recipient)
	s.Len(prompt.Options, 2)
	s.Equal(models.ColorBlue, prompt.Notice.Color)

	open, _ := s.disputes.IsOpen(s.ctx, sid)
	s.True(open)
	s.True(s.svc.timers.Armed("redress_1"))
}

func (s *ServiceSuite) TestOpenDispute_OnlyViolatorMayOpen() {
	sid := s.issueSanction()

	err := s.svc.OpenDispute(s.ctx, testVictim, sid)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))

	open, _ := s.disputes.IsOpen(s.ctx, sid)
	s.False(open)
}

func (s *ServiceSuite) TestOpenDispute_UnknownSanction() {
	err := s.svc.OpenDispute(s.ctx, testViolator, 42)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestOpenDispute_SecondOpenIsRejected() {
	sid := s.issueSanction()
	s.openDispute(sid)

	err := s.svc.OpenDispute(s.ctx, testViolator, sid)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}

// An undeliverable prompt rolls the token back so the violator can retry.
func (s *ServiceSuite) TestOpenDispute_FailedDeliveryRollsBackToken() {
	sid := s.issueSanction()

	s.notifier.EXPECT().SendPrompt(gomock.Any(), gomock.Any()).Return(ports.MessageRef{}, errors.New("dms closed"))

	err := s.svc.OpenDispute(s.ctx, testViolator, sid)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeDeliveryFailed))

	open, _ := s.disputes.IsOpen(s.ctx, sid)
	s.False(open)
	s.False(s.svc.timers.Armed("redress_1"))

	// Retry succeeds once the victim is reachable again.
	s.openDispute(sid)
}

func (s *ServiceSuite) TestResolveDispute_AcceptStampsResolution() {
	sid := s.issueSanction()
	s.openDispute(sid)

	s.gateway.EXPECT().FetchNotice(gomock.Any(), gomock.Any()).Return(s.noticeWithStatus("Issued"), nil)
	s.gateway.EXPECT().EditNotice(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	var annotated models.Notice
	s.notifier.EXPECT().EditPrompt(gomock.Any(), promptRef, gomock.Any()).
		DoAndReturn(func(_ any, _ ports.MessageRef, notice models.Notice) error {
			annotated = notice
			return nil
		})
	s.notifier.EXPECT().SendPrivateNotice(gomock.Any(), testViolator, gomock.Any()).Return(true)

	s.Require().NoError(s.svc.ResolveDispute(s.ctx, testVictim, sid, true))

	rec, err := s.svc.Get(s.ctx, sid)
	s.Require().NoError(err)
	s.Equal(models.StatusSatisfied, rec.Status)
	s.True(rec.Resolved())
	s.Equal(testNow, *rec.ResolvedAt)
	s.Equal(testVictim, rec.ResolvedBy)

	s.Contains(annotated.Description, "Fulfillment confirmed.")
	s.Equal(models.ColorGreen, annotated.Color)

	open, _ := s.disputes.IsOpen(s.ctx, sid)
	s.False(open)
	s.False(s.svc.timers.Armed("redress_1"))
}

func (s *ServiceSuite) TestResolveDispute_RejectMarksNotSatisfied() {
	sid := s.issueSanction()
	s.openDispute(sid)

	s.gateway.EXPECT().FetchNotice(gomock.Any(), gomock.Any()).Return(s.noticeWithStatus("Issued"), nil)
	s.gateway.EXPECT().EditNotice(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.notifier.EXPECT().EditPrompt(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.notifier.EXPECT().SendPrivateNotice(gomock.Any(), testViolator, gomock.Any()).Return(true)

	s.Require().NoError(s.svc.ResolveDispute(s.ctx, testVictim, sid, false))

	rec, _ := s.svc.Get(s.ctx, sid)
	s.Equal(models.StatusNotSatisfied, rec.Status)
	s.Equal(testVictim, rec.ResolvedBy)
}

func (s *ServiceSuite) TestResolveDispute_OnlyVictimMayResolve() {
	sid := s.issueSanction()
	s.openDispute(sid)

	err := s.svc.ResolveDispute(s.ctx, testViolator, sid, true)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))

	// The dispute stays actionable for the real victim.
	open, _ := s.disputes.IsOpen(s.ctx, sid)
	s.True(open)
}

func (s *ServiceSuite) TestResolveDispute_WithoutOpenDispute() {
	sid := s.issueSanction()

	err := s.svc.ResolveDispute(s.ctx, testVictim, sid, true)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeStaleDispute))
}

func (s *ServiceSuite) TestExpiry_LeavesRecordUntouched() {
	sid := s.issueSanction()
	s.openDispute(sid)

	var annotated models.Notice
	s.notifier.EXPECT().EditPrompt(gomock.Any(), promptRef, gomock.Any()).
		DoAndReturn(func(_ any, _ ports.MessageRef, notice models.Notice) error {
			annotated = notice
			return nil
		})

	s.clock.Advance(24 * time.Hour)

	rec, err := s.svc.Get(s.ctx, sid)
	s.Require().NoError(err)
	s.Equal(models.StatusIssued, rec.Status)
	s.False(rec.Resolved())

	s.Contains(annotated.Description, "The confirmation request expired.")
	s.Equal(models.ColorDarkGray, annotated.Color)

	open, _ := s.disputes.IsOpen(s.ctx, sid)
	s.False(open)
}

func (s *ServiceSuite) TestExpiry_ThenResolveIsStale() {
	sid := s.issueSanction()
	s.openDispute(sid)

	s.notifier.EXPECT().EditPrompt(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.clock.Advance(24 * time.Hour)

	err := s.svc.ResolveDispute(s.ctx, testVictim, sid, true)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeStaleDispute))
}

// A dispute resolved before the deadline must not be touched when the timer
// would have fired.
func (s *ServiceSuite) TestResolve_ThenExpiryIsNoOp() {
	sid := s.issueSanction()
	s.openDispute(sid)

	s.gateway.EXPECT().FetchNotice(gomock.Any(), gomock.Any()).Return(s.noticeWithStatus("Issued"), nil)
	s.gateway.EXPECT().EditNotice(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.notifier.EXPECT().EditPrompt(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.notifier.EXPECT().SendPrivateNotice(gomock.Any(), testViolator, gomock.Any()).Return(true)

	s.Require().NoError(s.svc.ResolveDispute(s.ctx, testVictim, sid, true))

	// No further mock expectations: the cancelled deadline must not fire.
	s.clock.Advance(48 * time.Hour)

	rec, _ := s.svc.Get(s.ctx, sid)
	s.Equal(models.StatusSatisfied, rec.Status)
}

// After expiry the violator can open a fresh dispute.
func (s *ServiceSuite) TestExpiry_AllowsReopen() {
	sid := s.issueSanction()
	s.openDispute(sid)

	s.notifier.EXPECT().EditPrompt(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.clock.Advance(24 * time.Hour)

	s.openDispute(sid)
	open, _ := s.disputes.IsOpen(s.ctx, sid)
	s.True(open)
}

// The violator resolving their own sanction as victim would double-notify;
// the self-notification is skipped.
func (s *ServiceSuite) TestResolveDispute_NoSelfNotification() {
	s.allowManager()
	s.gateway.EXPECT().ResolveChannel(gomock.Any(), testChannel).Return(nil)
	s.gateway.EXPECT().SendNotice(gomock.Any(), testChannel, gomock.Any()).Return(id.MessageID("msg-notice"), nil)
	s.notifier.EXPECT().SendPrivateNotice(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(2)

	req := s.issueRequest()
	req.Victim = testViolator
	sid, err := s.svc.Issue(s.ctx, req)
	s.Require().NoError(err)

	s.openDispute(sid)

	s.gateway.EXPECT().FetchNotice(gomock.Any(), gomock.Any()).Return(s.noticeWithStatus("Issued"), nil)
	s.gateway.EXPECT().EditNotice(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.notifier.EXPECT().EditPrompt(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	// No SendPrivateNotice expectation: resolver and violator coincide.

	s.Require().NoError(s.svc.ResolveDispute(s.ctx, testViolator, sid, true))
}

func (s *ServiceSuite) TestDisputeTokenShape() {
	s.Equal("redress_7", pending.Token(7))
}
