package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/mock/gomock"

	"warden/internal/sanction/models"
	id "warden/pkg/domain"
	dErrors "warden/pkg/domain-errors"
	"warden/pkg/platform/sentinel"
)

func (s *ServiceSuite) TestIssue_CreatesRecord() {
	sid := s.issueSanction()
	s.Equal(id.SanctionID(1), sid)

	rec, err := s.svc.Get(s.ctx, sid)
	s.Require().NoError(err)
	s.Equal(models.StatusIssued, rec.Status)
	s.Equal(models.StatusIssued.Label(), rec.StatusText)
	s.Equal(testViolator, rec.ViolatorID)
	s.Equal(testVictim, rec.VictimID)
	s.Equal(testIssuer, rec.IssuerID)
	s.Equal(id.MessageID("msg-notice"), rec.MessageID)
	s.Equal(testChannel, rec.ChannelID)
	s.True(rec.ThreadID.IsNil())
	s.Equal(testNow, rec.CreatedAt)
	s.False(rec.Resolved())
}

func (s *ServiceSuite) TestIssue_AllocatesSequentialIDs() {
	first := s.issueSanction()
	second := s.issueSanction()

	s.Equal(id.SanctionID(1), first)
	s.Equal(id.SanctionID(2), second)
	s.Equal(int64(2), s.ledger.Load(s.ctx).LastID)
}

func (s *ServiceSuite) TestIssue_NonManagerIsRefused() {
	s.denyManager()

	_, err := s.svc.Issue(s.ctx, s.issueRequest())
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	s.Equal(int64(0), s.ledger.Load(s.ctx).LastID)
}

func (s *ServiceSuite) TestIssue_ValidationFailures() {
	tests := []struct {
		name   string
		mutate func(*IssueRequest)
	}{
		{"missing violator", func(r *IssueRequest) { r.Violator = "" }},
		{"missing victim", func(r *IssueRequest) { r.Victim = "" }},
		{"blank rule", func(r *IssueRequest) { r.Rule = "   " }},
		{"blank requirement", func(r *IssueRequest) { r.Requirement = "" }},
		{"blank deadline", func(r *IssueRequest) { r.Deadline = "" }},
		{"rule too long", func(r *IssueRequest) { r.Rule = strings.Repeat("x", models.MaxRuleLen+1) }},
		{"requirement too long", func(r *IssueRequest) { r.Requirement = strings.Repeat("x", models.MaxRequirementLen+1) }},
		{"deadline too long", func(r *IssueRequest) { r.Deadline = strings.Repeat("x", models.MaxDeadlineLen+1) }},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.allowManager()
			req := s.issueRequest()
			tt.mutate(&req)

			_, err := s.svc.Issue(s.ctx, req)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
		})
	}
	s.Equal(int64(0), s.ledger.Load(s.ctx).LastID)
}

func (s *ServiceSuite) TestIssue_UnresolvableChannelCreatesNothing() {
	s.allowManager()
	s.gateway.EXPECT().ResolveChannel(gomock.Any(), testChannel).Return(sentinel.ErrNotFound)

	_, err := s.svc.Issue(s.ctx, s.issueRequest())
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeChannelUnavailable))
	s.Equal(int64(0), s.ledger.Load(s.ctx).LastID)
}

// A notice that cannot be posted aborts the transaction, so the allocated ID
// is never consumed and the next issue reuses it.
func (s *ServiceSuite) TestIssue_FailedNoticeDoesNotConsumeID() {
	s.allowManager()
	s.gateway.EXPECT().ResolveChannel(gomock.Any(), testChannel).Return(nil)
	s.gateway.EXPECT().SendNotice(gomock.Any(), testChannel, gomock.Any()).Return(id.MessageID(""), errors.New("post failed"))

	_, err := s.svc.Issue(s.ctx, s.issueRequest())
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeChannelUnavailable))
	s.Equal(int64(0), s.ledger.Load(s.ctx).LastID)

	sid := s.issueSanction()
	s.Equal(id.SanctionID(1), sid)
}

// Unreachable recipients never fail the command.
func (s *ServiceSuite) TestIssue_UndeliverableNoticesAreTolerated() {
	s.allowManager()
	s.gateway.EXPECT().ResolveChannel(gomock.Any(), testChannel).Return(nil)
	s.gateway.EXPECT().SendNotice(gomock.Any(), testChannel, gomock.Any()).Return(id.MessageID("msg-notice"), nil)
	s.notifier.EXPECT().SendPrivateNotice(gomock.Any(), gomock.Any(), gomock.Any()).Return(false).Times(2)

	sid, err := s.svc.Issue(s.ctx, s.issueRequest())
	s.Require().NoError(err)
	s.Equal(id.SanctionID(1), sid)
}

func (s *ServiceSuite) TestIssue_NoticeContent() {
	s.allowManager()
	s.gateway.EXPECT().ResolveChannel(gomock.Any(), testChannel).Return(nil)
	var posted models.Notice
	s.gateway.EXPECT().SendNotice(gomock.Any(), testChannel, gomock.Any()).
		DoAndReturn(func(_ any, _ id.ChannelID, notice models.Notice) (id.MessageID, error) {
			posted = notice
			return "msg-notice", nil
		})
	s.notifier.EXPECT().SendPrivateNotice(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(2)

	_, err := s.svc.Issue(s.ctx, s.issueRequest())
	s.Require().NoError(err)

	s.Equal("Fine #0001", posted.Title)
	s.Equal("Issued by: Moderator", posted.Footer)
	s.Equal(models.ColorLightGray, posted.Color)
}

func (s *ServiceSuite) TestGet_UnknownID() {
	_, err := s.svc.Get(s.ctx, 42)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestGet_ReadsThroughTransactionBoundary() {
	sid := s.issueSanction()

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	// A cancelled context aborts at the boundary instead of reporting a
	// spurious not-found from an unguarded read.
	_, err := s.svc.Get(ctx, sid)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeTimeout))

	rec, err := s.svc.Get(s.ctx, sid)
	s.Require().NoError(err)
	s.Equal(sid, rec.ID)
}
