package service

import (
	"go.uber.org/mock/gomock"

	"warden/internal/sanction/models"
	"warden/internal/sanction/ports"
	id "warden/pkg/domain"
	dErrors "warden/pkg/domain-errors"
	"warden/pkg/platform/sentinel"
)

func (s *ServiceSuite) TestPardon_ExpungesRecord() {
	sid := s.issueSanction()
	ref := ports.MessageRef{Channel: testChannel, Message: "msg-notice"}

	s.allowManager()
	s.gateway.EXPECT().ResolveChannel(gomock.Any(), testChannel).Return(nil)
	s.gateway.EXPECT().DeleteMessage(gomock.Any(), ref).Return(nil)

	s.Require().NoError(s.svc.Pardon(s.ctx, testIssuer, sid))

	_, err := s.svc.Get(s.ctx, sid)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestPardon_DeletesEvidenceThread() {
	sid := s.issueSanction()
	s.Require().NoError(s.svc.tx.RunInTx(s.ctx, func(ledger *models.Ledger) error {
		rec, _ := ledger.Record(sid)
		rec.ThreadID = "thread-1"
		return nil
	}))

	s.allowManager()
	s.gateway.EXPECT().ResolveChannel(gomock.Any(), testChannel).Return(nil)
	s.gateway.EXPECT().DeleteMessage(gomock.Any(), gomock.Any()).Return(nil)
	s.gateway.EXPECT().DeleteThread(gomock.Any(), id.ThreadID("thread-1")).Return(nil)

	s.Require().NoError(s.svc.Pardon(s.ctx, testIssuer, sid))
}

func (s *ServiceSuite) TestPardon_UnknownIDHasNoSideEffect() {
	s.allowManager()

	err := s.svc.Pardon(s.ctx, testIssuer, 42)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestPardon_NonManagerIsRefused() {
	sid := s.issueSanction()

	s.denyManager()
	err := s.svc.Pardon(s.ctx, testViolator, sid)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))

	_, err = s.svc.Get(s.ctx, sid)
	s.NoError(err)
}

func (s *ServiceSuite) TestPardon_UnresolvableChannelKeepsRecord() {
	sid := s.issueSanction()

	s.allowManager()
	s.gateway.EXPECT().ResolveChannel(gomock.Any(), testChannel).Return(sentinel.ErrNotFound)

	err := s.svc.Pardon(s.ctx, testIssuer, sid)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeChannelUnavailable))

	_, err = s.svc.Get(s.ctx, sid)
	s.NoError(err)
}

// Cleanup of the public surface is best-effort; the expunge still happens.
func (s *ServiceSuite) TestPardon_ToleratesUndeletableNotice() {
	sid := s.issueSanction()

	s.allowManager()
	s.gateway.EXPECT().ResolveChannel(gomock.Any(), testChannel).Return(nil)
	s.gateway.EXPECT().DeleteMessage(gomock.Any(), gomock.Any()).Return(sentinel.ErrForbidden)

	s.Require().NoError(s.svc.Pardon(s.ctx, testIssuer, sid))

	_, err := s.svc.Get(s.ctx, sid)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

// Pardoning a sanction with an open dispute releases the token and deadline.
func (s *ServiceSuite) TestPardon_ReleasesOpenDispute() {
	sid := s.issueSanction()
	s.openDispute(sid)

	s.allowManager()
	s.gateway.EXPECT().ResolveChannel(gomock.Any(), testChannel).Return(nil)
	s.gateway.EXPECT().DeleteMessage(gomock.Any(), gomock.Any()).Return(nil)

	s.Require().NoError(s.svc.Pardon(s.ctx, testIssuer, sid))

	open, _ := s.disputes.IsOpen(s.ctx, sid)
	s.False(open)
	s.False(s.svc.timers.Armed("redress_1"))

	err := s.svc.ResolveDispute(s.ctx, testVictim, sid, true)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeStaleDispute))
}
