package service

import (
	"go.uber.org/mock/gomock"

	"warden/internal/sanction/models"
	"warden/internal/sanction/ports"
	id "warden/pkg/domain"
	dErrors "warden/pkg/domain-errors"
	"warden/pkg/platform/sentinel"
)

func (s *ServiceSuite) uploadFor(actor id.UserID) Upload {
	return Upload{
		Actor: actor,
		Ref:   ports.MessageRef{Channel: "chan-dm", Message: "msg-upload"},
		Files: []ports.File{{Name: "proof.png", URL: "https://cdn.example/proof.png"}},
	}
}

func (s *ServiceSuite) TestRequestEvidence_RequiresExistingRecord() {
	s.allowManager()
	err := s.svc.RequestEvidence(s.ctx, testIssuer, 42)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	_, ok, _ := s.evidence.Consume(s.ctx, testIssuer)
	s.False(ok)
}

func (s *ServiceSuite) TestRequestEvidence_NonManagerIsRefused() {
	sid := s.issueSanction()

	s.denyManager()
	err := s.svc.RequestEvidence(s.ctx, testViolator, sid)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func (s *ServiceSuite) TestSubmitEvidence_RoutesUploadToThread() {
	sid := s.issueSanction()
	s.allowManager()
	s.Require().NoError(s.svc.RequestEvidence(s.ctx, testIssuer, sid))

	s.gateway.EXPECT().CreateThread(gomock.Any(), ports.MessageRef{Channel: testChannel, Message: "msg-notice"}, "Evidence #0001").
		Return(id.ThreadID("thread-1"), nil)
	s.gateway.EXPECT().SendFiles(gomock.Any(), id.ThreadID("thread-1"), "Evidence from mod-1:", gomock.Any()).Return(nil)
	s.gateway.EXPECT().DeleteMessage(gomock.Any(), ports.MessageRef{Channel: "chan-dm", Message: "msg-upload"}).Return(nil)

	handled, err := s.svc.SubmitEvidence(s.ctx, s.uploadFor(testIssuer))
	s.Require().NoError(err)
	s.True(handled)

	rec, err := s.svc.Get(s.ctx, sid)
	s.Require().NoError(err)
	s.Equal(id.ThreadID("thread-1"), rec.ThreadID)
}

func (s *ServiceSuite) TestSubmitEvidence_UnrelatedUploadIsIgnored() {
	handled, err := s.svc.SubmitEvidence(s.ctx, s.uploadFor(testIssuer))
	s.Require().NoError(err)
	s.False(handled)
}

// A rejected upload consumes the expectation; the next upload from the same
// actor is unrelated again.
func (s *ServiceSuite) TestSubmitEvidence_NoFilesConsumesExpectation() {
	sid := s.issueSanction()
	s.allowManager()
	s.Require().NoError(s.svc.RequestEvidence(s.ctx, testIssuer, sid))

	up := s.uploadFor(testIssuer)
	up.Files = nil
	handled, err := s.svc.SubmitEvidence(s.ctx, up)
	s.Require().Error(err)
	s.True(handled)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))

	handled, err = s.svc.SubmitEvidence(s.ctx, s.uploadFor(testIssuer))
	s.Require().NoError(err)
	s.False(handled)
}

func (s *ServiceSuite) TestSubmitEvidence_ReusesRecordedThread() {
	sid := s.issueSanction()
	s.allowManager()
	s.Require().NoError(s.svc.RequestEvidence(s.ctx, testIssuer, sid))

	s.Require().NoError(s.svc.tx.RunInTx(s.ctx, func(ledger *models.Ledger) error {
		rec, _ := ledger.Record(sid)
		rec.ThreadID = "thread-old"
		return nil
	}))

	s.gateway.EXPECT().ResolveThread(gomock.Any(), id.ThreadID("thread-old")).Return(nil)
	s.gateway.EXPECT().SendFiles(gomock.Any(), id.ThreadID("thread-old"), gomock.Any(), gomock.Any()).Return(nil)
	s.gateway.EXPECT().DeleteMessage(gomock.Any(), gomock.Any()).Return(nil)

	handled, err := s.svc.SubmitEvidence(s.ctx, s.uploadFor(testIssuer))
	s.Require().NoError(err)
	s.True(handled)
}

// A recorded thread that no longer resolves is recreated instead of failing
// the upload.
func (s *ServiceSuite) TestSubmitEvidence_RecreatesVanishedThread() {
	sid := s.issueSanction()
	s.allowManager()
	s.Require().NoError(s.svc.RequestEvidence(s.ctx, testIssuer, sid))

	s.Require().NoError(s.svc.tx.RunInTx(s.ctx, func(ledger *models.Ledger) error {
		rec, _ := ledger.Record(sid)
		rec.ThreadID = "thread-gone"
		return nil
	}))

	s.gateway.EXPECT().ResolveThread(gomock.Any(), id.ThreadID("thread-gone")).Return(sentinel.ErrNotFound)
	s.gateway.EXPECT().CreateThread(gomock.Any(), gomock.Any(), "Evidence #0001").Return(id.ThreadID("thread-new"), nil)
	s.gateway.EXPECT().SendFiles(gomock.Any(), id.ThreadID("thread-new"), gomock.Any(), gomock.Any()).Return(nil)
	s.gateway.EXPECT().DeleteMessage(gomock.Any(), gomock.Any()).Return(nil)

	handled, err := s.svc.SubmitEvidence(s.ctx, s.uploadFor(testIssuer))
	s.Require().NoError(err)
	s.True(handled)

	rec, err := s.svc.Get(s.ctx, sid)
	s.Require().NoError(err)
	s.Equal(id.ThreadID("thread-new"), rec.ThreadID)
}

// The upload cleanup is best-effort.
func (s *ServiceSuite) TestSubmitEvidence_ToleratesUndeletableUpload() {
	sid := s.issueSanction()
	s.allowManager()
	s.Require().NoError(s.svc.RequestEvidence(s.ctx, testIssuer, sid))

	s.gateway.EXPECT().CreateThread(gomock.Any(), gomock.Any(), gomock.Any()).Return(id.ThreadID("thread-1"), nil)
	s.gateway.EXPECT().SendFiles(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.gateway.EXPECT().DeleteMessage(gomock.Any(), gomock.Any()).Return(sentinel.ErrForbidden)

	handled, err := s.svc.SubmitEvidence(s.ctx, s.uploadFor(testIssuer))
	s.Require().NoError(err)
	s.True(handled)
}
