package service

import (
	"strings"

	"go.uber.org/mock/gomock"

	"warden/internal/sanction/models"
	"warden/internal/sanction/ports"
	dErrors "warden/pkg/domain-errors"
	"warden/pkg/platform/sentinel"
)

func (s *ServiceSuite) noticeWithStatus(statusText string) models.Notice {
	return models.Notice{
		Title: "Fine #0001",
		Fields: []models.NoticeField{
			{Name: "Violator", Value: testViolator.String()},
			{Name: models.StatusFieldName, Value: statusText},
		},
		Color: models.ColorLightGray,
	}
}

func (s *ServiceSuite) TestChangeStatus_UpdatesNoticeAndRecord() {
	sid := s.issueSanction()
	ref := ports.MessageRef{Channel: testChannel, Message: "msg-notice"}

	s.allowManager()
	s.gateway.EXPECT().FetchNotice(gomock.Any(), ref).Return(s.noticeWithStatus("Issued"), nil)
	var edited models.Notice
	s.gateway.EXPECT().EditNotice(gomock.Any(), ref, gomock.Any()).
		DoAndReturn(func(_ any, _ ports.MessageRef, notice models.Notice) error {
			edited = notice
			return nil
		})

	statusText, err := s.svc.ChangeStatus(s.ctx, testIssuer, sid, models.StatusSatisfied, "")
	s.Require().NoError(err)
	s.Equal("Requirement satisfied", statusText)

	s.Equal(models.ColorGreen, edited.Color)
	var field string
	for _, f := range edited.Fields {
		if f.Name == models.StatusFieldName {
			field = f.Value
		}
	}
	s.Equal("Requirement satisfied", field)

	rec, err := s.svc.Get(s.ctx, sid)
	s.Require().NoError(err)
	s.Equal(models.StatusSatisfied, rec.Status)
	s.Equal("Requirement satisfied", rec.StatusText)
}

func (s *ServiceSuite) TestChangeStatus_CustomText() {
	sid := s.issueSanction()

	s.allowManager()
	s.gateway.EXPECT().FetchNotice(gomock.Any(), gomock.Any()).Return(s.noticeWithStatus("Issued"), nil)
	s.gateway.EXPECT().EditNotice(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	statusText, err := s.svc.ChangeStatus(s.ctx, testIssuer, sid, models.StatusCustom, "escalated to council")
	s.Require().NoError(err)
	s.Equal("escalated to council", statusText)

	rec, _ := s.svc.Get(s.ctx, sid)
	s.Equal(models.StatusCustom, rec.Status)
	s.Equal("escalated to council", rec.StatusText)
}

// A notice whose status field was removed by hand gets it appended back.
func (s *ServiceSuite) TestChangeStatus_RestoresMissingStatusField() {
	sid := s.issueSanction()

	notice := s.noticeWithStatus("Issued")
	notice.Fields = notice.Fields[:1]

	s.allowManager()
	s.gateway.EXPECT().FetchNotice(gomock.Any(), gomock.Any()).Return(notice, nil)
	var edited models.Notice
	s.gateway.EXPECT().EditNotice(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, _ ports.MessageRef, n models.Notice) error {
			edited = n
			return nil
		})

	_, err := s.svc.ChangeStatus(s.ctx, testIssuer, sid, models.StatusNotSatisfied, "")
	s.Require().NoError(err)

	s.Len(edited.Fields, 2)
	s.Equal(models.StatusFieldName, edited.Fields[1].Name)
	s.Equal("Requirement not satisfied", edited.Fields[1].Value)
}

func (s *ServiceSuite) TestChangeStatus_RejectsUnknownStatus() {
	sid := s.issueSanction()

	s.allowManager()
	_, err := s.svc.ChangeStatus(s.ctx, testIssuer, sid, models.Status("archived"), "")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *ServiceSuite) TestChangeStatus_RejectsOverlongCustomText() {
	sid := s.issueSanction()

	s.allowManager()
	_, err := s.svc.ChangeStatus(s.ctx, testIssuer, sid, models.StatusCustom, strings.Repeat("x", models.MaxCustomStatusLen+1))
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

// The notice update is load-bearing: if it fails, the record keeps its
// previous status.
func (s *ServiceSuite) TestChangeStatus_FailedNoticeUpdateKeepsRecord() {
	sid := s.issueSanction()

	s.allowManager()
	s.gateway.EXPECT().FetchNotice(gomock.Any(), gomock.Any()).Return(models.Notice{}, sentinel.ErrNotFound)

	_, err := s.svc.ChangeStatus(s.ctx, testIssuer, sid, models.StatusSatisfied, "")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeChannelUnavailable))

	rec, _ := s.svc.Get(s.ctx, sid)
	s.Equal(models.StatusIssued, rec.Status)
}

func (s *ServiceSuite) TestChangeStatus_NonManagerIsRefused() {
	sid := s.issueSanction()

	s.denyManager()
	_, err := s.svc.ChangeStatus(s.ctx, testViolator, sid, models.StatusSatisfied, "")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}
