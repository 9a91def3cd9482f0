package services

import (
	"context"
	"errors"
	"testing"

	"bank-dashboard/internal/models"
	"bank-dashboard/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

// AuditServiceTestSuite defines the test suite for AuditService
type AuditServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockAuditLogRepositoryInterface
	service  AuditServiceInterface
	ctx      context.Context
}

func (s *AuditServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockAuditLogRepositoryInterface(s.ctrl)
	s.service = NewAuditService(s.mockRepo)
	s.ctx = context.Background()
}

func (s *AuditServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuditServiceSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}

func (s *AuditServiceTestSuite) TestValidateActivityType_Valid() {
	for _, action := range []string{
		models.AuditActionRegister,
		models.AuditActionLogin,
		models.AuditActionRoleUpdated,
		models.AuditActionUserDeleted,
	} {
		s.NoError(ValidateActivityType(action), action)
	}
}

func (s *AuditServiceTestSuite) TestValidateActivityType_Invalid() {
	s.Error(ValidateActivityType("invalid_action"))
	s.Error(ValidateActivityType(""))
}

func (s *AuditServiceTestSuite) TestRecord_BuildsEntry() {
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, log *models.AuditLog) error {
			s.Equal("lead@gmail.com", log.Subject)
			s.Equal(models.AuditActionRoleUpdated, log.Action)
			s.Equal(models.AuditResourceUser, log.Resource)
			s.Equal("192.168.1.1", log.IPAddress)
			s.Equal("Admin", log.Metadata["new_role"])
			return nil
		})

	err := s.service.Record(s.ctx, "lead@gmail.com", models.AuditActionRoleUpdated, "192.168.1.1",
		map[string]interface{}{"new_role": "Admin"})
	s.NoError(err)
}

func (s *AuditServiceTestSuite) TestRecord_NoMetadata() {
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, log *models.AuditLog) error {
			s.Nil(log.Metadata)
			return nil
		})

	s.NoError(s.service.Record(s.ctx, "lead@gmail.com", models.AuditActionLogin, "", nil))
}

func (s *AuditServiceTestSuite) TestRecord_RejectsInvalid() {
	s.ErrorIs(s.service.Record(s.ctx, "", models.AuditActionLogin, "", nil), ErrInvalidAuditSubject)
	s.Error(s.service.Record(s.ctx, "lead@gmail.com", "teleport", "", nil))
}

func (s *AuditServiceTestSuite) TestRecord_RepositoryError() {
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

	err := s.service.Record(s.ctx, "lead@gmail.com", models.AuditActionLogin, "", nil)
	s.Error(err)
	s.Contains(err.Error(), "failed to create audit log")
}

func (s *AuditServiceTestSuite) TestHistory() {
	s.mockRepo.EXPECT().ListBySubject(gomock.Any(), "lead@gmail.com", 20).Return([]*models.AuditLog{{}, {}}, nil)

	logs, err := s.service.History(s.ctx, "lead@gmail.com", 20)
	s.Require().NoError(err)
	s.Len(logs, 2)

	_, err = s.service.History(s.ctx, " ", 20)
	s.ErrorIs(err, ErrInvalidAuditSubject)
}
