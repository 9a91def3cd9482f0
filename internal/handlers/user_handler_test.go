package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bank-dashboard/internal/models"
	"bank-dashboard/internal/services"
	"bank-dashboard/internal/services/service_mocks"
	"bank-dashboard/internal/validation"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestUserHandler(t *testing.T) {
	suite.Run(t, new(UserHandlerSuite))
}

type UserHandlerSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	directory *service_mocks.MockUserDirectoryInterface
	charts    *service_mocks.MockChartResolverInterface
	handler   *UserHandler
	e         *echo.Echo
}

func (s *UserHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.directory = service_mocks.NewMockUserDirectoryInterface(s.ctrl)
	s.charts = service_mocks.NewMockChartResolverInterface(s.ctrl)
	s.handler = NewUserHandler(s.directory, s.charts)
	s.e = echo.New()
	s.e.Validator = NewValidator(validation.NewValidator([]string{"gmail.com", "yahoo.com", "outlook.com"}))
}

func (s *UserHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *UserHandlerSuite) call(method, target string, body interface{}, handle echo.HandlerFunc, pathValues ...string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.RemoteAddr = "10.0.0.7:5555"
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	if len(pathValues) > 0 {
		c.SetParamNames("email")
		c.SetParamValues(pathValues...)
	}

	s.Require().NoError(handle(c))
	return rec
}

func (s *UserHandlerSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response.Error.Code
}

func user(email, role string) *models.User {
	return &models.User{
		ID:        uuid.New(),
		Email:     email,
		FullName:  "Dana Lead",
		Role:      role,
		CreatedAt: time.Now(),
	}
}

func (s *UserHandlerSuite) TestSignup() {
	s.Run("successful registration", func() {
		s.directory.EXPECT().
			Register(gomock.Any(), "dana@gmail.com", "secret1", "Dana Lead", "10.0.0.7").
			Return(user("dana@gmail.com", models.RolePending), nil)

		rec := s.call(http.MethodPost, "/api/signup", map[string]string{
			"email": "dana@gmail.com", "password": "secret1", "fullName": "Dana Lead",
		}, s.handler.Signup)

		s.Equal(http.StatusCreated, rec.Code)
		var response SuccessResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Contains(response.Message, "Waiting for role assignment")
		s.NotContains(rec.Body.String(), "password")
	})

	s.Run("domain not allowed", func() {
		rec := s.call(http.MethodPost, "/api/signup", map[string]string{
			"email": "dana@example.com", "password": "secret1", "fullName": "Dana Lead",
		}, s.handler.Signup)

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("VALIDATION_001", s.errorCode(rec))
		s.Contains(rec.Body.String(), "email domain is not allowed")
	})

	s.Run("missing fields", func() {
		rec := s.call(http.MethodPost, "/api/signup", map[string]string{"email": "dana@gmail.com"}, s.handler.Signup)

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "password: is required")
		s.Contains(rec.Body.String(), "fullName: is required")
	})

	s.Run("password too short", func() {
		s.directory.EXPECT().Register(gomock.Any(), gomock.Any(), "abc", gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: minimum length is 5", services.ErrPasswordTooShort))

		rec := s.call(http.MethodPost, "/api/signup", map[string]string{
			"email": "dana@gmail.com", "password": "abc", "fullName": "Dana Lead",
		}, s.handler.Signup)

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("VALIDATION_009", s.errorCode(rec))
	})

	s.Run("duplicate email", func() {
		s.directory.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrUserAlreadyExists)

		rec := s.call(http.MethodPost, "/api/signup", map[string]string{
			"email": "dana@gmail.com", "password": "secret1", "fullName": "Dana Lead",
		}, s.handler.Signup)

		s.Equal(http.StatusConflict, rec.Code)
		s.Equal("USER_002", s.errorCode(rec))
	})

	s.Run("malformed body", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/signup", bytes.NewBufferString("{"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		s.Require().NoError(s.handler.Signup(s.e.NewContext(req, rec)))
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("VALIDATION_003", s.errorCode(rec))
	})
}

func (s *UserHandlerSuite) TestLogin() {
	credentials := map[string]string{"email": "dana@gmail.com", "password": "secret1"}

	s.Run("success returns profile", func() {
		s.directory.EXPECT().Authenticate(gomock.Any(), "dana@gmail.com", "secret1", gomock.Any()).
			Return(user("dana@gmail.com", models.RoleBusinessLeader), nil)

		rec := s.call(http.MethodPost, "/api/login", credentials, s.handler.Login)

		s.Equal(http.StatusOK, rec.Code)
		var response struct {
			User struct {
				Email    string `json:"email"`
				Role     string `json:"role"`
				FullName string `json:"fullName"`
			} `json:"user"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("dana@gmail.com", response.User.Email)
		s.Equal(models.RoleBusinessLeader, response.User.Role)
		s.Equal("Dana Lead", response.User.FullName)
	})

	s.Run("invalid credentials", func() {
		s.directory.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrInvalidCredentials)

		rec := s.call(http.MethodPost, "/api/login", credentials, s.handler.Login)

		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Equal("AUTH_001", s.errorCode(rec))
	})

	s.Run("pending approval", func() {
		s.directory.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrPendingApproval)

		rec := s.call(http.MethodPost, "/api/login", credentials, s.handler.Login)

		s.Equal(http.StatusForbidden, rec.Code)
		s.Equal("AUTH_007", s.errorCode(rec))
	})
}

func (s *UserHandlerSuite) TestListUsers() {
	s.directory.EXPECT().List(gomock.Any(), models.RoleAdmin).
		Return([]*models.User{user("admin@gmail.com", models.RoleAdmin)}, nil)

	rec := s.call(http.MethodGet, "/api/users?role=Admin", nil, s.handler.ListUsers)

	s.Equal(http.StatusOK, rec.Code)
	var users []map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &users))
	s.Len(users, 1)
	s.Equal("admin@gmail.com", users[0]["email"])
}

func (s *UserHandlerSuite) TestUpdateRole() {
	s.Run("updates role", func() {
		s.directory.EXPECT().UpdateRole(gomock.Any(), "dana@gmail.com", models.RoleMarketingAnalyst, "10.0.0.7").
			Return(user("dana@gmail.com", models.RoleMarketingAnalyst), nil)

		rec := s.call(http.MethodPut, "/api/users/dana@gmail.com/role",
			map[string]string{"role": models.RoleMarketingAnalyst}, s.handler.UpdateRole, "dana%40gmail.com")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("role required", func() {
		rec := s.call(http.MethodPut, "/api/users/dana@gmail.com/role",
			map[string]string{"role": " "}, s.handler.UpdateRole, "dana@gmail.com")

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown user", func() {
		s.directory.EXPECT().UpdateRole(gomock.Any(), "ghost@gmail.com", gomock.Any(), gomock.Any()).
			Return(nil, services.ErrUserNotFound)

		rec := s.call(http.MethodPut, "/api/users/ghost@gmail.com/role",
			map[string]string{"role": models.RoleAdmin}, s.handler.UpdateRole, "ghost@gmail.com")

		s.Equal(http.StatusNotFound, rec.Code)
		s.Equal("USER_001", s.errorCode(rec))
	})
}

func (s *UserHandlerSuite) TestUpdateName() {
	s.directory.EXPECT().UpdateName(gomock.Any(), "dana@gmail.com", "Dana Q. Lead", gomock.Any()).
		Return(user("dana@gmail.com", models.RoleAdmin), nil)

	rec := s.call(http.MethodPut, "/api/users/dana@gmail.com/name",
		map[string]string{"fullName": "Dana Q. Lead"}, s.handler.UpdateName, "dana@gmail.com")

	s.Equal(http.StatusOK, rec.Code)
}

func (s *UserHandlerSuite) TestDeleteUser() {
	s.Run("deletes user", func() {
		s.directory.EXPECT().Delete(gomock.Any(), "dana@gmail.com", gomock.Any()).Return(nil)

		rec := s.call(http.MethodDelete, "/api/users/dana@gmail.com", nil, s.handler.DeleteUser, "dana@gmail.com")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("admin protected", func() {
		s.directory.EXPECT().Delete(gomock.Any(), "admin@gmail.com", gomock.Any()).Return(services.ErrProtectedUser)

		rec := s.call(http.MethodDelete, "/api/users/admin@gmail.com", nil, s.handler.DeleteUser, "admin@gmail.com")
		s.Equal(http.StatusForbidden, rec.Code)
		s.Equal("USER_003", s.errorCode(rec))
	})
}

func (s *UserHandlerSuite) TestGetUserCharts() {
	s.Run("resolves through role", func() {
		s.directory.EXPECT().Get(gomock.Any(), "dana@gmail.com").Return(user("dana@gmail.com", models.RoleMarketingAnalyst), nil)
		s.charts.EXPECT().Resolve(gomock.Any(), models.RoleMarketingAnalyst).
			Return([]models.ChartDescriptor{{ChartID: 3, Description: "New customers by zone and year"}}, nil)

		rec := s.call(http.MethodGet, "/api/users/dana@gmail.com/charts", nil, s.handler.GetUserCharts, "dana@gmail.com")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[{"chart_id":3,"description":"New customers by zone and year"}]`, rec.Body.String())
	})

	s.Run("pending user", func() {
		s.directory.EXPECT().Get(gomock.Any(), "new@gmail.com").Return(user("new@gmail.com", models.RolePending), nil)

		rec := s.call(http.MethodGet, "/api/users/new@gmail.com/charts", nil, s.handler.GetUserCharts, "new@gmail.com")

		s.Equal(http.StatusForbidden, rec.Code)
		s.Equal("AUTH_007", s.errorCode(rec))
	})

	s.Run("unknown user", func() {
		s.directory.EXPECT().Get(gomock.Any(), "ghost@gmail.com").Return(nil, services.ErrUserNotFound)

		rec := s.call(http.MethodGet, "/api/users/ghost@gmail.com/charts", nil, s.handler.GetUserCharts, "ghost@gmail.com")

		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *UserHandlerSuite) TestGetUserActivity() {
	s.Run("default limit", func() {
		s.directory.EXPECT().Activity(gomock.Any(), "dana@gmail.com", defaultActivityLimit).
			Return([]*models.AuditLog{{Action: models.AuditActionRoleUpdated, Metadata: models.JSONBMap{"new_role": "Admin"}}}, nil)

		rec := s.call(http.MethodGet, "/api/users/dana@gmail.com/activity", nil, s.handler.GetUserActivity, "dana@gmail.com")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"action":"role_updated"`)
	})

	s.Run("limit out of range", func() {
		rec := s.call(http.MethodGet, "/api/users/dana@gmail.com/activity?limit=500", nil, s.handler.GetUserActivity, "dana@gmail.com")

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("VALIDATION_004", s.errorCode(rec))
	})
}
