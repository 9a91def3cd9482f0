package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CodesTestSuite struct {
	suite.Suite
}

func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{"invalid credentials", AuthInvalidCredentials, "Invalid email or password"},
		{"required field", ValidationRequiredField, "Required field is missing"},
		{"admin protected", UserProtected, "Cannot delete Admin User"},
		{"no analytics data", AnalyticsNoData, "No data found for the requested period"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_UnknownCode() {
	s.Equal("An error occurred", GetErrorMessage(ErrorCode("NOPE_999")))
	s.False(IsValidErrorCode(ErrorCode("NOPE_999")))
}

func (s *CodesTestSuite) TestEveryCodeHasMessageAndStatus() {
	for code := range errorMessages {
		s.True(IsValidErrorCode(code), code)
		status := GetHTTPStatus(code)
		s.GreaterOrEqual(status, 400, code)
		s.Less(status, 600, code)
	}
}

func (s *CodesTestSuite) TestErrorKindStatuses() {
	s.Equal(http.StatusBadRequest, GetHTTPStatus(ValidationRequiredField))
	s.Equal(http.StatusNotFound, GetHTTPStatus(AnalyticsNoData))
	s.Equal(http.StatusInternalServerError, GetHTTPStatus(SystemInternalError))
	s.Equal(http.StatusForbidden, GetHTTPStatus(AuthPendingApproval))
	s.Equal(http.StatusConflict, GetHTTPStatus(UserAlreadyExists))
	s.Equal(http.StatusInternalServerError, GetHTTPStatus(ErrorCode("UNKNOWN")))
}
