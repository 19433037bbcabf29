package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem/learnhub/internal/app/models/dto"
	"github.com/kerem/learnhub/internal/pkg/apperrors"
)

func runErrorHandler(t *testing.T, err error) (*httptest.ResponseRecorder, *dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/test", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, &body
}

func TestHandleAPIErrorNotFoundSentinels(t *testing.T) {
	tests := []struct {
		err     error
		message string
	}{
		{apperrors.ErrUserNotFound, "User not found"},
		{apperrors.ErrInstructorNotFound, "Instructor not found"},
		{apperrors.ErrCourseNotFound, "Course not found"},
		{apperrors.ErrBlogNotFound, "Blog not found"},
		{apperrors.ErrSubscriptionNotFound, "Subscription not found"},
		{apperrors.ErrSubscriptionTypeNotFound, "Subscription type not found"},
	}

	for _, tc := range tests {
		t.Run(tc.message, func(t *testing.T) {
			w, body := runErrorHandler(t, tc.err)
			assert.Equal(t, http.StatusNotFound, w.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, dto.ErrorCodeResourceNotFound, body.Error.Code)
			assert.Equal(t, tc.message, body.Error.Message)
		})
	}
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	wrapped := fmt.Errorf("fetching course: %w", apperrors.ErrCourseNotFound)
	w, body := runErrorHandler(t, wrapped)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Course not found", body.Error.Message)
}

func TestHandleAPIErrorAuthFailures(t *testing.T) {
	w, body := runErrorHandler(t, apperrors.ErrInvalidCredentials)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeInvalidCredentials, body.Error.Code)

	w, body = runErrorHandler(t, apperrors.ErrTokenExpired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeExpiredToken, body.Error.Code)

	w, body = runErrorHandler(t, apperrors.ErrTokenRevoked)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, body = runErrorHandler(t, apperrors.ErrAccountDisabled)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, dto.ErrorCodeAccountDisabled, body.Error.Code)

	w, body = runErrorHandler(t, apperrors.ErrPermissionDenied)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, dto.ErrorCodeForbidden, body.Error.Code)
}

func TestHandleAPIErrorConflicts(t *testing.T) {
	w, body := runErrorHandler(t, apperrors.ErrEmailAlreadyExists)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, dto.ErrorCodeResourceAlreadyExists, body.Error.Code)

	w, _ = runErrorHandler(t, apperrors.ErrSubscriptionTypeNameAlreadyExists)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleAPIErrorUnknownIsInternal(t *testing.T) {
	w, body := runErrorHandler(t, errors.New("connection reset"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, dto.ErrorCodeInternalServer, body.Error.Code)
	// No internal detail leaks to the client.
	assert.Equal(t, "Internal server error", body.Error.Message)
}

func TestHandleValidationErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ve := dto.NewValidationErrors()
	ve.Add("status", "the selected status is invalid")
	ve.Add("sort_by", "the selected sort_by is invalid")

	HandleValidationErrors(c, ve)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body map[string]map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"the selected status is invalid"}, body["errors"]["status"])
	assert.Contains(t, body["errors"], "sort_by")
}
