package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karan/societyhub/internal/app/models/dto"
	"github.com/karan/societyhub/internal/pkg/apperrors"
)

func handleError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	HandleAPIError(c, err)
	return w
}

func TestHandleAPIErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"validation failure", apperrors.NewValidationError("amount must be positive"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"invalid token", apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"unauthenticated", apperrors.ErrUnauthenticated, http.StatusUnauthorized, dto.ErrorCodeUnauthorized},
		{"permission denied", apperrors.NewForbiddenError("administrator access required"), http.StatusForbidden, dto.ErrorCodeForbidden},
		{"resource not found", apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"resident not found", apperrors.ErrResidentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"bill not found", apperrors.ErrBillNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"resident has records", apperrors.ErrResidentHasRecords, http.StatusConflict, dto.ErrorCodeResourceConflict},
		{"conflict", apperrors.NewConflictError("referenced resident does not exist"), http.StatusConflict, dto.ErrorCodeResourceConflict},
		{"data access failure", apperrors.NewDataAccessError("select bills", errors.New("conn refused")), http.StatusInternalServerError, dto.ErrorCodeDatabaseError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := handleError(tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleAPIErrorKeepsUserSafeMessages(t *testing.T) {
	w := handleError(apperrors.NewValidationError("due date must be formatted YYYY-MM-DD"))

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "due date must be formatted YYYY-MM-DD", resp.Error.Message)
}

func TestHandleAPIErrorHidesStorageDetail(t *testing.T) {
	cause := errors.New(`connect: dial tcp 10.0.0.4:5432: connection refused`)
	w := handleError(apperrors.NewDataAccessError("insert payment", cause))

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotContains(t, resp.Error.Message, "10.0.0.4")
	assert.NotContains(t, w.Body.String(), "connection refused")
}
