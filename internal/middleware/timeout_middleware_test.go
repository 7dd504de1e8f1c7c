package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karan/societyhub/internal/pkg/apperrors"
)

func TestRequestTimeoutInstallsDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestTimeout(5 * time.Second))

	var deadline time.Time
	var hasDeadline bool
	router.GET("/bills", func(c *gin.Context) {
		deadline, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bills", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, hasDeadline, "request context should carry a deadline")
	assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)
}

func TestRequestTimeoutDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestTimeout(0))

	var hasDeadline bool
	router.GET("/bills", func(c *gin.Context) {
		_, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bills", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, hasDeadline)
}

// A handler blocked on the request context, the way a pool acquire blocks when
// every connection is busy, must come back as a storage error once the bound
// expires rather than hanging.
func TestRequestTimeoutExpiryFailsAsStorageError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestTimeout(10 * time.Millisecond))
	router.GET("/bills", func(c *gin.Context) {
		ctx := c.Request.Context()
		select {
		case <-ctx.Done():
			HandleAPIError(c, apperrors.NewDataAccessError("bills.list", ctx.Err()))
		case <-time.After(5 * time.Second):
			c.Status(http.StatusOK)
		}
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bills", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SRV_002")
	assert.NotContains(t, w.Body.String(), "context deadline exceeded")
}
