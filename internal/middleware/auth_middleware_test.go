package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karan/societyhub/internal/app/models"
	"github.com/karan/societyhub/internal/app/models/dto"
	"github.com/karan/societyhub/internal/pkg/auth"
)

func newTestRouter(jwtService *auth.JWTService, adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	m := NewAuthMiddleware(jwtService)

	handlers := []gin.HandlerFunc{m.RequireAuth()}
	if adminOnly {
		handlers = append(handlers, m.RequireAdmin())
	}
	handlers = append(handlers, func(c *gin.Context) {
		identity, _ := IdentityFromContext(c)
		c.JSON(http.StatusOK, dto.NewSuccessResponse(identity))
	})

	router.GET("/protected", handlers...)
	return router
}

func issueToken(t *testing.T, svc *auth.JWTService, identity models.Identity) string {
	t.Helper()
	token, _, err := svc.GenerateToken(identity)
	require.NoError(t, err)
	return token
}

func decodeError(t *testing.T, body []byte) *dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	require.NotNil(t, resp.Error)
	return &resp
}

func TestRequireAuth(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "middleware-test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "societyhub.test",
	})
	router := newTestRouter(jwtService, false)

	t.Run("missing authorization header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		resp := decodeError(t, w.Body.Bytes())
		assert.Equal(t, dto.ErrorCodeUnauthorized, resp.Error.Code)
	})

	t.Run("malformed authorization header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("tampered token", func(t *testing.T) {
		token := issueToken(t, jwtService, models.Identity{SubjectID: 5, Role: models.RoleResident})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token+"x")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		resp := decodeError(t, w.Body.Bytes())
		assert.Equal(t, dto.ErrorCodeInvalidToken, resp.Error.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expiredService := auth.NewJWTService(auth.JWTConfig{
			SecretKey:      "middleware-test-secret",
			AccessTokenExp: -time.Minute,
			TokenIssuer:    "societyhub.test",
		})
		token := issueToken(t, expiredService, models.Identity{SubjectID: 5, Role: models.RoleResident})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		resp := decodeError(t, w.Body.Bytes())
		assert.Equal(t, dto.ErrorCodeExpiredToken, resp.Error.Code)
	})

	t.Run("valid token reaches handler with identity", func(t *testing.T) {
		identity := models.Identity{SubjectID: 9, Name: "Meera", Email: "meera@example.com", Role: models.RoleResident}
		token := issueToken(t, jwtService, identity)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool            `json:"success"`
			Data    models.Identity `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, identity, resp.Data)
	})
}

func TestRequireAdmin(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "middleware-test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "societyhub.test",
	})
	router := newTestRouter(jwtService, true)

	t.Run("resident is rejected", func(t *testing.T) {
		token := issueToken(t, jwtService, models.Identity{SubjectID: 5, Role: models.RoleResident})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		resp := decodeError(t, w.Body.Bytes())
		assert.Equal(t, dto.ErrorCodeForbidden, resp.Error.Code)
	})

	t.Run("admin passes through", func(t *testing.T) {
		token := issueToken(t, jwtService, models.Identity{SubjectID: 1, Role: models.RoleAdmin})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
