package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roomshub/internal/config"
	"roomshub/internal/http-api/middleware"
	"roomshub/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return signed
}

func setupRouter() (*gin.Engine, *service.Identity) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: testSecret}

	var captured service.Identity
	r := gin.New()
	r.Use(middleware.AuthMiddleware(cfg))
	r.GET("/probe", func(c *gin.Context) {
		ident, _ := middleware.GetIdentity(c)
		captured = ident
		c.Status(http.StatusOK)
	})
	return r, &captured
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("MissingHeader", func(t *testing.T) {
		r, _ := setupRouter()
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/probe", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		r, _ := setupRouter()
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Token abc")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("InvalidSignature", func(t *testing.T) {
		r, _ := setupRouter()
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": 7})
		signed, _ := token.SignedString([]byte("wrong-secret-wrong-secret-wrong!"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("UserToken", func(t *testing.T) {
		r, captured := setupRouter()
		signed := signToken(t, jwt.MapClaims{
			"user_id": 7,
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(7), captured.UserID)
		assert.False(t, captured.Service)
	})

	t.Run("ServiceRoleToken", func(t *testing.T) {
		r, captured := setupRouter()
		signed := signToken(t, jwt.MapClaims{
			"role": "service",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, captured.Service)
	})

	t.Run("TokenWithoutUserRejected", func(t *testing.T) {
		r, _ := setupRouter()
		signed := signToken(t, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		r, _ := setupRouter()
		signed := signToken(t, jwt.MapClaims{
			"user_id": 7,
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
