package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabeebak/clinic-scheduler/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTTTLHours: 1}
}

func signTestToken(t *testing.T, secret string, id uint, role string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  float64(id),
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func protectedRouter(cfg *config.Config, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(cfg, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":   c.GetUint(ContextActorID),
			"role": c.GetString(ContextActorRole),
		})
	})
	return r
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	cfg := testConfig()
	r := protectedRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, cfg.JWTSecret, 7, RoleDoctor, time.Hour))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":7`)
	assert.Contains(t, w.Body.String(), `"role":"Doctor"`)
}

func TestAuthMiddlewareRejects(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signTestToken(t, "other-secret", 7, RoleDoctor, time.Hour), http.StatusUnauthorized},
		{"expired", "Bearer " + signTestToken(t, cfg.JWTSecret, 7, RoleDoctor, -time.Hour), http.StatusUnauthorized},
	}

	r := protectedRouter(cfg)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestAuthMiddlewareRoleGate(t *testing.T) {
	cfg := testConfig()
	r := protectedRouter(cfg, RoleDoctor)

	// Patient token on a doctor-only route: authenticated but forbidden.
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, cfg.JWTSecret, 3, RolePatient, time.Hour))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, cfg.JWTSecret, 3, RoleDoctor, time.Hour))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
