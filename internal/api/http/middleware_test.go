package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"betak-backend/internal/domain"
	"betak-backend/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestRateLimitMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimitMiddleware(rate.Limit(1), 2)(next)

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	t.Run("Allows Within Burst", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do("10.0.0.1:1234"))
		assert.Equal(t, http.StatusOK, do("10.0.0.1:1234"))
	})

	t.Run("Rejects Over Burst", func(t *testing.T) {
		assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:1234"))
	})

	t.Run("Clients Are Limited Independently", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do("10.0.0.2:1234"))
	})
}

func TestAuthMiddleware(t *testing.T) {
	tokens := security.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, int32(1), claims.UserID)
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(tokens)(next)

	t.Run("Valid Token", func(t *testing.T) {
		token, err := tokens.GenerateAccessToken(&domain.User{ID: 1, Role: domain.UserRoleTenant})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/rental/my-rentals", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Missing Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/rental/my-rentals", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Not A Bearer Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/rental/my-rentals", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/rental/my-rentals", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireAdmin(next)

	t.Run("Admin Allowed", func(t *testing.T) {
		req := withClaims(httptest.NewRequest(http.MethodGet, "/api/rental", nil), 1, domain.UserRoleAdmin)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Tenant Forbidden", func(t *testing.T) {
		req := withClaims(httptest.NewRequest(http.MethodGet, "/api/rental", nil), 1, domain.UserRoleTenant)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("No Claims", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/rental", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
