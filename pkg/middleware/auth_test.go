package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"secure-portal/internal/data/entity"
	"secure-portal/pkg/middleware"
	"secure-portal/pkg/token"
	"secure-portal/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newIssuer(t *testing.T) *token.Issuer {
	t.Helper()
	issuer, err := token.NewIssuer(testSecret, 15*time.Minute, 30*24*time.Hour)
	require.NoError(t, err)
	return issuer
}

func signedTokenFor(t *testing.T, issuer *token.Issuer, role entity.UserRole) (uuid.UUID, string) {
	t.Helper()
	user := &entity.User{
		Base:     entity.Base{ID: uuid.New()},
		Username: "alice01",
		Email:    "a@x.com",
		Role:     role,
	}
	signed, err := issuer.IssueAccess(user)
	require.NoError(t, err)
	return user.ID, signed
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	issuer := newIssuer(t)

	handler := middleware.AuthJWT(issuer, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/payments", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing authorization token")
}

func TestAuthJWT_MalformedHeader(t *testing.T) {
	issuer := newIssuer(t)

	handler := middleware.AuthJWT(issuer, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	for _, header := range []string{"Token abc", "Bearer", "Bearer a b"} {
		req := httptest.NewRequest(http.MethodGet, "/api/payments", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		assert.Contains(t, rec.Body.String(), "Invalid token format")
	}
}

func TestAuthJWT_InvalidToken(t *testing.T) {
	issuer := newIssuer(t)

	handler := middleware.AuthJWT(issuer, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/payments", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	expired, err := token.NewIssuer(testSecret, -1*time.Minute, 30*24*time.Hour)
	require.NoError(t, err)
	_, signed := signedTokenFor(t, expired, entity.RoleCustomer)

	issuer := newIssuer(t)
	handler := middleware.AuthJWT(issuer, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/payments", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_AttachesIdentity(t *testing.T) {
	issuer := newIssuer(t)
	userID, signed := signedTokenFor(t, issuer, entity.RoleCustomer)

	handler := middleware.AuthJWT(issuer, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, ok := utils.GetUserIDFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, userID, gotID)

		role, ok := utils.GetRoleFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, string(entity.RoleCustomer), role)

		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/payments", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireEmployee_ForbidsCustomer(t *testing.T) {
	issuer := newIssuer(t)
	_, signed := signedTokenFor(t, issuer, entity.RoleCustomer)

	chain := middleware.AuthJWT(issuer, zap.NewNop())(
		middleware.RequireEmployee(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be reached")
		})),
	)

	req := httptest.NewRequest(http.MethodPatch, "/api/payments/x/verify", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()

	chain.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Employee access required")
}

func TestRequireEmployee_AllowsEmployee(t *testing.T) {
	issuer := newIssuer(t)
	_, signed := signedTokenFor(t, issuer, entity.RoleEmployee)

	chain := middleware.AuthJWT(issuer, zap.NewNop())(
		middleware.RequireEmployee(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/payments", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()

	chain.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireEmployee_WithoutAuthentication(t *testing.T) {
	handler := middleware.RequireEmployee(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/payments", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
