package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"schoolhr/internal/domain/auth"
)

const testSecret = "test-secret"

func issueToken(t *testing.T, role string) string {
	t.Helper()
	token, err := auth.GenerateToken(testSecret, auth.Claims{UserID: "user-1", EmployeeID: "emp-1", RoleName: role}, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

func TestAuthAttachesUser(t *testing.T) {
	var got auth.UserContext
	var ok bool
	handler := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = GetUser(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, auth.RoleHR))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !ok {
		t.Fatalf("expected user in context")
	}
	if got.UserID != "user-1" || got.RoleName != auth.RoleHR {
		t.Fatalf("unexpected user context: %+v", got)
	}
}

func TestAuthInvalidTokenStaysAnonymous(t *testing.T) {
	var ok bool
	handler := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok = GetUser(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if ok {
		t.Fatalf("invalid token must not attach a user")
	}
}

type allowAllStore struct{ allowed bool }

func (s allowAllStore) HasPermission(context.Context, string, string) (bool, error) {
	return s.allowed, nil
}

func TestRequirePermissionUnauthenticated(t *testing.T) {
	handler := RequirePermission(auth.PermDirectoryRead, allowAllStore{allowed: true})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequirePermissionForbidden(t *testing.T) {
	handler := Auth(testSecret)(
		RequirePermission(auth.PermSystemAdmin, allowAllStore{allowed: false})(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, auth.RoleFaculty))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequirePermissionAllows(t *testing.T) {
	called := false
	handler := Auth(testSecret)(
		RequirePermission(auth.PermDirectoryRead, allowAllStore{allowed: true})(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, auth.RoleHR))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Fatalf("expected handler to run")
	}
}
