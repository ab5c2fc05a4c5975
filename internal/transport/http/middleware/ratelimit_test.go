package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimitBlocksAfterLimit(t *testing.T) {
	handler := RateLimit(2, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}
}

func TestRateLimitSeparateClients(t *testing.T) {
	handler := RateLimit(1, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	second := httptest.NewRequest(http.MethodGet, "/", nil)
	second.RemoteAddr = "10.0.0.2:1234"

	rec1 := httptest.NewRecorder()
	handler.ServeHTTP(rec1, first)
	rec2 := httptest.NewRecorder()
	handler.ServeHTTP(rec2, second)

	if rec1.Code != http.StatusOK || rec2.Code != http.StatusOK {
		t.Fatalf("distinct clients should not share a bucket: %d, %d", rec1.Code, rec2.Code)
	}
}

func TestSensitiveRateScopeRouting(t *testing.T) {
	login := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	if got := sensitiveRateScope(login); got != sensitiveScopeAuth {
		t.Fatalf("login: got %q", got)
	}
	approve := httptest.NewRequest(http.MethodPost, "/api/v1/leave/requests/abc/approve", nil)
	if got := sensitiveRateScope(approve); got != sensitiveScopeActor {
		t.Fatalf("approve: got %q", got)
	}
	status := httptest.NewRequest(http.MethodPut, "/api/v1/directory/status", nil)
	if got := sensitiveRateScope(status); got != sensitiveScopeActor {
		t.Fatalf("status: got %q", got)
	}
	statusRoot := httptest.NewRequest(http.MethodPut, "/api/v1/directory", nil)
	if got := sensitiveRateScope(statusRoot); got != sensitiveScopeActor {
		t.Fatalf("status via collection path: got %q", got)
	}
	read := httptest.NewRequest(http.MethodGet, "/api/v1/directory", nil)
	if got := sensitiveRateScope(read); got != sensitiveScopeNone {
		t.Fatalf("read: got %q", got)
	}
}
