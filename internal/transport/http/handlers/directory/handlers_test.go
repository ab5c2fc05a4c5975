package directoryhandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"

	"schoolhr/internal/domain/auth"
	"schoolhr/internal/domain/directory"
	"schoolhr/internal/transport/http/middleware"
)

const testSecret = "test-secret"

type allowAllStore struct{}

func (allowAllStore) HasPermission(context.Context, string, string) (bool, error) {
	return true, nil
}

var employeeRowColumns = []string{
	"id", "user_id", "first_name", "middle_name", "last_name", "suffix",
	"department", "position", "email", "phone", "messenger_name", "fb_link",
	"address", "date_of_birth", "sss_number", "tin_number", "philhealth_id",
	"status", "hire_date", "separation_date", "account_active", "created_at", "updated_at",
}

func employeeRow(id, first, last string, active bool) []any {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	hire := time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)
	return []any{
		id, "", first, "", last, "",
		"Mathematics", "Teacher I", first + "@school.edu.ph", "09171234567", "", "",
		"", (*time.Time)(nil), "", "", "",
		directory.StatusRegular, &hire, (*time.Time)(nil), active, now, now,
	}
}

func newTestRouter(t *testing.T) (http.Handler, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	t.Cleanup(mock.Close)

	h := NewHandler(directory.NewStore(mock), nil, allowAllStore{}, nil, 10)
	r := chi.NewRouter()
	r.Use(middleware.Auth(testSecret))
	r.Route("/api/v1", func(r chi.Router) {
		h.RegisterRoutes(r)
	})
	return r, mock
}

func authedRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	token, err := auth.GenerateToken(testSecret, auth.Claims{UserID: "user-1", EmployeeID: "emp-1", RoleName: auth.RoleHR}, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestStatusChangeRouteAtCollectionRoot(t *testing.T) {
	router, mock := newTestRouter(t)

	before := pgxmock.NewRows(employeeRowColumns).AddRow(employeeRow("e1", "Ana", "Reyes", true)...)
	after := pgxmock.NewRows(employeeRowColumns).AddRow(employeeRow("e1", "Ana", "Reyes", false)...)

	mock.ExpectQuery("SELECT(.+)FROM employees(.+)WHERE id").WithArgs("e1").WillReturnRows(before)
	mock.ExpectExec("UPDATE employees(.+)account_active").WithArgs(false, "e1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery("SELECT(.+)FROM employees(.+)WHERE id").WithArgs("e1").WillReturnRows(after)

	req := authedRequest(t, http.MethodPut, "/api/v1/directory", `{"employeeId":"e1","action":"deactivate"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStatusChangeRouteRequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/directory", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// 401 means the route resolved and the permission gate fired; a 404
	// or 405 here would mean the action is not reachable at /directory.
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSearchHonorsLimitParam(t *testing.T) {
	router, mock := newTestRouter(t)

	rows := pgxmock.NewRows(employeeRowColumns)
	for _, name := range []string{"Ana", "Ben", "Cara", "Dan", "Ela", "Fe"} {
		rows.AddRow(employeeRow("e-"+name, name, "Reyes", true)...)
	}
	mock.ExpectQuery("SELECT(.+)FROM employees(.+)ORDER BY last_name, first_name").WillReturnRows(rows)
	mock.ExpectQuery("SELECT DISTINCT department").
		WillReturnRows(pgxmock.NewRows([]string{"department"}).AddRow("Mathematics"))
	mock.ExpectQuery("SELECT DISTINCT position").
		WillReturnRows(pgxmock.NewRows([]string{"position"}).AddRow("Teacher I"))

	req := authedRequest(t, http.MethodGet, "/api/v1/directory?limit=2", "")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data struct {
			Records    []map[string]any `json:"records"`
			Page       int              `json:"page"`
			TotalPages int              `json:"totalPages"`
			Total      int              `json:"total"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Records) != 2 {
		t.Fatalf("expected 2 records per page, got %d", len(envelope.Data.Records))
	}
	if envelope.Data.Total != 6 || envelope.Data.TotalPages != 3 {
		t.Fatalf("expected total 6 across 3 pages, got total %d pages %d", envelope.Data.Total, envelope.Data.TotalPages)
	}
}

func TestPageSizeFromQuery(t *testing.T) {
	h := &Handler{PageSize: 10}

	cases := []struct {
		query string
		want  int
	}{
		{"", 10},
		{"limit=25", 25},
		{"limit=0", 10},
		{"limit=abc", 10},
		{"limit=500", maxPageSize},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/directory?"+tc.query, nil)
		if got := h.pageSizeFromQuery(req); got != tc.want {
			t.Fatalf("query %q: expected %d, got %d", tc.query, tc.want, got)
		}
	}
}
