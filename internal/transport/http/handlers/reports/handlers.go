package reportshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"schoolhr/internal/domain/auth"
	"schoolhr/internal/domain/reports"
	"schoolhr/internal/platform/jobs"
	"schoolhr/internal/transport/http/api"
	"schoolhr/internal/transport/http/middleware"
)

type Handler struct {
	Service *reports.Service
	Jobs    *jobs.Service
	Perms   middleware.PermissionStore
}

func NewHandler(service *reports.Service, jobsSvc *jobs.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Jobs: jobsSvc, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermReportsRead, h.Perms)).Get("/dashboard", h.handleAdminDashboard)
		r.Get("/me", h.handleFacultyDashboard)
		r.With(middleware.RequirePermission(auth.PermSystemAdmin, h.Perms)).Get("/job-runs", h.handleJobRuns)
	})
}

func (h *Handler) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	dash, err := h.Service.AdminDashboard(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "reports_failed", "failed to build dashboard", requestID)
		return
	}
	api.Success(w, dash, requestID)
}

func (h *Handler) handleFacultyDashboard(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}
	if user.EmployeeID == "" {
		api.Fail(w, http.StatusNotFound, "not_found", "no employee record linked to this account", requestID)
		return
	}

	dash, err := h.Service.FacultyDashboard(r.Context(), user.EmployeeID, user.UserID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "reports_failed", "failed to build dashboard", requestID)
		return
	}
	api.Success(w, dash, requestID)
}

func (h *Handler) handleJobRuns(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	runs, err := h.Jobs.RecentRuns(r.Context(), 50)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "reports_failed", "failed to list job runs", requestID)
		return
	}
	api.Success(w, runs, requestID)
}
