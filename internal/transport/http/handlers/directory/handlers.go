package directoryhandler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"schoolhr/internal/domain/audit"
	"schoolhr/internal/domain/auth"
	"schoolhr/internal/domain/directory"
	"schoolhr/internal/domain/leave"
	"schoolhr/internal/domain/validation"
	"schoolhr/internal/transport/http/api"
	"schoolhr/internal/transport/http/middleware"
	"schoolhr/internal/transport/http/shared"
)

type Handler struct {
	Store    *directory.Store
	Leave    *leave.Store
	Perms    middleware.PermissionStore
	Audit    *audit.Service
	PageSize int
}

func NewHandler(store *directory.Store, leaveStore *leave.Store, perms middleware.PermissionStore, auditSvc *audit.Service, pageSize int) *Handler {
	if pageSize <= 0 {
		pageSize = directory.DefaultPageSize
	}
	return &Handler{Store: store, Leave: leaveStore, Perms: perms, Audit: auditSvc, PageSize: pageSize}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/directory", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermDirectoryRead, h.Perms)).Get("/", h.handleSearch)
		r.With(middleware.RequirePermission(auth.PermDirectoryExport, h.Perms)).Get("/export", h.handleExport)
		r.With(middleware.RequirePermission(auth.PermDirectoryWrite, h.Perms)).Put("/", h.handleStatusChange)
		r.With(middleware.RequirePermission(auth.PermDirectoryWrite, h.Perms)).Put("/status", h.handleStatusChange)
	})
	r.Route("/employees", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermDirectoryWrite, h.Perms)).Post("/", h.handleCreate)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermDirectoryRead, h.Perms)).Get("/", h.handleGet)
			r.With(middleware.RequirePermission(auth.PermDirectoryWrite, h.Perms)).Put("/", h.handleUpdate)
		})
	})
}

// handleSearch is the directory list: filter, paginate, and shape the
// records for the caller's role.
func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	criteria := criteriaFromQuery(r)
	page := shared.ParsePage(r)
	pageSize := h.pageSizeFromQuery(r)

	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "directory_list_failed", "failed to list directory", middleware.GetRequestID(r.Context()))
		return
	}
	options, err := h.Store.FilterOptions(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "directory_list_failed", "failed to load filter options", middleware.GetRequestID(r.Context()))
		return
	}

	now := time.Now()
	filtered := make([]directory.Employee, 0, len(employees))
	for _, emp := range employees {
		if criteria.Matches(emp, now) {
			filtered = append(filtered, emp)
		}
	}

	total := len(filtered)
	window, page, totalPages := directory.Paginate(filtered, page, pageSize)

	records := make([]map[string]any, 0, len(window))
	for i := range window {
		emp := window[i]
		isSelf := emp.UserID == user.UserID
		directory.FilterEmployeeFields(&emp, user.RoleName, isSelf)
		record := employeeRecord(emp, now)
		records = append(records, record)
	}

	api.Success(w, map[string]any{
		"records":       records,
		"page":          page,
		"totalPages":    totalPages,
		"total":         total,
		"filterOptions": options,
		"tenureBuckets": directory.TenureBuckets,
	}, middleware.GetRequestID(r.Context()))
}

// maxPageSize caps a caller-supplied limit.
const maxPageSize = 100

func (h *Handler) pageSizeFromQuery(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return h.PageSize
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return h.PageSize
	}
	if v > maxPageSize {
		return maxPageSize
	}
	return v
}

// employeeRecord augments the employee with its rendered tenure string.
func employeeRecord(emp directory.Employee, now time.Time) map[string]any {
	raw, err := json.Marshal(emp)
	if err != nil {
		return map[string]any{"id": emp.ID}
	}
	record := map[string]any{}
	if err := json.Unmarshal(raw, &record); err != nil {
		return map[string]any{"id": emp.ID}
	}
	record["tenure"] = directory.Tenure(emp.HireDate, now)
	return record
}

func criteriaFromQuery(r *http.Request) directory.Criteria {
	q := r.URL.Query()
	return directory.Criteria{
		Name:         strings.TrimSpace(q.Get("name")),
		Department:   strings.TrimSpace(q.Get("department")),
		Position:     strings.TrimSpace(q.Get("position")),
		TenureBucket: strings.TrimSpace(q.Get("tenure")),
	}
}

// handleExport streams the filtered directory as a CSV attachment.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	criteria := criteriaFromQuery(r)

	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "directory_export_failed", "failed to export directory", middleware.GetRequestID(r.Context()))
		return
	}

	now := time.Now()
	filtered := make([]directory.Employee, 0, len(employees))
	for _, emp := range employees {
		if criteria.Matches(emp, now) {
			filtered = append(filtered, emp)
		}
	}

	filename := directory.ExportFilename(now)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := directory.WriteCSV(w, filtered); err != nil {
		slog.Warn("directory csv write failed", "err", err)
	}
}

// handleStatusChange applies an account or employment-status action to
// one employee and records the change in the audit trail.
func (h *Handler) handleStatusChange(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())

	var change directory.StatusChange
	if err := json.NewDecoder(r.Body).Decode(&change); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", change.EmployeeID, "employeeId is required")
	switch change.Action {
	case directory.ActionActivate, directory.ActionDeactivate:
	case directory.ActionSetStatus:
		valid := false
		for _, status := range directory.EmploymentStatuses {
			if change.NewStatus == status {
				valid = true
				break
			}
		}
		if !valid {
			v.Add("newStatus", "must be one of Regular, Probationary, Resigned, Retired")
		}
	default:
		v.Add("action", "must be one of activate, deactivate, set-status")
	}
	if v.Reject(w, requestID) {
		return
	}

	before, err := h.Store.GetEmployee(r.Context(), change.EmployeeID)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
		return
	}

	switch change.Action {
	case directory.ActionActivate:
		err = h.Store.SetAccountActive(r.Context(), change.EmployeeID, true)
	case directory.ActionDeactivate:
		err = h.Store.SetAccountActive(r.Context(), change.EmployeeID, false)
	case directory.ActionSetStatus:
		err = h.Store.SetEmploymentStatus(r.Context(), change.EmployeeID, change.NewStatus)
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "status_change_failed", "failed to apply status change", requestID)
		return
	}

	after, err := h.Store.GetEmployee(r.Context(), change.EmployeeID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "status_change_failed", "failed to reload employee", requestID)
		return
	}

	if h.Audit != nil {
		if auditErr := h.Audit.Record(r.Context(), user.UserID, "directory."+change.Action, "employee", change.EmployeeID,
			requestID, shared.ClientIP(r), before, after); auditErr != nil {
			slog.Warn("audit record failed", "err", auditErr)
		}
	}

	api.Success(w, after, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var emp directory.Employee
	if err := json.NewDecoder(r.Body).Decode(&emp); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", requestID)
		return
	}
	sanitizeEmployee(&emp)

	if issues := directory.ValidateEmployee(emp, time.Now()); len(issues) > 0 {
		shared.FailValidation(w, requestID, toValidationIssues(issues))
		return
	}

	id, err := h.Store.CreateEmployee(r.Context(), emp)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee", requestID)
		return
	}
	emp.ID = id

	if h.Leave != nil {
		if err := h.Leave.InitBalances(r.Context(), id); err != nil {
			slog.Warn("leave balance init failed", "employeeID", id, "err", err)
		}
	}

	api.Created(w, emp, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())

	employeeID := chi.URLParam(r, "employeeID")
	emp, err := h.Store.GetEmployee(r.Context(), employeeID)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
		return
	}

	isSelf := emp.UserID == user.UserID
	directory.FilterEmployeeFields(emp, user.RoleName, isSelf)
	api.Success(w, employeeRecord(*emp, time.Now()), requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	var emp directory.Employee
	if err := json.NewDecoder(r.Body).Decode(&emp); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", requestID)
		return
	}
	sanitizeEmployee(&emp)

	if issues := directory.ValidateEmployee(emp, time.Now()); len(issues) > 0 {
		shared.FailValidation(w, requestID, toValidationIssues(issues))
		return
	}

	if err := h.Store.UpdateEmployee(r.Context(), employeeID, emp); err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
		return
	}
	emp.ID = employeeID
	api.Success(w, emp, requestID)
}

func sanitizeEmployee(emp *directory.Employee) {
	emp.FirstName = validation.CollapseWhitespace(validation.StripUnsafe(emp.FirstName))
	emp.MiddleName = validation.CollapseWhitespace(validation.StripUnsafe(emp.MiddleName))
	emp.LastName = validation.CollapseWhitespace(validation.StripUnsafe(emp.LastName))
	emp.Suffix = validation.CollapseWhitespace(validation.StripUnsafe(emp.Suffix))
	emp.Department = validation.CollapseWhitespace(validation.StripUnsafe(emp.Department))
	emp.Position = validation.CollapseWhitespace(validation.StripUnsafe(emp.Position))
	emp.MessengerName = validation.CollapseWhitespace(validation.StripUnsafe(emp.MessengerName))
	emp.Address = validation.CollapseWhitespace(validation.StripUnsafe(emp.Address))
	emp.Phone = validation.NormalizePhone(emp.Phone)
}

func toValidationIssues(issues []directory.Issue) []shared.ValidationIssue {
	out := make([]shared.ValidationIssue, 0, len(issues))
	for _, issue := range issues {
		out = append(out, shared.ValidationIssue{Field: issue.Field, Reason: issue.Reason})
	}
	return out
}
