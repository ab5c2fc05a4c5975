package leavehandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"schoolhr/internal/domain/auth"
	"schoolhr/internal/domain/leave"
	"schoolhr/internal/domain/notifications"
	"schoolhr/internal/transport/http/api"
	"schoolhr/internal/transport/http/middleware"
	"schoolhr/internal/transport/http/shared"
)

type Handler struct {
	Store    *leave.Store
	Perms    middleware.PermissionStore
	Notifier *notifications.Service
}

func NewHandler(store *leave.Store, perms middleware.PermissionStore, notifier *notifications.Service) *Handler {
	return &Handler{Store: store, Perms: perms, Notifier: notifier}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermLeaveRead, h.Perms)).Get("/types", h.handleListTypes)
		r.With(middleware.RequirePermission(auth.PermLeaveRead, h.Perms)).Get("/balance", h.handleBalance)
		r.Route("/requests", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermLeaveRead, h.Perms)).Get("/", h.handleListRequests)
			r.With(middleware.RequirePermission(auth.PermLeaveWrite, h.Perms)).Post("/", h.handleCreateRequest)
			r.With(middleware.RequirePermission(auth.PermLeaveApprove, h.Perms)).Post("/{requestID}/approve", h.handleApprove)
			r.With(middleware.RequirePermission(auth.PermLeaveApprove, h.Perms)).Post("/{requestID}/reject", h.handleReject)
			r.With(middleware.RequirePermission(auth.PermLeaveWrite, h.Perms)).Post("/{requestID}/cancel", h.handleCancel)
		})
	})
}

func (h *Handler) handleListTypes(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	types, err := h.Store.ListTypes(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_types_failed", "failed to list leave types", requestID)
		return
	}
	api.Success(w, types, requestID)
}

func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())

	employeeID := r.URL.Query().Get("employeeId")
	if employeeID == "" {
		employeeID = user.EmployeeID
	}
	if employeeID != user.EmployeeID && user.RoleName == auth.RoleFaculty {
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed", requestID)
		return
	}

	leaveTypeID := r.URL.Query().Get("leaveTypeId")
	if leaveTypeID == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "leaveTypeId query parameter is required", requestID)
		return
	}

	balance, err := h.Store.Balance(r.Context(), employeeID, leaveTypeID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_balance_failed", "failed to load balance", requestID)
		return
	}
	api.Success(w, leave.Balance{EmployeeID: employeeID, LeaveTypeID: leaveTypeID, Balance: balance}, requestID)
}

func (h *Handler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())

	employeeID := r.URL.Query().Get("employeeId")
	status := r.URL.Query().Get("status")
	if user.RoleName == auth.RoleFaculty {
		employeeID = user.EmployeeID
	}

	requests, err := h.Store.ListRequests(r.Context(), employeeID, status)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_list_failed", "failed to list leave requests", requestID)
		return
	}
	api.Success(w, requests, requestID)
}

type createRequestPayload struct {
	LeaveTypeID string `json:"leaveTypeId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	StartHalf   bool   `json:"startHalf"`
	EndHalf     bool   `json:"endHalf"`
	Reason      string `json:"reason"`
}

func (h *Handler) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())

	if user.EmployeeID == "" {
		api.Fail(w, http.StatusBadRequest, "no_employee", "account is not linked to an employee record", requestID)
		return
	}

	var payload createRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("leaveTypeId", payload.LeaveTypeID, "leaveTypeId is required")
	start, startOK := v.Date("startDate", payload.StartDate)
	end, endOK := v.Date("endDate", payload.EndDate)
	if startOK && endOK {
		v.DateOrder("startDate", start, "endDate", end)
	}
	if v.Reject(w, requestID) {
		return
	}

	days, err := leave.CalculateRequestDays(start, end, payload.StartHalf, payload.EndHalf)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_range", err.Error(), requestID)
		return
	}

	balance, err := h.Store.Balance(r.Context(), user.EmployeeID, payload.LeaveTypeID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_balance_failed", "failed to check balance", requestID)
		return
	}
	if balance < days {
		api.Fail(w, http.StatusBadRequest, "insufficient_balance",
			fmt.Sprintf("requested %.1f days but only %.1f available", days, balance), requestID)
		return
	}

	req := leave.Request{
		EmployeeID:  user.EmployeeID,
		LeaveTypeID: payload.LeaveTypeID,
		StartDate:   start,
		EndDate:     end,
		StartHalf:   payload.StartHalf,
		EndHalf:     payload.EndHalf,
		Days:        days,
		Reason:      payload.Reason,
	}
	id, err := h.Store.CreateRequest(r.Context(), req)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_create_failed", "failed to create leave request", requestID)
		return
	}
	req.ID = id
	req.Status = leave.StatusPending

	h.notify(r, user.UserID, notifications.TypeLeaveSubmitted, "Leave request submitted",
		fmt.Sprintf("Your leave request for %.1f day(s) was submitted.", days))

	api.Created(w, req, requestID)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, leave.StatusApproved, notifications.TypeLeaveApproved, "Leave request approved")
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, leave.StatusRejected, notifications.TypeLeaveRejected, "Leave request rejected")
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, status, noticeType, noticeTitle string) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())
	leaveRequestID := chi.URLParam(r, "requestID")

	req, err := h.Store.GetRequest(r.Context(), leaveRequestID)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "leave request not found", requestID)
		return
	}
	if !leave.CanTransition(req.Status, status) {
		api.Fail(w, http.StatusConflict, "invalid_transition",
			fmt.Sprintf("cannot move request from %s to %s", req.Status, status), requestID)
		return
	}

	if err := h.Store.DecideRequest(r.Context(), leaveRequestID, status, user.UserID); err != nil {
		if errors.Is(err, leave.ErrNotFound) {
			api.Fail(w, http.StatusConflict, "invalid_transition", "request already decided", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "leave_decide_failed", "failed to decide leave request", requestID)
		return
	}

	h.notifyEmployee(r, req.EmployeeID, noticeType, noticeTitle,
		fmt.Sprintf("Your leave request from %s to %s was %s.",
			req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"), status))

	api.Success(w, map[string]string{"id": leaveRequestID, "status": status}, requestID)
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())
	leaveRequestID := chi.URLParam(r, "requestID")

	req, err := h.Store.GetRequest(r.Context(), leaveRequestID)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "leave request not found", requestID)
		return
	}
	if user.RoleName == auth.RoleFaculty && req.EmployeeID != user.EmployeeID {
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed", requestID)
		return
	}
	if !leave.CanTransition(req.Status, leave.StatusCancelled) {
		api.Fail(w, http.StatusConflict, "invalid_transition", "only pending requests can be cancelled", requestID)
		return
	}

	if err := h.Store.DecideRequest(r.Context(), leaveRequestID, leave.StatusCancelled, user.UserID); err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_cancel_failed", "failed to cancel leave request", requestID)
		return
	}
	api.Success(w, map[string]string{"id": leaveRequestID, "status": leave.StatusCancelled}, requestID)
}

func (h *Handler) notify(r *http.Request, userID, ntype, title, body string) {
	if h.Notifier == nil {
		return
	}
	if err := h.Notifier.Notify(r.Context(), userID, ntype, title, body); err != nil {
		slog.Warn("leave notification failed", "err", err)
	}
}

// notifyEmployee resolves the employee's user account before notifying.
func (h *Handler) notifyEmployee(r *http.Request, employeeID, ntype, title, body string) {
	if h.Notifier == nil {
		return
	}
	var userID string
	err := h.Store.DB.QueryRow(r.Context(),
		"SELECT COALESCE(user_id::text, '') FROM employees WHERE id = $1", employeeID).Scan(&userID)
	if err != nil || userID == "" {
		return
	}
	if err := h.Notifier.Notify(r.Context(), userID, ntype, title, body); err != nil {
		slog.Warn("leave notification failed", "err", err)
	}
}
