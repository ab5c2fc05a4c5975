package familyhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"schoolhr/internal/domain/auth"
	"schoolhr/internal/domain/family"
	"schoolhr/internal/transport/http/api"
	"schoolhr/internal/transport/http/middleware"
	"schoolhr/internal/transport/http/shared"
)

type Handler struct {
	Service *family.Service
	Perms   middleware.PermissionStore
}

func NewHandler(service *family.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees/{employeeID}/family", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermFamilyRead, h.Perms)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermFamilyWrite, h.Perms)).Post("/", h.handleAdd)
		r.Route("/{memberID}", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermFamilyWrite, h.Perms)).Put("/", h.handleUpdate)
			r.With(middleware.RequirePermission(auth.PermFamilyWrite, h.Perms)).Delete("/", h.handleDelete)
		})
	})
}

// canAccess restricts faculty to their own family records; Admin and HR
// may touch anyone's.
func canAccess(user auth.UserContext, employeeID string) bool {
	if user.RoleName == auth.RoleAdmin || user.RoleName == auth.RoleHR {
		return true
	}
	return user.EmployeeID != "" && user.EmployeeID == employeeID
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	if !canAccess(user, employeeID) {
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed", requestID)
		return
	}

	members, err := h.Service.List(r.Context(), employeeID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "family_list_failed", "failed to list family members", requestID)
		return
	}
	api.Success(w, members, requestID)
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	if !canAccess(user, employeeID) {
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed", requestID)
		return
	}

	var member family.Member
	if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", requestID)
		return
	}

	id, issues, err := h.Service.Add(r.Context(), employeeID, member)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "family_add_failed", "failed to add family member", requestID)
		return
	}
	if len(issues) > 0 {
		shared.FailValidation(w, requestID, toValidationIssues(issues))
		return
	}
	member.ID = id
	api.Created(w, member, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")
	memberID := chi.URLParam(r, "memberID")

	if !canAccess(user, employeeID) {
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed", requestID)
		return
	}

	var member family.Member
	if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", requestID)
		return
	}

	issues, err := h.Service.Update(r.Context(), employeeID, memberID, member)
	if err != nil {
		if errors.Is(err, family.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "family member not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "family_update_failed", "failed to update family member", requestID)
		return
	}
	if len(issues) > 0 {
		shared.FailValidation(w, requestID, toValidationIssues(issues))
		return
	}
	member.ID = memberID
	api.Success(w, member, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")
	memberID := chi.URLParam(r, "memberID")

	if !canAccess(user, employeeID) {
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed", requestID)
		return
	}

	if err := h.Service.Delete(r.Context(), employeeID, memberID); err != nil {
		if errors.Is(err, family.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "family member not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "family_delete_failed", "failed to delete family member", requestID)
		return
	}
	api.Success(w, map[string]string{"id": memberID}, requestID)
}

func toValidationIssues(issues []family.Issue) []shared.ValidationIssue {
	out := make([]shared.ValidationIssue, 0, len(issues))
	for _, issue := range issues {
		out = append(out, shared.ValidationIssue{Field: issue.Field, Reason: issue.Reason})
	}
	return out
}
