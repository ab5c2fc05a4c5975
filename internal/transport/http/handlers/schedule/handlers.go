package schedulehandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"schoolhr/internal/domain/auth"
	"schoolhr/internal/domain/schedule"
	"schoolhr/internal/transport/http/api"
	"schoolhr/internal/transport/http/middleware"
)

type Handler struct {
	Store *schedule.Store
	Perms middleware.PermissionStore
}

func NewHandler(store *schedule.Store, perms middleware.PermissionStore) *Handler {
	return &Handler{Store: store, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees/{employeeID}/schedule", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermScheduleRead, h.Perms)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermScheduleWrite, h.Perms)).Post("/", h.handleCreate)
		r.Route("/{entryID}", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermScheduleWrite, h.Perms)).Put("/", h.handleUpdate)
			r.With(middleware.RequirePermission(auth.PermScheduleWrite, h.Perms)).Delete("/", h.handleDelete)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	entries, err := h.Store.ListEntries(r.Context(), employeeID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "schedule_list_failed", "failed to list schedule entries", requestID)
		return
	}
	api.Success(w, entries, requestID)
}

// saveEntry validates the slot and checks for clashes against the
// employee's existing entries before writing.
func (h *Handler) saveEntry(w http.ResponseWriter, r *http.Request, entryID string) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	var entry schedule.Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", requestID)
		return
	}
	entry.EmployeeID = employeeID

	if err := schedule.Validate(entry); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_entry", err.Error(), requestID)
		return
	}

	existing, err := h.Store.ListEntries(r.Context(), employeeID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "schedule_save_failed", "failed to check for conflicts", requestID)
		return
	}
	if conflict := schedule.FindConflict(existing, entry, entryID); conflict != nil {
		api.Fail(w, http.StatusConflict, "schedule_conflict",
			fmt.Sprintf("overlaps existing entry %q", conflict.Label), requestID)
		return
	}

	if entryID == "" {
		id, err := h.Store.CreateEntry(r.Context(), entry)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "schedule_save_failed", "failed to create schedule entry", requestID)
			return
		}
		entry.ID = id
		api.Created(w, entry, requestID)
		return
	}

	if err := h.Store.UpdateEntry(r.Context(), entryID, entry); err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "schedule entry not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "schedule_save_failed", "failed to update schedule entry", requestID)
		return
	}
	entry.ID = entryID
	api.Success(w, entry, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	h.saveEntry(w, r, "")
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveEntry(w, r, chi.URLParam(r, "entryID"))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	entryID := chi.URLParam(r, "entryID")

	if err := h.Store.DeleteEntry(r.Context(), entryID); err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "schedule entry not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "schedule_delete_failed", "failed to delete schedule entry", requestID)
		return
	}
	api.Success(w, map[string]string{"id": entryID}, requestID)
}
