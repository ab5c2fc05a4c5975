package performancehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"schoolhr/internal/domain/auth"
	"schoolhr/internal/domain/performance"
	"schoolhr/internal/transport/http/api"
	"schoolhr/internal/transport/http/middleware"
	"schoolhr/internal/transport/http/shared"
)

type Handler struct {
	Store *performance.Store
	Perms middleware.PermissionStore
}

func NewHandler(store *performance.Store, perms middleware.PermissionStore) *Handler {
	return &Handler{Store: store, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/performance", func(r chi.Router) {
		r.Route("/cycles", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermPerformanceRead, h.Perms)).Get("/", h.handleListCycles)
			r.With(middleware.RequirePermission(auth.PermPerformanceWrite, h.Perms)).Post("/", h.handleCreateCycle)
			r.With(middleware.RequirePermission(auth.PermPerformanceWrite, h.Perms)).Post("/{cycleID}/status", h.handleSetCycleStatus)
			r.With(middleware.RequirePermission(auth.PermPerformanceRead, h.Perms)).Get("/{cycleID}/summary", h.handleSummary)
		})
		r.Route("/reviews", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermPerformanceRead, h.Perms)).Get("/", h.handleListReviews)
			r.With(middleware.RequirePermission(auth.PermPerformanceWrite, h.Perms)).Post("/", h.handleUpsertReview)
		})
	})
}

func (h *Handler) handleListCycles(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	cycles, err := h.Store.ListCycles(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "cycles_list_failed", "failed to list review cycles", requestID)
		return
	}
	api.Success(w, cycles, requestID)
}

func (h *Handler) handleCreateCycle(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var cycle performance.Cycle
	if err := json.NewDecoder(r.Body).Decode(&cycle); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("name", cycle.Name, "name is required")
	if v.Reject(w, requestID) {
		return
	}

	cycle.Status = performance.CycleDraft
	id, err := h.Store.CreateCycle(r.Context(), cycle)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "cycle_create_failed", "failed to create review cycle", requestID)
		return
	}
	cycle.ID = id
	api.Created(w, cycle, requestID)
}

type cycleStatusPayload struct {
	Status string `json:"status"`
}

func (h *Handler) handleSetCycleStatus(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	cycleID := chi.URLParam(r, "cycleID")

	var payload cycleStatusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", requestID)
		return
	}
	switch payload.Status {
	case performance.CycleDraft, performance.CycleActive, performance.CycleClosed:
	default:
		api.Fail(w, http.StatusBadRequest, "invalid_status", "status must be Draft, Active, or Closed", requestID)
		return
	}

	if err := h.Store.SetCycleStatus(r.Context(), cycleID, payload.Status); err != nil {
		if errors.Is(err, performance.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "review cycle not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "cycle_status_failed", "failed to update cycle status", requestID)
		return
	}
	api.Success(w, map[string]string{"id": cycleID, "status": payload.Status}, requestID)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	cycleID := chi.URLParam(r, "cycleID")

	reviews, err := h.Store.ListReviews(r.Context(), cycleID, "")
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "summary_failed", "failed to load reviews", requestID)
		return
	}
	api.Success(w, performance.Summarize(cycleID, reviews), requestID)
}

func (h *Handler) handleListReviews(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())

	cycleID := r.URL.Query().Get("cycleId")
	employeeID := r.URL.Query().Get("employeeId")
	if user.RoleName == auth.RoleFaculty {
		employeeID = user.EmployeeID
	}

	reviews, err := h.Store.ListReviews(r.Context(), cycleID, employeeID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "reviews_list_failed", "failed to list reviews", requestID)
		return
	}
	api.Success(w, reviews, requestID)
}

func (h *Handler) handleUpsertReview(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())

	var review performance.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("cycleId", review.CycleID, "cycleId is required")
	v.Required("employeeId", review.EmployeeID, "employeeId is required")
	if err := performance.ValidateRating(review.Rating); err != nil {
		v.Add("rating", err.Error())
	}
	if v.Reject(w, requestID) {
		return
	}

	review.ReviewerID = user.EmployeeID
	id, err := h.Store.UpsertReview(r.Context(), review)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "review_save_failed", "failed to save review", requestID)
		return
	}
	review.ID = id
	api.Success(w, review, requestID)
}
