package recruitmenthandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"schoolhr/internal/domain/auth"
	"schoolhr/internal/domain/recruitment"
	"schoolhr/internal/domain/validation"
	"schoolhr/internal/transport/http/api"
	"schoolhr/internal/transport/http/middleware"
	"schoolhr/internal/transport/http/shared"
)

type Handler struct {
	Store *recruitment.Store
	Perms middleware.PermissionStore
}

func NewHandler(store *recruitment.Store, perms middleware.PermissionStore) *Handler {
	return &Handler{Store: store, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/recruitment", func(r chi.Router) {
		r.Route("/postings", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermRecruitmentRead, h.Perms)).Get("/", h.handleListPostings)
			r.With(middleware.RequirePermission(auth.PermRecruitmentWrite, h.Perms)).Post("/", h.handleCreatePosting)
			r.With(middleware.RequirePermission(auth.PermRecruitmentWrite, h.Perms)).Post("/{postingID}/close", h.handleClosePosting)
		})
		r.Route("/applicants", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermRecruitmentRead, h.Perms)).Get("/", h.handleListApplicants)
			r.With(middleware.RequirePermission(auth.PermRecruitmentWrite, h.Perms)).Post("/", h.handleCreateApplicant)
			r.With(middleware.RequirePermission(auth.PermRecruitmentWrite, h.Perms)).Post("/{applicantID}/stage", h.handleSetStage)
		})
	})
}

func (h *Handler) handleListPostings(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	openOnly := r.URL.Query().Get("open") == "true"

	postings, err := h.Store.ListPostings(r.Context(), openOnly)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "postings_list_failed", "failed to list job postings", requestID)
		return
	}
	api.Success(w, postings, requestID)
}

func (h *Handler) handleCreatePosting(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var posting recruitment.JobPosting
	if err := json.NewDecoder(r.Body).Decode(&posting); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("title", posting.Title, "title is required")
	v.Required("department", posting.Department, "department is required")
	if v.Reject(w, requestID) {
		return
	}

	posting.Open = true
	id, err := h.Store.CreatePosting(r.Context(), posting)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "posting_create_failed", "failed to create job posting", requestID)
		return
	}
	posting.ID = id
	api.Created(w, posting, requestID)
}

func (h *Handler) handleClosePosting(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	postingID := chi.URLParam(r, "postingID")

	if err := h.Store.ClosePosting(r.Context(), postingID); err != nil {
		if errors.Is(err, recruitment.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "job posting not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "posting_close_failed", "failed to close job posting", requestID)
		return
	}
	api.Success(w, map[string]string{"id": postingID, "status": "closed"}, requestID)
}

func (h *Handler) handleListApplicants(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	postingID := r.URL.Query().Get("postingId")
	stage := r.URL.Query().Get("stage")

	if stage != "" && !recruitment.ValidStage(stage) {
		api.Fail(w, http.StatusBadRequest, "invalid_stage", "unknown pipeline stage", requestID)
		return
	}

	applicants, err := h.Store.ListApplicants(r.Context(), postingID, stage)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "applicants_list_failed", "failed to list applicants", requestID)
		return
	}
	api.Success(w, applicants, requestID)
}

func (h *Handler) handleCreateApplicant(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var applicant recruitment.Applicant
	if err := json.NewDecoder(r.Body).Decode(&applicant); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("postingId", applicant.PostingID, "postingId is required")
	v.Required("firstName", applicant.FirstName, "firstName is required")
	v.Required("lastName", applicant.LastName, "lastName is required")
	if verdict := validation.Email("email", applicant.Email); applicant.Email != "" && !verdict.Valid {
		v.Add("email", verdict.Reason)
	}
	if applicant.Phone != "" {
		applicant.Phone = validation.NormalizePhone(applicant.Phone)
		if verdict := validation.PhilippineMobile("phone", applicant.Phone); !verdict.Valid {
			v.Add("phone", verdict.Reason)
		}
	}
	if v.Reject(w, requestID) {
		return
	}

	applicant.Stage = recruitment.StageApplied
	id, err := h.Store.CreateApplicant(r.Context(), applicant)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "applicant_create_failed", "failed to create applicant", requestID)
		return
	}
	applicant.ID = id
	api.Created(w, applicant, requestID)
}

type stagePayload struct {
	Stage string `json:"stage"`
}

func (h *Handler) handleSetStage(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	applicantID := chi.URLParam(r, "applicantID")

	var payload stagePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", requestID)
		return
	}

	current, err := h.Store.ApplicantStage(r.Context(), applicantID)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "applicant not found", requestID)
		return
	}
	if err := recruitment.Transition(current, payload.Stage); err != nil {
		api.Fail(w, http.StatusConflict, "invalid_transition", err.Error(), requestID)
		return
	}

	if err := h.Store.SetApplicantStage(r.Context(), applicantID, payload.Stage); err != nil {
		api.Fail(w, http.StatusInternalServerError, "stage_update_failed", "failed to update applicant stage", requestID)
		return
	}
	api.Success(w, map[string]string{"id": applicantID, "stage": payload.Stage}, requestID)
}
