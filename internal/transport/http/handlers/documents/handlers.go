package documentshandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"schoolhr/internal/domain/auth"
	"schoolhr/internal/domain/directory"
	"schoolhr/internal/domain/documents"
	"schoolhr/internal/transport/http/api"
	"schoolhr/internal/transport/http/middleware"
	"schoolhr/internal/transport/http/shared"
)

type Handler struct {
	Store     *documents.Store
	Directory *directory.Store
	Perms     middleware.PermissionStore
}

func NewHandler(store *documents.Store, dirStore *directory.Store, perms middleware.PermissionStore) *Handler {
	return &Handler{Store: store, Directory: dirStore, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees/{employeeID}/documents", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermDocumentsRead, h.Perms)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermDocumentsWrite, h.Perms)).Post("/", h.handleCreate)
		r.With(middleware.RequirePermission(auth.PermDocumentsRead, h.Perms)).Get("/service-record", h.handleServiceRecord)
		r.With(middleware.RequirePermission(auth.PermDocumentsWrite, h.Perms)).Delete("/{documentID}", h.handleDelete)
	})
}

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

	docs, err := h.Store.ListDocuments(r.Context(), employeeID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "documents_list_failed", "failed to list documents", requestID)
		return
	}
	api.Success(w, docs, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	var doc documents.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", requestID)
		return
	}
	doc.EmployeeID = employeeID
	doc.UploadedBy = user.UserID

	v := shared.NewValidator()
	v.Required("fileName", doc.FileName, "fileName is required")
	valid := false
	for _, kind := range documents.Kinds {
		if doc.Kind == kind {
			valid = true
			break
		}
	}
	if !valid {
		v.Add("kind", "must be one of Contract, Diploma, Certificate, ServiceRecord, Other")
	}
	if v.Reject(w, requestID) {
		return
	}

	created, err := h.Store.CreateDocument(r.Context(), doc)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "document_create_failed", "failed to register document", requestID)
		return
	}
	api.Created(w, created, requestID)
}

// handleServiceRecord renders the employee's service record as a PDF
// attachment.
func (h *Handler) handleServiceRecord(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	if !canAccess(user, employeeID) {
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed", requestID)
		return
	}

	emp, err := h.Directory.GetEmployee(r.Context(), employeeID)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
		return
	}

	pdf, err := documents.ServiceRecordPDF(*emp, time.Now())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "pdf_failed", "failed to render service record", requestID)
		return
	}

	filename := fmt.Sprintf("service_record_%s.pdf", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(pdf)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")
	documentID := chi.URLParam(r, "documentID")

	if err := h.Store.DeleteDocument(r.Context(), employeeID, documentID); err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "document not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "document_delete_failed", "failed to delete document", requestID)
		return
	}
	api.Success(w, map[string]string{"id": documentID}, requestID)
}
