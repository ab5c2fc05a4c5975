package chatbothandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"schoolhr/internal/domain/auth"
	"schoolhr/internal/domain/chatbot"
	"schoolhr/internal/transport/http/api"
	"schoolhr/internal/transport/http/middleware"
	"schoolhr/internal/transport/http/shared"
)

type Handler struct {
	Store *chatbot.Store
	Perms middleware.PermissionStore
}

func NewHandler(store *chatbot.Store, perms middleware.PermissionStore) *Handler {
	return &Handler{Store: store, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/chatbot", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermChatbotRead, h.Perms)).Post("/ask", h.handleAsk)
		r.Route("/entries", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermChatbotWrite, h.Perms)).Get("/", h.handleListEntries)
			r.With(middleware.RequirePermission(auth.PermChatbotWrite, h.Perms)).Post("/", h.handleCreateEntry)
			r.With(middleware.RequirePermission(auth.PermChatbotWrite, h.Perms)).Put("/{entryID}", h.handleUpdateEntry)
			r.With(middleware.RequirePermission(auth.PermChatbotWrite, h.Perms)).Delete("/{entryID}", h.handleDeleteEntry)
		})
	})
}

type askPayload struct {
	Question string `json:"question"`
}

func (h *Handler) handleAsk(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload askPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", requestID)
		return
	}
	if strings.TrimSpace(payload.Question) == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "question is required", requestID)
		return
	}

	entries, err := h.Store.ListEntries(r.Context(), true)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "chatbot_failed", "failed to search knowledge base", requestID)
		return
	}

	matches := chatbot.Search(entries, payload.Question)
	api.Success(w, map[string]any{
		"question": payload.Question,
		"matches":  matches,
	}, requestID)
}

func (h *Handler) handleListEntries(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	entries, err := h.Store.ListEntries(r.Context(), false)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "kb_list_failed", "failed to list knowledge-base entries", requestID)
		return
	}
	api.Success(w, entries, requestID)
}

func (h *Handler) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var entry chatbot.Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("question", entry.Question, "question is required")
	v.Required("answer", entry.Answer, "answer is required")
	if v.Reject(w, requestID) {
		return
	}

	if err := h.Store.CreateEntry(r.Context(), &entry); err != nil {
		api.Fail(w, http.StatusInternalServerError, "kb_create_failed", "failed to create knowledge-base entry", requestID)
		return
	}
	api.Created(w, entry, requestID)
}

func (h *Handler) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var entry chatbot.Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", requestID)
		return
	}
	entry.ID = chi.URLParam(r, "entryID")

	if err := h.Store.UpdateEntry(r.Context(), &entry); err != nil {
		if errors.Is(err, chatbot.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "knowledge-base entry not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "kb_update_failed", "failed to update knowledge-base entry", requestID)
		return
	}
	api.Success(w, entry, requestID)
}

func (h *Handler) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	entryID := chi.URLParam(r, "entryID")

	if err := h.Store.DeleteEntry(r.Context(), entryID); err != nil {
		if errors.Is(err, chatbot.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "knowledge-base entry not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "kb_delete_failed", "failed to delete knowledge-base entry", requestID)
		return
	}
	api.Success(w, map[string]string{"id": entryID}, requestID)
}
