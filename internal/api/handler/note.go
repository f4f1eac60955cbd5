package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/notehub/notehub/internal/api/middleware"
	"github.com/notehub/notehub/internal/api/response"
	"github.com/notehub/notehub/internal/api/validation"
	"github.com/notehub/notehub/internal/note"
)

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type noteResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	LastUpdated string `json:"lastUpdated"`
}

func toNoteResponse(n *note.Note) noteResponse {
	return noteResponse{
		ID:          n.ID.String(),
		Title:       n.Title,
		Content:     n.Content,
		LastUpdated: n.LastUpdated.UTC().Format(time.RFC3339),
	}
}

// NoteHandler handles note CRUD endpoints. All operations are scoped to the
// authenticated user resolved by the auth middleware.
type NoteHandler struct {
	repo note.Repository
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(repo note.Repository) *NoteHandler {
	return &NoteHandler{repo: repo}
}

// List handles GET /note.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user := middleware.GetUser(r.Context())

	notes, err := h.repo.List(r.Context(), user.ID)
	if err != nil {
		slog.Error("failed to list notes", "error", err, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list notes", requestID)
		return
	}

	items := make([]noteResponse, 0, len(notes))
	for i := range notes {
		items = append(items, toNoteResponse(&notes[i]))
	}

	response.Success(w, http.StatusOK, items, requestID)
}

// Get handles GET /note/{id}.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user := middleware.GetUser(r.Context())

	noteID, ok := parseNoteID(w, r, requestID)
	if !ok {
		return
	}

	n, err := h.repo.Get(r.Context(), user.ID, noteID)
	if err != nil {
		if errors.Is(err, note.ErrNoteNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "No note found for id", requestID)
			return
		}
		slog.Error("failed to get note", "error", err, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get note", requestID)
		return
	}

	response.Success(w, http.StatusOK, toNoteResponse(n), requestID)
}

// Create handles POST /note.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user := middleware.GetUser(r.Context())

	req, ok := decodeNoteRequest(w, r, requestID)
	if !ok {
		return
	}

	n := &note.Note{
		ID:          uuid.New(),
		UserID:      user.ID,
		Title:       req.Title,
		Content:     req.Content,
		LastUpdated: time.Now().UTC(),
	}

	if err := h.repo.Save(r.Context(), n); err != nil {
		slog.Error("failed to create note", "error", err, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create note", requestID)
		return
	}

	response.Success(w, http.StatusOK, toNoteResponse(n), requestID)
}

// Update handles PUT /note/{id}. Updating a note that does not exist for the
// user succeeds without effect.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user := middleware.GetUser(r.Context())

	noteID, ok := parseNoteID(w, r, requestID)
	if !ok {
		return
	}

	req, ok := decodeNoteRequest(w, r, requestID)
	if !ok {
		return
	}

	n := &note.Note{
		ID:          noteID,
		UserID:      user.ID,
		Title:       req.Title,
		Content:     req.Content,
		LastUpdated: time.Now().UTC(),
	}

	if err := h.repo.Update(r.Context(), n); err != nil {
		slog.Error("failed to update note", "error", err, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update note", requestID)
		return
	}

	response.Success(w, http.StatusOK, nil, requestID)
}

// Delete handles DELETE /note/{id}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user := middleware.GetUser(r.Context())

	noteID, ok := parseNoteID(w, r, requestID)
	if !ok {
		return
	}

	if err := h.repo.Delete(r.Context(), user.ID, noteID); err != nil {
		slog.Error("failed to delete note", "error", err, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete note", requestID)
		return
	}

	response.Success(w, http.StatusOK, nil, requestID)
}

func parseNoteID(w http.ResponseWriter, r *http.Request, requestID string) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID", requestID)
		return uuid.Nil, false
	}
	return id, true
}

func decodeNoteRequest(w http.ResponseWriter, r *http.Request, requestID string) (noteRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return noteRequest{}, false
	}

	fieldErrors := validation.ValidateNoteRequest(validation.NoteRequest{
		Title:   req.Title,
		Content: req.Content,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return noteRequest{}, false
	}

	return req, true
}
