// Package http provides HTTP handlers for note management.
// Every handler expects AuthenticationMiddleware to have attached the caller's claims.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	authHTTP "github.com/allisson/notes/internal/auth/http"
	"github.com/allisson/notes/internal/httputil"
	"github.com/allisson/notes/internal/note/http/dto"
	noteUseCase "github.com/allisson/notes/internal/note/usecase"
	customValidation "github.com/allisson/notes/internal/validation"
)

// NoteHandler handles HTTP requests for note operations.
type NoteHandler struct {
	noteUseCase noteUseCase.NoteUseCase
	logger      *slog.Logger
}

// NewNoteHandler creates a new note handler with required dependencies.
func NewNoteHandler(noteUseCase noteUseCase.NoteUseCase, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{
		noteUseCase: noteUseCase,
		logger:      logger,
	}
}

// callerID returns the authenticated identity or writes a 403 response.
func (h *NoteHandler) callerID(c *gin.Context) (int64, bool) {
	claims, ok := authHTTP.GetClaims(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrMissingCredential, h.logger)
		return 0, false
	}
	return claims.SubjectID, true
}

// ListHandler lists the caller's notes, newest first.
// GET /api/v1/notes?offset=0&limit=50
func (h *NoteHandler) ListHandler(c *gin.Context) {
	ownerID, ok := h.callerID(c)
	if !ok {
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleInvalidParamGin(c, err, h.logger)
		return
	}

	notes, err := h.noteUseCase.List(c.Request.Context(), ownerID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapNotesToListResponse(notes))
}

// GetHandler returns a single note owned by the caller.
// GET /api/v1/note/:id
func (h *NoteHandler) GetHandler(c *gin.Context) {
	ownerID, ok := h.callerID(c)
	if !ok {
		return
	}

	noteID, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleInvalidParamGin(c, err, h.logger)
		return
	}

	note, err := h.noteUseCase.Get(c.Request.Context(), ownerID, noteID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapNoteToResponse(note))
}

// CreateHandler creates a note owned by the caller.
// POST /api/v1/note/create
// Returns 201 Created with the note.
func (h *NoteHandler) CreateHandler(c *gin.Context) {
	ownerID, ok := h.callerID(c)
	if !ok {
		return
	}

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	note, err := h.noteUseCase.Create(c.Request.Context(), ownerID, req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("note created", slog.Int64("note_id", note.ID), slog.Int64("user_id", ownerID))

	c.JSON(http.StatusCreated, dto.MapNoteToResponse(note))
}

// EditHandler replaces the text of a note owned by the caller.
// PUT /api/v1/note/edit/:id
// Returns 403 Forbidden with "not owner" when the note belongs to someone else.
func (h *NoteHandler) EditHandler(c *gin.Context) {
	ownerID, ok := h.callerID(c)
	if !ok {
		return
	}

	noteID, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleInvalidParamGin(c, err, h.logger)
		return
	}

	var req dto.EditNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	note, err := h.noteUseCase.EditText(c.Request.Context(), ownerID, noteID, *req.Text)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("note edited", slog.Int64("note_id", noteID), slog.Int64("user_id", ownerID))

	c.JSON(http.StatusOK, dto.MapNoteToResponse(note))
}

// EditTagsHandler replaces the tags of a note owned by the caller.
// PUT /api/v1/note/edit-tags/:id with a JSON array body, e.g. ["home","todo"].
func (h *NoteHandler) EditTagsHandler(c *gin.Context) {
	ownerID, ok := h.callerID(c)
	if !ok {
		return
	}

	noteID, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleInvalidParamGin(c, err, h.logger)
		return
	}

	var req dto.EditTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	note, err := h.noteUseCase.EditTags(c.Request.Context(), ownerID, noteID, req)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info(
		"note tags replaced",
		slog.Int64("note_id", noteID),
		slog.Int64("user_id", ownerID),
		slog.Any("tags", note.Tags),
	)

	c.JSON(http.StatusOK, dto.MapNoteToResponse(note))
}

// DeleteHandler deletes a note owned by the caller.
// DELETE /api/v1/note/delete/:id
// Returns 204 No Content.
func (h *NoteHandler) DeleteHandler(c *gin.Context) {
	ownerID, ok := h.callerID(c)
	if !ok {
		return
	}

	noteID, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleInvalidParamGin(c, err, h.logger)
		return
	}

	if err := h.noteUseCase.Delete(c.Request.Context(), ownerID, noteID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("note deleted", slog.Int64("note_id", noteID), slog.Int64("user_id", ownerID))

	c.Status(http.StatusNoContent)
}
