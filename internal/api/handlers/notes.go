package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/coursechat/backend/internal/database"
	"github.com/coursechat/backend/internal/models"
	"github.com/coursechat/backend/internal/repository"
	"github.com/coursechat/backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type NoteHandler struct {
	repoManager *repository.RepositoryManager
	cache       *database.Cache
	logger      *logrus.Logger
}

func NewNoteHandler(repoManager *repository.RepositoryManager, cache *database.Cache, logger *logrus.Logger) *NoteHandler {
	return &NoteHandler{
		repoManager: repoManager,
		cache:       cache,
		logger:      logger,
	}
}

// HandleList returns notes, optionally filtered by ?search= and
// ?topicId=. The public listing only shows active notes; admins pass
// ?all=true to include drafts.
func (h *NoteHandler) HandleList(c *gin.Context) {
	activeOnly := c.Query("all") != "true"

	search := c.Query("search")
	var topicID *uint
	if raw := c.Query("topicId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid topicId", err)
			return
		}
		tid := uint(id)
		topicID = &tid
	}

	var (
		notes []models.Note
		err   error
	)
	if search != "" || topicID != nil {
		notes, err = h.repoManager.Note.Search(search, topicID, activeOnly)
	} else {
		notes, err = h.repoManager.Note.GetAll(activeOnly, true)
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to list notes")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to list notes", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notes retrieved", notes)
}

func (h *NoteHandler) HandleCreate(c *gin.Context) {
	var req models.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Title and content are required", err)
		return
	}

	note := &models.Note{
		Title:    req.Title,
		Content:  req.Content,
		Keywords: models.StringArray(req.Keywords),
		TopicID:  req.TopicID,
		IsActive: true,
	}
	if req.IsActive != nil {
		note.IsActive = *req.IsActive
	}

	if err := h.repoManager.Note.Create(note); err != nil {
		h.logger.WithError(err).Error("Failed to create note")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create note", err)
		return
	}

	h.invalidateStats(c)
	utils.SuccessResponse(c, http.StatusCreated, "Note created", note)
}

func (h *NoteHandler) HandleUpdate(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Note ID is required", err)
		return
	}

	var req models.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Title and content are required", err)
		return
	}

	note, err := h.repoManager.Note.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Note not found", nil)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load note", err)
		return
	}

	note.Title = req.Title
	note.Content = req.Content
	note.Keywords = models.StringArray(req.Keywords)
	note.TopicID = req.TopicID
	if req.IsActive != nil {
		note.IsActive = *req.IsActive
	}

	if err := h.repoManager.Note.Update(note); err != nil {
		h.logger.WithError(err).Error("Failed to update note")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update note", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Note updated", note)
}

func (h *NoteHandler) HandleDelete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Note ID is required", err)
		return
	}

	if _, err := h.repoManager.Note.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Note not found", nil)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load note", err)
		return
	}

	if err := h.repoManager.Note.Delete(id); err != nil {
		h.logger.WithError(err).Error("Failed to delete note")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete note", err)
		return
	}

	h.invalidateStats(c)
	utils.SuccessResponse(c, http.StatusOK, "Note deleted", nil)
}

func (h *NoteHandler) invalidateStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := h.cache.InvalidateAdminStats(ctx); err != nil {
		h.logger.WithError(err).Warn("Failed to invalidate stats cache")
	}
}
