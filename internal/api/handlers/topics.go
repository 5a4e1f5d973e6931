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

type TopicHandler struct {
	repoManager *repository.RepositoryManager
	cache       *database.Cache
	logger      *logrus.Logger
}

func NewTopicHandler(repoManager *repository.RepositoryManager, cache *database.Cache, logger *logrus.Logger) *TopicHandler {
	return &TopicHandler{
		repoManager: repoManager,
		cache:       cache,
		logger:      logger,
	}
}

// HandleList returns all topics ordered by name.
func (h *TopicHandler) HandleList(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if topics, err := h.cache.GetCachedTopics(ctx); err == nil {
		utils.SuccessResponse(c, http.StatusOK, "Topics retrieved", topics)
		return
	}

	topics, err := h.repoManager.Topic.GetAll()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list topics")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to list topics", err)
		return
	}

	if err := h.cache.CacheTopics(ctx, topics, 5*time.Minute); err != nil {
		h.logger.WithError(err).Warn("Failed to cache topics")
	}

	utils.SuccessResponse(c, http.StatusOK, "Topics retrieved", topics)
}

// HandleCreate creates a topic; names are unique.
func (h *TopicHandler) HandleCreate(c *gin.Context) {
	var req models.TopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Topic name is required", err)
		return
	}

	if _, err := h.repoManager.Topic.GetByName(req.Name); err == nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Topic with this name already exists", nil)
		return
	}

	topic := &models.Topic{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	}

	if err := h.repoManager.Topic.Create(topic); err != nil {
		h.logger.WithError(err).Error("Failed to create topic")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create topic", err)
		return
	}

	h.invalidateCaches(c)
	utils.SuccessResponse(c, http.StatusCreated, "Topic created", topic)
}

// HandleUpdate renames or restyles a topic.
func (h *TopicHandler) HandleUpdate(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Topic ID is required", err)
		return
	}

	var req models.TopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Topic name is required", err)
		return
	}

	topic, err := h.repoManager.Topic.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Topic not found", nil)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load topic", err)
		return
	}

	// Reject renames that collide with another topic
	if existing, err := h.repoManager.Topic.GetByName(req.Name); err == nil && existing.ID != id {
		utils.ErrorResponse(c, http.StatusBadRequest, "Topic with this name already exists", nil)
		return
	}

	topic.Name = req.Name
	topic.Description = req.Description
	topic.Icon = req.Icon
	topic.Color = req.Color

	if err := h.repoManager.Topic.Update(topic); err != nil {
		h.logger.WithError(err).Error("Failed to update topic")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update topic", err)
		return
	}

	h.invalidateCaches(c)
	utils.SuccessResponse(c, http.StatusOK, "Topic updated", topic)
}

// HandleDelete removes a topic; dependent content cascades.
func (h *TopicHandler) HandleDelete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Topic ID is required", err)
		return
	}

	if _, err := h.repoManager.Topic.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Topic not found", nil)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load topic", err)
		return
	}

	if err := h.repoManager.Topic.Delete(id); err != nil {
		h.logger.WithError(err).Error("Failed to delete topic")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete topic", err)
		return
	}

	h.invalidateCaches(c)
	utils.SuccessResponse(c, http.StatusOK, "Topic deleted", nil)
}

func (h *TopicHandler) invalidateCaches(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := h.cache.InvalidateTopics(ctx); err != nil {
		h.logger.WithError(err).Warn("Failed to invalidate topic cache")
	}
	if err := h.cache.InvalidateAdminStats(ctx); err != nil {
		h.logger.WithError(err).Warn("Failed to invalidate stats cache")
	}
}

func parseIDParam(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	if raw == "" {
		raw = c.Query("id")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
