package handlers

import (
	"errors"
	"net/http"

	"github.com/coursechat/backend/internal/models"
	"github.com/coursechat/backend/internal/repository"
	"github.com/coursechat/backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type FeedbackHandler struct {
	repoManager *repository.RepositoryManager
	logger      *logrus.Logger
}

func NewFeedbackHandler(repoManager *repository.RepositoryManager, logger *logrus.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		repoManager: repoManager,
		logger:      logger,
	}
}

// HandleCreate records a thumbs rating (1 = down, 2 = up) on a chat response.
func (h *FeedbackHandler) HandleCreate(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Chat log ID and rating are required", err)
		return
	}

	if req.Rating != 1 && req.Rating != 2 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Rating must be 1 or 2", nil)
		return
	}

	if _, err := h.repoManager.ChatLog.GetByID(req.ChatLogID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Chat log not found", nil)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load chat log", err)
		return
	}

	feedback := &models.Feedback{
		ChatLogID: req.ChatLogID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := h.repoManager.Feedback.Create(feedback); err != nil {
		h.logger.WithError(err).Error("Failed to record feedback")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to record feedback", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Feedback recorded", feedback)
}
