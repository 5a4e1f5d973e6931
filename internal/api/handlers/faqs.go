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

type FAQHandler struct {
	repoManager *repository.RepositoryManager
	cache       *database.Cache
	logger      *logrus.Logger
}

func NewFAQHandler(repoManager *repository.RepositoryManager, cache *database.Cache, logger *logrus.Logger) *FAQHandler {
	return &FAQHandler{
		repoManager: repoManager,
		cache:       cache,
		logger:      logger,
	}
}

// HandleList returns FAQs, optionally filtered by ?search= and ?topicId=.
func (h *FAQHandler) HandleList(c *gin.Context) {
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
		faqs []models.FAQ
		err  error
	)
	if search != "" || topicID != nil {
		faqs, err = h.repoManager.FAQ.Search(search, topicID)
	} else {
		faqs, err = h.repoManager.FAQ.GetAll(true)
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to list FAQs")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to list FAQs", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "FAQs retrieved", faqs)
}

func (h *FAQHandler) HandleCreate(c *gin.Context) {
	var req models.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Question and answer are required", err)
		return
	}

	faq := &models.FAQ{
		Question: req.Question,
		Answer:   req.Answer,
		Keywords: models.StringArray(req.Keywords),
		TopicID:  req.TopicID,
	}

	if err := h.repoManager.FAQ.Create(faq); err != nil {
		h.logger.WithError(err).Error("Failed to create FAQ")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create FAQ", err)
		return
	}

	h.invalidateStats(c)
	utils.SuccessResponse(c, http.StatusCreated, "FAQ created", faq)
}

func (h *FAQHandler) HandleUpdate(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "FAQ ID is required", err)
		return
	}

	var req models.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Question and answer are required", err)
		return
	}

	faq, err := h.repoManager.FAQ.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "FAQ not found", nil)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load FAQ", err)
		return
	}

	faq.Question = req.Question
	faq.Answer = req.Answer
	faq.Keywords = models.StringArray(req.Keywords)
	faq.TopicID = req.TopicID

	if err := h.repoManager.FAQ.Update(faq); err != nil {
		h.logger.WithError(err).Error("Failed to update FAQ")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update FAQ", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "FAQ updated", faq)
}

func (h *FAQHandler) HandleDelete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "FAQ ID is required", err)
		return
	}

	if _, err := h.repoManager.FAQ.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "FAQ not found", nil)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load FAQ", err)
		return
	}

	if err := h.repoManager.FAQ.Delete(id); err != nil {
		h.logger.WithError(err).Error("Failed to delete FAQ")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete FAQ", err)
		return
	}

	h.invalidateStats(c)
	utils.SuccessResponse(c, http.StatusOK, "FAQ deleted", nil)
}

func (h *FAQHandler) invalidateStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := h.cache.InvalidateAdminStats(ctx); err != nil {
		h.logger.WithError(err).Warn("Failed to invalidate stats cache")
	}
}
