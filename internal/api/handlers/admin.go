package handlers

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/coursechat/backend/internal/auth"
	"github.com/coursechat/backend/internal/database"
	"github.com/coursechat/backend/internal/models"
	"github.com/coursechat/backend/internal/repository"
	"github.com/coursechat/backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const recentActivityLimit = 10

type AdminHandler struct {
	repoManager *repository.RepositoryManager
	cache       *database.Cache
	tokens      *auth.TokenManager
	logger      *logrus.Logger
}

func NewAdminHandler(repoManager *repository.RepositoryManager, cache *database.Cache, tokens *auth.TokenManager, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		repoManager: repoManager,
		cache:       cache,
		tokens:      tokens,
		logger:      logger,
	}
}

// HandleLogin verifies admin credentials and issues a session token.
func (h *AdminHandler) HandleLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Email and password are required", err)
		return
	}

	admin, err := h.repoManager.Admin.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials", nil)
			return
		}
		h.logger.WithError(err).Error("Failed to load admin account")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Login failed", err)
		return
	}

	if !admin.IsActive {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	if !auth.VerifyPassword(req.Password, admin.Password) {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	token, err := h.tokens.Generate(admin.ID, admin.Email, admin.Name, admin.Role)
	if err != nil {
		h.logger.WithError(err).Error("Failed to sign token")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Login failed", err)
		return
	}

	h.logger.WithField("email", admin.Email).Info("Admin logged in")
	utils.SuccessResponse(c, http.StatusOK, "Login successful", models.LoginResponse{
		Token: token,
		Name:  admin.Name,
		Email: admin.Email,
		Role:  admin.Role,
	})
}

// HandleStats returns dashboard counts plus the most recent content changes.
func (h *AdminHandler) HandleStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if stats, err := h.cache.GetCachedAdminStats(ctx); err == nil {
		utils.SuccessResponse(c, http.StatusOK, "Stats retrieved", stats)
		return
	}

	stats, err := h.buildStats()
	if err != nil {
		h.logger.WithError(err).Error("Failed to build admin stats")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to build stats", err)
		return
	}

	if err := h.cache.CacheAdminStats(ctx, stats, 2*time.Minute); err != nil {
		h.logger.WithError(err).Warn("Failed to cache admin stats")
	}

	utils.SuccessResponse(c, http.StatusOK, "Stats retrieved", stats)
}

// HandleCacheStats exposes Redis keyspace and memory counters for the
// admin dashboard.
func (h *AdminHandler) HandleCacheStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	stats, err := h.cache.GetCacheStats(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to read cache stats")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to read cache stats", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Cache stats retrieved", stats)
}

func (h *AdminHandler) buildStats() (*models.StatsResponse, error) {
	topics, err := h.repoManager.Topic.Count()
	if err != nil {
		return nil, err
	}
	notes, err := h.repoManager.Note.CountActive()
	if err != nil {
		return nil, err
	}
	quizzes, err := h.repoManager.Quiz.CountActive()
	if err != nil {
		return nil, err
	}
	faqs, err := h.repoManager.FAQ.Count()
	if err != nil {
		return nil, err
	}

	activity, err := h.recentActivity()
	if err != nil {
		return nil, err
	}

	return &models.StatsResponse{
		TotalTopics:    topics,
		TotalNotes:     notes,
		TotalQuizzes:   quizzes,
		TotalFAQs:      faqs,
		RecentActivity: activity,
	}, nil
}

// recentActivity merges the latest notes, quizzes and FAQs into one
// reverse-chronological feed.
func (h *AdminHandler) recentActivity() ([]models.ActivityItem, error) {
	items := make([]models.ActivityItem, 0, recentActivityLimit*3)

	recentNotes, err := h.repoManager.Note.GetRecent(recentActivityLimit)
	if err != nil {
		return nil, err
	}
	for _, n := range recentNotes {
		items = append(items, models.ActivityItem{ID: n.ID, Type: "note", Title: n.Title, CreatedAt: n.CreatedAt})
	}

	recentQuizzes, err := h.repoManager.Quiz.GetRecent(recentActivityLimit)
	if err != nil {
		return nil, err
	}
	for _, q := range recentQuizzes {
		items = append(items, models.ActivityItem{ID: q.ID, Type: "quiz", Title: q.Title, CreatedAt: q.CreatedAt})
	}

	recentFAQs, err := h.repoManager.FAQ.GetRecent(recentActivityLimit)
	if err != nil {
		return nil, err
	}
	for _, f := range recentFAQs {
		items = append(items, models.ActivityItem{ID: f.ID, Type: "faq", Title: f.Question, CreatedAt: f.CreatedAt})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if len(items) > recentActivityLimit {
		items = items[:recentActivityLimit]
	}
	return items, nil
}
