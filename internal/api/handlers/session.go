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

type SessionHandler struct {
	repoManager *repository.RepositoryManager
	logger      *logrus.Logger
}

func NewSessionHandler(repoManager *repository.RepositoryManager, logger *logrus.Logger) *SessionHandler {
	return &SessionHandler{
		repoManager: repoManager,
		logger:      logger,
	}
}

// HandleCreateSession reuses an existing session or creates a fresh one.
func (h *SessionHandler) HandleCreateSession(c *gin.Context) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if req.SessionID != "" {
		if _, err := h.repoManager.ChatSession.GetBySessionID(req.SessionID); err == nil {
			utils.SuccessResponse(c, http.StatusOK, "Session found", models.SessionResponse{
				SessionID: req.SessionID,
				Exists:    true,
			})
			return
		}
	}

	sessionID := utils.NewSessionID()
	if _, err := h.repoManager.ChatSession.Upsert(sessionID, c.GetHeader("User-Agent"), c.ClientIP()); err != nil {
		h.logger.WithError(err).Error("Failed to create chat session")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create session", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Session created", models.SessionResponse{
		SessionID: sessionID,
		Exists:    false,
	})
}

// HandleGetSession returns a session with its recent history.
func (h *SessionHandler) HandleGetSession(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "sessionId is required", nil)
		return
	}

	session, err := h.repoManager.ChatSession.GetWithHistory(sessionID, 50, 10)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Session not found", nil)
			return
		}
		h.logger.WithError(err).Error("Failed to load session")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load session", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Session retrieved", session)
}
