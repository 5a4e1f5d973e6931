package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/coursechat/backend/internal/chat"
	"github.com/coursechat/backend/internal/models"
	"github.com/coursechat/backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const maxMessageLength = 2000

type ChatHandler struct {
	chatService *chat.Service
	logger      *logrus.Logger
}

func NewChatHandler(chatService *chat.Service, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// HandleChat runs the answer resolution pipeline for one message.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	startTime := time.Now()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid chat request")
		utils.ErrorResponse(c, http.StatusBadRequest, "Message and sessionId are required", err)
		return
	}

	if len(strings.TrimSpace(req.Message)) > maxMessageLength {
		utils.ErrorResponse(c, http.StatusBadRequest, "Message too long (max 2000 characters)", nil)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"session_id": req.SessionID,
		"ip_address": c.ClientIP(),
	}).Info("Processing chat message")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 65*time.Second)
	defer cancel()

	result, err := h.chatService.ResolveMessage(ctx, req.Message, req.SessionID, c.GetHeader("User-Agent"), c.ClientIP())
	if err != nil {
		if errors.Is(err, chat.ErrInvalidInput) {
			utils.ErrorResponse(c, http.StatusBadRequest, "Message and sessionId are required", nil)
			return
		}
		h.logger.WithError(err).Error("Chat resolution failed")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to process message", err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"chat_log_id":   result.ChatLogID,
		"response_time": time.Since(startTime).Milliseconds(),
	}).Info("Chat message resolved")

	utils.SuccessResponse(c, http.StatusOK, "Message processed", models.ChatResponse{
		Response:  result.Response,
		ChatLogID: result.ChatLogID,
		Topic:     result.Topic,
	})
}
