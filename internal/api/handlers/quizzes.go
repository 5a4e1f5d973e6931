package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/coursechat/backend/internal/database"
	"github.com/coursechat/backend/internal/models"
	"github.com/coursechat/backend/internal/repository"
	"github.com/coursechat/backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type QuizHandler struct {
	repoManager *repository.RepositoryManager
	cache       *database.Cache
	logger      *logrus.Logger
}

func NewQuizHandler(repoManager *repository.RepositoryManager, cache *database.Cache, logger *logrus.Logger) *QuizHandler {
	return &QuizHandler{
		repoManager: repoManager,
		cache:       cache,
		logger:      logger,
	}
}

// HandleList returns active quizzes with their questions.
func (h *QuizHandler) HandleList(c *gin.Context) {
	quizzes, err := h.repoManager.Quiz.GetActive()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list quizzes")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to list quizzes", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Quizzes retrieved", quizzes)
}

// HandleGet returns a single quiz with questions, ordered.
func (h *QuizHandler) HandleGet(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Quiz ID is required", err)
		return
	}

	quiz, err := h.repoManager.Quiz.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Quiz not found", nil)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load quiz", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Quiz retrieved", quiz)
}

func (h *QuizHandler) HandleCreate(c *gin.Context) {
	var req models.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Quiz title is required", err)
		return
	}

	quiz := &models.Quiz{
		Title:       req.Title,
		Description: req.Description,
		TopicID:     req.TopicID,
		IsActive:    true,
	}
	for i, q := range req.Questions {
		quiz.Questions = append(quiz.Questions, models.QuizQuestion{
			Question:      q.Question,
			Options:       models.StringArray(q.Options),
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Order:         i,
		})
	}

	if err := h.repoManager.Quiz.Create(quiz); err != nil {
		h.logger.WithError(err).Error("Failed to create quiz")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create quiz", err)
		return
	}

	h.invalidateStats(c)
	utils.SuccessResponse(c, http.StatusCreated, "Quiz created", quiz)
}

func (h *QuizHandler) HandleUpdate(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Quiz ID is required", err)
		return
	}

	var req models.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Quiz title is required", err)
		return
	}

	quiz, err := h.repoManager.Quiz.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Quiz not found", nil)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load quiz", err)
		return
	}

	quiz.Title = req.Title
	quiz.Description = req.Description
	quiz.TopicID = req.TopicID

	if err := h.repoManager.Quiz.Update(quiz); err != nil {
		h.logger.WithError(err).Error("Failed to update quiz")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update quiz", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Quiz updated", quiz)
}

func (h *QuizHandler) HandleDelete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Quiz ID is required", err)
		return
	}

	if _, err := h.repoManager.Quiz.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Quiz not found", nil)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load quiz", err)
		return
	}

	if err := h.repoManager.Quiz.Delete(id); err != nil {
		h.logger.WithError(err).Error("Failed to delete quiz")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete quiz", err)
		return
	}

	h.invalidateStats(c)
	utils.SuccessResponse(c, http.StatusOK, "Quiz deleted", nil)
}

// HandleSubmit grades a quiz attempt and records it against the session.
func (h *QuizHandler) HandleSubmit(c *gin.Context) {
	var req models.QuizSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Quiz ID and session ID are required", err)
		return
	}

	quiz, err := h.repoManager.Quiz.GetByID(req.QuizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Quiz not found", nil)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load quiz", err)
		return
	}

	if len(req.Answers) != len(quiz.Questions) {
		utils.ErrorResponse(c, http.StatusBadRequest, "Answer count does not match question count", nil)
		return
	}

	score := 0
	results := make([]models.QuizQuestionResult, 0, len(quiz.Questions))
	for i, q := range quiz.Questions {
		correct := req.Answers[i] == q.CorrectAnswer
		if correct {
			score++
		}
		results = append(results, models.QuizQuestionResult{
			QuestionID:    q.ID,
			UserAnswer:    req.Answers[i],
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     correct,
			Explanation:   q.Explanation,
		})
	}

	// Attempts are tied to the chat session, creating it if the widget
	// never sent a message first.
	if _, err := h.repoManager.ChatSession.Upsert(req.SessionID, c.Request.UserAgent(), c.ClientIP()); err != nil {
		h.logger.WithError(err).Error("Failed to upsert session for quiz attempt")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to record attempt", err)
		return
	}

	answersJSON, _ := json.Marshal(req.Answers)
	attempt := &models.QuizAttempt{
		SessionID:      req.SessionID,
		QuizID:         quiz.ID,
		Score:          score,
		TotalQuestions: len(quiz.Questions),
		Answers:        string(answersJSON),
	}
	if err := h.repoManager.QuizAttempt.Create(attempt); err != nil {
		h.logger.WithError(err).Error("Failed to record quiz attempt")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to record attempt", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Quiz graded", models.QuizSubmitResponse{
		Score:          score,
		TotalQuestions: len(quiz.Questions),
		Results:        results,
	})
}

func (h *QuizHandler) invalidateStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := h.cache.InvalidateAdminStats(ctx); err != nil {
		h.logger.WithError(err).Warn("Failed to invalidate stats cache")
	}
}
