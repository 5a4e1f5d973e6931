package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coursechat/backend/internal/models"
	"github.com/coursechat/backend/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeQuizRepo struct {
	quiz *models.Quiz
}

func (f *fakeQuizRepo) Create(quiz *models.Quiz) error { return nil }
func (f *fakeQuizRepo) GetByID(id uint) (*models.Quiz, error) {
	if f.quiz == nil || f.quiz.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return f.quiz, nil
}
func (f *fakeQuizRepo) GetActive() ([]models.Quiz, error) {
	if f.quiz == nil {
		return nil, nil
	}
	return []models.Quiz{*f.quiz}, nil
}
func (f *fakeQuizRepo) GetRecent(limit int) ([]models.Quiz, error) { return nil, nil }
func (f *fakeQuizRepo) Update(quiz *models.Quiz) error             { return nil }
func (f *fakeQuizRepo) Delete(id uint) error                       { return nil }
func (f *fakeQuizRepo) CountActive() (int64, error)                { return 0, nil }

type fakeSubmitSessionRepo struct {
	upserted []string
}

func (f *fakeSubmitSessionRepo) Upsert(sessionID, userAgent, ipAddress string) (*models.ChatSession, error) {
	f.upserted = append(f.upserted, sessionID)
	return &models.ChatSession{SessionID: sessionID}, nil
}
func (f *fakeSubmitSessionRepo) GetBySessionID(sessionID string) (*models.ChatSession, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeSubmitSessionRepo) GetWithHistory(sessionID string, logLimit, attemptLimit int) (*models.ChatSession, error) {
	return nil, gorm.ErrRecordNotFound
}

type fakeAttemptRepo struct {
	created []models.QuizAttempt
}

func (f *fakeAttemptRepo) Create(attempt *models.QuizAttempt) error {
	f.created = append(f.created, *attempt)
	return nil
}
func (f *fakeAttemptRepo) GetBySession(sessionID string, limit int) ([]models.QuizAttempt, error) {
	return f.created, nil
}

func gradingTestQuiz() *models.Quiz {
	return &models.Quiz{
		BaseModel: models.BaseModel{ID: 4},
		Title:     "Loops and Conditionals",
		IsActive:  true,
		Questions: []models.QuizQuestion{
			{BaseModel: models.BaseModel{ID: 10}, Question: "Which loop checks its condition first?", CorrectAnswer: 1},
			{BaseModel: models.BaseModel{ID: 11}, Question: "What does break do?", CorrectAnswer: 2, Explanation: "break exits the enclosing loop."},
			{BaseModel: models.BaseModel{ID: 12}, Question: "How many times does a for loop with range 3 run?", CorrectAnswer: 0},
		},
	}
}

func newQuizTestServer(quizzes models.QuizRepository, sessions models.ChatSessionRepository, attempts models.QuizAttemptRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repos := &repository.RepositoryManager{
		Quiz:        quizzes,
		ChatSession: sessions,
		QuizAttempt: attempts,
	}
	handler := NewQuizHandler(repos, nil, logger)

	router := gin.New()
	router.POST("/api/quizzes/submit", handler.HandleSubmit)
	return router
}

func submitQuiz(t *testing.T, router *gin.Engine, req models.QuizSubmitRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/api/quizzes/submit", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, httpReq)
	return w
}

func TestQuizSubmit_GradesAnswersAndRecordsAttempt(t *testing.T) {
	quizzes := &fakeQuizRepo{quiz: gradingTestQuiz()}
	sessions := &fakeSubmitSessionRepo{}
	attempts := &fakeAttemptRepo{}
	router := newQuizTestServer(quizzes, sessions, attempts)

	w := submitQuiz(t, router, models.QuizSubmitRequest{
		QuizID:    4,
		SessionID: "session-abc",
		Answers:   []int{1, 0, 0}, // first and third correct
	})

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Success bool                      `json:"success"`
		Data    models.QuizSubmitResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, 2, envelope.Data.Score)
	assert.Equal(t, 3, envelope.Data.TotalQuestions)
	require.Len(t, envelope.Data.Results, 3)
	assert.True(t, envelope.Data.Results[0].IsCorrect)
	assert.False(t, envelope.Data.Results[1].IsCorrect)
	assert.Equal(t, "break exits the enclosing loop.", envelope.Data.Results[1].Explanation)
	assert.True(t, envelope.Data.Results[2].IsCorrect)

	// Attempt is persisted against an upserted session.
	assert.Equal(t, []string{"session-abc"}, sessions.upserted)
	require.Len(t, attempts.created, 1)
	assert.Equal(t, 2, attempts.created[0].Score)
	assert.Equal(t, 3, attempts.created[0].TotalQuestions)
	assert.Equal(t, "[1,0,0]", attempts.created[0].Answers)
}

func TestQuizSubmit_AllWrongScoresZero(t *testing.T) {
	quizzes := &fakeQuizRepo{quiz: gradingTestQuiz()}
	router := newQuizTestServer(quizzes, &fakeSubmitSessionRepo{}, &fakeAttemptRepo{})

	w := submitQuiz(t, router, models.QuizSubmitRequest{
		QuizID:    4,
		SessionID: "session-abc",
		Answers:   []int{3, 3, 3},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data models.QuizSubmitResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, 0, envelope.Data.Score)
	for _, result := range envelope.Data.Results {
		assert.False(t, result.IsCorrect)
	}
}

func TestQuizSubmit_AnswerCountMismatchRejected(t *testing.T) {
	quizzes := &fakeQuizRepo{quiz: gradingTestQuiz()}
	attempts := &fakeAttemptRepo{}
	router := newQuizTestServer(quizzes, &fakeSubmitSessionRepo{}, attempts)

	w := submitQuiz(t, router, models.QuizSubmitRequest{
		QuizID:    4,
		SessionID: "session-abc",
		Answers:   []int{1},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, attempts.created)
}

func TestQuizSubmit_UnknownQuizNotFound(t *testing.T) {
	router := newQuizTestServer(&fakeQuizRepo{}, &fakeSubmitSessionRepo{}, &fakeAttemptRepo{})

	w := submitQuiz(t, router, models.QuizSubmitRequest{
		QuizID:    99,
		SessionID: "session-abc",
		Answers:   []int{0},
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
