package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coursechat/backend/internal/ai"
	"github.com/coursechat/backend/internal/models"
	"github.com/coursechat/backend/internal/repository"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// In-memory fakes for the repositories the pipeline touches.

type fakeFAQRepo struct {
	faqs []models.FAQ
	err  error
}

func (f *fakeFAQRepo) Create(faq *models.FAQ) error { return nil }
func (f *fakeFAQRepo) GetByID(id uint) (*models.FAQ, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeFAQRepo) GetAll(withTopic bool) ([]models.FAQ, error) { return f.faqs, f.err }
func (f *fakeFAQRepo) Search(query string, topicID *uint) ([]models.FAQ, error) {
	return f.faqs, f.err
}
func (f *fakeFAQRepo) GetRecent(limit int) ([]models.FAQ, error) { return f.faqs, f.err }
func (f *fakeFAQRepo) Update(faq *models.FAQ) error              { return nil }
func (f *fakeFAQRepo) Delete(id uint) error                      { return nil }
func (f *fakeFAQRepo) Count() (int64, error)                     { return int64(len(f.faqs)), nil }

type fakeNoteRepo struct {
	notes []models.Note
	err   error
}

func (f *fakeNoteRepo) Create(note *models.Note) error { return nil }
func (f *fakeNoteRepo) GetByID(id uint) (*models.Note, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeNoteRepo) GetAll(activeOnly, withTopic bool) ([]models.Note, error) {
	return f.notes, f.err
}
func (f *fakeNoteRepo) Search(query string, topicID *uint, activeOnly bool) ([]models.Note, error) {
	return f.notes, f.err
}
func (f *fakeNoteRepo) GetRecent(limit int) ([]models.Note, error) { return f.notes, f.err }
func (f *fakeNoteRepo) Update(note *models.Note) error             { return nil }
func (f *fakeNoteRepo) Delete(id uint) error                       { return nil }
func (f *fakeNoteRepo) CountActive() (int64, error)                { return int64(len(f.notes)), nil }

type fakeTopicRepo struct {
	topics []models.Topic
}

func (f *fakeTopicRepo) Create(topic *models.Topic) error { return nil }
func (f *fakeTopicRepo) GetByID(id uint) (*models.Topic, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeTopicRepo) GetByName(name string) (*models.Topic, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeTopicRepo) GetAll() ([]models.Topic, error) { return f.topics, nil }
func (f *fakeTopicRepo) Update(topic *models.Topic) error { return nil }
func (f *fakeTopicRepo) Delete(id uint) error             { return nil }
func (f *fakeTopicRepo) Count() (int64, error)            { return int64(len(f.topics)), nil }

type fakeSessionRepo struct {
	sessions map[string]*models.ChatSession
	err      error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*models.ChatSession)}
}

func (f *fakeSessionRepo) Upsert(sessionID, userAgent, ipAddress string) (*models.ChatSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	if existing, ok := f.sessions[sessionID]; ok {
		return existing, nil
	}
	session := &models.ChatSession{SessionID: sessionID, UserAgent: userAgent, IPAddress: ipAddress}
	session.ID = uint(len(f.sessions) + 1)
	f.sessions[sessionID] = session
	return session, nil
}

func (f *fakeSessionRepo) GetBySessionID(sessionID string) (*models.ChatSession, error) {
	if s, ok := f.sessions[sessionID]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSessionRepo) GetWithHistory(sessionID string, logLimit, attemptLimit int) (*models.ChatSession, error) {
	return f.GetBySessionID(sessionID)
}

type fakeChatLogRepo struct {
	logs []*models.ChatLog
	err  error
}

func (f *fakeChatLogRepo) Create(log *models.ChatLog) error {
	if f.err != nil {
		return f.err
	}
	log.ID = uint(len(f.logs) + 1)
	f.logs = append(f.logs, log)
	return nil
}

func (f *fakeChatLogRepo) GetByID(id uint) (*models.ChatLog, error) {
	for _, l := range f.logs {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeChatLogRepo) GetBySession(sessionID string, limit int) ([]models.ChatLog, error) {
	var out []models.ChatLog
	for _, l := range f.logs {
		if l.SessionID == sessionID {
			out = append(out, *l)
		}
	}
	return out, nil
}

type testEnv struct {
	service  *Service
	faqs     *fakeFAQRepo
	notes    *fakeNoteRepo
	topics   *fakeTopicRepo
	sessions *fakeSessionRepo
	chatLogs *fakeChatLogRepo
	aiServer *httptest.Server
}

func newTestEnv(t *testing.T, aiHandler http.HandlerFunc) *testEnv {
	t.Helper()
	return newTestEnvWithThresholds(t, aiHandler, DefaultThresholds())
}

func newTestEnvWithThresholds(t *testing.T, aiHandler http.HandlerFunc, thresholds Thresholds) *testEnv {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)

	server := httptest.NewServer(aiHandler)
	t.Cleanup(server.Close)

	client := ai.NewClient(server.URL, "test-key", "test-model", logger)
	aiService := ai.NewService(client, logger, 300, 0.7)

	env := &testEnv{
		faqs:     &fakeFAQRepo{},
		notes:    &fakeNoteRepo{},
		topics:   &fakeTopicRepo{},
		sessions: newFakeSessionRepo(),
		chatLogs: &fakeChatLogRepo{},
		aiServer: server,
	}

	repos := &repository.RepositoryManager{
		Topic:       env.topics,
		FAQ:         env.faqs,
		Note:        env.notes,
		ChatSession: env.sessions,
		ChatLog:     env.chatLogs,
	}

	env.service = NewService(repos, aiService, thresholds, logger)
	return env
}

func aiRespondsWith(content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := ai.ChatCompletionResponse{
			Choices: []ai.ChatCompletionChoice{{
				Message: ai.ChatMessage{Role: "assistant", Content: content},
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func aiFails() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func TestResolveMessage_KnowledgeBaseHit(t *testing.T) {
	env := newTestEnv(t, aiFails())
	faq := models.FAQ{
		Question: "What are variables in programming?",
		Answer:   "Variables are containers for storing data values.",
		Keywords: models.StringArray{"variable", "data", "memory"},
		Topic:    &models.Topic{Name: "Programming Basics"},
	}
	faq.ID = 7
	env.faqs.faqs = []models.FAQ{faq}

	result, err := env.service.ResolveMessage(context.Background(), "What is a variable?", "sess-1", "ua", "1.2.3.4")
	require.NoError(t, err)

	assert.Equal(t, faq.Answer, result.Response)
	require.NotNil(t, result.Topic)
	assert.Equal(t, "Programming Basics", *result.Topic)

	require.Len(t, env.chatLogs.logs, 1)
	log := env.chatLogs.logs[0]
	require.NotNil(t, log.FAQID)
	assert.Equal(t, uint(7), *log.FAQID)
	assert.Nil(t, log.NoteID)
	assert.Equal(t, result.ChatLogID, log.ID)
}

func TestResolveMessage_NoteHitSetsNoteRef(t *testing.T) {
	env := newTestEnv(t, aiFails())
	note := models.Note{
		Title:    "Recursion",
		Content:  "Recursion is when a function calls itself. Recursion needs a base case. Recursion can be elegant.",
		IsActive: true,
		Topic:    &models.Topic{Name: "Algorithms"},
	}
	note.ID = 3
	env.notes.notes = []models.Note{note}

	result, err := env.service.ResolveMessage(context.Background(), "explain recursion", "sess-1", "ua", "1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, note.Content, result.Response)

	require.Len(t, env.chatLogs.logs, 1)
	log := env.chatLogs.logs[0]
	require.NotNil(t, log.NoteID)
	assert.Equal(t, uint(3), *log.NoteID)
	assert.Nil(t, log.FAQID)
}

func TestResolveMessage_AIFallback(t *testing.T) {
	env := newTestEnv(t, aiRespondsWith("A closure captures its environment."))

	result, err := env.service.ResolveMessage(context.Background(), "what is a closure?", "sess-1", "ua", "1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, "A closure captures its environment.", result.Response)
	assert.Nil(t, result.Topic)

	require.Len(t, env.chatLogs.logs, 1)
	log := env.chatLogs.logs[0]
	assert.Nil(t, log.FAQID)
	assert.Nil(t, log.NoteID)
}

// boundaryFAQ scores exactly 5.0 against "tell me about sorting": the
// topic name match contributes 5 and nothing else fires.
func boundaryFAQ() models.FAQ {
	faq := models.FAQ{
		Question: "When does quicksort beat mergesort?",
		Answer:   "Quicksort usually wins because of cache behaviour.",
		Topic:    &models.Topic{Name: "Sorting"},
	}
	faq.ID = 21
	return faq
}

func TestResolveMessage_ScoreAtThresholdUsesKnowledgeBase(t *testing.T) {
	env := newTestEnv(t, aiRespondsWith("Generated answer."))
	env.faqs.faqs = []models.FAQ{boundaryFAQ()}

	result, err := env.service.ResolveMessage(context.Background(), "tell me about sorting", "sess-1", "ua", "1.2.3.4")
	require.NoError(t, err)

	assert.Equal(t, "Quicksort usually wins because of cache behaviour.", result.Response)
	require.Len(t, env.chatLogs.logs, 1)
	require.NotNil(t, env.chatLogs.logs[0].FAQID)
	assert.Equal(t, uint(21), *env.chatLogs.logs[0].FAQID)
}

func TestResolveMessage_ScoreBelowThresholdFallsToAI(t *testing.T) {
	thresholds := Thresholds{FreeQuery: DefaultFreeQueryThreshold + 0.01, TermLookup: DefaultTermLookupThreshold}
	env := newTestEnvWithThresholds(t, aiRespondsWith("Generated answer."), thresholds)
	env.faqs.faqs = []models.FAQ{boundaryFAQ()}

	result, err := env.service.ResolveMessage(context.Background(), "tell me about sorting", "sess-1", "ua", "1.2.3.4")
	require.NoError(t, err)

	assert.Equal(t, "Generated answer.", result.Response)
	require.Len(t, env.chatLogs.logs, 1)
	assert.Nil(t, env.chatLogs.logs[0].FAQID)
	assert.Nil(t, env.chatLogs.logs[0].NoteID)
}

func TestResolveMessage_StaticFallbackListsTopics(t *testing.T) {
	env := newTestEnv(t, aiFails())
	env.topics.topics = []models.Topic{
		{Name: "Programming Basics"},
		{Name: "Algorithms"},
	}

	result, err := env.service.ResolveMessage(context.Background(), "what is the meaning of life?", "sess-1", "ua", "1.2.3.4")
	require.NoError(t, err)

	assert.Contains(t, result.Response, "knowledge base")
	assert.Contains(t, result.Response, "• Programming Basics")
	assert.Contains(t, result.Response, "• Algorithms")
	assert.Nil(t, result.Topic)

	require.Len(t, env.chatLogs.logs, 1)
	assert.Nil(t, env.chatLogs.logs[0].FAQID)
	assert.Nil(t, env.chatLogs.logs[0].NoteID)
}

func TestResolveMessage_InvalidInput(t *testing.T) {
	env := newTestEnv(t, aiFails())

	_, err := env.service.ResolveMessage(context.Background(), "   ", "sess-1", "ua", "1.2.3.4")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.service.ResolveMessage(context.Background(), "hello", "", "ua", "1.2.3.4")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestResolveMessage_SessionReused(t *testing.T) {
	env := newTestEnv(t, aiRespondsWith("answer"))

	_, err := env.service.ResolveMessage(context.Background(), "first question", "sess-1", "ua", "1.2.3.4")
	require.NoError(t, err)
	_, err = env.service.ResolveMessage(context.Background(), "second question", "sess-1", "ua", "1.2.3.4")
	require.NoError(t, err)

	assert.Len(t, env.sessions.sessions, 1)
	assert.Len(t, env.chatLogs.logs, 2)
}

func TestResolveMessage_LogFailureIsFatal(t *testing.T) {
	env := newTestEnv(t, aiRespondsWith("answer"))
	env.chatLogs.err = errors.New("disk full")

	_, err := env.service.ResolveMessage(context.Background(), "some question", "sess-1", "ua", "1.2.3.4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat log")
}

func TestResolveMessage_KnowledgeBaseLoadFailure(t *testing.T) {
	env := newTestEnv(t, aiRespondsWith("answer"))
	env.faqs.err = errors.New("connection refused")

	_, err := env.service.ResolveMessage(context.Background(), "some question", "sess-1", "ua", "1.2.3.4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "knowledge base")
}
