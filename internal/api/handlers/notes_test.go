package handlers

import (
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

// recordingNoteRepo captures which listing method the handler picked
// and the filters it forwarded.
type recordingNoteRepo struct {
	notes []models.Note

	searchedQuery   string
	searchedTopicID *uint
	searchedActive  bool
	searchCalled    bool
	getAllCalled    bool
	getAllActive    bool
}

func (r *recordingNoteRepo) Create(note *models.Note) error { return nil }
func (r *recordingNoteRepo) GetByID(id uint) (*models.Note, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *recordingNoteRepo) GetAll(activeOnly, withTopic bool) ([]models.Note, error) {
	r.getAllCalled = true
	r.getAllActive = activeOnly
	return r.notes, nil
}
func (r *recordingNoteRepo) Search(query string, topicID *uint, activeOnly bool) ([]models.Note, error) {
	r.searchCalled = true
	r.searchedQuery = query
	r.searchedTopicID = topicID
	r.searchedActive = activeOnly
	return r.notes, nil
}
func (r *recordingNoteRepo) GetRecent(limit int) ([]models.Note, error) { return r.notes, nil }
func (r *recordingNoteRepo) Update(note *models.Note) error             { return nil }
func (r *recordingNoteRepo) Delete(id uint) error                       { return nil }
func (r *recordingNoteRepo) CountActive() (int64, error)                { return int64(len(r.notes)), nil }

func newNoteTestServer(repo models.NoteRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	handler := NewNoteHandler(&repository.RepositoryManager{Note: repo}, nil, logger)

	router := gin.New()
	router.GET("/api/notes", handler.HandleList)
	return router
}

func TestNoteList_NoFiltersUsesGetAll(t *testing.T) {
	repo := &recordingNoteRepo{}
	router := newNoteTestServer(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, repo.getAllCalled)
	assert.True(t, repo.getAllActive)
	assert.False(t, repo.searchCalled)
}

func TestNoteList_SearchParamRoutesToSearch(t *testing.T) {
	repo := &recordingNoteRepo{}
	router := newNoteTestServer(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notes?search=recursion", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, repo.searchCalled)
	assert.Equal(t, "recursion", repo.searchedQuery)
	assert.Nil(t, repo.searchedTopicID)
	assert.True(t, repo.searchedActive)
}

func TestNoteList_TopicFilterWithDraftsIncluded(t *testing.T) {
	repo := &recordingNoteRepo{}
	router := newNoteTestServer(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notes?topicId=3&all=true", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, repo.searchCalled)
	require.NotNil(t, repo.searchedTopicID)
	assert.Equal(t, uint(3), *repo.searchedTopicID)
	assert.False(t, repo.searchedActive)
}

func TestNoteList_InvalidTopicIDRejected(t *testing.T) {
	repo := &recordingNoteRepo{}
	router := newNoteTestServer(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notes?topicId=abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, repo.searchCalled)
	assert.False(t, repo.getAllCalled)
}
