package repository

import (
	"github.com/coursechat/backend/internal/models"
	"gorm.io/gorm"
)

// TopicRepositoryImpl implements TopicRepository
type TopicRepositoryImpl struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) models.TopicRepository {
	return &TopicRepositoryImpl{db: db}
}

func (r *TopicRepositoryImpl) Create(topic *models.Topic) error {
	return r.db.Create(topic).Error
}

func (r *TopicRepositoryImpl) GetByID(id uint) (*models.Topic, error) {
	var topic models.Topic
	err := r.db.First(&topic, id).Error
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *TopicRepositoryImpl) GetByName(name string) (*models.Topic, error) {
	var topic models.Topic
	err := r.db.Where("name = ?", name).First(&topic).Error
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *TopicRepositoryImpl) GetAll() ([]models.Topic, error) {
	var topics []models.Topic
	if err := r.db.Order("name ASC").Find(&topics).Error; err != nil {
		return nil, err
	}

	faqCounts, err := r.countByTopic(&models.FAQ{})
	if err != nil {
		return nil, err
	}
	noteCounts, err := r.countByTopic(&models.Note{})
	if err != nil {
		return nil, err
	}
	quizCounts, err := r.countByTopic(&models.Quiz{})
	if err != nil {
		return nil, err
	}

	for i := range topics {
		topics[i].FAQCount = faqCounts[topics[i].ID]
		topics[i].NoteCount = noteCounts[topics[i].ID]
		topics[i].QuizCount = quizCounts[topics[i].ID]
	}
	return topics, nil
}

func (r *TopicRepositoryImpl) countByTopic(model interface{}) (map[uint]int64, error) {
	type row struct {
		TopicID uint
		Total   int64
	}
	var rows []row
	err := r.db.Model(model).
		Select("topic_id, count(*) as total").
		Where("topic_id IS NOT NULL").
		Group("topic_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.TopicID] = row.Total
	}
	return counts, nil
}

func (r *TopicRepositoryImpl) Update(topic *models.Topic) error {
	return r.db.Save(topic).Error
}

func (r *TopicRepositoryImpl) Delete(id uint) error {
	return r.db.Delete(&models.Topic{}, id).Error
}

func (r *TopicRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Topic{}).Count(&count).Error
	return count, err
}

// FAQRepositoryImpl implements FAQRepository
type FAQRepositoryImpl struct {
	db *gorm.DB
}

func NewFAQRepository(db *gorm.DB) models.FAQRepository {
	return &FAQRepositoryImpl{db: db}
}

func (r *FAQRepositoryImpl) Create(faq *models.FAQ) error {
	return r.db.Create(faq).Error
}

func (r *FAQRepositoryImpl) GetByID(id uint) (*models.FAQ, error) {
	var faq models.FAQ
	err := r.db.Preload("Topic").First(&faq, id).Error
	if err != nil {
		return nil, err
	}
	return &faq, nil
}

func (r *FAQRepositoryImpl) GetAll(withTopic bool) ([]models.FAQ, error) {
	var faqs []models.FAQ
	q := r.db.Order("created_at ASC")
	if withTopic {
		q = q.Preload("Topic")
	}
	err := q.Find(&faqs).Error
	return faqs, err
}

func (r *FAQRepositoryImpl) Search(query string, topicID *uint) ([]models.FAQ, error) {
	var faqs []models.FAQ
	q := r.db.Preload("Topic").Order("created_at DESC")
	if query != "" {
		pattern := "%" + query + "%"
		q = q.Where("question ILIKE ? OR answer ILIKE ?", pattern, pattern)
	}
	if topicID != nil {
		q = q.Where("topic_id = ?", *topicID)
	}
	err := q.Find(&faqs).Error
	return faqs, err
}

func (r *FAQRepositoryImpl) GetRecent(limit int) ([]models.FAQ, error) {
	var faqs []models.FAQ
	err := r.db.Order("created_at DESC").Limit(limit).Find(&faqs).Error
	return faqs, err
}

func (r *FAQRepositoryImpl) Update(faq *models.FAQ) error {
	return r.db.Save(faq).Error
}

func (r *FAQRepositoryImpl) Delete(id uint) error {
	return r.db.Delete(&models.FAQ{}, id).Error
}

func (r *FAQRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.FAQ{}).Count(&count).Error
	return count, err
}

// NoteRepositoryImpl implements NoteRepository
type NoteRepositoryImpl struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) models.NoteRepository {
	return &NoteRepositoryImpl{db: db}
}

func (r *NoteRepositoryImpl) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

func (r *NoteRepositoryImpl) GetByID(id uint) (*models.Note, error) {
	var note models.Note
	err := r.db.Preload("Topic").First(&note, id).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepositoryImpl) GetAll(activeOnly, withTopic bool) ([]models.Note, error) {
	var notes []models.Note
	q := r.db.Order("created_at ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if withTopic {
		q = q.Preload("Topic")
	}
	err := q.Find(&notes).Error
	return notes, err
}

func (r *NoteRepositoryImpl) Search(query string, topicID *uint, activeOnly bool) ([]models.Note, error) {
	var notes []models.Note
	q := r.db.Preload("Topic").Order("created_at DESC")
	if query != "" {
		pattern := "%" + query + "%"
		q = q.Where("title ILIKE ? OR content ILIKE ? OR array_to_string(keywords, ' ') ILIKE ?", pattern, pattern, pattern)
	}
	if topicID != nil {
		q = q.Where("topic_id = ?", *topicID)
	}
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&notes).Error
	return notes, err
}

func (r *NoteRepositoryImpl) GetRecent(limit int) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&notes).Error
	return notes, err
}

func (r *NoteRepositoryImpl) Update(note *models.Note) error {
	return r.db.Save(note).Error
}

func (r *NoteRepositoryImpl) Delete(id uint) error {
	return r.db.Delete(&models.Note{}, id).Error
}

func (r *NoteRepositoryImpl) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.Note{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

// QuizRepositoryImpl implements QuizRepository
type QuizRepositoryImpl struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) models.QuizRepository {
	return &QuizRepositoryImpl{db: db}
}

func (r *QuizRepositoryImpl) Create(quiz *models.Quiz) error {
	return r.db.Create(quiz).Error
}

func (r *QuizRepositoryImpl) GetByID(id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.db.Preload("Topic").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_order ASC")
		}).
		First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepositoryImpl) GetActive() ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := r.db.Where("is_active = ?", true).
		Preload("Topic").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_order ASC")
		}).
		Order("title ASC").
		Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepositoryImpl) GetRecent(limit int) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := r.db.Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepositoryImpl) Update(quiz *models.Quiz) error {
	return r.db.Save(quiz).Error
}

func (r *QuizRepositoryImpl) Delete(id uint) error {
	return r.db.Delete(&models.Quiz{}, id).Error
}

func (r *QuizRepositoryImpl) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.Quiz{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

// ChatSessionRepositoryImpl implements ChatSessionRepository
type ChatSessionRepositoryImpl struct {
	db *gorm.DB
}

func NewChatSessionRepository(db *gorm.DB) models.ChatSessionRepository {
	return &ChatSessionRepositoryImpl{db: db}
}

// Upsert relies on the unique index on session_id so concurrent first
// messages in the same session cannot create duplicate rows.
func (r *ChatSessionRepositoryImpl) Upsert(sessionID, userAgent, ipAddress string) (*models.ChatSession, error) {
	err := r.db.Exec(`
		INSERT INTO chat_sessions (session_id, user_agent, ip_address, created_at, updated_at)
		VALUES (?, ?, ?, NOW(), NOW())
		ON CONFLICT (session_id) DO NOTHING
	`, sessionID, userAgent, ipAddress).Error
	if err != nil {
		return nil, err
	}

	var session models.ChatSession
	err = r.db.Where("session_id = ?", sessionID).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *ChatSessionRepositoryImpl) GetBySessionID(sessionID string) (*models.ChatSession, error) {
	var session models.ChatSession
	err := r.db.Where("session_id = ?", sessionID).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *ChatSessionRepositoryImpl) GetWithHistory(sessionID string, logLimit, attemptLimit int) (*models.ChatSession, error) {
	var session models.ChatSession
	err := r.db.Where("session_id = ?", sessionID).
		Preload("ChatLogs", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp DESC").Limit(logLimit)
		}).
		Preload("QuizAttempts", func(db *gorm.DB) *gorm.DB {
			return db.Order("completed_at DESC").Limit(attemptLimit).Preload("Quiz").Preload("Quiz.Topic")
		}).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// ChatLogRepositoryImpl implements ChatLogRepository
type ChatLogRepositoryImpl struct {
	db *gorm.DB
}

func NewChatLogRepository(db *gorm.DB) models.ChatLogRepository {
	return &ChatLogRepositoryImpl{db: db}
}

func (r *ChatLogRepositoryImpl) Create(log *models.ChatLog) error {
	return r.db.Create(log).Error
}

func (r *ChatLogRepositoryImpl) GetByID(id uint) (*models.ChatLog, error) {
	var log models.ChatLog
	err := r.db.Preload("FAQ").Preload("FAQ.Topic").
		Preload("Note").Preload("Note.Topic").
		First(&log, id).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *ChatLogRepositoryImpl) GetBySession(sessionID string, limit int) ([]models.ChatLog, error) {
	var logs []models.ChatLog
	err := r.db.Where("session_id = ?", sessionID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

// QuizAttemptRepositoryImpl implements QuizAttemptRepository
type QuizAttemptRepositoryImpl struct {
	db *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) models.QuizAttemptRepository {
	return &QuizAttemptRepositoryImpl{db: db}
}

func (r *QuizAttemptRepositoryImpl) Create(attempt *models.QuizAttempt) error {
	return r.db.Create(attempt).Error
}

func (r *QuizAttemptRepositoryImpl) GetBySession(sessionID string, limit int) ([]models.QuizAttempt, error) {
	var attempts []models.QuizAttempt
	err := r.db.Where("session_id = ?", sessionID).
		Order("completed_at DESC").
		Limit(limit).
		Preload("Quiz").
		Find(&attempts).Error
	return attempts, err
}

// FeedbackRepositoryImpl implements FeedbackRepository
type FeedbackRepositoryImpl struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) models.FeedbackRepository {
	return &FeedbackRepositoryImpl{db: db}
}

func (r *FeedbackRepositoryImpl) Create(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

func (r *FeedbackRepositoryImpl) GetByChatLogID(chatLogID uint) ([]models.Feedback, error) {
	var feedback []models.Feedback
	err := r.db.Where("chat_log_id = ?", chatLogID).Find(&feedback).Error
	return feedback, err
}

// AdminRepositoryImpl implements AdminRepository
type AdminRepositoryImpl struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) models.AdminRepository {
	return &AdminRepositoryImpl{db: db}
}

func (r *AdminRepositoryImpl) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

func (r *AdminRepositoryImpl) GetByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.Where("email = ? AND is_active = ?", email, true).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// RepositoryManager bundles all repositories
type RepositoryManager struct {
	Topic       models.TopicRepository
	FAQ         models.FAQRepository
	Note        models.NoteRepository
	Quiz        models.QuizRepository
	ChatSession models.ChatSessionRepository
	ChatLog     models.ChatLogRepository
	QuizAttempt models.QuizAttemptRepository
	Feedback    models.FeedbackRepository
	Admin       models.AdminRepository
}

func NewRepositoryManager(db *gorm.DB) *RepositoryManager {
	return &RepositoryManager{
		Topic:       NewTopicRepository(db),
		FAQ:         NewFAQRepository(db),
		Note:        NewNoteRepository(db),
		Quiz:        NewQuizRepository(db),
		ChatSession: NewChatSessionRepository(db),
		ChatLog:     NewChatLogRepository(db),
		QuizAttempt: NewQuizAttemptRepository(db),
		Feedback:    NewFeedbackRepository(db),
		Admin:       NewAdminRepository(db),
	}
}
