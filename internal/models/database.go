package models

// GORM models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// StringArray for PostgreSQL array support
type StringArray []string

func (s StringArray) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "{}", nil
	}
	return fmt.Sprintf("{%s}", strings.Join(s, ",")), nil
}

// Scan is lenient on purpose: a malformed keyword column degrades to an
// empty list so one bad row cannot abort candidate scoring.
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = StringArray{}
		return nil
	}

	switch v := value.(type) {
	case string:
		v = strings.Trim(strings.TrimSpace(v), "{}")
		if v == "" {
			*s = StringArray{}
			return nil
		}
		*s = StringArray(strings.Split(v, ","))
	case []byte:
		return s.Scan(string(v))
	default:
		*s = StringArray{}
	}
	return nil
}

// Base model with common fields
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Topic groups notes, FAQs and quizzes. Deleting a topic cascades to its content.
type Topic struct {
	BaseModel
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`

	// Associations
	FAQs    []FAQ  `json:"faqs,omitempty" gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE"`
	Notes   []Note `json:"notes,omitempty" gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE"`
	Quizzes []Quiz `json:"quizzes,omitempty" gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE"`

	// Content counts populated by list queries, not stored
	FAQCount  int64 `json:"faq_count" gorm:"-"`
	NoteCount int64 `json:"note_count" gorm:"-"`
	QuizCount int64 `json:"quiz_count" gorm:"-"`
}

// FAQ is a curated question/answer pair matched against chat queries.
type FAQ struct {
	BaseModel
	Question string      `json:"question" gorm:"type:text;not null"`
	Answer   string      `json:"answer" gorm:"type:text;not null"`
	Keywords StringArray `json:"keywords" gorm:"type:text[]"`
	TopicID  *uint       `json:"topic_id"`

	// Associations
	Topic *Topic `json:"topic,omitempty" gorm:"foreignKey:TopicID"`
}

// Note is freeform learning material, same matching shape as an FAQ.
type Note struct {
	BaseModel
	Title    string      `json:"title" gorm:"not null"`
	Content  string      `json:"content" gorm:"type:text;not null"`
	Keywords StringArray `json:"keywords" gorm:"type:text[]"`
	TopicID  *uint       `json:"topic_id"`
	IsActive bool        `json:"is_active" gorm:"default:true"`

	// Associations
	Topic *Topic `json:"topic,omitempty" gorm:"foreignKey:TopicID"`
}

type Quiz struct {
	BaseModel
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	TopicID     *uint  `json:"topic_id"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`

	// Associations
	Topic     *Topic         `json:"topic,omitempty" gorm:"foreignKey:TopicID"`
	Questions []QuizQuestion `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}

type QuizQuestion struct {
	BaseModel
	QuizID        uint        `json:"quiz_id" gorm:"not null"`
	Question      string      `json:"question" gorm:"type:text;not null"`
	Options       StringArray `json:"options" gorm:"type:text[]"`
	CorrectAnswer int         `json:"correct_answer" gorm:"not null"`
	Explanation   string      `json:"explanation" gorm:"type:text"`
	Order         int         `json:"order" gorm:"column:question_order"`
}

// ChatSession groups chat logs and quiz attempts under one opaque token.
type ChatSession struct {
	BaseModel
	SessionID string `json:"session_id" gorm:"uniqueIndex;not null"`
	UserAgent string `json:"user_agent"`
	IPAddress string `json:"ip_address"`

	// Associations
	ChatLogs     []ChatLog     `json:"chat_logs,omitempty" gorm:"foreignKey:SessionID;references:SessionID"`
	QuizAttempts []QuizAttempt `json:"quiz_attempts,omitempty" gorm:"foreignKey:SessionID;references:SessionID"`
}

// ChatLog is the audit trail written by the answer pipeline. At most one
// of FAQID/NoteID is set; both are null for AI and static fallbacks.
type ChatLog struct {
	BaseModel
	SessionID   string    `json:"session_id" gorm:"index;not null"`
	UserQuery   string    `json:"user_query" gorm:"type:text;not null"`
	BotResponse string    `json:"bot_response" gorm:"type:text;not null"`
	FAQID       *uint     `json:"faq_id"`
	NoteID      *uint     `json:"note_id"`
	Timestamp   time.Time `json:"timestamp" gorm:"default:NOW()"`

	// Associations
	FAQ      *FAQ       `json:"faq,omitempty" gorm:"foreignKey:FAQID"`
	Note     *Note      `json:"note,omitempty" gorm:"foreignKey:NoteID"`
	Feedback []Feedback `json:"feedback,omitempty" gorm:"foreignKey:ChatLogID"`
}

// Feedback is a thumbs rating on a chat log entry: 1 = down, 2 = up.
type Feedback struct {
	BaseModel
	ChatLogID uint   `json:"chat_log_id" gorm:"not null"`
	Rating    int    `json:"rating" gorm:"not null;check:rating IN (1,2)"`
	Comment   string `json:"comment"`
}

type QuizAttempt struct {
	BaseModel
	SessionID      string    `json:"session_id" gorm:"index;not null"`
	QuizID         uint      `json:"quiz_id" gorm:"not null"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Answers        string    `json:"answers" gorm:"type:text"`
	CompletedAt    time.Time `json:"completed_at" gorm:"default:NOW()"`

	// Associations
	Quiz *Quiz `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
}

type Admin struct {
	BaseModel
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-" gorm:"not null"`
	Name     string `json:"name"`
	Role     string `json:"role" gorm:"default:'admin'"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

// Database interfaces for repository pattern
type TopicRepository interface {
	Create(topic *Topic) error
	GetByID(id uint) (*Topic, error)
	GetByName(name string) (*Topic, error)
	GetAll() ([]Topic, error)
	Update(topic *Topic) error
	Delete(id uint) error
	Count() (int64, error)
}

type FAQRepository interface {
	Create(faq *FAQ) error
	GetByID(id uint) (*FAQ, error)
	GetAll(withTopic bool) ([]FAQ, error)
	Search(query string, topicID *uint) ([]FAQ, error)
	GetRecent(limit int) ([]FAQ, error)
	Update(faq *FAQ) error
	Delete(id uint) error
	Count() (int64, error)
}

type NoteRepository interface {
	Create(note *Note) error
	GetByID(id uint) (*Note, error)
	GetAll(activeOnly, withTopic bool) ([]Note, error)
	Search(query string, topicID *uint, activeOnly bool) ([]Note, error)
	GetRecent(limit int) ([]Note, error)
	Update(note *Note) error
	Delete(id uint) error
	CountActive() (int64, error)
}

type QuizRepository interface {
	Create(quiz *Quiz) error
	GetByID(id uint) (*Quiz, error)
	GetActive() ([]Quiz, error)
	GetRecent(limit int) ([]Quiz, error)
	Update(quiz *Quiz) error
	Delete(id uint) error
	CountActive() (int64, error)
}

type ChatSessionRepository interface {
	// Upsert creates the session if the id is unseen, otherwise returns
	// the existing row. Safe under concurrent first messages.
	Upsert(sessionID, userAgent, ipAddress string) (*ChatSession, error)
	GetBySessionID(sessionID string) (*ChatSession, error)
	GetWithHistory(sessionID string, logLimit, attemptLimit int) (*ChatSession, error)
}

type ChatLogRepository interface {
	Create(log *ChatLog) error
	GetByID(id uint) (*ChatLog, error)
	GetBySession(sessionID string, limit int) ([]ChatLog, error)
}

type QuizAttemptRepository interface {
	Create(attempt *QuizAttempt) error
	GetBySession(sessionID string, limit int) ([]QuizAttempt, error)
}

type FeedbackRepository interface {
	Create(feedback *Feedback) error
	GetByChatLogID(chatLogID uint) ([]Feedback, error)
}

type AdminRepository interface {
	Create(admin *Admin) error
	GetByEmail(email string) (*Admin, error)
}

// TableName methods for custom table names
func (Topic) TableName() string        { return "topics" }
func (FAQ) TableName() string          { return "faqs" }
func (Note) TableName() string         { return "notes" }
func (Quiz) TableName() string         { return "quizzes" }
func (QuizQuestion) TableName() string { return "quiz_questions" }
func (ChatSession) TableName() string  { return "chat_sessions" }
func (ChatLog) TableName() string      { return "chat_logs" }
func (Feedback) TableName() string     { return "feedback" }
func (QuizAttempt) TableName() string  { return "quiz_attempts" }
func (Admin) TableName() string        { return "admins" }

// Model validation methods
func (t *Topic) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("topic name is required")
	}
	return nil
}

func (f *FAQ) Validate() error {
	if f.Question == "" {
		return fmt.Errorf("question is required")
	}
	if f.Answer == "" {
		return fmt.Errorf("answer is required")
	}
	return nil
}

func (n *Note) Validate() error {
	if n.Title == "" {
		return fmt.Errorf("title is required")
	}
	if n.Content == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}

func (cl *ChatLog) Validate() error {
	if cl.SessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if cl.UserQuery == "" {
		return fmt.Errorf("user query is required")
	}
	if cl.BotResponse == "" {
		return fmt.Errorf("bot response is required")
	}
	if cl.FAQID != nil && cl.NoteID != nil {
		return fmt.Errorf("chat log cannot reference both an FAQ and a note")
	}
	return nil
}

func (fb *Feedback) Validate() error {
	if fb.ChatLogID == 0 {
		return fmt.Errorf("chat log ID is required")
	}
	if fb.Rating != 1 && fb.Rating != 2 {
		return fmt.Errorf("invalid rating: %d", fb.Rating)
	}
	return nil
}

// GORM hooks
func (t *Topic) BeforeCreate(tx *gorm.DB) error {
	return t.Validate()
}

func (t *Topic) BeforeUpdate(tx *gorm.DB) error {
	return t.Validate()
}

func (f *FAQ) BeforeCreate(tx *gorm.DB) error {
	return f.Validate()
}

func (n *Note) BeforeCreate(tx *gorm.DB) error {
	return n.Validate()
}

func (cl *ChatLog) BeforeCreate(tx *gorm.DB) error {
	return cl.Validate()
}

func (fb *Feedback) BeforeCreate(tx *gorm.DB) error {
	return fb.Validate()
}
