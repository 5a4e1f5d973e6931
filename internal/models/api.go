package models

import "time"

type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"sessionId" binding:"required"`
}

type ChatResponse struct {
	Response  string  `json:"response"`
	ChatLogID uint    `json:"chatLogId"`
	Topic     *string `json:"topic"`
}

type SessionRequest struct {
	SessionID string `json:"sessionId"`
}

type SessionResponse struct {
	SessionID string `json:"sessionId"`
	Exists    bool   `json:"exists"`
}

type TopicRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

type FAQRequest struct {
	Question string   `json:"question" binding:"required"`
	Answer   string   `json:"answer" binding:"required"`
	Keywords []string `json:"keywords"`
	TopicID  *uint    `json:"topicId"`
}

type NoteRequest struct {
	Title    string   `json:"title" binding:"required"`
	Content  string   `json:"content" binding:"required"`
	Keywords []string `json:"keywords"`
	TopicID  *uint    `json:"topicId"`
	IsActive *bool    `json:"isActive"`
}

type QuizQuestionRequest struct {
	Question      string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"required"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

type QuizRequest struct {
	Title       string                `json:"title" binding:"required"`
	Description string                `json:"description"`
	TopicID     *uint                 `json:"topicId"`
	Questions   []QuizQuestionRequest `json:"questions"`
}

type QuizSubmitRequest struct {
	QuizID    uint   `json:"quizId" binding:"required"`
	SessionID string `json:"sessionId" binding:"required"`
	Answers   []int  `json:"answers"`
}

type QuizQuestionResult struct {
	QuestionID    uint   `json:"questionId"`
	UserAnswer    int    `json:"userAnswer"`
	CorrectAnswer int    `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
	Explanation   string `json:"explanation,omitempty"`
}

type QuizSubmitResponse struct {
	Score          int                  `json:"score"`
	TotalQuestions int                  `json:"totalQuestions"`
	Results        []QuizQuestionResult `json:"results"`
}

type FeedbackRequest struct {
	ChatLogID uint   `json:"chatLogId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type ActivityItem struct {
	ID        uint      `json:"id"`
	Type      string    `json:"type"` // note, quiz or faq
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type StatsResponse struct {
	TotalTopics    int64          `json:"totalTopics"`
	TotalNotes     int64          `json:"totalNotes"`
	TotalQuizzes   int64          `json:"totalQuizzes"`
	TotalFAQs      int64          `json:"totalFaqs"`
	RecentActivity []ActivityItem `json:"recentActivity"`
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Timestamp string            `json:"timestamp"`
	Uptime    string            `json:"uptime"`
	Services  map[string]string `json:"services"`
}
