package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/coursechat/backend/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	// Sample of the knowledge base embedded into the system prompt.
	groundingFAQLimit  = 5
	groundingNoteLimit = 3
	noteExcerptRunes   = 150

	// Definition lookups get a lower temperature than free-form chat so
	// the answers stay close to textbook phrasing.
	termTemperature = 0.3
)

const personaPrompt = `You are a COM1111 Introduction to Computer Science teaching assistant. Your goal is to help students learn computer science concepts.

IMPORTANT GUIDELINES:
1. ONLY answer questions that are related to computer science fundamentals, programming, algorithms, data structures, computer architecture, operating systems, networking, or software development.
2. If the question is not related to computer science, politely explain that you can only help with computer science topics.
3. Keep your answers educational, clear, and concise.
4. If you're not sure about something, acknowledge the limitations of your knowledge.
5. Never make up facts or information that could be misleading.`

// Grounding is the knowledge-base sample embedded into the system prompt.
type Grounding struct {
	FAQs  []models.FAQ
	Notes []models.Note
}

type Service struct {
	client      *Client
	logger      *logrus.Logger
	maxTokens   int
	temperature float64
}

func NewService(client *Client, logger *logrus.Logger, maxTokens int, temperature float64) *Service {
	return &Service{
		client:      client,
		logger:      logger,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

// AnswerQuestion generates a free-form answer grounded in the course
// material sample. Returns empty string on any failure; the caller owns
// the fallback path and never sees the error.
func (s *Service) AnswerQuestion(ctx context.Context, question string, grounding Grounding) string {
	systemPrompt := s.buildSystemPrompt(grounding)

	answer, err := s.client.Complete(ctx, systemPrompt, question, s.maxTokens, s.temperature)
	if err != nil {
		s.logger.WithError(err).WithField("question", question).Warn("AI answer generation failed")
		return ""
	}

	return answer
}

// ExplainTerm generates an answer for a detected definition-style query,
// specialized by the pattern kind. Same soft-failure contract as
// AnswerQuestion.
func (s *Service) ExplainTerm(ctx context.Context, term, kind string, grounding Grounding) string {
	systemPrompt := s.buildSystemPrompt(grounding)

	var userPrompt string
	switch kind {
	case "what-is":
		userPrompt = fmt.Sprintf("Give a clear, concise definition of %q as used in introductory computer science.", term)
	case "explain":
		userPrompt = fmt.Sprintf("Explain %q in detail for an introductory computer science student, including where it is used in practice.", term)
	case "define":
		userPrompt = fmt.Sprintf("Provide a precise definition of %q.", term)
	default:
		userPrompt = fmt.Sprintf("Tell me about %q in the context of introductory computer science.", term)
	}

	answer, err := s.client.Complete(ctx, systemPrompt, userPrompt, s.maxTokens, termTemperature)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"term": term,
			"kind": kind,
		}).Warn("AI term explanation failed")
		return ""
	}

	return answer
}

func (s *Service) buildSystemPrompt(grounding Grounding) string {
	var b strings.Builder
	b.WriteString(personaPrompt)

	faqs := grounding.FAQs
	if len(faqs) > groundingFAQLimit {
		faqs = faqs[:groundingFAQLimit]
	}
	notes := grounding.Notes
	if len(notes) > groundingNoteLimit {
		notes = notes[:groundingNoteLimit]
	}

	if len(faqs) > 0 || len(notes) > 0 {
		b.WriteString("\n\nAVAILABLE COURSE CONTEXT (use this to inform your responses):")
	}

	if len(faqs) > 0 {
		b.WriteString("\nFAQs:\n")
		for _, faq := range faqs {
			fmt.Fprintf(&b, "Q: %s\nA: %s\n\n", faq.Question, faq.Answer)
		}
	}

	if len(notes) > 0 {
		b.WriteString("\nNotes:\n")
		for _, note := range notes {
			fmt.Fprintf(&b, "Topic: %s\nContent: %s\n\n", note.Title, truncateRunes(note.Content, noteExcerptRunes))
		}
	}

	return b.String()
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
