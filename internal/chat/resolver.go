package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/coursechat/backend/internal/ai"
	"github.com/coursechat/backend/internal/models"
	"github.com/coursechat/backend/internal/repository"
	"github.com/sirupsen/logrus"
)

// ErrInvalidInput is returned when the message or session id is missing.
var ErrInvalidInput = errors.New("message and session id are required")

// Thresholds are the confidence cutoffs for accepting a knowledge-base
// answer over the AI fallback.
type Thresholds struct {
	FreeQuery  float64
	TermLookup float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		FreeQuery:  DefaultFreeQueryThreshold,
		TermLookup: DefaultTermLookupThreshold,
	}
}

// Result is the outcome of one pipeline run.
type Result struct {
	Response  string
	ChatLogID uint
	Topic     *string
}

// Service runs the answer resolution pipeline: pattern check, candidate
// scoring, threshold gate, AI fallback, static fallback, audit log.
type Service struct {
	repos      *repository.RepositoryManager
	aiService  *ai.Service
	thresholds Thresholds
	logger     *logrus.Logger
}

func NewService(
	repos *repository.RepositoryManager,
	aiService *ai.Service,
	thresholds Thresholds,
	logger *logrus.Logger,
) *Service {
	return &Service{
		repos:      repos,
		aiService:  aiService,
		thresholds: thresholds,
		logger:     logger,
	}
}

// ResolveMessage answers a student message. Every path terminates in a
// persisted chat log with a non-empty response; AI failures are absorbed
// internally and only persistence errors surface.
func (s *Service) ResolveMessage(ctx context.Context, message, sessionID, userAgent, ipAddress string) (*Result, error) {
	message = strings.TrimSpace(message)
	if message == "" || strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidInput
	}

	s.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"message":    message,
	}).Debug("Resolving chat message")

	pattern := DetectPattern(message)

	faqs, notes, err := s.loadKnowledgeBase()
	if err != nil {
		return nil, fmt.Errorf("failed to load knowledge base: %w", err)
	}

	candidates := BuildCandidates(faqs, notes)

	var scored []ScoredCandidate
	var threshold float64
	if pattern != nil {
		scored = ScoreTerm(pattern.Term, candidates)
		threshold = s.thresholds.TermLookup
	} else {
		scored = ScoreFreeQuery(message, candidates)
		threshold = s.thresholds.FreeQuery
	}

	if len(scored) > 0 && scored[0].Score >= threshold {
		best := scored[0]
		s.logger.WithFields(logrus.Fields{
			"kind":  best.Candidate.Kind,
			"id":    best.Candidate.ID(),
			"score": best.Score,
		}).Info("Using knowledge base answer")
		return s.logAndRespond(ctx, message, sessionID, userAgent, ipAddress, best.Candidate.Body(), &best.Candidate)
	}

	s.logger.WithField("best_score", bestScore(scored)).Debug("No confident match, falling back to AI")

	grounding := ai.Grounding{FAQs: faqs, Notes: notes}
	var aiResponse string
	if pattern != nil {
		aiResponse = s.aiService.ExplainTerm(ctx, pattern.Term, string(pattern.Kind), grounding)
	} else {
		aiResponse = s.aiService.AnswerQuestion(ctx, message, grounding)
	}

	if aiResponse != "" {
		return s.logAndRespond(ctx, message, sessionID, userAgent, ipAddress, aiResponse, nil)
	}

	// Both the knowledge base and the AI came up empty; answer with the
	// static fallback listing what the assistant does cover.
	return s.logAndRespond(ctx, message, sessionID, userAgent, ipAddress, s.staticFallback(), nil)
}

// loadKnowledgeBase fetches FAQ and Note candidates concurrently; they
// are independent reads.
func (s *Service) loadKnowledgeBase() ([]models.FAQ, []models.Note, error) {
	var (
		wg      sync.WaitGroup
		faqs    []models.FAQ
		notes   []models.Note
		faqErr  error
		noteErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		faqs, faqErr = s.repos.FAQ.GetAll(true)
	}()
	go func() {
		defer wg.Done()
		notes, noteErr = s.repos.Note.GetAll(true, true)
	}()
	wg.Wait()

	if faqErr != nil {
		return nil, nil, faqErr
	}
	if noteErr != nil {
		return nil, nil, noteErr
	}
	return faqs, notes, nil
}

// logAndRespond is the pipeline's single mutation: upsert the session,
// persist the exchange, resolve the topic name. Failure here is fatal to
// the request since the response is not delivered without its audit row.
func (s *Service) logAndRespond(ctx context.Context, message, sessionID, userAgent, ipAddress, response string, matched *Candidate) (*Result, error) {
	session, err := s.repos.ChatSession.Upsert(sessionID, userAgent, ipAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert chat session: %w", err)
	}

	log := &models.ChatLog{
		SessionID:   session.SessionID,
		UserQuery:   message,
		BotResponse: response,
	}

	var topic *string
	if matched != nil {
		id := matched.ID()
		switch matched.Kind {
		case KindFAQ:
			log.FAQID = &id
		case KindNote:
			log.NoteID = &id
		}
		if name := matched.TopicName(); name != "" {
			topic = &name
		}
	}

	if err := s.repos.ChatLog.Create(log); err != nil {
		return nil, fmt.Errorf("failed to persist chat log: %w", err)
	}

	return &Result{
		Response:  response,
		ChatLogID: log.ID,
		Topic:     topic,
	}, nil
}

// staticFallback is the guaranteed terminal response when both the
// database and the AI fail, enumerating the topics actually on file.
func (s *Service) staticFallback() string {
	var b strings.Builder
	b.WriteString("I don't have specific information about that topic in my knowledge base. ")
	b.WriteString("I can only answer questions based on the course materials that have been uploaded to the system.")

	topics, err := s.repos.Topic.GetAll()
	if err != nil {
		s.logger.WithError(err).Warn("Failed to list topics for fallback message")
	}
	if len(topics) > 0 {
		b.WriteString("\n\nYou can try asking about:\n")
		for _, t := range topics {
			b.WriteString("• ")
			b.WriteString(t.Name)
			b.WriteString("\n")
		}
	}

	b.WriteString("\nIf you need information about a topic that's not covered, please ask your instructor or check the course materials.")
	return b.String()
}

func bestScore(scored []ScoredCandidate) float64 {
	if len(scored) == 0 {
		return 0
	}
	return scored[0].Score
}
