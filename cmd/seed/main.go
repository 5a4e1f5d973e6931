package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/coursechat/backend/internal/auth"
	"github.com/coursechat/backend/internal/config"
	"github.com/coursechat/backend/internal/database"
	"github.com/coursechat/backend/internal/models"
	"github.com/coursechat/backend/internal/repository"
	"github.com/coursechat/backend/pkg/utils"
	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/debug"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	dryRun    = flag.Bool("dry-run", false, "Print what would be seeded without writing to the database")
	verbose   = flag.Bool("verbose", false, "Enable verbose logging")
	importURL = flag.String("import-url", "", "Scrape a course page into inactive draft notes")
)

const (
	defaultAdminEmail    = "admin@com1111.edu"
	defaultAdminPassword = "admin123"
	defaultAdminName     = "Sulaimon Yusuf"
)

func main() {
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	utils.InitLogger()
	logger := utils.GetLogger()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	logger.Info("Starting course content seeder...")

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	if *dryRun {
		logger.WithFields(logrus.Fields{
			"topics":  len(courseTopics),
			"faqs":    len(courseFAQs),
			"notes":   len(courseNotes),
			"quizzes": len(courseQuizzes),
		}).Info("DRY RUN: would seed course content")
		return
	}

	dbManager, err := database.NewManager(&database.Config{
		DatabaseURL: cfg.Database.URL,
		RedisURL:    cfg.Redis.URL,
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database manager")
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(); err != nil {
		logger.WithError(err).Fatal("Database migration failed")
	}

	repoManager := repository.NewRepositoryManager(dbManager.DB)
	seeder := &Seeder{repos: repoManager, logger: logger}

	if err := seeder.Run(); err != nil {
		logger.WithError(err).Fatal("Seeding failed")
	}

	if *importURL != "" {
		if err := seeder.ImportPage(*importURL); err != nil {
			logger.WithError(err).Fatal("Page import failed")
		}
	}

	logger.Info("Seeding completed successfully")
}

// Seeder writes the COM1111 starter content. Every step is idempotent so
// the command can be re-run safely.
type Seeder struct {
	repos  *repository.RepositoryManager
	logger *logrus.Logger
}

func (s *Seeder) Run() error {
	if err := s.seedAdmin(); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	topicIDs, err := s.seedTopics()
	if err != nil {
		return fmt.Errorf("seed topics: %w", err)
	}

	if err := s.seedFAQs(topicIDs); err != nil {
		return fmt.Errorf("seed faqs: %w", err)
	}
	if err := s.seedNotes(topicIDs); err != nil {
		return fmt.Errorf("seed notes: %w", err)
	}
	if err := s.seedQuizzes(topicIDs); err != nil {
		return fmt.Errorf("seed quizzes: %w", err)
	}
	return nil
}

func (s *Seeder) seedAdmin() error {
	if _, err := s.repos.Admin.GetByEmail(defaultAdminEmail); err == nil {
		s.logger.Info("Admin account already exists")
		return nil
	}

	hash, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		Email:    defaultAdminEmail,
		Password: hash,
		Name:     defaultAdminName,
		Role:     "admin",
		IsActive: true,
	}
	if err := s.repos.Admin.Create(admin); err != nil {
		return err
	}

	s.logger.WithField("email", admin.Email).Info("Created admin account")
	return nil
}

func (s *Seeder) seedTopics() (map[string]uint, error) {
	ids := make(map[string]uint, len(courseTopics))

	for _, t := range courseTopics {
		existing, err := s.repos.Topic.GetByName(t.Name)
		if err == nil {
			ids[t.Name] = existing.ID
			continue
		}

		topic := &models.Topic{
			Name:        t.Name,
			Description: t.Description,
			Icon:        t.Icon,
			Color:       t.Color,
		}
		if err := s.repos.Topic.Create(topic); err != nil {
			return nil, err
		}
		ids[t.Name] = topic.ID
		s.logger.WithField("topic", t.Name).Debug("Created topic")
	}

	s.logger.WithField("topics", len(ids)).Info("Topics ready")
	return ids, nil
}

func (s *Seeder) seedFAQs(topicIDs map[string]uint) error {
	count, err := s.repos.FAQ.Count()
	if err != nil {
		return err
	}
	if count >= int64(len(courseFAQs)) {
		s.logger.WithField("existing", count).Info("FAQs already seeded")
		return nil
	}

	for _, f := range courseFAQs {
		topicID, ok := topicIDs[f.Topic]
		if !ok {
			continue
		}
		faq := &models.FAQ{
			Question: f.Question,
			Answer:   f.Answer,
			Keywords: models.StringArray(f.Keywords),
			TopicID:  &topicID,
		}
		if err := s.repos.FAQ.Create(faq); err != nil {
			return err
		}
	}

	s.logger.WithField("faqs", len(courseFAQs)).Info("Seeded FAQs")
	return nil
}

func (s *Seeder) seedNotes(topicIDs map[string]uint) error {
	count, err := s.repos.Note.CountActive()
	if err != nil {
		return err
	}
	if count >= int64(len(courseNotes)) {
		s.logger.WithField("existing", count).Info("Notes already seeded")
		return nil
	}

	for _, n := range courseNotes {
		topicID, ok := topicIDs[n.Topic]
		if !ok {
			continue
		}
		note := &models.Note{
			Title:    n.Title,
			Content:  n.Content,
			Keywords: models.StringArray(n.Keywords),
			TopicID:  &topicID,
			IsActive: true,
		}
		if err := s.repos.Note.Create(note); err != nil {
			return err
		}
	}

	s.logger.WithField("notes", len(courseNotes)).Info("Seeded notes")
	return nil
}

func (s *Seeder) seedQuizzes(topicIDs map[string]uint) error {
	count, err := s.repos.Quiz.CountActive()
	if err != nil {
		return err
	}
	if count >= int64(len(courseQuizzes)) {
		s.logger.WithField("existing", count).Info("Quizzes already seeded")
		return nil
	}

	for _, q := range courseQuizzes {
		topicID, ok := topicIDs[q.Topic]
		if !ok {
			continue
		}
		quiz := &models.Quiz{
			Title:       q.Title,
			Description: q.Description,
			TopicID:     &topicID,
			IsActive:    true,
		}
		for i, question := range q.Questions {
			quiz.Questions = append(quiz.Questions, models.QuizQuestion{
				Question:      question.Question,
				Options:       models.StringArray(question.Options),
				CorrectAnswer: question.CorrectAnswer,
				Explanation:   question.Explanation,
				Order:         i,
			})
		}
		if err := s.repos.Quiz.Create(quiz); err != nil {
			return err
		}
	}

	s.logger.WithField("quizzes", len(courseQuizzes)).Info("Seeded quizzes")
	return nil
}

// ImportPage scrapes a course page into inactive draft notes, one per
// section, for the admin to review and activate.
func (s *Seeder) ImportPage(pageURL string) error {
	s.logger.WithField("url", pageURL).Info("Importing course page")

	c := colly.NewCollector(
		colly.UserAgent("CourseChat-Seeder/1.0"),
	)
	if *verbose {
		c.SetDebugger(&debug.LogDebugger{})
	}
	c.SetRequestTimeout(30 * time.Second)

	whitespace := regexp.MustCompile(`\s+`)
	imported := 0
	var scrapeErr error

	c.OnHTML("body", func(e *colly.HTMLElement) {
		e.DOM.Find("nav, header, footer, script, style").Remove()

		pageTitle := strings.TrimSpace(e.DOM.Find("h1").First().Text())
		if pageTitle == "" {
			pageTitle = pageURL
		}

		e.ForEach("h2, h3", func(_ int, h *colly.HTMLElement) {
			title := strings.TrimSpace(h.Text)
			if title == "" {
				return
			}

			body := strings.TrimSpace(h.DOM.NextUntil("h2, h3").Text())
			body = whitespace.ReplaceAllString(body, " ")
			if len(body) < 80 {
				return
			}

			note := &models.Note{
				Title:    fmt.Sprintf("%s: %s", pageTitle, title),
				Content:  body,
				Keywords: models.StringArray{},
				IsActive: false,
			}
			if err := s.repos.Note.Create(note); err != nil {
				s.logger.WithError(err).WithField("section", title).Warn("Failed to save imported note")
				return
			}
			imported++
		})
	})

	c.OnError(func(_ *colly.Response, err error) {
		scrapeErr = err
	})

	if err := c.Visit(pageURL); err != nil {
		return fmt.Errorf("failed to visit page: %w", err)
	}
	if scrapeErr != nil {
		return fmt.Errorf("scrape error: %w", scrapeErr)
	}

	s.logger.WithField("notes", imported).Info("Imported draft notes")
	return nil
}
