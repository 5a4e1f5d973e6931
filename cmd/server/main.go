package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coursechat/backend/internal/ai"
	"github.com/coursechat/backend/internal/api/handlers"
	"github.com/coursechat/backend/internal/auth"
	"github.com/coursechat/backend/internal/chat"
	"github.com/coursechat/backend/internal/config"
	"github.com/coursechat/backend/internal/database"
	"github.com/coursechat/backend/internal/health"
	"github.com/coursechat/backend/internal/middleware"
	"github.com/coursechat/backend/internal/repository"
	"github.com/coursechat/backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	utils.InitLogger()
	logger := utils.GetLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	if err := cfg.ValidateAI(); err != nil {
		logger.WithError(err).Fatal("AI configuration validation failed")
	}
	if err := cfg.ValidateAuth(); err != nil {
		logger.WithError(err).Fatal("Auth configuration validation failed")
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
	cache := database.NewCache(dbManager.Redis, logger)

	aiClient := ai.NewClient(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model, logger)
	aiService := ai.NewService(aiClient, logger, cfg.AI.MaxTokens, cfg.AI.Temperature)

	chatService := chat.NewService(repoManager, aiService, chat.Thresholds{
		FreeQuery:  cfg.Chat.FreeQueryThreshold,
		TermLookup: cfg.Chat.TermLookupThreshold,
	}, logger)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	healthChecker := health.NewHealthChecker(dbManager, logger, cfg.AI.BaseURL)

	chatHandler := handlers.NewChatHandler(chatService, logger)
	sessionHandler := handlers.NewSessionHandler(repoManager, logger)
	topicHandler := handlers.NewTopicHandler(repoManager, cache, logger)
	faqHandler := handlers.NewFAQHandler(repoManager, cache, logger)
	noteHandler := handlers.NewNoteHandler(repoManager, cache, logger)
	quizHandler := handlers.NewQuizHandler(repoManager, cache, logger)
	feedbackHandler := handlers.NewFeedbackHandler(repoManager, logger)
	adminHandler := handlers.NewAdminHandler(repoManager, cache, tokens, logger)
	healthHandler := handlers.NewHealthHandler(healthChecker, logger)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.SecurityHeaders())

	rateLimiter := middleware.NewRateLimiter(60)
	router.Use(rateLimiter.RateLimit())

	router.GET("/health", healthHandler.HandleHealth)
	router.GET("/ready", healthHandler.HandleReady)

	api := router.Group("/api")
	{
		api.POST("/chat", chatHandler.HandleChat)
		api.POST("/session", sessionHandler.HandleCreateSession)
		api.GET("/session", sessionHandler.HandleGetSession)

		api.GET("/topics", topicHandler.HandleList)
		api.GET("/faqs", faqHandler.HandleList)
		api.GET("/notes", noteHandler.HandleList)
		api.GET("/quizzes", quizHandler.HandleList)
		api.GET("/quizzes/:id", quizHandler.HandleGet)
		api.POST("/quizzes/submit", quizHandler.HandleSubmit)
		api.POST("/feedback", feedbackHandler.HandleCreate)

		api.POST("/admin/login", adminHandler.HandleLogin)

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin(tokens))
		{
			admin.GET("/stats", adminHandler.HandleStats)
			admin.GET("/cache", adminHandler.HandleCacheStats)

			admin.POST("/topics", topicHandler.HandleCreate)
			admin.PUT("/topics/:id", topicHandler.HandleUpdate)
			admin.DELETE("/topics/:id", topicHandler.HandleDelete)

			admin.POST("/faqs", faqHandler.HandleCreate)
			admin.PUT("/faqs/:id", faqHandler.HandleUpdate)
			admin.DELETE("/faqs/:id", faqHandler.HandleDelete)

			admin.POST("/notes", noteHandler.HandleCreate)
			admin.PUT("/notes/:id", noteHandler.HandleUpdate)
			admin.DELETE("/notes/:id", noteHandler.HandleDelete)

			admin.POST("/quizzes", quizHandler.HandleCreate)
			admin.PUT("/quizzes/:id", quizHandler.HandleUpdate)
			admin.DELETE("/quizzes/:id", quizHandler.HandleDelete)
		}
	}

	// Refresh cached health status in the background
	healthCtx, healthCancel := context.WithCancel(context.Background())
	defer healthCancel()
	go healthChecker.PeriodicHealthCheck(healthCtx, 30*time.Second)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 75 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.WithField("port", cfg.Server.Port).Info("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Forced shutdown")
	}
	logger.Info("Server stopped")
}
