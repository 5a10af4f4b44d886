// @title Mood Cinema API
// @version 1.0
// @description Genre quiz with TMDB movie recommendations and a mood-aware chat.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"mood-cinema/internal/adapter"
	"mood-cinema/internal/adapter/chatllm"
	"mood-cinema/internal/adapter/tmdb"
	"mood-cinema/internal/cache"
	"mood-cinema/internal/config"
	"mood-cinema/internal/domain"
	"mood-cinema/internal/handler"
	"mood-cinema/internal/logger"
	"mood-cinema/internal/middleware"
	"mood-cinema/internal/service"

	_ "mood-cinema/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Session store. Without Redis the chat is stateless.
	var sessionCache domain.Cache
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		sessionCache = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Warn("Redis address not configured; chat history is disabled")
	}
	sessionStore := service.NewChatSessionStore(sessionCache, cfg.Chat.SessionTTL, cfg.Chat.MaxHistory)

	// Movie catalog
	tmdbClient := tmdb.NewClient(cfg.TMDB)
	appLogger.Info("TMDB client initialized",
		zap.String("base_url", cfg.TMDB.BaseURL),
		zap.String("sort_by", cfg.TMDB.SortBy),
		zap.Bool("default_key", cfg.TMDB.APIKey != ""))

	// Chat model
	completer, err := chatllm.NewFromConfig(cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create chat completer", zap.Error(err))
	}
	appLogger.Info("Chat completer initialized",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model))

	// Initialize services
	scorer := domain.NewScorer(domain.DefaultQuestionBank())
	recommendationService := service.NewRecommendationService(scorer, tmdbClient, tmdbClient, cfg.TMDB)
	chatService := service.NewChatService(completer, sessionStore)

	// Initialize handlers
	handlers := handler.Handlers{
		Quiz:   handler.NewQuizHandler(recommendationService),
		Chat:   handler.NewChatHandler(chatService),
		Page:   handler.NewPageHandler(recommendationService, chatService, cfg.TMDB.APIKey != "", cfg.LLM.APIKey != ""),
		Health: handler.NewHealthHandler(sessionCache, tmdbClient),
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept," + middleware.TMDBKeyHeader + "," + middleware.LLMKeyHeader,
		MaxAge:       300,
	}))

	// Swagger handler
	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.SetupRoutes(app, handlers, handler.DefaultKeys{
		TMDB: cfg.TMDB.APIKey,
		LLM:  cfg.LLM.APIKey,
	})

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
