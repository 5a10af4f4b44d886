package handler

import (
	"mood-cinema/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups everything SetupRoutes mounts.
type Handlers struct {
	Quiz   *QuizHandler
	Chat   *ChatHandler
	Page   *PageHandler
	Health *HealthHandler
}

// DefaultKeys are server-side API keys used when a request carries none.
type DefaultKeys struct {
	TMDB string
	LLM  string
}

// SetupRoutes registers the JSON API under /api, the pages and the health check.
func SetupRoutes(app *fiber.App, h Handlers, keys DefaultKeys) {
	tmdbKey := middleware.APIKey(middleware.APIKeyConfig{
		Header:   middleware.TMDBKeyHeader,
		Field:    middleware.TMDBKeyField,
		Local:    middleware.TMDBKeyLocal,
		Fallback: keys.TMDB,
	})
	llmKey := middleware.APIKey(middleware.APIKeyConfig{
		Header:   middleware.LLMKeyHeader,
		Field:    middleware.LLMKeyField,
		Local:    middleware.LLMKeyLocal,
		Fallback: keys.LLM,
	})
	vm := middleware.NewValidationMiddleware()

	app.Get("/healthz", h.Health.Health)

	// Pages
	app.Get("/", h.Page.Index)
	app.Post("/", tmdbKey, h.Page.Result)
	app.Get("/chat", h.Page.ChatPage)

	// API group
	apiGroup := app.Group("/api")

	apiGroup.Get("/questions", h.Quiz.GetQuestions)
	apiGroup.Get("/genres", h.Quiz.GetGenres)
	apiGroup.Post("/recommendations", tmdbKey, h.Quiz.Recommend)

	apiGroup.Get("/moods", h.Chat.GetMoods)
	apiGroup.Post("/chat", llmKey, h.Chat.Chat)
	apiGroup.Post("/chat/stream", llmKey, h.Chat.ChatStream)
	apiGroup.Get("/chat/sessions/:id/messages", vm.ValidateSessionID(), h.Chat.GetHistory)
	apiGroup.Delete("/chat/sessions/:id", vm.ValidateSessionID(), h.Chat.ResetSession)
}
