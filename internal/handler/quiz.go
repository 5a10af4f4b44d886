package handler

import (
	"mood-cinema/internal/dto"
	"mood-cinema/internal/logger"
	"mood-cinema/internal/middleware"
	"mood-cinema/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz and recommendation HTTP requests
type QuizHandler struct {
	service service.RecommendationService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.RecommendationService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// GetQuestions godoc
// @Summary Get quiz questions
// @Description Returns the preference questions with their options in display order
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.QuestionsResponse
// @Router /questions [get]
func (h *QuizHandler) GetQuestions(c *fiber.Ctx) error {
	return c.JSON(h.service.Questions())
}

// GetGenres godoc
// @Summary Get genres
// @Description Returns the genres a quiz can resolve to, in tie-break order
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.GenresResponse
// @Router /genres [get]
func (h *QuizHandler) GetGenres(c *fiber.Ctx) error {
	return c.JSON(h.service.Genres())
}

// Recommend godoc
// @Summary Recommend movies
// @Description Scores the answers, picks a genre and returns its top-rated movies
// @Tags quiz
// @Accept json
// @Produce json
// @Param X-TMDB-API-Key header string false "TMDB API key"
// @Param request body dto.RecommendationRequest true "One answer label per question"
// @Success 200 {object} dto.RecommendationResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /recommendations [post]
func (h *QuizHandler) Recommend(c *fiber.Ctx) error {
	var req dto.RecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse recommendation request", zap.Error(err))
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	apiKey := middleware.APIKeyFrom(c, middleware.TMDBKeyLocal)
	resp, err := h.service.Recommend(c.UserContext(), apiKey, req.Answers)
	if err != nil {
		return err // Rendered by middleware.ErrorHandler
	}

	return c.JSON(resp)
}
