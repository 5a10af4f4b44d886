package service

import (
	"context"
	"strings"

	"mood-cinema/internal/config"
	"mood-cinema/internal/domain"
	"mood-cinema/internal/dto"
	"mood-cinema/internal/logger"
	"mood-cinema/internal/validation"

	"go.uber.org/zap"
)

const (
	movieReason      = "대중성과 평점이 모두 검증된 작품이에요."
	fallbackTitle    = "제목 없음"
	fallbackOverview = "줄거리 정보가 없습니다."
)

// PosterURLBuilder turns a catalog poster path into a full image URL.
type PosterURLBuilder interface {
	PosterURL(path string) string
}

// RecommendationService defines quiz scoring and movie recommendation operations
type RecommendationService interface {
	Questions() *dto.QuestionsResponse
	Genres() *dto.GenresResponse
	Score(answers []string) (*domain.Recommendation, error)
	TopMovies(ctx context.Context, apiKey string, genre domain.GenreInfo) ([]dto.MovieResponse, error)
	Recommend(ctx context.Context, apiKey string, answers []string) (*dto.RecommendationResponse, error)
}

type recommendationService struct {
	scorer    *domain.Scorer
	catalog   domain.MovieCatalog
	posters   PosterURLBuilder
	validator *validation.Validator
	query     domain.CatalogQuery
}

// NewRecommendationService creates a new instance of recommendationService
func NewRecommendationService(
	scorer *domain.Scorer,
	catalog domain.MovieCatalog,
	posters PosterURLBuilder,
	cfg config.TMDBConfig,
) RecommendationService {
	return &recommendationService{
		scorer:    scorer,
		catalog:   catalog,
		posters:   posters,
		validator: validation.NewValidator(),
		query: domain.CatalogQuery{
			SortBy:       domain.SortOrder(cfg.SortBy),
			Language:     cfg.Language,
			MinVoteCount: cfg.MinVoteCount,
			Limit:        cfg.ResultLimit,
		},
	}
}

// Questions implements RecommendationService
func (s *recommendationService) Questions() *dto.QuestionsResponse {
	bank := s.scorer.Bank()
	questions := make([]dto.QuestionResponse, 0, len(bank))
	for i, q := range bank {
		questions = append(questions, dto.QuestionResponse{
			Number:  i + 1,
			Prompt:  q.Prompt,
			Options: q.Labels(),
		})
	}
	return &dto.QuestionsResponse{Questions: questions}
}

// Genres implements RecommendationService
func (s *recommendationService) Genres() *dto.GenresResponse {
	genres := domain.Genres()
	out := make([]dto.GenreResponse, 0, len(genres))
	for _, g := range genres {
		out = append(out, toGenreResponse(g))
	}
	return &dto.GenresResponse{Genres: out}
}

// Score implements RecommendationService
func (s *recommendationService) Score(answers []string) (*domain.Recommendation, error) {
	if errs := s.validator.ValidateAnswerSet(s.scorer.Bank(), answers); len(errs) > 0 {
		return nil, errs
	}
	rec := s.scorer.Score(domain.AnswerSet(answers))
	logger.Get().Info("Quiz scored",
		zap.String("genre", string(rec.Genre.Genre)),
		zap.Int("catalog_id", rec.Genre.CatalogID))
	return &rec, nil
}

// TopMovies implements RecommendationService
func (s *recommendationService) TopMovies(ctx context.Context, apiKey string, genre domain.GenreInfo) ([]dto.MovieResponse, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, domain.NewMissingAPIKeyError(domain.MsgMissingTMDBKey)
	}

	q := s.query
	q.GenreID = genre.CatalogID
	movies, err := s.catalog.DiscoverByGenre(ctx, apiKey, q)
	if err != nil {
		logger.Get().Error("Failed to fetch movies from catalog",
			zap.Error(err),
			zap.Int("catalog_id", genre.CatalogID))
		return nil, domain.NewCatalogUnavailableError(err)
	}

	if q.Limit > 0 && len(movies) > q.Limit {
		movies = movies[:q.Limit]
	}

	out := make([]dto.MovieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, s.toMovieResponse(m))
	}
	return out, nil
}

// Recommend implements RecommendationService.
// The API key is checked before scoring; nothing is computed without it.
func (s *recommendationService) Recommend(ctx context.Context, apiKey string, answers []string) (*dto.RecommendationResponse, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, domain.NewMissingAPIKeyError(domain.MsgMissingTMDBKey)
	}

	rec, err := s.Score(answers)
	if err != nil {
		return nil, err
	}

	movies, err := s.TopMovies(ctx, apiKey, rec.Genre)
	if err != nil {
		return nil, err
	}

	resp := &dto.RecommendationResponse{
		Genre:  toGenreResponse(rec.Genre),
		Reason: rec.Reason,
		Scores: ScoresOf(rec.Tally),
		Movies: movies,
	}
	if len(movies) == 0 {
		resp.Message = domain.MsgNoMovies
	}
	return resp, nil
}

func (s *recommendationService) toMovieResponse(m domain.Movie) dto.MovieResponse {
	title := m.Title
	if title == "" {
		title = fallbackTitle
	}
	overview := m.Overview
	if overview == "" {
		overview = fallbackOverview
	}
	resp := dto.MovieResponse{
		ID:          m.ID,
		Title:       title,
		Rating:      m.VoteAverage,
		VoteCount:   m.VoteCount,
		Overview:    overview,
		ReleaseDate: m.ReleaseDate,
		Reason:      movieReason,
	}
	if s.posters != nil {
		resp.PosterURL = s.posters.PosterURL(m.PosterPath)
	}
	return resp
}

func toGenreResponse(g domain.GenreInfo) dto.GenreResponse {
	return dto.GenreResponse{
		Code:      string(g.Genre),
		Name:      g.DisplayName,
		CatalogID: g.CatalogID,
	}
}

// ScoresOf converts a tally into a JSON-friendly map.
func ScoresOf(t domain.Tally) map[string]int {
	out := make(map[string]int, len(t))
	for g, n := range t {
		out[string(g)] = n
	}
	return out
}
