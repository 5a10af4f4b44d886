package service

import (
	"context"
	"errors"
	"testing"

	"mood-cinema/internal/config"
	"mood-cinema/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var actionAnswers = []string{
	"신나는 액티비티를 즐기고 싶다",
	"강렬한 사건과 전개",
	"일상의 소소한 재미가 좋다",
	"통쾌한 액션",
	"긴장감 넘치는 액션",
}

func newTestRecommendationService(catalog domain.MovieCatalog, posters PosterURLBuilder) RecommendationService {
	return NewRecommendationService(
		domain.NewScorer(domain.DefaultQuestionBank()),
		catalog,
		posters,
		config.TMDBConfig{
			SortBy:       config.SortByVoteCount,
			Language:     "ko-KR",
			MinVoteCount: 500,
			ResultLimit:  5,
		},
	)
}

func TestRecommendationService_Questions(t *testing.T) {
	svc := newTestRecommendationService(new(MockMovieCatalog), nil)

	resp := svc.Questions()

	require.Len(t, resp.Questions, len(domain.DefaultQuestionBank()))
	assert.Equal(t, 1, resp.Questions[0].Number)
	assert.Equal(t, "주말에 가장 하고 싶은 활동은?", resp.Questions[0].Prompt)
	assert.Equal(t, actionAnswers[0], resp.Questions[0].Options[0])
}

func TestRecommendationService_Genres(t *testing.T) {
	svc := newTestRecommendationService(new(MockMovieCatalog), nil)

	resp := svc.Genres()

	require.Len(t, resp.Genres, 6)
	assert.Equal(t, "action", resp.Genres[0].Code)
	assert.Equal(t, 28, resp.Genres[0].CatalogID)
}

func TestRecommendationService_Score_Validation(t *testing.T) {
	svc := newTestRecommendationService(new(MockMovieCatalog), nil)

	_, err := svc.Score([]string{"신나는 액티비티를 즐기고 싶다"})

	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, domain.CodeOutOfRange, verrs[0].Code)
}

func TestRecommendationService_Recommend(t *testing.T) {
	ctx := context.Background()
	catalog := new(MockMovieCatalog)
	posters := new(MockPosterURLBuilder)
	svc := newTestRecommendationService(catalog, posters)

	expectedQuery := domain.CatalogQuery{
		GenreID:      28,
		SortBy:       domain.SortByVoteCount,
		Language:     "ko-KR",
		MinVoteCount: 500,
		Limit:        5,
	}
	catalog.On("DiscoverByGenre", ctx, "user-key", expectedQuery).Return([]domain.Movie{
		{ID: 1, Title: "Mad Max", Overview: "Fury Road", VoteAverage: 7.6, VoteCount: 23000, PosterPath: "/madmax.jpg", ReleaseDate: "2015-05-13"},
		{ID: 2, VoteAverage: 6.1, VoteCount: 900},
	}, nil)
	posters.On("PosterURL", "/madmax.jpg").Return("https://img/w500/madmax.jpg")
	posters.On("PosterURL", "").Return("")

	resp, err := svc.Recommend(ctx, "user-key", actionAnswers)
	require.NoError(t, err)

	assert.Equal(t, "action", resp.Genre.Code)
	assert.Equal(t, 4, resp.Scores["action"])
	assert.Equal(t, 1, resp.Scores["comedy"])
	assert.Equal(t, 0, resp.Scores["fantasy"])
	assert.Contains(t, resp.Reason, "'신나는 액티비티를 즐기고 싶다'")
	assert.Empty(t, resp.Message)

	require.Len(t, resp.Movies, 2)
	assert.Equal(t, "Mad Max", resp.Movies[0].Title)
	assert.Equal(t, "https://img/w500/madmax.jpg", resp.Movies[0].PosterURL)
	assert.Equal(t, movieReason, resp.Movies[0].Reason)
	assert.Equal(t, fallbackTitle, resp.Movies[1].Title)
	assert.Equal(t, fallbackOverview, resp.Movies[1].Overview)
	assert.Empty(t, resp.Movies[1].PosterURL)

	catalog.AssertExpectations(t)
	posters.AssertExpectations(t)
}

func TestRecommendationService_Recommend_MissingAPIKey(t *testing.T) {
	catalog := new(MockMovieCatalog)
	svc := newTestRecommendationService(catalog, nil)

	// Invalid answers must not be reported before the missing key.
	resp, err := svc.Recommend(context.Background(), "  ", []string{"nope"})

	assert.Nil(t, resp)
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeMissingAPIKey, domainErr.Code)
	assert.Equal(t, domain.MsgMissingTMDBKey, domainErr.Message)
	catalog.AssertNotCalled(t, "DiscoverByGenre", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecommendationService_Recommend_CatalogError(t *testing.T) {
	catalog := new(MockMovieCatalog)
	svc := newTestRecommendationService(catalog, nil)
	upstream := errors.New("connection refused")
	catalog.On("DiscoverByGenre", mock.Anything, "k", mock.Anything).Return(nil, upstream)

	resp, err := svc.Recommend(context.Background(), "k", actionAnswers)

	assert.Nil(t, resp)
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeCatalogUnavailable, domainErr.Code)
	assert.ErrorIs(t, err, upstream)
}

func TestRecommendationService_Recommend_NoMovies(t *testing.T) {
	catalog := new(MockMovieCatalog)
	svc := newTestRecommendationService(catalog, nil)
	catalog.On("DiscoverByGenre", mock.Anything, "k", mock.Anything).Return([]domain.Movie{}, nil)

	resp, err := svc.Recommend(context.Background(), "k", actionAnswers)

	require.NoError(t, err)
	assert.Empty(t, resp.Movies)
	assert.Equal(t, domain.MsgNoMovies, resp.Message)
}

func TestRecommendationService_TopMovies_TruncatesToLimit(t *testing.T) {
	catalog := new(MockMovieCatalog)
	svc := newTestRecommendationService(catalog, nil)
	movies := make([]domain.Movie, 8)
	for i := range movies {
		movies[i] = domain.Movie{ID: i + 1, Title: "m"}
	}
	catalog.On("DiscoverByGenre", mock.Anything, "k", mock.Anything).Return(movies, nil)

	genre, _ := domain.LookupGenre(domain.GenreFantasy)
	out, err := svc.TopMovies(context.Background(), "k", genre)

	require.NoError(t, err)
	assert.Len(t, out, 5)
	assert.Equal(t, 5, out[4].ID)
}
