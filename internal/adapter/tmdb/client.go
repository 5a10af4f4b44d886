/*
client.go - TMDB REST API client

Implements domain.MovieCatalog on top of the /discover/movie endpoint.

API Reference: https://developer.themoviedb.org/reference/discover-movie
*/

package tmdb

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mood-cinema/internal/config"
	"mood-cinema/internal/domain"
	"mood-cinema/internal/logger"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const (
	discoverPath = "/discover/movie"
	posterSize   = "w500"
	breakerName  = "tmdb-api"
)

// StatusError is returned when TMDB answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb returned status %d: %s", e.StatusCode, e.Body)
}

// discoverResponse mirrors the fields of /discover/movie we use.
type discoverResponse struct {
	Page    int           `json:"page"`
	Results []movieResult `json:"results"`
}

type movieResult struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
	Popularity  float64 `json:"popularity"`
	PosterPath  *string `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
}

// Client provides access to the TMDB REST API.
type Client struct {
	baseURL      string
	imageBaseURL string
	httpClient   *http.Client
	limiter      *rate.Limiter
	cb           *gobreaker.CircuitBreaker[[]domain.Movie]
	group        singleflight.Group
}

var _ domain.MovieCatalog = (*Client)(nil)

// NewClient creates a TMDB client from cfg.
//
// Circuit breaker configuration:
//   - Opens after 5 consecutive upstream failures
//   - 30 second timeout before attempting recovery
//   - 4xx answers (such as an invalid user key) do not count as failures
//   - caller cancellation does not count as a failure
func NewClient(cfg config.TMDBConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	cb := gobreaker.NewCircuitBreaker[[]domain.Movie](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: isUpstreamHealthy,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Get().Warn("Circuit breaker state transition",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &Client{
		baseURL:      strings.TrimSuffix(cfg.BaseURL, "/"),
		imageBaseURL: strings.TrimSuffix(cfg.ImageBaseURL, "/"),
		httpClient:   &http.Client{Timeout: timeout},
		limiter:      rate.NewLimiter(limit, burst),
		cb:           cb,
	}
}

// DiscoverByGenre returns the top movies of a genre in the requested sort order.
// Identical queries that are in flight at the same time share one upstream call.
func (c *Client) DiscoverByGenre(ctx context.Context, apiKey string, q domain.CatalogQuery) ([]domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// The flight is shared, so no single caller may cancel it. httpClient's
	// timeout bounds it; each caller stops waiting on its own ctx below.
	flightCtx := context.WithoutCancel(ctx)
	key := flightKey(apiKey, q)
	ch := c.group.DoChan(key, func() (interface{}, error) {
		return c.cb.Execute(func() ([]domain.Movie, error) {
			return c.discover(flightCtx, apiKey, q)
		})
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		movies := res.Val.([]domain.Movie)
		out := make([]domain.Movie, len(movies))
		copy(out, movies)
		return out, nil
	}
}

func (c *Client) discover(ctx context.Context, apiKey string, q domain.CatalogQuery) ([]domain.Movie, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("tmdb rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("api_key", apiKey)
	params.Set("with_genres", strconv.Itoa(q.GenreID))
	if q.Language != "" {
		params.Set("language", q.Language)
	}
	if q.SortBy != "" {
		params.Set("sort_by", string(q.SortBy))
	}
	if q.MinVoteCount > 0 {
		params.Set("vote_count.gte", strconv.Itoa(q.MinVoteCount))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+discoverPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create tmdb request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb discover request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	logger.Get().Debug("TMDB discover request finished",
		zap.Int("genre_id", q.GenreID),
		zap.String("sort_by", string(q.SortBy)),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var payload discoverResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode tmdb discover response: %w", err)
	}

	results := payload.Results
	if q.Limit > 0 && len(results) > q.Limit {
		results = results[:q.Limit]
	}

	movies := make([]domain.Movie, 0, len(results))
	for _, r := range results {
		m := domain.Movie{
			ID:          r.ID,
			Title:       r.Title,
			Overview:    r.Overview,
			VoteAverage: r.VoteAverage,
			VoteCount:   r.VoteCount,
			Popularity:  r.Popularity,
			ReleaseDate: r.ReleaseDate,
		}
		if r.PosterPath != nil {
			m.PosterPath = *r.PosterPath
		}
		movies = append(movies, m)
	}
	return movies, nil
}

// isUpstreamHealthy reports whether err says nothing bad about TMDB itself.
// Only 5xx answers and transport failures count against the breaker.
func isUpstreamHealthy(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode < http.StatusInternalServerError
}

// PosterURL builds the w500 image URL for a poster path, or "" when there is none.
func (c *Client) PosterURL(path string) string {
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.imageBaseURL + "/" + posterSize + path
}

// State exposes the circuit breaker state for health reporting.
func (c *Client) State() string {
	return c.cb.State().String()
}

// flightKey never contains the raw API key.
func flightKey(apiKey string, q domain.CatalogQuery) string {
	sum := sha256.Sum256([]byte(apiKey))
	return strings.Join([]string{
		strconv.Itoa(q.GenreID),
		string(q.SortBy),
		q.Language,
		strconv.Itoa(q.MinVoteCount),
		strconv.Itoa(q.Limit),
		hex.EncodeToString(sum[:8]),
	}, "|")
}
