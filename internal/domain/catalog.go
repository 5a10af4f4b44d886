package domain

import "context"

// SortOrder is the catalog ranking used for a genre query.
type SortOrder string

const (
	SortByVoteCount  SortOrder = "vote_count.desc"
	SortByPopularity SortOrder = "popularity.desc"
)

// Movie is one catalog entry as returned by the provider.
type Movie struct {
	ID          int
	Title       string
	Overview    string
	VoteAverage float64
	VoteCount   int
	Popularity  float64
	PosterPath  string
	ReleaseDate string
}

// CatalogQuery selects the top titles of one genre.
type CatalogQuery struct {
	GenreID      int
	SortBy       SortOrder
	Language     string
	MinVoteCount int
	Limit        int
}

// MovieCatalog is the port to the external movie database.
type MovieCatalog interface {
	// DiscoverByGenre returns at most q.Limit movies in the provider's order.
	DiscoverByGenre(ctx context.Context, apiKey string, q CatalogQuery) ([]Movie, error)
}
