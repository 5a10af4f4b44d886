package dto

// QuestionResponse represents a quiz question in the API response
// @Description Quiz question with its selectable options
type QuestionResponse struct {
	Number  int      `json:"number"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

// QuestionsResponse lists the whole question bank
type QuestionsResponse struct {
	Questions []QuestionResponse `json:"questions"`
}

// GenreResponse represents a recommendation genre
// @Description Genre with its catalog identifier
type GenreResponse struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	CatalogID int    `json:"catalog_id"`
}

// GenresResponse lists genres in tie-break order
type GenresResponse struct {
	Genres []GenreResponse `json:"genres"`
}

// RecommendationRequest carries one answer per question
// @Description Request body for a genre recommendation
type RecommendationRequest struct {
	Answers []string `json:"answers"`
}

// MovieResponse represents one recommended movie
type MovieResponse struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Rating      float64 `json:"rating"`
	VoteCount   int     `json:"vote_count"`
	Overview    string  `json:"overview"`
	PosterURL   string  `json:"poster_url,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	Reason      string  `json:"reason"`
}

// RecommendationResponse is the result of a submitted quiz
// @Description Winning genre, the reason behind it and the top movies
type RecommendationResponse struct {
	Genre   GenreResponse   `json:"genre"`
	Reason  string          `json:"reason"`
	Scores  map[string]int  `json:"scores"`
	Movies  []MovieResponse `json:"movies"`
	Message string          `json:"message,omitempty"`
}
