package tmdb

// SearchResponse is one page of movie search results.
type SearchResponse struct {
	Page         int       `json:"page"`
	Results      []Summary `json:"results"`
	TotalPages   int       `json:"total_pages"`
	TotalResults int       `json:"total_results"`
}

type Summary struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	ReleaseDate   string  `json:"release_date"`
	Overview      string  `json:"overview"`
	PosterPath    string  `json:"poster_path"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
}

// Detail is a full movie record as returned by the provider. It is kept as a
// raw object so field stripping stays an explicit list operation.
type Detail map[string]any

// PosterPath returns the poster path field, or "" when absent or null.
func (d Detail) PosterPath() string {
	path, _ := d["poster_path"].(string)
	return path
}

type Configuration struct {
	Images ImageConfiguration `json:"images"`
}

type ImageConfiguration struct {
	BaseURL       string   `json:"base_url"`
	SecureBaseURL string   `json:"secure_base_url"`
	PosterSizes   []string `json:"poster_sizes"`
}
