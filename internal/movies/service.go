package movies

import (
	"context"

	"golang.org/x/sync/errgroup"

	"moviesearch/internal/tmdb"
)

// deniedDetailFields are provider detail fields never exposed through the
// public API. The list is fixed so the response contract stays auditable.
var deniedDetailFields = []string{
	"adult",
	"backdrop_path",
	"belongs_to_collection",
	"budget",
	"homepage",
	"popularity",
	"production_companies",
	"production_countries",
	"revenue",
	"spoken_languages",
	"status",
	"video",
}

// Provider is the slice of the upstream client the service needs.
type Provider interface {
	SearchMovies(ctx context.Context, query string, page int) (*tmdb.SearchResponse, error)
	GetMovie(ctx context.Context, id int) (tmdb.Detail, error)
	GetConfiguration(ctx context.Context) (*tmdb.Configuration, error)
}

type Service struct {
	provider Provider
}

func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

type Summary struct {
	ID            int          `json:"id"`
	Title         string       `json:"title"`
	OriginalTitle string       `json:"original_title"`
	ReleaseDate   string       `json:"release_date"`
	Overview      string       `json:"overview"`
	VoteAverage   float64      `json:"vote_average"`
	VoteCount     int          `json:"vote_count"`
	PosterURL     PosterURLSet `json:"poster_url"`
}

type SearchResult struct {
	Results      []Summary `json:"results"`
	TotalPages   int       `json:"total_pages"`
	TotalResults int       `json:"total_results"`
}

// Search proxies one page of search results and attaches poster URL sets.
// The search page and the image configuration are fetched concurrently;
// either failure fails the call.
func (s *Service) Search(ctx context.Context, query string, page int) (*SearchResult, error) {
	if query == "" {
		return &SearchResult{Results: []Summary{}}, nil
	}

	var (
		resp *tmdb.SearchResponse
		cfg  *tmdb.Configuration
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resp, err = s.provider.SearchMovies(gctx, query, page)
		return err
	})
	g.Go(func() error {
		var err error
		cfg, err = s.provider.GetConfiguration(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]Summary, 0, len(resp.Results))
	for _, m := range resp.Results {
		results = append(results, Summary{
			ID:            m.ID,
			Title:         m.Title,
			OriginalTitle: m.OriginalTitle,
			ReleaseDate:   m.ReleaseDate,
			Overview:      m.Overview,
			VoteAverage:   m.VoteAverage,
			VoteCount:     m.VoteCount,
			PosterURL:     NewPosterURLSet(cfg.Images, m.PosterPath),
		})
	}

	return &SearchResult{
		Results:      results,
		TotalPages:   resp.TotalPages,
		TotalResults: resp.TotalResults,
	}, nil
}

// GetMovie fetches a movie detail and the image configuration concurrently,
// strips the denied fields and attaches the computed poster URL set under
// "poster_url".
func (s *Service) GetMovie(ctx context.Context, id int) (tmdb.Detail, error) {
	var (
		detail tmdb.Detail
		cfg    *tmdb.Configuration
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		detail, err = s.provider.GetMovie(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		cfg, err = s.provider.GetConfiguration(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	posterPath := detail.PosterPath()
	for _, field := range deniedDetailFields {
		delete(detail, field)
	}
	detail["poster_url"] = NewPosterURLSet(cfg.Images, posterPath)

	return detail, nil
}
