package movies

import (
	"context"
	"errors"
	"testing"

	"moviesearch/internal/tmdb"
)

var testConfiguration = &tmdb.Configuration{
	Images: tmdb.ImageConfiguration{
		SecureBaseURL: "https://image.tmdb.org/t/p/",
		PosterSizes:   []string{"w92", "w154", "w185", "w342", "w500", "w780", "original"},
	},
}

type fakeProvider struct {
	detail    tmdb.Detail
	detailErr error
	cfg       *tmdb.Configuration
	cfgErr    error
	search    *tmdb.SearchResponse
	searchErr error
	called    bool
}

func (f *fakeProvider) SearchMovies(ctx context.Context, query string, page int) (*tmdb.SearchResponse, error) {
	f.called = true
	return f.search, f.searchErr
}

func (f *fakeProvider) GetMovie(ctx context.Context, id int) (tmdb.Detail, error) {
	f.called = true
	return f.detail, f.detailErr
}

func (f *fakeProvider) GetConfiguration(ctx context.Context) (*tmdb.Configuration, error) {
	return f.cfg, f.cfgErr
}

func testDetail() tmdb.Detail {
	return tmdb.Detail{
		"id":             float64(603),
		"title":          "The Matrix",
		"original_title": "The Matrix",
		"release_date":   "1999-03-30",
		"overview":       "A computer hacker learns about the true nature of reality.",
		"vote_average":   8.2,
		"vote_count":     float64(24000),
		"poster_path":    "/poster.jpg",
		// Every denied field, as the provider would send them.
		"adult":                 false,
		"backdrop_path":         "/backdrop.jpg",
		"belongs_to_collection": map[string]any{"id": float64(2344)},
		"budget":                float64(63000000),
		"homepage":              "https://example.com",
		"popularity":            81.5,
		"production_companies":  []any{},
		"production_countries":  []any{},
		"revenue":               float64(463517383),
		"spoken_languages":      []any{},
		"status":                "Released",
		"video":                 false,
	}
}

func TestGetMovie(t *testing.T) {
	t.Run("StripsDeniedFields", func(t *testing.T) {
		service := NewService(&fakeProvider{detail: testDetail(), cfg: testConfiguration})

		detail, err := service.GetMovie(context.Background(), 603)
		if err != nil {
			t.Fatalf("GetMovie failed: %v", err)
		}

		for _, field := range deniedDetailFields {
			if _, present := detail[field]; present {
				t.Errorf("Denied field %q present in output", field)
			}
		}

		if detail["title"] != "The Matrix" {
			t.Errorf("Kept field missing, got title %v", detail["title"])
		}
	})

	t.Run("ComputesPosterURLSet", func(t *testing.T) {
		service := NewService(&fakeProvider{detail: testDetail(), cfg: testConfiguration})

		detail, err := service.GetMovie(context.Background(), 603)
		if err != nil {
			t.Fatalf("GetMovie failed: %v", err)
		}

		set, ok := detail["poster_url"].(PosterURLSet)
		if !ok {
			t.Fatalf("poster_url has wrong type: %T", detail["poster_url"])
		}

		expected := map[string]*string{
			"default": set.Default,
			"sm":      set.SM,
			"md":      set.MD,
			"lg":      set.LG,
		}
		wanted := map[string]string{
			"default": "https://image.tmdb.org/t/p/w185/poster.jpg",
			"sm":      "https://image.tmdb.org/t/p/w185/poster.jpg",
			"md":      "https://image.tmdb.org/t/p/w500/poster.jpg",
			"lg":      "https://image.tmdb.org/t/p/w780/poster.jpg",
		}
		for role, got := range expected {
			if got == nil {
				t.Errorf("poster_url.%s is null", role)
				continue
			}
			if *got != wanted[role] {
				t.Errorf("poster_url.%s = %q, want %q", role, *got, wanted[role])
			}
		}
	})

	t.Run("NullPosterSetWithoutPath", func(t *testing.T) {
		detail := testDetail()
		delete(detail, "poster_path")
		service := NewService(&fakeProvider{detail: detail, cfg: testConfiguration})

		enriched, err := service.GetMovie(context.Background(), 603)
		if err != nil {
			t.Fatalf("GetMovie failed: %v", err)
		}

		set := enriched["poster_url"].(PosterURLSet)
		if set.Default != nil || set.SM != nil || set.MD != nil || set.LG != nil {
			t.Errorf("Expected all-null poster set, got %+v", set)
		}
	})

	t.Run("DetailFailureFailsCall", func(t *testing.T) {
		service := NewService(&fakeProvider{detailErr: errors.New("boom"), cfg: testConfiguration})

		if _, err := service.GetMovie(context.Background(), 603); err == nil {
			t.Error("Expected error when detail fetch fails")
		}
	})

	t.Run("ConfigurationFailureFailsCall", func(t *testing.T) {
		service := NewService(&fakeProvider{detail: testDetail(), cfgErr: errors.New("boom")})

		if _, err := service.GetMovie(context.Background(), 603); err == nil {
			t.Error("Expected error when configuration fetch fails")
		}
	})
}

func TestSearch(t *testing.T) {
	t.Run("AttachesPosterURLs", func(t *testing.T) {
		provider := &fakeProvider{
			cfg: testConfiguration,
			search: &tmdb.SearchResponse{
				Page: 1,
				Results: []tmdb.Summary{
					{ID: 603, Title: "The Matrix", OriginalTitle: "The Matrix", PosterPath: "/poster.jpg", VoteAverage: 8.2, VoteCount: 24000},
					{ID: 604, Title: "The Matrix Reloaded", OriginalTitle: "The Matrix Reloaded"},
				},
				TotalPages:   3,
				TotalResults: 42,
			},
		}
		service := NewService(provider)

		result, err := service.Search(context.Background(), "matrix", 1)
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}

		if result.TotalPages != 3 || result.TotalResults != 42 {
			t.Errorf("Totals not propagated: %+v", result)
		}
		if len(result.Results) != 2 {
			t.Fatalf("Expected 2 results, got %d", len(result.Results))
		}

		first := result.Results[0]
		if first.PosterURL.Default == nil || *first.PosterURL.Default != "https://image.tmdb.org/t/p/w185/poster.jpg" {
			t.Errorf("First result poster not computed: %+v", first.PosterURL)
		}

		second := result.Results[1]
		if second.PosterURL.Default != nil {
			t.Errorf("Expected null poster set without path, got %+v", second.PosterURL)
		}
	})

	t.Run("EmptyQuerySkipsUpstream", func(t *testing.T) {
		provider := &fakeProvider{searchErr: errors.New("should not be called")}
		service := NewService(provider)

		result, err := service.Search(context.Background(), "", 1)
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(result.Results) != 0 {
			t.Errorf("Expected no results for empty query, got %d", len(result.Results))
		}
		if provider.called {
			t.Error("Upstream was called for an empty query")
		}
	})

	t.Run("EitherFailureFailsCall", func(t *testing.T) {
		service := NewService(&fakeProvider{searchErr: errors.New("boom"), cfg: testConfiguration})
		if _, err := service.Search(context.Background(), "matrix", 1); err == nil {
			t.Error("Expected error when search fetch fails")
		}

		service = NewService(&fakeProvider{search: &tmdb.SearchResponse{}, cfgErr: errors.New("boom")})
		if _, err := service.Search(context.Background(), "matrix", 1); err == nil {
			t.Error("Expected error when configuration fetch fails")
		}
	})
}

func TestNewPosterURLSet(t *testing.T) {
	t.Run("ClampsShortSizeList", func(t *testing.T) {
		images := tmdb.ImageConfiguration{
			SecureBaseURL: "https://img/",
			PosterSizes:   []string{"w92", "w154"},
		}

		set := NewPosterURLSet(images, "/p.jpg")
		for role, u := range map[string]*string{"default": set.Default, "sm": set.SM, "md": set.MD, "lg": set.LG} {
			if u == nil {
				t.Fatalf("%s is null", role)
			}
			if *u != "https://img/w154/p.jpg" {
				t.Errorf("%s = %q, want clamp to last size", role, *u)
			}
		}
	})

	t.Run("EmptyConfigurationYieldsNullSet", func(t *testing.T) {
		set := NewPosterURLSet(tmdb.ImageConfiguration{}, "/p.jpg")
		if set.Default != nil {
			t.Errorf("Expected null set without base URL, got %+v", set)
		}
	})

	t.Run("FallsBackToInsecureBaseURL", func(t *testing.T) {
		images := tmdb.ImageConfiguration{
			BaseURL:     "http://img/",
			PosterSizes: []string{"w92"},
		}
		set := NewPosterURLSet(images, "/p.jpg")
		if set.Default == nil || *set.Default != "http://img/w92/p.jpg" {
			t.Errorf("Expected insecure base fallback, got %+v", set)
		}
	})
}
