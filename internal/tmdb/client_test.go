package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient(t *testing.T) {
	t.Run("SearchMovies", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/search/movie" {
				t.Errorf("Unexpected path %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("api_key"); got != "test-key" {
				t.Errorf("api_key = %q", got)
			}
			if got := r.URL.Query().Get("query"); got != "matrix" {
				t.Errorf("query = %q", got)
			}
			if got := r.URL.Query().Get("page"); got != "2" {
				t.Errorf("page = %q", got)
			}
			fmt.Fprint(w, `{"page":2,"results":[{"id":603,"title":"The Matrix","vote_count":100}],"total_pages":3,"total_results":42}`)
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL)
		resp, err := client.SearchMovies(context.Background(), "matrix", 2)
		if err != nil {
			t.Fatalf("SearchMovies failed: %v", err)
		}

		if resp.TotalPages != 3 || resp.TotalResults != 42 {
			t.Errorf("Totals wrong: %+v", resp)
		}
		if len(resp.Results) != 1 || resp.Results[0].Title != "The Matrix" {
			t.Errorf("Results wrong: %+v", resp.Results)
		}
	})

	t.Run("SearchMoviesNormalizesPage", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("page"); got != "1" {
				t.Errorf("page = %q, want 1", got)
			}
			fmt.Fprint(w, `{"page":1,"results":[]}`)
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL)
		if _, err := client.SearchMovies(context.Background(), "matrix", -5); err != nil {
			t.Fatalf("SearchMovies failed: %v", err)
		}
	})

	t.Run("GetMovieDecodesRawObject", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/movie/603" {
				t.Errorf("Unexpected path %s", r.URL.Path)
			}
			fmt.Fprint(w, `{"id":603,"title":"The Matrix","poster_path":"/p.jpg","budget":63000000}`)
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL)
		detail, err := client.GetMovie(context.Background(), 603)
		if err != nil {
			t.Fatalf("GetMovie failed: %v", err)
		}

		if detail["title"] != "The Matrix" {
			t.Errorf("title = %v", detail["title"])
		}
		if detail.PosterPath() != "/p.jpg" {
			t.Errorf("PosterPath() = %q", detail.PosterPath())
		}
	})

	t.Run("GetConfiguration", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/configuration" {
				t.Errorf("Unexpected path %s", r.URL.Path)
			}
			fmt.Fprint(w, `{"images":{"secure_base_url":"https://image.tmdb.org/t/p/","poster_sizes":["w92","w154","w185"]}}`)
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL)
		cfg, err := client.GetConfiguration(context.Background())
		if err != nil {
			t.Fatalf("GetConfiguration failed: %v", err)
		}

		if cfg.Images.SecureBaseURL != "https://image.tmdb.org/t/p/" {
			t.Errorf("SecureBaseURL = %q", cfg.Images.SecureBaseURL)
		}
		if len(cfg.Images.PosterSizes) != 3 {
			t.Errorf("PosterSizes = %v", cfg.Images.PosterSizes)
		}
	})

	t.Run("NonSuccessStatusIsError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "secret upstream detail", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL)
		if _, err := client.GetMovie(context.Background(), 603); err == nil {
			t.Error("Expected error for upstream 500")
		}
	})

	t.Run("CancelledContextStopsRequest", func(t *testing.T) {
		client := NewClient("test-key", "http://127.0.0.1:0")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := client.GetMovie(ctx, 603); err == nil {
			t.Error("Expected error for cancelled context")
		}
	})
}
