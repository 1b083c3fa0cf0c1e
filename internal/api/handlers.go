package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"moviesearch/internal/history"
	"moviesearch/internal/movies"
)

type App struct {
	Movies   *movies.Service
	Recorder *history.Recorder
	Logger   zerolog.Logger
}

func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

// GetMovieHandler serves GET /api/movies/{movieId}: the enriched detail with
// denied fields stripped and poster_url attached. Upstream failures collapse
// to a generic 500; upstream bodies are never forwarded.
func (app *App) GetMovieHandler(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "movieId")
	if idParam == "" {
		respondError(w, http.StatusBadRequest, "movieId param missing")
		return
	}

	id, err := strconv.Atoi(idParam)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "Invalid movieId")
		return
	}

	detail, err := app.Movies.GetMovie(r.Context(), id)
	if err != nil {
		app.Logger.Error().Err(err).Int("movie_id", id).Msg("fetching movie detail")
		respondError(w, http.StatusInternalServerError, "unable to get movie")
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

// SearchMoviesHandler serves GET /api/movies?search=&page=.
func (app *App) SearchMoviesHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("search"))

	page := 1
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 1 {
		page = p
	}

	result, err := app.Movies.Search(r.Context(), query, page)
	if err != nil {
		app.Logger.Error().Err(err).Str("query", query).Int("page", page).Msg("searching movies")
		respondError(w, http.StatusInternalServerError, "unable to search movies")
		return
	}

	if app.Recorder != nil {
		app.Recorder.Observe(query, result.TotalResults)
	}

	respondJSON(w, http.StatusOK, result)
}
