package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"moviesearch/internal/web"
)

// NewRouter wires the JSON API, the server-rendered pages and the
// operational endpoints.
func NewRouter(app *App, pages *web.Handlers, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(Metrics)

	r.Get("/ping", PingHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(httprate.LimitByIP(100, time.Minute))
		r.Get("/movies", app.SearchMoviesHandler)
		r.Get("/movies/{movieId}", app.GetMovieHandler)
	})

	r.Get("/", pages.SearchPage)
	r.Get("/search", pages.SearchPage)
	r.Get("/search/results", pages.ResultsPartial)
	r.Get("/movies/{slug}", pages.DetailPage)

	fileServer := http.FileServer(http.Dir("./web/static"))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	return r
}
