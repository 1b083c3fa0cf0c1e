package web

import (
	"html/template"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"moviesearch/internal/history"
	"moviesearch/internal/movies"
)

const recentSearchLimit = 10

// Handlers renders the search and detail pages. All search state lives in
// the URL query parameters; handlers parse it fresh on every request.
type Handlers struct {
	movies        *movies.Service
	store         *history.Store
	recorder      *history.Recorder
	debounceDelay time.Duration
	templatePath  string
	logger        zerolog.Logger
}

func NewHandlers(service *movies.Service, store *history.Store, recorder *history.Recorder, debounceDelay time.Duration, logger zerolog.Logger) *Handlers {
	return &Handlers{
		movies:        service,
		store:         store,
		recorder:      recorder,
		debounceDelay: debounceDelay,
		templatePath:  filepath.Join("web", "templates"),
		logger:        logger,
	}
}

type searchPageData struct {
	Title          string
	State          SearchState
	Searched       bool
	Error          bool
	Results        []ListItem
	TotalResults   int
	Pagination     *Pagination
	Recent         []history.Search
	DebounceMillis int64
}

// SearchPage renders the full search page for GET / and GET /search.
func (h *Handlers) SearchPage(w http.ResponseWriter, r *http.Request) {
	data := h.buildSearchData(r)

	tmpl, err := template.ParseFiles(
		filepath.Join(h.templatePath, "search.html"),
		filepath.Join(h.templatePath, "_results.html"),
	)
	if err != nil {
		http.Error(w, "Error loading template", http.StatusInternalServerError)
		return
	}

	if err := tmpl.Execute(w, data); err != nil {
		h.logger.Error().Err(err).Msg("rendering search page")
	}
}

// ResultsPartial renders just the results region for the debounced live
// search (htmx target).
func (h *Handlers) ResultsPartial(w http.ResponseWriter, r *http.Request) {
	data := h.buildSearchData(r)

	// htmx rewrites the address bar to the canonical page URL, keeping the
	// query parameters authoritative.
	w.Header().Set("HX-Push-Url", data.State.URL("/search"))

	tmpl, err := template.ParseFiles(filepath.Join(h.templatePath, "_results.html"))
	if err != nil {
		http.Error(w, "Error loading template", http.StatusInternalServerError)
		return
	}

	if err := tmpl.ExecuteTemplate(w, "results", data); err != nil {
		h.logger.Error().Err(err).Msg("rendering results partial")
	}
}

func (h *Handlers) buildSearchData(r *http.Request) searchPageData {
	state := ParseSearchState(r.URL.Query())

	data := searchPageData{
		Title:          state.Title(),
		State:          state,
		DebounceMillis: h.debounceDelay.Milliseconds(),
	}

	if state.Query == "" {
		if recent, err := h.store.Recent(recentSearchLimit); err == nil {
			data.Recent = recent
		} else {
			h.logger.Error().Err(err).Msg("loading recent searches")
		}
		return data
	}

	data.Searched = true

	result, err := h.movies.Search(r.Context(), state.Query, state.Page)
	if err != nil {
		h.logger.Error().Err(err).Str("query", state.Query).Int("page", state.Page).Msg("searching movies")
		data.Error = true
		return data
	}

	h.recorder.Observe(state.Query, result.TotalResults)

	data.TotalResults = result.TotalResults
	data.Pagination = state.Paginate(result.TotalPages)
	data.Results = make([]ListItem, 0, len(result.Results))
	for _, m := range result.Results {
		data.Results = append(data.Results, NewListItem(m, state))
	}

	return data
}

type detailPageData struct {
	Title   string
	State   SearchState
	BackURL string
	Movie   DetailView
}

// DetailPage renders one movie from the enriched detail.
func (h *Handlers) DetailPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	id := parseSlugID(slug)
	if id <= 0 {
		http.NotFound(w, r)
		return
	}

	detail, err := h.movies.GetMovie(r.Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Int("movie_id", id).Msg("fetching movie detail")
		http.Error(w, "unable to get movie", http.StatusInternalServerError)
		return
	}

	state := ParseSearchState(r.URL.Query())
	view := NewDetailView(detail)

	tmpl, err := template.ParseFiles(filepath.Join(h.templatePath, "detail.html"))
	if err != nil {
		http.Error(w, "Error loading template", http.StatusInternalServerError)
		return
	}

	data := detailPageData{
		Title:   view.Title + " | " + siteName,
		State:   state,
		BackURL: state.URL("/search"),
		Movie:   view,
	}

	if err := tmpl.Execute(w, data); err != nil {
		h.logger.Error().Err(err).Msg("rendering detail page")
	}
}

// parseSlugID reads the leading integer of a "603-the-matrix" style slug.
func parseSlugID(slug string) int {
	end := 0
	for end < len(slug) && slug[end] >= '0' && slug[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	id, err := strconv.Atoi(slug[:end])
	if err != nil {
		return 0
	}
	return id
}
