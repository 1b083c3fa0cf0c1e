package web

import (
	"fmt"
	"math"
	"strings"
	"time"

	"moviesearch/internal/movies"
	"moviesearch/internal/tmdb"
)

const displayDateFormat = "Jan 2, 2006"

// ListItem is the fully formatted view of one search result. Pure
// presentation: every field is ready to render as-is.
type ListItem struct {
	Title         string
	OriginalTitle string // empty when it matches Title
	URL           string
	ReleaseDate   string
	Votes         string
	Overview      string // empty overview is omitted by the template
	PosterURL     string
}

// NewListItem formats a search result into a list entry. The detail link
// carries the current search state so navigating back restores it; the page
// parameter is omitted on page 1.
func NewListItem(m movies.Summary, state SearchState) ListItem {
	item := ListItem{
		Title:       m.Title,
		URL:         state.URL("/movies/" + Slug(m.ID, m.OriginalTitle)),
		ReleaseDate: formatReleaseDate(m.ReleaseDate),
		Votes:       formatVotes(m.VoteAverage, m.VoteCount),
		Overview:    m.Overview,
		PosterURL:   m.PosterURL.Smallest(),
	}
	if m.OriginalTitle != m.Title {
		item.OriginalTitle = m.OriginalTitle
	}
	return item
}

// Slug builds a detail-page path segment from the id and original title,
// e.g. "603-the-matrix".
func Slug(id int, originalTitle string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(originalTitle) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
		default:
			pending = true
		}
	}

	if b.Len() == 0 {
		return fmt.Sprintf("%d", id)
	}
	return fmt.Sprintf("%d-%s", id, b.String())
}

func formatReleaseDate(date string) string {
	if date == "" {
		return "unknown"
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "unknown"
	}
	return t.Format(displayDateFormat)
}

func formatVotes(average float64, count int) string {
	if count == 0 {
		return "no votes"
	}
	return fmt.Sprintf("%d%%", int(math.Round(average*10)))
}

// DetailView extracts the fields the detail page renders from an enriched
// movie detail.
type DetailView struct {
	Title         string
	OriginalTitle string
	Tagline       string
	ReleaseDate   string
	Votes         string
	Overview      string
	Runtime       int
	Genres        []string
	PosterURL     string
}

func NewDetailView(detail tmdb.Detail) DetailView {
	view := DetailView{
		Title:       stringField(detail, "title"),
		Tagline:     stringField(detail, "tagline"),
		ReleaseDate: formatReleaseDate(stringField(detail, "release_date")),
		Overview:    stringField(detail, "overview"),
		Runtime:     intField(detail, "runtime"),
		Votes:       formatVotes(floatField(detail, "vote_average"), intField(detail, "vote_count")),
	}

	if original := stringField(detail, "original_title"); original != view.Title {
		view.OriginalTitle = original
	}

	if set, ok := detail["poster_url"].(movies.PosterURLSet); ok {
		view.PosterURL = set.Best()
	}

	if genres, ok := detail["genres"].([]any); ok {
		for _, g := range genres {
			if genre, ok := g.(map[string]any); ok {
				if name, ok := genre["name"].(string); ok {
					view.Genres = append(view.Genres, name)
				}
			}
		}
	}

	return view
}

func stringField(d tmdb.Detail, key string) string {
	v, _ := d[key].(string)
	return v
}

func floatField(d tmdb.Detail, key string) float64 {
	v, _ := d[key].(float64)
	return v
}

func intField(d tmdb.Detail, key string) int {
	// JSON numbers decode as float64.
	v, _ := d[key].(float64)
	return int(v)
}
