package web

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const siteName = "MovieSearch"

// SearchState is the search term and page number carried in the URL query
// parameters. The query string is the single source of truth; every view is
// derived from a parsed state, never from separate component state.
type SearchState struct {
	Query string
	Page  int
}

// ParseSearchState normalizes the "search" and "page" parameters. Page
// defaults to 1 and anything non-positive or non-numeric falls back to 1.
// An empty query always resets to page 1.
func ParseSearchState(values url.Values) SearchState {
	state := SearchState{
		Query: strings.TrimSpace(values.Get("search")),
		Page:  1,
	}

	if state.Query == "" {
		return state
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 1 {
		state.Page = page
	}

	return state
}

// Title builds the document title for the current state.
func (s SearchState) Title() string {
	switch {
	case s.Query == "":
		return siteName
	case s.Page > 1:
		return fmt.Sprintf("Search: %s (Page %d) | %s", s.Query, s.Page, siteName)
	default:
		return fmt.Sprintf("Search: %s | %s", s.Query, siteName)
	}
}

// Values encodes the state back into query parameters. Defaults are omitted
// so URLs stay minimal.
func (s SearchState) Values() url.Values {
	values := url.Values{}
	if s.Query != "" {
		values.Set("search", s.Query)
	}
	if s.Page > 1 {
		values.Set("page", strconv.Itoa(s.Page))
	}
	return values
}

// URL renders the state as a path with query string.
func (s SearchState) URL(path string) string {
	values := s.Values()
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}

// WithPage returns a copy of the state on another page.
func (s SearchState) WithPage(page int) SearchState {
	s.Page = page
	return s
}
