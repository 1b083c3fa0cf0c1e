package web

import "strconv"

// pageWindow is the maximum number of numbered links shown.
const pageWindow = 5

type PageLink struct {
	Number  int
	URL     string
	Current bool
}

// Pagination is the prev/next/numbered link model for one results page.
// Prev is disabled on page 1, Next on the last page.
type Pagination struct {
	PrevURL      string
	NextURL      string
	PrevDisabled bool
	NextDisabled bool
	Pages        []PageLink
}

// Paginate builds the pagination model, or nil when there is nothing to page
// through.
func (s SearchState) Paginate(totalPages int) *Pagination {
	if totalPages <= 1 {
		return nil
	}

	page := s.Page
	if page > totalPages {
		page = totalPages
	}

	p := &Pagination{
		PrevDisabled: page <= 1,
		NextDisabled: page >= totalPages,
	}
	if !p.PrevDisabled {
		p.PrevURL = s.pageURL(page - 1)
	}
	if !p.NextDisabled {
		p.NextURL = s.pageURL(page + 1)
	}

	first := page - pageWindow/2
	if first < 1 {
		first = 1
	}
	last := first + pageWindow - 1
	if last > totalPages {
		last = totalPages
		if first = last - pageWindow + 1; first < 1 {
			first = 1
		}
	}

	for n := first; n <= last; n++ {
		p.Pages = append(p.Pages, PageLink{
			Number:  n,
			URL:     s.pageURL(n),
			Current: n == page,
		})
	}

	return p
}

// pageURL always carries an explicit page parameter, unlike detail links,
// so page-changing navigations are distinguishable client side.
func (s SearchState) pageURL(page int) string {
	values := s.Values()
	values.Set("page", strconv.Itoa(page))
	return "/search?" + values.Encode()
}
