package pagination

import (
	"net/http"
	"strconv"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Params is the page window requested by the client.
type Params struct {
	Page     int
	PageSize int
}

// Parse reads page/page_size query parameters, falling back to defaultSize
// and clamping out-of-range values instead of erroring.
func Parse(r *http.Request, defaultSize int) Params {
	q := r.URL.Query()

	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	size, err := strconv.Atoi(q.Get("page_size"))
	if err != nil || size < 1 {
		size = defaultSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return Params{Page: page, PageSize: size}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p Params) TotalPages(count int) int {
	if count <= 0 {
		return 0
	}
	return (count + p.PageSize - 1) / p.PageSize
}

// Links builds absolute next/previous page URLs for the current request.
// A nil pointer means the page does not exist.
func (p Params) Links(r *http.Request, count int) (next, previous *string) {
	totalPages := p.TotalPages(count)

	if p.Page < totalPages {
		u := pageURL(r, p.Page+1)
		next = &u
	}
	if p.Page > 1 && p.Page <= totalPages {
		u := pageURL(r, p.Page-1)
		previous = &u
	}

	return next, previous
}

// AbsoluteURL resolves a path against the scheme and host of the current
// request, for hyperlinked fields in list responses.
func AbsoluteURL(r *http.Request, path string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + path
}

func pageURL(r *http.Request, page int) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	u := *r.URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	return scheme + "://" + r.Host + u.Path + "?" + u.RawQuery
}
