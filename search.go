package torrench

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// DefaultBaseURL is the torrent index queried when no other is configured.
const DefaultBaseURL = "https://nyaa.si"

// PageFormat selects which representation of the results page is requested.
type PageFormat string

// Supported page formats.
const (
	FormatHTML PageFormat = "html"
	FormatRSS  PageFormat = "rss"
)

// SearchQuery describes one search request.
type SearchQuery struct {
	Query    string
	Category Category

	// Page is 1-based. Zero is treated as the first page.
	Page int
}

// Validate returns an error if the query contains invalid fields.
func (q *SearchQuery) Validate() error {
	if strings.TrimSpace(q.Query) == "" {
		return Errorf(EINVALID, "search query required")
	}
	return nil
}

// SearchURL builds the results page URL for a query.
// The category defaults to DefaultCategory when its code is empty.
func SearchURL(baseURL string, q SearchQuery, format PageFormat) string {
	code := q.Category.Code
	if code == "" {
		code = DefaultCategory.Code
	}

	var b strings.Builder
	b.WriteString(strings.TrimSuffix(baseURL, "/"))
	b.WriteString("/?")
	if format == FormatRSS {
		b.WriteString("page=rss&")
	}
	b.WriteString("f=0&c=")
	b.WriteString(code)
	b.WriteString("&q=")
	b.WriteString(url.QueryEscape(q.Query))
	if q.Page > 1 {
		b.WriteString("&p=")
		b.WriteString(strconv.Itoa(q.Page))
	}
	return b.String()
}

// Searcher runs a query against the torrent index.
type Searcher interface {
	// Search fetches and extracts the results for the query.
	// Returns ENORESULTS if the index has no matching listings.
	Search(ctx context.Context, q SearchQuery) (*ResultSet, error)
}
