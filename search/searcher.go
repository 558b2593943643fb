// Package search coordinates fetching and extraction of results pages
// and downloading of the .torrent files users pick from them.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/torrench"
	"github.com/fwojciec/torrench/bloom"
	"golang.org/x/sync/errgroup"
)

var _ torrench.Searcher = (*Searcher)(nil)

// Searcher runs queries against the index. Pages are fetched concurrently
// and merged in page order.
type Searcher struct {
	BaseURL     string
	Format      torrench.PageFormat
	Fetcher     torrench.Fetcher
	Extractor   torrench.ListingExtractor
	RateLimiter torrench.RateLimiter
	Logger      *slog.Logger

	// Pages is the number of consecutive results pages fetched per query.
	Pages       int
	Concurrency int
	RetryDelays []time.Duration

	// DedupFalsePositiveRate sizes the Bloom filter that pre-checks
	// listings repeated across pages. Defaults to DefaultDedupFalsePositiveRate.
	DedupFalsePositiveRate float64
}

// DefaultDedupFalsePositiveRate is the Bloom filter false positive rate used
// when merging pages.
const DefaultDedupFalsePositiveRate = 0.0001

// Search fetches and extracts the results for q.
//
// Returns ENORESULTS when the first page has no listings. Later pages with
// no listings are skipped. Listings repeated across pages are dropped and
// the merged set is relabelled from --0--.
func (s *Searcher) Search(ctx context.Context, q torrench.SearchQuery) (*torrench.ResultSet, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	first := max(q.Page, 1)
	pages := max(s.Pages, 1)
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([][]*torrench.Listing, pages)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i := range pages {
		page := q
		page.Page = first + i
		g.Go(func() error {
			listings, err := s.searchPage(gctx, page)
			if torrench.ErrorCode(err) == torrench.ENORESULTS && i > 0 {
				return nil
			}
			if err != nil {
				return err
			}
			results[i] = listings
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &torrench.ResultSet{
		Query:    q.Query,
		Category: q.Category,
		Listings: s.merge(results),
	}, nil
}

func (s *Searcher) searchPage(ctx context.Context, q torrench.SearchQuery) ([]*torrench.Listing, error) {
	baseURL := s.BaseURL
	if baseURL == "" {
		baseURL = torrench.DefaultBaseURL
	}
	format := s.Format
	if format == "" {
		format = torrench.FormatHTML
	}
	pageURL := torrench.SearchURL(baseURL, q, format)

	if err := wait(ctx, s.RateLimiter, pageURL); err != nil {
		return nil, err
	}

	body, err := FetchWithRetryDelays(ctx, pageURL, s.Fetcher.Fetch, s.Logger, s.retryDelays())
	if err != nil {
		return nil, fmt.Errorf("fetch page %d: %w", q.Page, err)
	}

	return s.Extractor.Extract(body)
}

// merge concatenates pages in order and relabels the result. Listings
// repeated across pages are dropped; a single page is kept as extracted.
func (s *Searcher) merge(pages [][]*torrench.Listing) []*torrench.Listing {
	if len(pages) == 1 {
		torrench.Relabel(pages[0])
		return pages[0]
	}

	total := 0
	for _, p := range pages {
		total += len(p)
	}

	rate := s.DedupFalsePositiveRate
	if rate <= 0 {
		rate = DefaultDedupFalsePositiveRate
	}
	seen := bloom.NewFilter(uint(max(total, 1)), rate)
	merged := make([]*torrench.Listing, 0, total)
	for _, p := range pages {
		for _, l := range p {
			if seen.Seen(l) {
				continue
			}
			merged = append(merged, l)
		}
	}
	if s.Logger != nil {
		s.Logger.Debug("merged pages",
			"pages", len(pages),
			"listings", total,
			"dropped", total-len(merged),
			"estimated", seen.EstimatedCount(),
			"false_positives", seen.FalsePositives(),
		)
	}

	torrench.Relabel(merged)
	return merged
}

func (s *Searcher) retryDelays() []time.Duration {
	if s.RetryDelays != nil {
		return s.RetryDelays
	}
	return DefaultRetryDelays()
}

// wait blocks on the limiter for rawURL's host. A nil limiter never blocks.
func wait(ctx context.Context, limiter torrench.RateLimiter, rawURL string) error {
	if limiter == nil {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return torrench.Errorf(torrench.EINVALID, "invalid URL %q", rawURL)
	}
	return limiter.Wait(ctx, u.Host)
}
