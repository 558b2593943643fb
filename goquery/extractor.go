package goquery

import (
	"io"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/torrench"
)

// Compile-time interface verification.
var (
	_ torrench.ListingExtractor = (*PositionalExtractor)(nil)
	_ torrench.ListingExtractor = (*RowExtractor)(nil)
)

type config struct {
	baseURL string
	logger  *slog.Logger
}

// Option configures an extractor.
type Option func(*config)

// WithBaseURL sets the URL download links are resolved against.
// Defaults to torrench.DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger used to report field count mismatches.
// Defaults to a logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) config {
	c := config{
		baseURL: torrench.DefaultBaseURL,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// PositionalExtractor extracts listings by running each field extractor
// over the whole page and pairing the results by position: the i-th name
// goes with the i-th download link, size, seed count and leech count.
//
// Pairing is only correct if the page emits every marker once per row in
// the same order. Use RowExtractor when that cannot be relied on.
type PositionalExtractor struct {
	config
}

// NewPositionalExtractor creates a new PositionalExtractor.
func NewPositionalExtractor(opts ...Option) *PositionalExtractor {
	return &PositionalExtractor{config: newConfig(opts)}
}

// Extract parses html and returns the aligned listings.
//
// Zero names yields ENORESULTS. Names without any download links, sizes,
// seeds or leeches yields EMALFORMED. When the sequence lengths differ the
// result is truncated to the shortest one and a warning is logged.
func (e *PositionalExtractor) Extract(html string) ([]*torrench.Listing, error) {
	f, err := ExtractFields(html, e.baseURL)
	if err != nil {
		return nil, err
	}
	return e.align(f)
}

func (e *PositionalExtractor) align(f *Fields) ([]*torrench.Listing, error) {
	if len(f.Names) == 0 {
		return nil, torrench.Errorf(torrench.ENORESULTS, "no listings found")
	}

	for _, field := range []struct {
		name   string
		values []string
	}{
		{"download link", f.URLs},
		{"size", f.Sizes},
		{"seed", f.Seeds},
		{"leech", f.Leeches},
	} {
		if len(field.values) == 0 {
			return nil, torrench.Errorf(torrench.EMALFORMED, "found %d names but no %s cells", len(f.Names), field.name)
		}
	}

	n := min(len(f.Names), len(f.URLs), len(f.Sizes), len(f.Seeds), len(f.Leeches))
	if n != len(f.Names) || n != len(f.URLs) || n != len(f.Sizes) || n != len(f.Seeds) || n != len(f.Leeches) {
		e.logger.Warn("field count mismatch",
			"names", len(f.Names),
			"urls", len(f.URLs),
			"sizes", len(f.Sizes),
			"seeds", len(f.Seeds),
			"leeches", len(f.Leeches),
			"kept", n,
		)
	}

	listings := make([]*torrench.Listing, 0, n)
	for i := 0; i < n; i++ {
		seeds, err := parseCount("seed", f.Seeds[i])
		if err != nil {
			return nil, err
		}
		leeches, err := parseCount("leech", f.Leeches[i])
		if err != nil {
			return nil, err
		}
		listings = append(listings, &torrench.Listing{
			Name:        f.Names[i],
			Label:       torrench.Label(i),
			Size:        f.Sizes[i],
			Seeds:       seeds,
			Leeches:     leeches,
			DownloadURL: f.URLs[i],
		})
	}

	return listings, nil
}

// RowExtractor extracts listings one table row at a time, taking every
// field from within the row that holds the name cell. Markers outside
// listing rows are ignored.
type RowExtractor struct {
	config
}

// NewRowExtractor creates a new RowExtractor.
func NewRowExtractor(opts ...Option) *RowExtractor {
	return &RowExtractor{config: newConfig(opts)}
}

// Extract parses html and returns one listing per row containing a name cell.
//
// No such rows yields ENORESULTS. A row missing any other field yields
// EMALFORMED naming the row.
func (e *RowExtractor) Extract(html string) ([]*torrench.Listing, error) {
	base, doc, err := parse(html, e.baseURL)
	if err != nil {
		return nil, err
	}

	var listings []*torrench.Listing
	var rowErr error

	doc.FindMatcher(rowMarker).EachWithBreak(func(_ int, row *goquery.Selection) bool {
		nameCell := row.ChildrenMatcher(nameMarker).First()
		if nameCell.Length() == 0 {
			return true
		}

		i := len(listings)
		l := &torrench.Listing{
			Name:  cellName(nameCell),
			Label: torrench.Label(i),
		}

		row.FindMatcher(downloadMarker).EachWithBreak(func(_ int, a *goquery.Selection) bool {
			u, ok := downloadURL(base, a)
			l.DownloadURL = u
			return !ok
		})
		if l.DownloadURL == "" {
			rowErr = torrench.Errorf(torrench.EMALFORMED, "row %d (%s): missing download link", i, l.Name)
			return false
		}

		row.ChildrenMatcher(sizeMarker).EachWithBreak(func(_ int, td *goquery.Selection) bool {
			size, ok := cellSize(td, RowSizeUnits)
			l.Size = size
			return !ok
		})
		if l.Size == "" {
			rowErr = torrench.Errorf(torrench.EMALFORMED, "row %d (%s): missing size", i, l.Name)
			return false
		}

		seedCell := row.ChildrenMatcher(seedMarker).First()
		leechCell := row.ChildrenMatcher(leechMarker).First()
		if seedCell.Length() == 0 || leechCell.Length() == 0 {
			rowErr = torrench.Errorf(torrench.EMALFORMED, "row %d (%s): missing seed or leech count", i, l.Name)
			return false
		}
		if l.Seeds, rowErr = parseCount("seed", seedCell.Text()); rowErr != nil {
			return false
		}
		if l.Leeches, rowErr = parseCount("leech", leechCell.Text()); rowErr != nil {
			return false
		}

		listings = append(listings, l)
		return true
	})

	if rowErr != nil {
		return nil, rowErr
	}
	if len(listings) == 0 {
		return nil, torrench.Errorf(torrench.ENORESULTS, "no listings found")
	}
	return listings, nil
}
