// Package goquery extracts torrent listings from results page HTML using
// CSS marker selectors.
package goquery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/torrench"
)

// Structural markers of a results page. Each selects the cells or links
// carrying one listing field.
var (
	nameMarker     = cascadia.MustCompile(`td[colspan="2"]`)
	downloadMarker = cascadia.MustCompile(`a[href^="/download/"]`)
	sizeMarker     = cascadia.MustCompile(`td.text-center`)
	seedMarker     = cascadia.MustCompile(`td[style="color: green;"]`)
	leechMarker    = cascadia.MustCompile(`td[style="color: red;"]`)
	rowMarker      = cascadia.MustCompile(`tr`)
	commentMarker  = cascadia.MustCompile(`a.comments`)
)

// SizeUnits are the size suffixes PositionalExtractor recognises in size
// cells. Cells ending in any other unit are not treated as sizes.
var SizeUnits = []string{"GiB", "MiB"}

// RowSizeUnits are the size suffixes RowExtractor recognises. Scoping to a
// single row makes it safe to accept every unit the site prints.
var RowSizeUnits = []string{"Bytes", "KiB", "MiB", "GiB", "TiB"}

// Fields holds the per-field sequences extracted from one page,
// each in document order.
type Fields struct {
	Names   []string
	URLs    []string
	Sizes   []string
	Seeds   []string
	Leeches []string
}

// ExtractFields runs the five field extractors over html independently.
// Download links are resolved against baseURL.
func ExtractFields(html string, baseURL string) (*Fields, error) {
	base, doc, err := parse(html, baseURL)
	if err != nil {
		return nil, err
	}

	f := &Fields{}

	doc.FindMatcher(nameMarker).Each(func(_ int, sel *goquery.Selection) {
		f.Names = append(f.Names, cellName(sel))
	})

	doc.FindMatcher(downloadMarker).Each(func(_ int, sel *goquery.Selection) {
		if u, ok := downloadURL(base, sel); ok {
			f.URLs = append(f.URLs, u)
		}
	})

	doc.FindMatcher(sizeMarker).Each(func(_ int, sel *goquery.Selection) {
		if size, ok := cellSize(sel, SizeUnits); ok {
			f.Sizes = append(f.Sizes, size)
		}
	})

	doc.FindMatcher(seedMarker).Each(func(_ int, sel *goquery.Selection) {
		f.Seeds = append(f.Seeds, strings.TrimSpace(sel.Text()))
	})

	doc.FindMatcher(leechMarker).Each(func(_ int, sel *goquery.Selection) {
		f.Leeches = append(f.Leeches, strings.TrimSpace(sel.Text()))
	})

	return f, nil
}

func parse(html string, baseURL string) (*url.URL, *goquery.Document, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, nil, torrench.Errorf(torrench.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil, torrench.Errorf(torrench.EMALFORMED, "failed to parse HTML: %v", err)
	}

	return base, doc, nil
}

// cellName returns the listing name held by a name cell.
// The comment-count link that precedes the title link is ignored.
func cellName(td *goquery.Selection) string {
	if a := td.Find("a").NotMatcher(commentMarker).Last(); a.Length() > 0 {
		if name := strings.TrimSpace(a.Text()); name != "" {
			return name
		}
		if title, ok := a.Attr("title"); ok {
			return strings.TrimSpace(title)
		}
	}
	return strings.TrimSpace(strings.ReplaceAll(td.Text(), "\n", ""))
}

// downloadURL resolves a download link against the base URL.
func downloadURL(base *url.URL, a *goquery.Selection) (string, bool) {
	href, exists := a.Attr("href")
	if !exists || href == "" {
		return "", false
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	return base.ResolveReference(ref).String(), true
}

// cellSize returns the cell text if it ends in one of units.
func cellSize(td *goquery.Selection, units []string) (string, bool) {
	text := strings.TrimSpace(td.Text())
	for _, unit := range units {
		if strings.HasSuffix(text, unit) {
			return text, true
		}
	}
	return "", false
}

// parseCount parses a seed or leech count.
func parseCount(field, text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, torrench.Errorf(torrench.EMALFORMED, "invalid %s count %q", field, text)
	}
	return n, nil
}
