// Package etree extracts torrent listings from the index's RSS feed.
package etree

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/torrench"
)

// Ensure FeedExtractor implements torrench.ListingExtractor.
var _ torrench.ListingExtractor = (*FeedExtractor)(nil)

// FeedExtractor extracts listings from an RSS results feed.
// Each <item> carries every field of one listing, so no alignment between
// independent sequences is needed.
type FeedExtractor struct{}

// NewFeedExtractor creates a new FeedExtractor.
func NewFeedExtractor() *FeedExtractor {
	return &FeedExtractor{}
}

// Extract parses an RSS document and returns one listing per item.
// Returns ENORESULTS for a feed without items and EMALFORMED for invalid
// XML or items missing their link or counts.
func (e *FeedExtractor) Extract(feed string) ([]*torrench.Listing, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(feed); err != nil {
		return nil, torrench.Errorf(torrench.EMALFORMED, "failed to parse feed: %v", err)
	}

	root := doc.SelectElement("rss")
	if root == nil {
		return nil, torrench.Errorf(torrench.EMALFORMED, "missing rss element")
	}
	channel := root.SelectElement("channel")
	if channel == nil {
		return nil, torrench.Errorf(torrench.EMALFORMED, "missing channel element")
	}

	items := channel.SelectElements("item")
	if len(items) == 0 {
		return nil, torrench.Errorf(torrench.ENORESULTS, "no listings found")
	}

	listings := make([]*torrench.Listing, 0, len(items))
	for i, item := range items {
		l, err := parseItem(item)
		if err != nil {
			return nil, torrench.Errorf(torrench.EMALFORMED, "item %d: %s", i, torrench.ErrorMessage(err))
		}
		l.Label = torrench.Label(i)
		listings = append(listings, l)
	}

	return listings, nil
}

func parseItem(item *etree.Element) (*torrench.Listing, error) {
	l := &torrench.Listing{
		Name:     childText(item, "title"),
		Size:     childText(item, "nyaa:size"),
		InfoHash: childText(item, "nyaa:infoHash"),
	}

	l.DownloadURL = childText(item, "link")
	if l.DownloadURL == "" {
		return nil, torrench.Errorf(torrench.EMALFORMED, "missing link")
	}

	var err error
	if l.Seeds, err = childInt(item, "nyaa:seeders"); err != nil {
		return nil, err
	}
	if l.Leeches, err = childInt(item, "nyaa:leechers"); err != nil {
		return nil, err
	}

	return l, nil
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

func childInt(el *etree.Element, tag string) (int, error) {
	text := childText(el, tag)
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, torrench.Errorf(torrench.EMALFORMED, "invalid %s %q", tag, text)
	}
	return n, nil
}
