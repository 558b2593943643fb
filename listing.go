package torrench

import (
	"strconv"
	"strings"
)

// Listing represents one torrent search result row.
type Listing struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Size        string `json:"size"`
	Seeds       int    `json:"seeds"`
	Leeches     int    `json:"leeches"`
	DownloadURL string `json:"downloadUrl"`

	// InfoHash is only known when the source publishes it (e.g., the RSS feed).
	InfoHash string `json:"infoHash,omitempty"`
}

// FileName returns the name the listing's .torrent file is saved under.
// Path separators are replaced so the name stays inside the target directory.
func (l *Listing) FileName() string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '_'
		}
		return r
	}, strings.TrimSpace(l.Name))
	if name == "" || name == "." || name == ".." {
		name = "download"
	}
	return name + ".torrent"
}

// Label returns the synthetic display label for the listing at position i.
// Labels are positional and never sourced from the page.
func Label(i int) string {
	return "--" + strconv.Itoa(i) + "--"
}

// Relabel assigns positional labels to listings in order.
func Relabel(listings []*Listing) {
	for i, l := range listings {
		l.Label = Label(i)
	}
}

// ResultSet is the ordered collection of listings produced by one query.
type ResultSet struct {
	Query    string     `json:"query"`
	Category Category   `json:"category"`
	Listings []*Listing `json:"listings"`
}

// Len returns the number of listings.
func (rs *ResultSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.Listings)
}

// Select resolves an ordinal to its listing.
// Returns EINVALID if the ordinal is out of range.
func (rs *ResultSet) Select(ordinal int) (*Listing, error) {
	if ordinal < 0 || ordinal >= rs.Len() {
		return nil, Errorf(EINVALID, "index %d out of range (0-%d)", ordinal, rs.Len()-1)
	}
	return rs.Listings[ordinal], nil
}

// SelectInput parses user input as an ordinal and resolves it.
// Returns EINVALID for non-integer or out-of-range input.
func (rs *ResultSet) SelectInput(input string) (*Listing, error) {
	ordinal, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return nil, Errorf(EINVALID, "index must be an integer, got %q", strings.TrimSpace(input))
	}
	return rs.Select(ordinal)
}
