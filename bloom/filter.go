// Package bloom provides deduplication of listings backed by a Bloom filter.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/torrench"
)

// Filter remembers listings by download URL. Listings repeat across
// results pages when new uploads push rows from one page onto the next.
//
// The Bloom filter answers every lookup for a listing not yet recorded.
// Its hits are confirmed against the exact set of keys, so a distinct
// listing is never reported as seen.
type Filter struct {
	f              *bloom.BloomFilter
	keys           map[string]struct{}
	falsePositives int
}

// NewFilter creates a new Filter sized for n expected listings with the
// given Bloom filter false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f:    bloom.NewWithEstimates(n, fpRate),
		keys: make(map[string]struct{}, n),
	}
}

// Seen reports whether the listing was recorded before and records it.
func (f *Filter) Seen(l *torrench.Listing) bool {
	k := key(l)
	if !f.f.TestAndAddString(k) {
		f.keys[k] = struct{}{}
		return false
	}
	if _, ok := f.keys[k]; ok {
		return true
	}
	f.keys[k] = struct{}{}
	f.falsePositives++
	return false
}

// EstimatedCount returns the approximate number of listings recorded.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

// FalsePositives returns how many Bloom filter hits turned out to be new
// listings.
func (f *Filter) FalsePositives() int {
	return f.falsePositives
}

func key(l *torrench.Listing) string {
	if l.DownloadURL != "" {
		return l.DownloadURL
	}
	return "name:" + l.Name
}
