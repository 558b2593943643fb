package mock

import "github.com/fwojciec/torrench"

var _ torrench.ListingExtractor = (*ListingExtractor)(nil)

// ListingExtractor is a mock implementation of torrench.ListingExtractor.
type ListingExtractor struct {
	ExtractFn func(page string) ([]*torrench.Listing, error)
}

func (e *ListingExtractor) Extract(page string) ([]*torrench.Listing, error) {
	return e.ExtractFn(page)
}
