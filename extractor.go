package torrench

// ListingExtractor extracts listings from a results page.
type ListingExtractor interface {
	// Extract parses a raw results page and returns its listings in order,
	// labelled by position.
	//
	// Returns ENORESULTS if the page contains no listings and EMALFORMED if
	// listings are present but a required field cannot be extracted.
	Extract(page string) ([]*Listing, error)
}
