package torrench

import (
	"context"
	"time"
)

// SearchRecord records a query that was run.
type SearchRecord struct {
	ID         string    `json:"id"`
	Query      string    `json:"query"`
	Category   string    `json:"category"`
	Results    int       `json:"results"`
	SearchedAt time.Time `json:"searchedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (s *SearchRecord) Validate() error {
	if s.Query == "" {
		return Errorf(EINVALID, "search query required")
	}
	return nil
}

// HistoryFilter represents a filter for FindSearches and FindDownloads.
type HistoryFilter struct {
	Query *string `json:"query"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// HistoryService records searches and downloads.
type HistoryService interface {
	// CreateSearch records a search. ID and SearchedAt are assigned.
	CreateSearch(ctx context.Context, search *SearchRecord) error

	// FindSearches returns recorded searches, newest first.
	// Query filters by exact query text.
	FindSearches(ctx context.Context, filter HistoryFilter) ([]*SearchRecord, error)

	// CreateDownload records a download. ID and DownloadedAt are assigned
	// when empty.
	CreateDownload(ctx context.Context, download *Download) error

	// FindDownloadByID retrieves a download by ID.
	// Returns ENOTFOUND if the download does not exist.
	FindDownloadByID(ctx context.Context, id string) (*Download, error)

	// FindDownloads returns recorded downloads, newest first.
	// Query filters by exact listing name.
	FindDownloads(ctx context.Context, filter HistoryFilter) ([]*Download, error)
}
