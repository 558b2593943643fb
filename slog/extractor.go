package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/torrench"
)

// Ensure LoggingExtractor implements torrench.ListingExtractor.
var _ torrench.ListingExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a ListingExtractor with logging.
type LoggingExtractor struct {
	next   torrench.ListingExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next torrench.ListingExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(page string) (listings []*torrench.Listing, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"bytes", len(page),
			"count", len(listings),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(page)
}
