package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/torrench"
)

var _ torrench.TorrentStore = (*LoggingStore)(nil)

// LoggingStore wraps a TorrentStore with logging.
type LoggingStore struct {
	next   torrench.TorrentStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next torrench.TorrentStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Save delegates to the wrapped store and logs the operation.
func (s *LoggingStore) Save(ctx context.Context, name string, data []byte) (path string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("save torrent",
			"name", name,
			"path", path,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, name, data)
}
