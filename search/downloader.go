package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/torrench"
)

var _ torrench.Downloader = (*Downloader)(nil)

// Downloader fetches a listing's .torrent file, checks that it decodes as
// torrent metainfo and saves it. History is optional.
type Downloader struct {
	Fetcher     torrench.Fetcher
	Parser      torrench.MetainfoParser
	Store       torrench.TorrentStore
	History     torrench.HistoryService
	RateLimiter torrench.RateLimiter
	Logger      *slog.Logger
	RetryDelays []time.Duration
}

// Download saves the .torrent file behind listing.
// Returns EINVALID for a listing without a download URL and EMALFORMED when
// the fetched bytes are not a torrent.
func (d *Downloader) Download(ctx context.Context, listing *torrench.Listing) (*torrench.Download, error) {
	if listing == nil || listing.DownloadURL == "" {
		return nil, torrench.Errorf(torrench.EINVALID, "listing has no download URL")
	}

	if err := wait(ctx, d.RateLimiter, listing.DownloadURL); err != nil {
		return nil, err
	}

	delays := d.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	body, err := FetchWithRetryDelays(ctx, listing.DownloadURL, d.Fetcher.Fetch, d.Logger, delays)
	if err != nil {
		return nil, fmt.Errorf("fetch torrent: %w", err)
	}
	data := []byte(body)

	meta, err := d.Parser.Parse(data)
	if err != nil {
		return nil, err
	}
	if d.Logger != nil {
		d.Logger.Debug("parsed torrent", "name", meta.Name, "announce", meta.Announce, "files", meta.Files)
	}

	path, err := d.Store.Save(ctx, listing.FileName(), data)
	if err != nil {
		return nil, fmt.Errorf("save torrent: %w", err)
	}

	download := &torrench.Download{
		Name:         listing.Name,
		SourceURL:    listing.DownloadURL,
		FilePath:     path,
		InfoHash:     meta.InfoHash,
		ContentHash:  ContentHash(data),
		Size:         int64(len(data)),
		Length:       meta.Length,
		Files:        meta.Files,
		DownloadedAt: time.Now().UTC(),
	}

	if d.History != nil {
		// The file is already on disk; a history failure is not fatal.
		if err := d.History.CreateDownload(ctx, download); err != nil && d.Logger != nil {
			d.Logger.Warn("record download", "name", download.Name, "err", err)
		}
	}

	return download, nil
}
