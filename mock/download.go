package mock

import (
	"context"

	"github.com/fwojciec/torrench"
)

var _ torrench.Downloader = (*Downloader)(nil)

// Downloader is a mock implementation of torrench.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, listing *torrench.Listing) (*torrench.Download, error)
}

func (d *Downloader) Download(ctx context.Context, listing *torrench.Listing) (*torrench.Download, error) {
	return d.DownloadFn(ctx, listing)
}

var _ torrench.MetainfoParser = (*MetainfoParser)(nil)

// MetainfoParser is a mock implementation of torrench.MetainfoParser.
type MetainfoParser struct {
	ParseFn func(data []byte) (*torrench.Metainfo, error)
}

func (p *MetainfoParser) Parse(data []byte) (*torrench.Metainfo, error) {
	return p.ParseFn(data)
}

var _ torrench.TorrentStore = (*TorrentStore)(nil)

// TorrentStore is a mock implementation of torrench.TorrentStore.
type TorrentStore struct {
	SaveFn func(ctx context.Context, name string, data []byte) (string, error)
}

func (s *TorrentStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	return s.SaveFn(ctx, name, data)
}
