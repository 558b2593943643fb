package torrench

import (
	"context"
	"time"
)

// Metainfo holds the parts of a .torrent file used to validate a download.
type Metainfo struct {
	Name     string
	Announce string
	Length   int64
	Files    int

	// InfoHash is the hex-encoded SHA-1 of the bencoded info dictionary.
	InfoHash string
}

// MetainfoParser decodes .torrent file contents.
type MetainfoParser interface {
	// Parse decodes data as a .torrent file.
	// Returns EMALFORMED if data is not valid torrent metainfo.
	Parse(data []byte) (*Metainfo, error)
}

// TorrentStore persists downloaded .torrent files.
type TorrentStore interface {
	// Save writes data under name and returns the path written.
	Save(ctx context.Context, name string, data []byte) (path string, err error)
}

// Download records a .torrent file saved to disk. Size is the .torrent file
// size; Length and Files describe the content it points at.
type Download struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SourceURL    string    `json:"sourceUrl"`
	FilePath     string    `json:"filePath"`
	InfoHash     string    `json:"infoHash"`
	ContentHash  string    `json:"contentHash"`
	Size         int64     `json:"size"`
	Length       int64     `json:"length"`
	Files        int       `json:"files"`
	DownloadedAt time.Time `json:"downloadedAt"`
}

// Validate returns an error if the download contains invalid fields.
func (d *Download) Validate() error {
	if d.Name == "" {
		return Errorf(EINVALID, "download name required")
	}
	if d.SourceURL == "" {
		return Errorf(EINVALID, "download source URL required")
	}
	return nil
}

// Downloader fetches and saves the .torrent file of a listing.
type Downloader interface {
	Download(ctx context.Context, listing *Listing) (*Download, error)
}
