// Package fs provides file-based storage for downloaded .torrent files.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/torrench"
)

// Ensure TorrentStore implements torrench.TorrentStore at compile time.
var _ torrench.TorrentStore = (*TorrentStore)(nil)

// TorrentStore writes .torrent files into a directory.
// Files are written to a temporary name and renamed into place, so a
// partially written file never appears under its final name.
type TorrentStore struct {
	dir string
}

// NewTorrentStore creates a new TorrentStore that writes to dir.
// The directory is created on first save.
func NewTorrentStore(dir string) *TorrentStore {
	return &TorrentStore{dir: dir}
}

// Save writes data to dir/name, replacing any existing file.
// Returns EINVALID if name is not a plain file name.
func (s *TorrentStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", torrench.Errorf(torrench.EINVALID, "invalid file name %q", name)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".*.tmp")
	if err != nil {
		return "", err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return "", err
	}

	finalPath := filepath.Join(s.dir, name)
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", err
	}

	return finalPath, nil
}
