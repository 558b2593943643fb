// Package bencode decodes .torrent metainfo files.
package bencode

import (
	"crypto/sha1"
	"encoding/hex"

	"github.com/fwojciec/torrench"
	"github.com/zeebo/bencode"
)

// Ensure Parser implements torrench.MetainfoParser at compile time.
var _ torrench.MetainfoParser = (*Parser)(nil)

type bencodeTorrent struct {
	Announce string `bencode:"announce"`
	// Info is kept raw so the info hash is computed over the exact bytes
	// that were downloaded.
	Info bencode.RawMessage `bencode:"info"`
}

// Only one of Length or Files is present (BEP 3).
type bencodeInfo struct {
	Name        string `bencode:"name"`
	PieceLength int64  `bencode:"piece length"`
	Length      int64  `bencode:"length"`
	Files       []struct {
		Length int64    `bencode:"length"`
		Path   []string `bencode:"path"`
	} `bencode:"files"`
}

// Parser decodes .torrent files.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes data as a .torrent file and returns its metainfo.
// Returns EMALFORMED if data is not a bencoded dictionary with a named
// info dictionary, which is what an HTML error page served in place of a
// torrent looks like.
func (p *Parser) Parse(data []byte) (*torrench.Metainfo, error) {
	var bt bencodeTorrent
	if err := bencode.DecodeBytes(data, &bt); err != nil {
		return nil, torrench.Errorf(torrench.EMALFORMED, "not a torrent file: %v", err)
	}
	if len(bt.Info) == 0 {
		return nil, torrench.Errorf(torrench.EMALFORMED, "not a torrent file: missing info dictionary")
	}

	var info bencodeInfo
	if err := bencode.DecodeBytes(bt.Info, &info); err != nil {
		return nil, torrench.Errorf(torrench.EMALFORMED, "invalid info dictionary: %v", err)
	}
	if info.Name == "" {
		return nil, torrench.Errorf(torrench.EMALFORMED, "invalid info dictionary: missing name")
	}

	m := &torrench.Metainfo{
		Name:     info.Name,
		Announce: bt.Announce,
		Length:   info.Length,
		Files:    1,
	}
	if len(info.Files) > 0 {
		m.Files = len(info.Files)
		m.Length = 0
		for _, f := range info.Files {
			m.Length += f.Length
		}
	}

	h := sha1.Sum(bt.Info)
	m.InfoHash = hex.EncodeToString(h[:])

	return m, nil
}
