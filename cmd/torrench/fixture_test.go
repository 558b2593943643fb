package main_test

import (
	"fmt"
	"strings"

	"github.com/fwojciec/torrench"
	"github.com/zeebo/bencode"
)

// resultsPage renders a minimal results table with one row per name.
func resultsPage(names ...string) string {
	var b strings.Builder
	b.WriteString(`<html><body><table class="torrent-list"><tbody>`)
	for i, name := range names {
		fmt.Fprintf(&b, `
<tr>
	<td colspan="2"><a href="/view/%[1]d" title="%[2]s">%[2]s</a></td>
	<td class="text-center"><a href="/download/%[1]d.torrent">dl</a></td>
	<td class="text-center">%[3]d.5 GiB</td>
	<td class="text-center" style="color: green;">%[4]d</td>
	<td class="text-center" style="color: red;">%[5]d</td>
</tr>`, 1001+i, name, i+1, 100-i, i)
	}
	b.WriteString(`</tbody></table></body></html>`)
	return b.String()
}

// torrentFile encodes a single-file torrent named name.
func torrentFile(name string) string {
	data, err := bencode.EncodeBytes(map[string]any{
		"announce": "http://tracker.example/announce",
		"info": map[string]any{
			"name":         name,
			"length":       1024,
			"piece length": 16384,
			"pieces":       strings.Repeat("x", 20),
		},
	})
	if err != nil {
		panic(err)
	}
	return string(data)
}

func resultSet(names ...string) *torrench.ResultSet {
	rs := &torrench.ResultSet{Query: "show"}
	for i, name := range names {
		rs.Listings = append(rs.Listings, &torrench.Listing{
			Name:        name,
			Label:       torrench.Label(i),
			Size:        "700 MiB",
			Seeds:       10,
			Leeches:     1,
			DownloadURL: fmt.Sprintf("https://nyaa.si/download/%d.torrent", 1001+i),
		})
	}
	return rs
}
