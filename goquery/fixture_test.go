package goquery_test

import (
	"fmt"
	"strings"
)

type row struct {
	id      int
	name    string
	size    string
	seeds   string
	leeches string
	noLink  bool
}

func (r row) html() string {
	link := fmt.Sprintf(`<a href="/download/%d.torrent"><i class="fa fa-fw fa-download"></i></a>`, r.id)
	if r.noLink {
		link = ""
	}
	return fmt.Sprintf(`
<tr class="default">
	<td><a href="/?c=1_2" title="Anime - English-translated"><img src="/static/img/icons/nyaa/1_2.png" alt="Anime"></a></td>
	<td colspan="2">
		<a href="/view/%[1]d#comments" class="comments" title="3 comments"><i class="fa fa-comments-o"></i>3</a>
		<a href="/view/%[1]d" title="%[2]s">%[2]s</a>
	</td>
	<td class="text-center">
		%[3]s
		<a href="magnet:?xt=urn:btih:%[1]d"><i class="fa fa-fw fa-magnet"></i></a>
	</td>
	<td class="text-center">%[4]s</td>
	<td class="text-center" data-timestamp="1700000000">2023-11-14 22:13</td>
	<td class="text-center" style="color: green;">%[5]s</td>
	<td class="text-center" style="color: red;">%[6]s</td>
	<td class="text-center">3000</td>
</tr>`, r.id, r.name, link, r.size, r.seeds, r.leeches)
}

// resultsPage renders a results page holding rows, plus any extra markup
// placed after the results table.
func resultsPage(rows []row, extra string) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<body>
<nav><a href="/">Nyaa</a><a href="/rules">Rules</a></nav>
<div class="container">
<div class="table-responsive">
<table class="table torrent-list">
<thead>
<tr>
	<th class="text-center">Category</th>
	<th colspan="2">Name</th>
	<th class="text-center">Link</th>
	<th class="text-center">Size</th>
	<th class="text-center">Date</th>
	<th class="text-center">Seeders</th>
	<th class="text-center">Leechers</th>
	<th class="text-center">Completed</th>
</tr>
</thead>
<tbody>`)
	for _, r := range rows {
		b.WriteString(r.html())
	}
	b.WriteString(`
</tbody>
</table>
</div>
`)
	b.WriteString(extra)
	b.WriteString(`
</div>
</body>
</html>`)
	return b.String()
}

func threeRows() []row {
	return []row{
		{id: 1001, name: "Example - 01 [1080p]", size: "1.4 GiB", seeds: "120", leeches: "4"},
		{id: 1002, name: "Example - 02 [720p]", size: "700 MiB", seeds: "55", leeches: "2"},
		{id: 1003, name: "Example - 03 [480p]", size: "350.5 MiB", seeds: "9", leeches: "0"},
	}
}
