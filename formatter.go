package torrench

import (
	"strconv"
	"strings"
	"text/tabwriter"
)

// ResultHeaders are the column headings of the results table.
var ResultHeaders = []string{"NAME", "INDEX", "SIZE", "S", "L"}

// FormatResults renders listings as an aligned table with ResultHeaders.
// Returns an empty string if there are no listings.
func FormatResults(listings []*Listing) string {
	if len(listings) == 0 {
		return ""
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	writeRow(w, ResultHeaders)
	for _, l := range listings {
		writeRow(w, []string{
			l.Name,
			l.Label,
			l.Size,
			strconv.Itoa(l.Seeds),
			strconv.Itoa(l.Leeches),
		})
	}
	_ = w.Flush()

	return b.String()
}

func writeRow(w *tabwriter.Writer, cells []string) {
	// Tabs inside names would break column alignment.
	clean := make([]string, len(cells))
	for i, c := range cells {
		clean[i] = strings.ReplaceAll(c, "\t", " ")
	}
	_, _ = w.Write([]byte(strings.Join(clean, "\t") + "\n"))
}
