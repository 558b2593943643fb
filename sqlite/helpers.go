package sqlite

import (
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/torrench"
)

// parseTime parses a timestamp stored in timeFormat.
// Returns an error if parsing fails with a descriptive message including the column name.
func parseTime(column, value string) (time.Time, error) {
	t, err := time.Parse(timeFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return t, nil
}

// appendPaging appends LIMIT and OFFSET clauses to a query builder if values are > 0.
// SQLite requires a LIMIT whenever OFFSET is used, so -1 (no limit) is supplied if needed.
func appendPaging(query *strings.Builder, args []any, filter torrench.HistoryFilter) []any {
	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}
	return args
}
