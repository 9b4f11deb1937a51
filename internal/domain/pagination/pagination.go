// Package pagination carries the page/sort parameters shared by the
// filtered listing and search queries.
package pagination

import "strings"

const DefaultSize = 10

// Request is a zero-based page request. SortBy is the client-facing
// field name; repositories resolve it against a column whitelist.
type Request struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string
}

func (r Request) Limit() int {
	if r.Size <= 0 {
		return DefaultSize
	}
	return r.Size
}

func (r Request) Offset() int {
	if r.Page <= 0 {
		return 0
	}
	return r.Page * r.Limit()
}

// Descending reports whether the requested direction is descending.
// Only a case-insensitive "desc" counts; anything else is ascending.
func (r Request) Descending() bool {
	return strings.EqualFold(r.SortDir, "desc")
}

// OrderClause resolves SortBy against columns and returns a SQL ORDER BY
// fragment. The sort key is interpolated into the statement, so only
// whitelisted column names ever reach it; unknown keys fall back to
// fallback.
func (r Request) OrderClause(columns map[string]string, fallback string) string {
	column, ok := columns[r.SortBy]
	if !ok {
		column = fallback
	}
	dir := "ASC"
	if r.Descending() {
		dir = "DESC"
	}
	return " ORDER BY " + column + " " + dir
}

// TotalPages returns the page count for total records of size Limit.
func (r Request) TotalPages(total int64) int64 {
	size := int64(r.Limit())
	if total == 0 {
		return 0
	}
	return (total + size - 1) / size
}
