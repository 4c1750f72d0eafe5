// Package search translates raw keyword/pagination input into a filter,
// ordering, and window that repositories apply against the record store.
package search

import (
	"strconv"
	"strings"
)

// Defaults applied when pagination input is absent or invalid.
const (
	DefaultPageNum  = 1
	DefaultPageSize = 10
)

type filterKind int

const (
	kindMatchAll filterKind = iota
	kindSubstring
)

// Filter is a tagged search predicate: either match-all or a case-insensitive
// substring match on the entity's searchable field.
type Filter struct {
	kind    filterKind
	keyword string
}

// MatchAll returns the filter that selects every record.
func MatchAll() Filter {
	return Filter{kind: kindMatchAll}
}

// Substring returns a case-insensitive substring filter for keyword.
func Substring(keyword string) Filter {
	return Filter{kind: kindSubstring, keyword: keyword}
}

// BuildFilter normalizes a raw keyword into a Filter. Absent keywords and the
// sentinel strings "null", "undefined" and "NaN" that front-ends serialize for
// missing values all collapse into match-all.
func BuildFilter(raw string) Filter {
	keyword := NormalizeKeyword(raw)
	if keyword == "" {
		return MatchAll()
	}
	return Substring(keyword)
}

// IsMatchAll reports whether the filter selects every record.
func (f Filter) IsMatchAll() bool {
	return f.kind == kindMatchAll
}

// Keyword returns the normalized keyword; empty for match-all filters.
func (f Filter) Keyword() string {
	if f.kind != kindSubstring {
		return ""
	}
	return f.keyword
}

// Matches reports whether value satisfies the filter.
func (f Filter) Matches(value string) bool {
	if f.kind == kindMatchAll {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(f.keyword))
}

// NormalizeKeyword trims the raw keyword and maps trivial values to "".
func NormalizeKeyword(raw string) string {
	trimmed := strings.TrimSpace(raw)
	switch trimmed {
	case "", "null", "undefined", "NaN":
		return ""
	}
	return trimmed
}

// Window is an offset/limit pagination window.
type Window struct {
	PageNum  int
	PageSize int
}

// BuildWindow parses raw page inputs, defaulting pageNum to 1 and pageSize to
// 10 when absent, non-numeric, or not positive.
func BuildWindow(pageNumRaw, pageSizeRaw string) Window {
	return Window{
		PageNum:  parsePositive(pageNumRaw, DefaultPageNum),
		PageSize: parsePositive(pageSizeRaw, DefaultPageSize),
	}
}

// Offset returns the number of records to skip.
func (w Window) Offset() int {
	return (w.PageNum - 1) * w.PageSize
}

// Limit returns the number of records to take.
func (w Window) Limit() int {
	return w.PageSize
}

// Query bundles a filter with its pagination window.
type Query struct {
	Filter Filter
	Window Window
}

// Build constructs a Query from raw request input. Pure; no side effects.
func Build(keyword, pageNum, pageSize string) Query {
	return Query{
		Filter: BuildFilter(keyword),
		Window: BuildWindow(pageNum, pageSize),
	}
}

func parsePositive(raw string, fallback int) int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
