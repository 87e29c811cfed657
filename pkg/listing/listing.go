// Package listing turns an in-memory collection into one visible page:
// filter, then stable sort, then slice. Everything here is pure and never
// mutates its input.
package listing

import (
	"slices"
	"strings"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Query describes what the caller wants to see.
type Query[T any] struct {
	// Search is matched case-insensitively as a substring of any value
	// returned by SearchFields. Blank search matches everything.
	Search       string
	SearchFields func(T) []string

	// Filters must all accept an item for it to be kept.
	Filters []func(T) bool

	// Compare orders two items ascending. Nil keeps the filtered order.
	Compare func(a, b T) int
	Desc    bool

	Page    int
	PerPage int
}

// Page is one slice of the filtered, sorted result.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	TotalPages int `json:"totalPages"`
}

// Apply runs filter, sort and pagination in that order.
func Apply[T any](items []T, q Query[T]) Page[T] {
	filtered := Filter(items, q.Search, q.SearchFields, q.Filters...)
	SortStable(filtered, q.Compare, q.Desc)
	return Paginate(filtered, q.Page, q.PerPage)
}

// Filter returns a new slice holding the items that match search and every
// predicate, in input order.
func Filter[T any](items []T, search string, fields func(T) []string, preds ...func(T) bool) []T {
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]T, 0, len(items))
	for _, item := range items {
		if needle != "" && fields != nil && !matchesAny(fields(item), needle) {
			continue
		}
		if !all(item, preds) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// SortStable sorts items in place. Equal keys keep their relative order in
// both directions because descending negates the comparison instead of
// reversing the result.
func SortStable[T any](items []T, compare func(a, b T) int, desc bool) {
	if compare == nil {
		return
	}
	slices.SortStableFunc(items, func(a, b T) int {
		if desc {
			return -compare(a, b)
		}
		return compare(a, b)
	})
}

// Paginate slices out page (1-based). Out-of-range pages come back empty
// with the totals intact.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	page, perPage = Normalize(page, perPage)
	total := len(items)

	result := Page[T]{
		Items:      []T{},
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: TotalPages(total, perPage),
	}

	if page > result.TotalPages {
		return result
	}
	start := (page - 1) * perPage
	end := min(start+perPage, total)
	result.Items = slices.Clone(items[start:end])
	return result
}

// Normalize clamps page and perPage to usable values.
func Normalize(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

func TotalPages(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// ContainsFold reports whether needle is a case-insensitive substring of haystack.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func matchesAny(values []string, lowerNeedle string) bool {
	for _, v := range values {
		if v != "" && strings.Contains(strings.ToLower(v), lowerNeedle) {
			return true
		}
	}
	return false
}

func all[T any](item T, preds []func(T) bool) bool {
	for _, p := range preds {
		if p != nil && !p(item) {
			return false
		}
	}
	return true
}
