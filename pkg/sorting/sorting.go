// Package sorting is the one place list shaping happens: every list
// endpoint builds a comparator here and applies the same stable sort and
// offset/limit slicing, whether the records came from a provider or from
// a fallback dataset.
package sorting

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection defaults to ascending on anything that is not "desc".
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(Desc)) {
		return Desc
	}
	return Asc
}

// Page describes offset/limit slicing. Limit 0 means "all from Offset".
type Page struct {
	Limit  int
	Offset int
}

// Numeric builds a comparator over a string-typed numeric attribute.
// Missing or unparseable values coerce to 0.
func Numeric[T any](get func(T) string) func(a, b T) int {
	return func(a, b T) int {
		va, vb := ParseNumber(get(a)), ParseNumber(get(b))
		switch {
		case va < vb:
			return -1
		case va > vb:
			return 1
		default:
			return 0
		}
	}
}

// Text builds a locale-aware comparator over a string attribute. Each call
// owns its collator; collators are not safe for concurrent use.
func Text[T any](get func(T) string) func(a, b T) int {
	c := collate.New(language.English, collate.Loose)
	return func(a, b T) int {
		return c.CompareString(get(a), get(b))
	}
}

// ParseNumber is the shared numeric coercion: empty, "null" or anything
// that does not parse becomes 0.
func ParseNumber(s string) int {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// Apply sorts a copy of items with cmp (stable, so equal elements keep
// input order) in the given direction, then slices by page.
func Apply[T any](items []T, cmp func(a, b T) int, dir Direction, page Page) []T {
	out := make([]T, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if dir == Desc {
			return c > 0
		}
		return c < 0
	})

	return Paginate(out, page)
}

// Paginate slices items by offset and optional limit. Offsets past the end
// return an empty slice, never an error.
func Paginate[T any](items []T, page Page) []T {
	offset := page.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	rest := items[offset:]
	if page.Limit > 0 && page.Limit < len(rest) {
		return rest[:page.Limit]
	}
	return rest
}
