package listing

import (
	"cmp"
	"strings"
	"time"
)

// Equals builds a categorical filter. An empty want, or "all", disables it.
func Equals[T any, V ~string](get func(T) V, want string) func(T) bool {
	if want == "" || want == "all" {
		return nil
	}
	return func(item T) bool {
		return string(get(item)) == want
	}
}

// DateRange keeps items whose time falls in [from, end of day of to].
// Either bound may be nil.
func DateRange[T any](get func(T) time.Time, from, to *time.Time) func(T) bool {
	if from == nil && to == nil {
		return nil
	}
	var upper time.Time
	if to != nil {
		upper = EndOfDay(*to)
	}
	return func(item T) bool {
		t := get(item)
		if from != nil && t.Before(*from) {
			return false
		}
		if to != nil && t.After(upper) {
			return false
		}
		return true
	}
}

// Between keeps items whose time falls in the closed interval [from, to].
func Between[T any](get func(T) time.Time, from, to time.Time) func(T) bool {
	return func(item T) bool {
		t := get(item)
		return !t.Before(from) && !t.After(to)
	}
}

// IntRange keeps items whose value lies within the inclusive bounds.
func IntRange[T any](get func(T) int, lo, hi *int) func(T) bool {
	if lo == nil && hi == nil {
		return nil
	}
	return func(item T) bool {
		v := get(item)
		if lo != nil && v < *lo {
			return false
		}
		if hi != nil && v > *hi {
			return false
		}
		return true
	}
}

// StartOfDay returns midnight of t in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func CompareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func CompareTime(a, b time.Time) int {
	return a.Compare(b)
}

// CompareOptionalTime orders nil before any time.
func CompareOptionalTime(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}

func CompareOrdered[V cmp.Ordered](a, b V) int {
	return cmp.Compare(a, b)
}
