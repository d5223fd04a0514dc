package car

import (
	"sort"
	"strings"
)

// SortKey selects the catalog ordering. Values match the listing page's
// sort dropdown.
type SortKey string

const (
	SortNewest    SortKey = "newest"     // created_at descending
	SortPriceLow  SortKey = "price-low"  // price ascending
	SortPriceHigh SortKey = "price-high" // price descending
	SortYearNew   SortKey = "year-new"   // year descending
	SortYearOld   SortKey = "year-old"   // year ascending
)

// ParseSortKey returns the key for s, defaulting to SortNewest.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.TrimSpace(s)) {
	case SortPriceLow, SortPriceHigh, SortYearNew, SortYearOld, SortNewest:
		return SortKey(strings.TrimSpace(s))
	default:
		return SortNewest
	}
}

// Sort returns a copy of cars ordered by key. The sort is stable: cars the
// key does not distinguish keep their prior relative order. The input slice
// is not modified, so Sort composes after Filter.
func Sort(cars []Car, key SortKey) []Car {
	out := make([]Car, len(cars))
	copy(out, cars)

	var less func(a, b Car) bool
	switch key {
	case SortPriceLow:
		less = func(a, b Car) bool { return a.Price < b.Price }
	case SortPriceHigh:
		less = func(a, b Car) bool { return a.Price > b.Price }
	case SortYearNew:
		less = func(a, b Car) bool { return a.Year > b.Year }
	case SortYearOld:
		less = func(a, b Car) bool { return a.Year < b.Year }
	default: // SortNewest
		less = func(a, b Car) bool { return a.CreatedAt.After(b.CreatedAt) }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
