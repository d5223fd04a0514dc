package car

import (
	"net/url"
	"strconv"
	"strings"
)

// Criteria is one catalog filter request. Zero values are wildcards:
// an empty string, a zero year, or an absent price range impose no
// constraint at all (they never mean "match empty").
type Criteria struct {
	Brand        string
	Condition    string
	Transmission string
	Year         int

	// Closed interval [PriceMin, PriceMax], only consulted when
	// HasPriceRange is set.
	PriceMin      int64
	PriceMax      int64
	HasPriceRange bool
}

// IsZero reports whether no criterion is specified.
func (c Criteria) IsZero() bool {
	return c.Brand == "" &&
		c.Condition == "" &&
		c.Transmission == "" &&
		c.Year == 0 &&
		!c.HasPriceRange
}

// Matches reports whether every specified criterion matches the car exactly.
func (c Criteria) Matches(v Car) bool {
	if c.Brand != "" && v.Brand != c.Brand {
		return false
	}
	if c.Condition != "" && string(v.Condition) != c.Condition {
		return false
	}
	if c.Transmission != "" && string(v.Transmission) != c.Transmission {
		return false
	}
	if c.Year != 0 && v.Year != c.Year {
		return false
	}
	if c.HasPriceRange {
		if v.Price < c.PriceMin || v.Price > c.PriceMax {
			return false
		}
	}
	return true
}

// Filter returns the subset of cars matching all specified criteria, in
// input order. The result is never nil; an empty result is a valid outcome.
// The input slice is not modified.
func Filter(cars []Car, c Criteria) []Car {
	out := make([]Car, 0, len(cars))
	for _, v := range cars {
		if c.Matches(v) {
			out = append(out, v)
		}
	}
	return out
}

// ParseCriteria builds a Criteria from listing-page query parameters:
// brand, condition, transmission, year, and price as "<min>-<max>".
// Malformed year or price values degrade to wildcards.
func ParseCriteria(q url.Values) Criteria {
	c := Criteria{
		Brand:        strings.TrimSpace(q.Get("brand")),
		Condition:    strings.TrimSpace(q.Get("condition")),
		Transmission: strings.TrimSpace(q.Get("transmission")),
	}

	if y := strings.TrimSpace(q.Get("year")); y != "" {
		if n, err := strconv.Atoi(y); err == nil && n > 0 {
			c.Year = n
		}
	}

	if pr := strings.TrimSpace(q.Get("price")); pr != "" {
		if min, max, ok := parsePriceRange(pr); ok {
			c.PriceMin, c.PriceMax = min, max
			c.HasPriceRange = true
		}
	}

	return c
}

func parsePriceRange(s string) (int64, int64, bool) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	min, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	max, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	if min > max {
		return 0, 0, false
	}
	return min, max, true
}
