// Package catalog derives filtered, sorted product views from the raw
// catalog. Derivation is a pure function over in-memory slices; the input is
// never mutated.
package catalog

import (
	"sort"
	"strings"

	"shophub/internal/types"
)

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortDefault   SortKey = "default"    // keep incoming order
	SortPriceAsc  SortKey = "price-asc"  // cheapest first
	SortPriceDesc SortKey = "price-desc" // most expensive first
	SortRating    SortKey = "rating"     // best rated first
	SortTitle     SortKey = "title"      // lexicographic by title
)

// SortKeys lists the supported keys in display order.
func SortKeys() []SortKey {
	return []SortKey{SortDefault, SortPriceAsc, SortPriceDesc, SortRating, SortTitle}
}

// ParseSortKey maps a flag value to a SortKey, defaulting to SortDefault.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceAsc, SortPriceDesc, SortRating, SortTitle:
		return SortKey(s)
	default:
		return SortDefault
	}
}

// Criteria are the transient filter parameters held by the view layer.
type Criteria struct {
	// Search is matched case-insensitively as a substring of title,
	// description, or category. Empty skips the stage.
	Search string
	// Categories keeps products whose category is in the set. An empty
	// set means all categories, not none.
	Categories []string
	// PriceMin and PriceMax bound the price inclusively. A PriceMax of
	// zero disables the upper bound.
	PriceMin float64
	PriceMax float64
	// MinRating keeps products whose average rating is at least this.
	MinRating float64
	Sort      SortKey
}

// DeriveView applies the filter pipeline in fixed order (search, categories,
// price range, rating, sort) and returns a new slice. Sorting is stable:
// ties keep their prior relative order, with no secondary key.
func DeriveView(products []types.Product, c Criteria) []types.Product {
	filtered := make([]types.Product, 0, len(products))

	query := strings.ToLower(c.Search)
	categories := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		categories[cat] = true
	}

	for _, p := range products {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) &&
			!strings.Contains(strings.ToLower(p.Category), query) {
			continue
		}
		if len(categories) > 0 && !categories[p.Category] {
			continue
		}
		if p.Price < c.PriceMin {
			continue
		}
		if c.PriceMax > 0 && p.Price > c.PriceMax {
			continue
		}
		if p.Rating.Rate < c.MinRating {
			continue
		}
		filtered = append(filtered, p)
	}

	switch c.Sort {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case SortRating:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Rating.Rate > filtered[j].Rating.Rate })
	case SortTitle:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Title < filtered[j].Title })
	}

	return filtered
}

// MaxPrice returns the highest product price, with a floor of 1000 to give
// the price filter a sensible default upper bound on small catalogs.
func MaxPrice(products []types.Product) float64 {
	max := 1000.0
	for _, p := range products {
		if p.Price > max {
			max = p.Price
		}
	}
	return max
}

// Categories returns the distinct categories present, in first-seen order.
func Categories(products []types.Product) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
