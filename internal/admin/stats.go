// Package admin computes the dashboard analytics shown in the admin console:
// headline counts, revenue across remote carts, and category distribution.
// All computations are pure functions over already-fetched collections.
package admin

import (
	"sort"

	"shophub/internal/types"
)

// CategoryCount is one slice of the category distribution.
type CategoryCount struct {
	Category string
	Count    int
}

// Stats are the derived dashboard figures.
type Stats struct {
	ProductCount int
	UserCount    int
	CartCount    int

	// TotalRevenue prices every remote cart line against the catalog.
	// Lines referencing unknown product IDs contribute zero.
	TotalRevenue float64

	AveragePrice  float64
	AverageRating float64

	// CategoryDistribution is sorted by count descending, then category
	// name for determinism.
	CategoryDistribution []CategoryCount

	// TopRated lists up to five products by rating, best first.
	TopRated []types.Product
}

// Compute derives dashboard stats from the fetched collections.
func Compute(products []types.Product, users []types.User, carts []types.RemoteCart) Stats {
	s := Stats{
		ProductCount: len(products),
		UserCount:    len(users),
		CartCount:    len(carts),
	}

	priceByID := make(map[int]float64, len(products))
	var priceSum, ratingSum float64
	counts := make(map[string]int)
	for _, p := range products {
		priceByID[p.ID] = p.Price
		priceSum += p.Price
		ratingSum += p.Rating.Rate
		counts[p.Category]++
	}
	if len(products) > 0 {
		s.AveragePrice = priceSum / float64(len(products))
		s.AverageRating = ratingSum / float64(len(products))
	}

	for _, c := range carts {
		for _, item := range c.Products {
			s.TotalRevenue += priceByID[item.ProductID] * float64(item.Quantity)
		}
	}

	for category, count := range counts {
		s.CategoryDistribution = append(s.CategoryDistribution, CategoryCount{category, count})
	}
	sort.Slice(s.CategoryDistribution, func(i, j int) bool {
		a, b := s.CategoryDistribution[i], s.CategoryDistribution[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Category < b.Category
	})

	top := make([]types.Product, len(products))
	copy(top, products)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Rating.Rate > top[j].Rating.Rate })
	if len(top) > 5 {
		top = top[:5]
	}
	s.TopRated = top

	return s
}
