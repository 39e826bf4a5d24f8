package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shophub/internal/types"
)

func TestCompute_Counts(t *testing.T) {
	products := []types.Product{
		{ID: 1, Price: 10, Category: "electronics", Rating: types.Rating{Rate: 4.0}},
		{ID: 2, Price: 20, Category: "electronics", Rating: types.Rating{Rate: 3.0}},
		{ID: 3, Price: 30, Category: "jewelery", Rating: types.Rating{Rate: 5.0}},
	}
	users := []types.User{{ID: 1}, {ID: 2}}
	carts := []types.RemoteCart{{ID: 1}, {ID: 2}, {ID: 3}}

	s := Compute(products, users, carts)
	assert.Equal(t, 3, s.ProductCount)
	assert.Equal(t, 2, s.UserCount)
	assert.Equal(t, 3, s.CartCount)
	assert.InDelta(t, 20.0, s.AveragePrice, 1e-9)
	assert.InDelta(t, 4.0, s.AverageRating, 1e-9)
}

func TestCompute_RevenuePricesCartLinesAgainstCatalog(t *testing.T) {
	products := []types.Product{
		{ID: 1, Price: 10},
		{ID: 2, Price: 5},
	}
	carts := []types.RemoteCart{
		{ID: 1, Products: []types.RemoteCartItem{
			{ProductID: 1, Quantity: 2}, // 20
			{ProductID: 2, Quantity: 3}, // 15
		}},
		{ID: 2, Products: []types.RemoteCartItem{
			{ProductID: 99, Quantity: 4}, // unknown product: 0
		}},
	}

	s := Compute(products, nil, carts)
	assert.InDelta(t, 35.0, s.TotalRevenue, 1e-9)
}

func TestCompute_CategoryDistributionOrdered(t *testing.T) {
	products := []types.Product{
		{ID: 1, Category: "electronics"},
		{ID: 2, Category: "electronics"},
		{ID: 3, Category: "jewelery"},
		{ID: 4, Category: "men's clothing"},
	}

	s := Compute(products, nil, nil)
	assert.Equal(t, "electronics", s.CategoryDistribution[0].Category)
	assert.Equal(t, 2, s.CategoryDistribution[0].Count)
	// Equal counts break ties alphabetically.
	assert.Equal(t, "jewelery", s.CategoryDistribution[1].Category)
	assert.Equal(t, "men's clothing", s.CategoryDistribution[2].Category)
}

func TestCompute_TopRatedCapped(t *testing.T) {
	var products []types.Product
	for i := 1; i <= 8; i++ {
		products = append(products, types.Product{ID: i, Rating: types.Rating{Rate: float64(i)}})
	}

	s := Compute(products, nil, nil)
	assert.Len(t, s.TopRated, 5)
	assert.Equal(t, 8, s.TopRated[0].ID, "best rated first")
}

func TestCompute_EmptyInputs(t *testing.T) {
	s := Compute(nil, nil, nil)
	assert.Zero(t, s.ProductCount)
	assert.Zero(t, s.TotalRevenue)
	assert.Zero(t, s.AveragePrice)
	assert.Empty(t, s.CategoryDistribution)
	assert.Empty(t, s.TopRated)
}
