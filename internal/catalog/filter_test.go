package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"shophub/internal/types"
)

func p(id int, title, category string, price, rate float64) types.Product {
	return types.Product{
		ID: id, Title: title, Category: category, Price: price,
		Rating: types.Rating{Rate: rate},
	}
}

var fixture = []types.Product{
	p(1, "Fjallraven Backpack", "men's clothing", 109.95, 3.9),
	p(2, "Mens Casual T-Shirt", "men's clothing", 22.3, 4.1),
	p(3, "Gold Petite Micropave", "jewelery", 168.0, 4.6),
	p(4, "WD 2TB External Drive", "electronics", 64.0, 3.3),
	p(5, "SanDisk SSD 1TB", "electronics", 109.0, 2.9),
}

func TestDeriveView_EmptyCriteriaIsIdentity(t *testing.T) {
	got := DeriveView(fixture, Criteria{})
	if diff := cmp.Diff(fixture, got); diff != "" {
		t.Errorf("empty criteria must return input unchanged (-want +got):\n%s", diff)
	}
}

func TestDeriveView_Search(t *testing.T) {
	got := DeriveView(fixture, Criteria{Search: "ssd"})
	if len(got) != 1 || got[0].ID != 5 {
		t.Errorf("expected only product 5, got %v", got)
	}

	// Search matches category text too, case-insensitively.
	got = DeriveView(fixture, Criteria{Search: "ELECTRONICS"})
	if len(got) != 2 {
		t.Errorf("expected 2 electronics matches, got %d", len(got))
	}
}

func TestDeriveView_CategoryFilter(t *testing.T) {
	// Empty selection means all categories.
	got := DeriveView(fixture, Criteria{Categories: nil})
	if len(got) != len(fixture) {
		t.Errorf("empty category set must include everything, got %d", len(got))
	}

	got = DeriveView(fixture, Criteria{Categories: []string{"electronics"}})
	if len(got) != 2 {
		t.Fatalf("expected 2 electronics products, got %d", len(got))
	}
	for _, prod := range got {
		if prod.Category != "electronics" {
			t.Errorf("non-matching product leaked through: %v", prod)
		}
	}
}

func TestDeriveView_PriceRangeInclusive(t *testing.T) {
	got := DeriveView(fixture, Criteria{PriceMin: 64.0, PriceMax: 109.95})
	want := []int{1, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %d products, got %d", len(want), len(got))
	}
	for i, prod := range got {
		if prod.ID != want[i] {
			t.Errorf("position %d: expected ID %d, got %d", i, want[i], prod.ID)
		}
	}
}

func TestDeriveView_MinRating(t *testing.T) {
	got := DeriveView(fixture, Criteria{MinRating: 4.0})
	if len(got) != 2 {
		t.Errorf("expected 2 products rated >= 4.0, got %d", len(got))
	}
}

func TestDeriveView_SortPriceAsc(t *testing.T) {
	products := []types.Product{
		p(1, "a", "x", 30, 0),
		p(2, "b", "x", 10, 0),
		p(3, "c", "x", 20, 0),
	}
	got := DeriveView(products, Criteria{Sort: SortPriceAsc})
	prices := []float64{got[0].Price, got[1].Price, got[2].Price}
	want := []float64{10, 20, 30}
	if diff := cmp.Diff(want, prices); diff != "" {
		t.Errorf("price-asc order wrong (-want +got):\n%s", diff)
	}
}

func TestDeriveView_SortRatingStableForTies(t *testing.T) {
	products := []types.Product{
		p(1, "first", "x", 1, 4.0),
		p(2, "second", "x", 2, 4.5),
		p(3, "third", "x", 3, 4.0),
		p(4, "fourth", "x", 4, 4.0),
	}
	got := DeriveView(products, Criteria{Sort: SortRating})

	want := []int{2, 1, 3, 4} // ties keep prior relative order
	for i, prod := range got {
		if prod.ID != want[i] {
			t.Errorf("position %d: expected ID %d, got %d", i, want[i], prod.ID)
		}
	}
}

func TestDeriveView_SortTitle(t *testing.T) {
	got := DeriveView(fixture, Criteria{Sort: SortTitle})
	for i := 1; i < len(got); i++ {
		if got[i-1].Title > got[i].Title {
			t.Errorf("titles out of order at %d: %q > %q", i, got[i-1].Title, got[i].Title)
		}
	}
}

func TestDeriveView_DoesNotMutateInput(t *testing.T) {
	products := []types.Product{
		p(1, "a", "x", 30, 0),
		p(2, "b", "x", 10, 0),
	}
	DeriveView(products, Criteria{Sort: SortPriceAsc})
	if products[0].ID != 1 {
		t.Error("input slice was reordered")
	}
}

func TestDeriveView_PipelineCombined(t *testing.T) {
	got := DeriveView(fixture, Criteria{
		Categories: []string{"electronics", "jewelery"},
		PriceMax:   150,
		MinRating:  3.0,
		Sort:       SortPriceDesc,
	})
	// Jewelery item is over budget; SSD is under-rated; only the drive stays.
	if len(got) != 1 || got[0].ID != 4 {
		t.Errorf("expected only product 4, got %v", got)
	}
}

func TestParseSortKey(t *testing.T) {
	if ParseSortKey("price-asc") != SortPriceAsc {
		t.Error("price-asc should parse")
	}
	if ParseSortKey("bogus") != SortDefault {
		t.Error("unknown keys fall back to default")
	}
}

func TestMaxPrice(t *testing.T) {
	if got := MaxPrice(fixture); got != 1000 {
		t.Errorf("floor of 1000 expected for small catalog, got %v", got)
	}
	expensive := append([]types.Product{}, fixture...)
	expensive = append(expensive, p(9, "z", "x", 2500, 0))
	if got := MaxPrice(expensive); got != 2500 {
		t.Errorf("expected 2500, got %v", got)
	}
}

func TestCategories_FirstSeenOrder(t *testing.T) {
	got := Categories(fixture)
	want := []string{"men's clothing", "jewelery", "electronics"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("categories wrong (-want +got):\n%s", diff)
	}
}
