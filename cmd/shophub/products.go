package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"shophub/cmd/shophub/ui"
	"shophub/internal/api"
	"shophub/internal/catalog"
	"shophub/internal/query"
	"shophub/internal/types"
)

var (
	productsLimit     int
	productsSort      string
	productsSearch    string
	productsCategory  []string
	productsMinPrice  float64
	productsMaxPrice  float64
	productsMinRating float64
	productsSortBy    string
)

// productsCmd lists the catalog with local filtering and sorting.
var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List catalog products",
	Long: `Lists products from the remote catalog.

--limit and --sort are applied server-side; the remaining flags filter and
sort the fetched list locally:

  shophub products --search backpack
  shophub products --category electronics --max-price 100 --sort-by price-asc`,
	RunE: runProducts,
}

// productCmd shows a single product in detail.
var productCmd = &cobra.Command{
	Use:   "product [id]",
	Short: "Show one product in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runProduct,
}

// categoriesCmd lists the category names.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List product categories",
	RunE:  runCategories,
}

// categoryCmd lists one category's products, fetched server-side.
var categoryCmd = &cobra.Command{
	Use:   "category [name]",
	Short: "List the products in one category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategory,
}

func init() {
	productsCmd.Flags().IntVar(&productsLimit, "limit", 0, "server-side limit (0 = all)")
	productsCmd.Flags().StringVar(&productsSort, "sort", "", "server-side ID order: asc or desc")
	productsCmd.Flags().StringVar(&productsSearch, "search", "", "substring match on title, description, or category")
	productsCmd.Flags().StringSliceVar(&productsCategory, "category", nil, "keep only these categories (repeatable)")
	productsCmd.Flags().Float64Var(&productsMinPrice, "min-price", 0, "minimum price, inclusive")
	productsCmd.Flags().Float64Var(&productsMaxPrice, "max-price", 0, "maximum price, inclusive (0 = no bound)")
	productsCmd.Flags().Float64Var(&productsMinRating, "min-rating", 0, "minimum average rating")
	productsCmd.Flags().StringVar(&productsSortBy, "sort-by", "default",
		"local ordering: default, price-asc, price-desc, rating, title")
}

// fetchProducts reads the catalog through the query cache.
func fetchProducts(ctx context.Context, limit int, sort string) ([]types.Product, error) {
	key := query.Key("products", limit, sort)
	return app.products.Get(ctx, key, func(ctx context.Context) ([]types.Product, error) {
		return app.client.ListProducts(ctx, api.ListOptions{Limit: limit, Sort: sort})
	})
}

func fetchCategories(ctx context.Context) ([]string, error) {
	return app.categories.Get(ctx, query.Key("categories"), func(ctx context.Context) ([]string, error) {
		return app.client.ListCategories(ctx)
	})
}

func runProducts(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	products, err := fetchProducts(ctx, productsLimit, productsSort)
	if err != nil {
		return userError("Failed to fetch products. Please try again later.", err)
	}

	view := catalog.DeriveView(products, catalog.Criteria{
		Search:     productsSearch,
		Categories: productsCategory,
		PriceMin:   productsMinPrice,
		PriceMax:   productsMaxPrice,
		MinRating:  productsMinRating,
		Sort:       catalog.ParseSortKey(productsSortBy),
	})

	styles := appStyles()
	table := ui.NewSimpleTable(fmt.Sprintf("%d products found", len(view)),
		[]string{"ID", "Title", "Category", "Price", "Rating"})
	for _, p := range view {
		inCart := ""
		if app.cart.Contains(p.ID) {
			inCart = " *"
		}
		table.AddRow(
			itoa(p.ID),
			truncate(p.Title, 48)+inCart,
			p.Category,
			formatPrice(p.Price),
			formatRating(p.Rating.Rate, p.Rating.Count),
		)
	}
	printTable(table, styles, "No products match. Try adjusting your filters or search query.")
	return nil
}

func runProduct(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid product id %q", args[0])
	}

	ctx, cancel := commandContext()
	defer cancel()

	product, err := app.product.Get(ctx, query.Key("product", id), func(ctx context.Context) (*types.Product, error) {
		return app.client.GetProduct(ctx, id)
	})
	if err != nil {
		return userError("Failed to fetch product. Please try again later.", err)
	}

	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\n", product.Title)
	fmt.Fprintf(&md, "**%s** · `%s` · rated %s\n\n",
		formatPrice(product.Price), product.Category,
		formatRating(product.Rating.Rate, product.Rating.Count))
	fmt.Fprintf(&md, "%s\n\n", product.Description)
	fmt.Fprintf(&md, "Image: %s\n", product.Image)
	if app.cart.Contains(product.ID) {
		fmt.Fprintf(&md, "\n> Already in your cart.\n")
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fall back to plain output.
		fmt.Print(md.String())
		return nil
	}
	out, err := renderer.Render(md.String())
	if err != nil {
		fmt.Print(md.String())
		return nil
	}
	fmt.Print(out)
	return nil
}

func runCategory(cmd *cobra.Command, args []string) error {
	name := args[0]

	ctx, cancel := commandContext()
	defer cancel()

	key := query.Key("products", "category", name)
	products, err := app.products.Get(ctx, key, func(ctx context.Context) ([]types.Product, error) {
		return app.client.ProductsByCategory(ctx, name)
	})
	if err != nil {
		return userError("Failed to fetch products. Please try again later.", err)
	}

	styles := appStyles()
	table := ui.NewSimpleTable(fmt.Sprintf("%s (%d products)", name, len(products)),
		[]string{"ID", "Title", "Price", "Rating"})
	for _, p := range products {
		inCart := ""
		if app.cart.Contains(p.ID) {
			inCart = " *"
		}
		table.AddRow(
			itoa(p.ID),
			truncate(p.Title, 48)+inCart,
			formatPrice(p.Price),
			formatRating(p.Rating.Rate, p.Rating.Count),
		)
	}
	printTable(table, styles, fmt.Sprintf("No products in category %q.", name))
	return nil
}

func runCategories(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	categories, err := fetchCategories(ctx)
	if err != nil {
		return userError("Failed to fetch categories. Please try again later.", err)
	}

	styles := appStyles()
	fmt.Println(styles.Title.Render("Categories"))
	for _, c := range categories {
		fmt.Printf("  %s %s\n", styles.Info.Render("•"), c)
	}
	return nil
}
