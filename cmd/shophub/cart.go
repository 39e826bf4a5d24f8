package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"shophub/cmd/shophub/ui"
	"shophub/internal/query"
	"shophub/internal/types"
)

var (
	cartAddQty    int
	cartUpdateQty int
)

// cartCmd shows the shopping cart; subcommands mutate it.
var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show and manage the shopping cart",
	Long: `The shopping cart lives on this machine and persists between sessions.

  shophub cart                   show the cart
  shophub cart add 7 --qty 2     add product 7
  shophub cart update 7 --qty 1  set an exact quantity
  shophub cart remove 7          drop a line
  shophub cart clear             empty the cart`,
	RunE: runCartShow,
}

var cartAddCmd = &cobra.Command{
	Use:   "add [product-id]",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartAdd,
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove [product-id]",
	Short: "Remove a product from the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartRemove,
}

var cartUpdateCmd = &cobra.Command{
	Use:   "update [product-id]",
	Short: "Set the exact quantity for a cart line",
	Long: `Sets the quantity for a line. A quantity of zero or less removes the
line entirely.`,
	Args: cobra.ExactArgs(1),
	RunE: runCartUpdate,
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE:  runCartClear,
}

func init() {
	cartAddCmd.Flags().IntVar(&cartAddQty, "qty", 1, "quantity to add")
	cartUpdateCmd.Flags().IntVar(&cartUpdateQty, "qty", 1, "exact quantity to set")
	_ = cartUpdateCmd.MarkFlagRequired("qty")

	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartCmd.AddCommand(cartUpdateCmd)
	cartCmd.AddCommand(cartClearCmd)
}

func parseProductID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q", arg)
	}
	return id, nil
}

func runCartShow(cmd *cobra.Command, args []string) error {
	styles := appStyles()
	lines := app.cart.Lines()

	table := ui.NewSimpleTable("Shopping Cart", []string{"ID", "Title", "Price", "Qty", "Subtotal"})
	for _, l := range lines {
		table.AddRow(
			itoa(l.Product.ID),
			truncate(l.Product.Title, 48),
			formatPrice(l.Product.Price),
			itoa(l.Quantity),
			formatPrice(l.Subtotal()),
		)
	}
	printTable(table, styles, "Your cart is empty.")

	if len(lines) > 0 {
		fmt.Printf("%s %s  %s %s\n",
			styles.Bold.Render("Items:"), itoa(app.cart.ItemCount()),
			styles.Bold.Render("Total:"), styles.Price.Render(formatPrice(app.cart.Total())))
	}
	return nil
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	id, err := parseProductID(args[0])
	if err != nil {
		return err
	}
	if cartAddQty <= 0 {
		return fmt.Errorf("quantity must be positive")
	}

	ctx, cancel := commandContext()
	defer cancel()

	// Resolve the product so the line carries title and price.
	product, err := app.product.Get(ctx, query.Key("product", id), func(ctx context.Context) (*types.Product, error) {
		return app.client.GetProduct(ctx, id)
	})
	if err != nil {
		return userError("Failed to fetch product. Please try again later.", err)
	}

	app.cart.Add(*product, cartAddQty)

	styles := appStyles()
	fmt.Printf("%s %s x%d\n", styles.Success.Render("Added"), product.Title, cartAddQty)
	fmt.Printf("Cart: %d items, %s\n", app.cart.ItemCount(), formatPrice(app.cart.Total()))
	return nil
}

func runCartRemove(cmd *cobra.Command, args []string) error {
	id, err := parseProductID(args[0])
	if err != nil {
		return err
	}
	app.cart.Remove(id)

	styles := appStyles()
	fmt.Printf("%s product %d\n", styles.Success.Render("Removed"), id)
	return nil
}

func runCartUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseProductID(args[0])
	if err != nil {
		return err
	}
	app.cart.UpdateQuantity(id, cartUpdateQty)

	styles := appStyles()
	if cartUpdateQty <= 0 {
		fmt.Printf("%s product %d\n", styles.Success.Render("Removed"), id)
	} else {
		fmt.Printf("%s product %d to qty %d\n", styles.Success.Render("Updated"), id, cartUpdateQty)
	}
	return nil
}

func runCartClear(cmd *cobra.Command, args []string) error {
	app.cart.Clear()
	fmt.Println(appStyles().Success.Render("Cart cleared."))
	return nil
}
