package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shophub/cmd/shophub/ui"
	"shophub/internal/admin"
	"shophub/internal/api"
	"shophub/internal/query"
	"shophub/internal/session"
	"shophub/internal/types"
	"shophub/internal/validate"
)

var (
	adminEmail    string
	adminPassword string

	tokenUsername string
	tokenPassword string

	productTitle       string
	productPrice       float64
	productDescription string
	productCategory    string
	productImage       string

	usersLimit int
	usersSort  string

	userEmail    string
	userUsername string
	userPassword string
	userFirst    string
	userLast     string
	userPhone    string

	cartsLimit     int
	cartsSort      string
	cartsStartDate string
	cartsEndDate   string
)

// adminCmd groups the management commands. Everything except login and
// status requires an active admin session.
var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Admin console: manage products, users, and carts",
	Long: `The admin console manages the remote catalog, users, and cart records.

Sign in first with the demo credentials:

  shophub admin login --email admin@shophub.com --password admin123

The session persists between invocations until you log out. Note that the
demo service accepts writes but does not retain them.`,
	RunE: runAdminStatus,
}

var adminLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the admin console",
	RunE:  runAdminLogin,
}

var adminLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the persisted session",
	RunE:  runAdminLogout,
}

var adminStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE:  runAdminStatus,
}

var adminDashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show store analytics",
	RunE:  requireAdmin(runAdminDashboard),
}

var adminTokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Request an API token from the remote auth endpoint",
	Long: `Exchanges a FakeStore username and password for a JWT. This talks to the
remote /auth/login endpoint and is unrelated to the local admin session.`,
	RunE: requireAdmin(runAdminToken),
}

var adminProductsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage catalog products",
}

var adminProductsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product",
	RunE:  requireAdmin(runAdminProductCreate),
}

var adminProductsUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Replace a product wholesale",
	Args:  cobra.ExactArgs(1),
	RunE:  requireAdmin(runAdminProductUpdate),
}

var adminProductsPatchCmd = &cobra.Command{
	Use:   "patch [id]",
	Short: "Partially update a product; only the flags you pass are sent",
	Args:  cobra.ExactArgs(1),
	RunE:  requireAdmin(runAdminProductPatch),
}

var adminProductsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE:  requireAdmin(runAdminProductDelete),
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage users",
}

var adminUsersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE:  requireAdmin(runAdminUsersList),
}

var adminUsersGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one user",
	Args:  cobra.ExactArgs(1),
	RunE:  requireAdmin(runAdminUserGet),
}

var adminUsersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	RunE:  requireAdmin(runAdminUserCreate),
}

var adminUsersUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Replace a user wholesale",
	Args:  cobra.ExactArgs(1),
	RunE:  requireAdmin(runAdminUserUpdate),
}

var adminUsersDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	RunE:  requireAdmin(runAdminUserDelete),
}

var adminCartsCmd = &cobra.Command{
	Use:   "carts",
	Short: "Inspect remote cart records",
}

var adminCartsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List remote carts",
	RunE:  requireAdmin(runAdminCartsList),
}

var adminCartsGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one remote cart",
	Args:  cobra.ExactArgs(1),
	RunE:  requireAdmin(runAdminCartGet),
}

var adminCartsUserCmd = &cobra.Command{
	Use:   "user [user-id]",
	Short: "List the carts belonging to one user",
	Args:  cobra.ExactArgs(1),
	RunE:  requireAdmin(runAdminCartsByUser),
}

var adminCartsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a remote cart record",
	Args:  cobra.ExactArgs(1),
	RunE:  requireAdmin(runAdminCartDelete),
}

func init() {
	adminLoginCmd.Flags().StringVar(&adminEmail, "email", "", "admin email")
	adminLoginCmd.Flags().StringVar(&adminPassword, "password", "", "admin password")
	_ = adminLoginCmd.MarkFlagRequired("email")
	_ = adminLoginCmd.MarkFlagRequired("password")

	adminTokenCmd.Flags().StringVar(&tokenUsername, "username", "", "FakeStore username")
	adminTokenCmd.Flags().StringVar(&tokenPassword, "password", "", "FakeStore password")
	_ = adminTokenCmd.MarkFlagRequired("username")
	_ = adminTokenCmd.MarkFlagRequired("password")

	for _, c := range []*cobra.Command{adminProductsCreateCmd, adminProductsUpdateCmd, adminProductsPatchCmd} {
		c.Flags().StringVar(&productTitle, "title", "", "product title")
		c.Flags().Float64Var(&productPrice, "price", 0, "product price")
		c.Flags().StringVar(&productDescription, "description", "", "product description")
		c.Flags().StringVar(&productCategory, "category", "", "product category")
		c.Flags().StringVar(&productImage, "image", "", "product image URL")
	}

	adminUsersListCmd.Flags().IntVar(&usersLimit, "limit", 0, "server-side limit (0 = all)")
	adminUsersListCmd.Flags().StringVar(&usersSort, "sort", "", "ID order: asc or desc")

	for _, c := range []*cobra.Command{adminUsersCreateCmd, adminUsersUpdateCmd} {
		c.Flags().StringVar(&userEmail, "email", "", "email address")
		c.Flags().StringVar(&userUsername, "username", "", "username")
		c.Flags().StringVar(&userPassword, "password", "", "password")
		c.Flags().StringVar(&userFirst, "first-name", "", "first name")
		c.Flags().StringVar(&userLast, "last-name", "", "last name")
		c.Flags().StringVar(&userPhone, "phone", "", "phone number")
	}

	adminCartsListCmd.Flags().IntVar(&cartsLimit, "limit", 0, "server-side limit (0 = all)")
	adminCartsListCmd.Flags().StringVar(&cartsSort, "sort", "", "ID order: asc or desc")
	adminCartsListCmd.Flags().StringVar(&cartsStartDate, "start-date", "", "earliest cart date (YYYY-MM-DD)")
	adminCartsListCmd.Flags().StringVar(&cartsEndDate, "end-date", "", "latest cart date (YYYY-MM-DD)")

	adminProductsCmd.AddCommand(adminProductsCreateCmd, adminProductsUpdateCmd,
		adminProductsPatchCmd, adminProductsDeleteCmd)
	adminUsersCmd.AddCommand(adminUsersListCmd, adminUsersGetCmd,
		adminUsersCreateCmd, adminUsersUpdateCmd, adminUsersDeleteCmd)
	adminCartsCmd.AddCommand(adminCartsListCmd, adminCartsGetCmd,
		adminCartsUserCmd, adminCartsDeleteCmd)

	adminCmd.AddCommand(adminLoginCmd, adminLogoutCmd, adminStatusCmd,
		adminDashboardCmd, adminTokenCmd, adminProductsCmd, adminUsersCmd, adminCartsCmd)
}

// requireAdmin wraps a RunE so it refuses to run without an active session.
func requireAdmin(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if !app.session.SignedIn() {
			return fmt.Errorf("admin access required: run 'shophub admin login' first")
		}
		return run(cmd, args)
	}
}

func runAdminLogin(cmd *cobra.Command, args []string) error {
	if !validate.Email(adminEmail) {
		return fmt.Errorf("invalid email address")
	}
	if !validate.Required(adminPassword) {
		return fmt.Errorf("password is required")
	}

	ctx, cancel := commandContext()
	defer cancel()

	if err := app.session.SignIn(ctx, adminEmail, adminPassword); err != nil {
		if err == session.ErrInvalidCredentials {
			return err
		}
		return userError("Sign-in failed. Please try again.", err)
	}

	user, _ := app.session.Current()
	styles := appStyles()
	fmt.Printf("%s Signed in as %s <%s>\n", styles.Success.Render("✓"), user.Name, user.Email)
	return nil
}

func runAdminLogout(cmd *cobra.Command, args []string) error {
	app.session.SignOut()
	fmt.Println(appStyles().Success.Render("Signed out."))
	return nil
}

func runAdminStatus(cmd *cobra.Command, args []string) error {
	styles := appStyles()
	if user, ok := app.session.Current(); ok {
		fmt.Printf("%s %s <%s>\n", styles.Bold.Render("Signed in:"), user.Name, user.Email)
	} else {
		fmt.Println(styles.Muted.Render("Not signed in."))
	}
	return nil
}

func runAdminToken(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	resp, err := app.client.Login(ctx, types.Credentials{
		Username: tokenUsername,
		Password: tokenPassword,
	})
	if err != nil {
		return userError(api.UserMessage(err), err)
	}
	fmt.Println(resp.Token)
	return nil
}

func runAdminDashboard(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	products, err := fetchProducts(ctx, 0, "")
	if err != nil {
		return userError("Failed to fetch products. Please try again later.", err)
	}
	users, err := app.users.Get(ctx, query.Key("users", 0, ""), func(ctx context.Context) ([]types.User, error) {
		return app.client.ListUsers(ctx, api.ListOptions{})
	})
	if err != nil {
		return userError("Failed to fetch users. Please try again later.", err)
	}
	carts, err := app.carts.Get(ctx, query.Key("carts", 0, "", "", ""), func(ctx context.Context) ([]types.RemoteCart, error) {
		return app.client.ListCarts(ctx, api.CartListOptions{})
	})
	if err != nil {
		return userError("Failed to fetch carts. Please try again later.", err)
	}

	stats := admin.Compute(products, users, carts)
	styles := appStyles()

	fmt.Println(styles.Title.Render("ShopHub Dashboard"))
	fmt.Printf("  %s %d   %s %d   %s %d\n",
		styles.Bold.Render("Products:"), stats.ProductCount,
		styles.Bold.Render("Users:"), stats.UserCount,
		styles.Bold.Render("Carts:"), stats.CartCount)
	fmt.Printf("  %s %s   %s %s   %s %.1f\n\n",
		styles.Bold.Render("Revenue:"), styles.Price.Render(formatPrice(stats.TotalRevenue)),
		styles.Bold.Render("Avg price:"), formatPrice(stats.AveragePrice),
		styles.Bold.Render("Avg rating:"), stats.AverageRating)

	if len(stats.CategoryDistribution) > 0 {
		fmt.Println(styles.Subtitle.Render("Products by category"))
		max := stats.CategoryDistribution[0].Count
		for _, cc := range stats.CategoryDistribution {
			bar := barLength(cc.Count, max, 30)
			fmt.Printf("  %-24s %s %d\n", cc.Category,
				styles.Info.Render(strings.Repeat("█", bar)), cc.Count)
		}
		fmt.Println()
	}

	if len(stats.TopRated) > 0 {
		table := ui.NewSimpleTable("Top rated", []string{"ID", "Title", "Rating", "Price"})
		for _, p := range stats.TopRated {
			table.AddRow(itoa(p.ID), truncate(p.Title, 48),
				formatRating(p.Rating.Rate, p.Rating.Count), formatPrice(p.Price))
		}
		printTable(table, styles, "")
	}
	return nil
}

// barLength scales count into a bar of at most width cells, never zero for a
// nonzero count.
func barLength(count, max, width int) int {
	if max <= 0 || count <= 0 {
		return 0
	}
	n := count * width / max
	if n < 1 {
		n = 1
	}
	return n
}

func productPayloadFromFlags() (types.NewProduct, error) {
	p := types.NewProduct{
		Title:       productTitle,
		Price:       productPrice,
		Description: productDescription,
		Category:    productCategory,
		Image:       productImage,
	}
	switch {
	case !validate.MinLength(p.Title, 3):
		return p, fmt.Errorf("title must be at least 3 characters")
	case !validate.PositiveNumber(p.Price):
		return p, fmt.Errorf("price must be positive")
	case !validate.Required(p.Description):
		return p, fmt.Errorf("description is required")
	case !validate.Required(p.Category):
		return p, fmt.Errorf("category is required")
	case p.Image != "" && !validate.URL(p.Image):
		return p, fmt.Errorf("image must be an absolute URL")
	}
	return p, nil
}

// refetchProducts discards the cached catalog reads touched by a write. The
// next read goes back to the server.
func refetchProducts(id int) {
	app.products.Clear()
	app.product.Invalidate(query.Key("product", id))
	app.categories.Clear()
}

func runAdminProductCreate(cmd *cobra.Command, args []string) error {
	payload, err := productPayloadFromFlags()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	created, err := app.client.CreateProduct(ctx, payload)
	if err != nil {
		return userError(api.UserMessage(err), err)
	}
	refetchProducts(created.ID)

	fmt.Printf("%s product %d: %s\n", appStyles().Success.Render("Created"), created.ID, created.Title)
	return nil
}

func runAdminProductUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseProductID(args[0])
	if err != nil {
		return err
	}
	payload, err := productPayloadFromFlags()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	updated, err := app.client.UpdateProduct(ctx, id, payload)
	if err != nil {
		return userError(api.UserMessage(err), err)
	}
	refetchProducts(id)

	fmt.Printf("%s product %d: %s\n", appStyles().Success.Render("Updated"), updated.ID, updated.Title)
	return nil
}

func runAdminProductPatch(cmd *cobra.Command, args []string) error {
	id, err := parseProductID(args[0])
	if err != nil {
		return err
	}

	var patch types.ProductPatch
	flags := cmd.Flags()
	if flags.Changed("title") {
		if !validate.MinLength(productTitle, 3) {
			return fmt.Errorf("title must be at least 3 characters")
		}
		patch.Title = &productTitle
	}
	if flags.Changed("price") {
		if !validate.PositiveNumber(productPrice) {
			return fmt.Errorf("price must be positive")
		}
		patch.Price = &productPrice
	}
	if flags.Changed("description") {
		patch.Description = &productDescription
	}
	if flags.Changed("category") {
		patch.Category = &productCategory
	}
	if flags.Changed("image") {
		if !validate.URL(productImage) {
			return fmt.Errorf("image must be an absolute URL")
		}
		patch.Image = &productImage
	}
	if patch == (types.ProductPatch{}) {
		return fmt.Errorf("nothing to patch: pass at least one field flag")
	}

	ctx, cancel := commandContext()
	defer cancel()

	updated, err := app.client.PatchProduct(ctx, id, patch)
	if err != nil {
		return userError(api.UserMessage(err), err)
	}
	refetchProducts(id)

	fmt.Printf("%s product %d\n", appStyles().Success.Render("Patched"), updated.ID)
	return nil
}

func runAdminProductDelete(cmd *cobra.Command, args []string) error {
	id, err := parseProductID(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	deleted, err := app.client.DeleteProduct(ctx, id)
	if err != nil {
		return userError(api.UserMessage(err), err)
	}
	refetchProducts(id)

	fmt.Printf("%s product %d: %s\n", appStyles().Success.Render("Deleted"), deleted.ID, deleted.Title)
	return nil
}

func runAdminUsersList(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	key := query.Key("users", usersLimit, usersSort)
	users, err := app.users.Get(ctx, key, func(ctx context.Context) ([]types.User, error) {
		return app.client.ListUsers(ctx, api.ListOptions{Limit: usersLimit, Sort: usersSort})
	})
	if err != nil {
		return userError("Failed to fetch users. Please try again later.", err)
	}

	styles := appStyles()
	table := ui.NewSimpleTable(fmt.Sprintf("%d users", len(users)),
		[]string{"ID", "Username", "Name", "Email", "City"})
	for _, u := range users {
		table.AddRow(itoa(u.ID), u.Username,
			u.Name.Firstname+" "+u.Name.Lastname, u.Email, u.Address.City)
	}
	printTable(table, styles, "No users found.")
	return nil
}

func runAdminUserGet(cmd *cobra.Command, args []string) error {
	id, err := parseProductID(args[0])
	if err != nil {
		return fmt.Errorf("invalid user id %q", args[0])
	}

	ctx, cancel := commandContext()
	defer cancel()

	user, err := app.user.Get(ctx, query.Key("user", id), func(ctx context.Context) (*types.User, error) {
		return app.client.GetUser(ctx, id)
	})
	if err != nil {
		return userError("Failed to fetch user. Please try again later.", err)
	}

	styles := appStyles()
	fmt.Println(styles.Title.Render(fmt.Sprintf("User %d", user.ID)))
	fmt.Printf("  %s %s %s\n", styles.Bold.Render("Name:"), user.Name.Firstname, user.Name.Lastname)
	fmt.Printf("  %s %s\n", styles.Bold.Render("Username:"), user.Username)
	fmt.Printf("  %s %s\n", styles.Bold.Render("Email:"), user.Email)
	fmt.Printf("  %s %s\n", styles.Bold.Render("Phone:"), user.Phone)
	fmt.Printf("  %s %d %s, %s %s\n", styles.Bold.Render("Address:"),
		user.Address.Number, user.Address.Street, user.Address.City, user.Address.Zipcode)
	return nil
}

func runAdminUserCreate(cmd *cobra.Command, args []string) error {
	payload, err := userPayloadFromFlags()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	created, err := app.client.CreateUser(ctx, payload)
	if err != nil {
		return userError(api.UserMessage(err), err)
	}
	app.users.Clear()

	fmt.Printf("%s user %d: %s\n", appStyles().Success.Render("Created"), created.ID, payload.Username)
	return nil
}

func userPayloadFromFlags() (types.NewUser, error) {
	u := types.NewUser{
		Email:    userEmail,
		Username: userUsername,
		Password: userPassword,
		Name:     types.Name{Firstname: userFirst, Lastname: userLast},
		Phone:    userPhone,
	}
	switch {
	case !validate.Email(u.Email):
		return u, fmt.Errorf("invalid email address")
	case !validate.MinLength(u.Username, 3):
		return u, fmt.Errorf("username must be at least 3 characters")
	case !validate.Password(u.Password):
		return u, fmt.Errorf("password needs 8+ characters with upper, lower, and digit")
	case !validate.Required(u.Name.Firstname) || !validate.Required(u.Name.Lastname):
		return u, fmt.Errorf("first and last name are required")
	}
	return u, nil
}

func runAdminUserUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseProductID(args[0])
	if err != nil {
		return fmt.Errorf("invalid user id %q", args[0])
	}
	payload, err := userPayloadFromFlags()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	updated, err := app.client.UpdateUser(ctx, id, payload)
	if err != nil {
		return userError(api.UserMessage(err), err)
	}
	app.users.Clear()
	app.user.Invalidate(query.Key("user", id))

	fmt.Printf("%s user %d: %s\n", appStyles().Success.Render("Updated"), updated.ID, payload.Username)
	return nil
}

func runAdminUserDelete(cmd *cobra.Command, args []string) error {
	id, err := parseProductID(args[0])
	if err != nil {
		return fmt.Errorf("invalid user id %q", args[0])
	}

	ctx, cancel := commandContext()
	defer cancel()

	deleted, err := app.client.DeleteUser(ctx, id)
	if err != nil {
		return userError(api.UserMessage(err), err)
	}
	app.users.Clear()
	app.user.Invalidate(query.Key("user", id))

	fmt.Printf("%s user %d: %s\n", appStyles().Success.Render("Deleted"), deleted.ID, deleted.Username)
	return nil
}

func cartTable(title string, carts []types.RemoteCart) *ui.SimpleTable {
	table := ui.NewSimpleTable(title, []string{"ID", "User", "Date", "Items"})
	for _, c := range carts {
		items := 0
		for _, item := range c.Products {
			items += item.Quantity
		}
		table.AddRow(itoa(c.ID), itoa(c.UserID), c.Date, itoa(items))
	}
	return table
}

func runAdminCartsList(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	key := query.Key("carts", cartsLimit, cartsSort, cartsStartDate, cartsEndDate)
	carts, err := app.carts.Get(ctx, key, func(ctx context.Context) ([]types.RemoteCart, error) {
		return app.client.ListCarts(ctx, api.CartListOptions{
			ListOptions: api.ListOptions{Limit: cartsLimit, Sort: cartsSort},
			StartDate:   cartsStartDate,
			EndDate:     cartsEndDate,
		})
	})
	if err != nil {
		return userError("Failed to fetch carts. Please try again later.", err)
	}

	printTable(cartTable(fmt.Sprintf("%d carts", len(carts)), carts), appStyles(), "No carts found.")
	return nil
}

func runAdminCartGet(cmd *cobra.Command, args []string) error {
	id, err := parseProductID(args[0])
	if err != nil {
		return fmt.Errorf("invalid cart id %q", args[0])
	}

	ctx, cancel := commandContext()
	defer cancel()

	remote, err := app.remoteCart.Get(ctx, query.Key("cart", id), func(ctx context.Context) (*types.RemoteCart, error) {
		return app.client.GetCart(ctx, id)
	})
	if err != nil {
		return userError("Failed to fetch cart. Please try again later.", err)
	}

	styles := appStyles()
	fmt.Println(styles.Title.Render(fmt.Sprintf("Cart %d", remote.ID)))
	fmt.Printf("  %s %d   %s %s\n", styles.Bold.Render("User:"), remote.UserID,
		styles.Bold.Render("Date:"), remote.Date)

	table := ui.NewSimpleTable("", []string{"Product", "Qty"})
	for _, item := range remote.Products {
		table.AddRow(itoa(item.ProductID), itoa(item.Quantity))
	}
	printTable(table, styles, "Empty cart.")
	return nil
}

func runAdminCartDelete(cmd *cobra.Command, args []string) error {
	id, err := parseProductID(args[0])
	if err != nil {
		return fmt.Errorf("invalid cart id %q", args[0])
	}

	ctx, cancel := commandContext()
	defer cancel()

	deleted, err := app.client.DeleteCart(ctx, id)
	if err != nil {
		return userError(api.UserMessage(err), err)
	}
	app.carts.Clear()
	app.remoteCart.Invalidate(query.Key("cart", id))

	fmt.Printf("%s cart %d (user %d)\n", appStyles().Success.Render("Deleted"), deleted.ID, deleted.UserID)
	return nil
}

func runAdminCartsByUser(cmd *cobra.Command, args []string) error {
	id, err := parseProductID(args[0])
	if err != nil {
		return fmt.Errorf("invalid user id %q", args[0])
	}

	ctx, cancel := commandContext()
	defer cancel()

	key := query.Key("carts", "user", id)
	carts, err := app.carts.Get(ctx, key, func(ctx context.Context) ([]types.RemoteCart, error) {
		return app.client.CartsByUser(ctx, id)
	})
	if err != nil {
		return userError("Failed to fetch carts. Please try again later.", err)
	}

	printTable(cartTable(fmt.Sprintf("Carts for user %d", id), carts), appStyles(), "No carts found.")
	return nil
}
