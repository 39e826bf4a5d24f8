package api

import (
	"context"
	"fmt"
	"net/url"

	"shophub/internal/types"
)

// ListProducts fetches the full catalog, optionally limited and sorted by ID.
func (c *Client) ListProducts(ctx context.Context, opts ListOptions) ([]types.Product, error) {
	var products []types.Product
	if err := c.do(ctx, "GET", "/products", opts.values(), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product by ID.
func (c *Client) GetProduct(ctx context.Context, id int) (*types.Product, error) {
	var product types.Product
	if err := c.do(ctx, "GET", fmt.Sprintf("/products/%d", id), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListCategories fetches the set of category names.
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.do(ctx, "GET", "/products/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ProductsByCategory fetches all products in one category.
func (c *Client) ProductsByCategory(ctx context.Context, category string) ([]types.Product, error) {
	var products []types.Product
	path := "/products/category/" + url.PathEscape(category)
	if err := c.do(ctx, "GET", path, nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct creates a product; the server assigns and returns the ID.
func (c *Client) CreateProduct(ctx context.Context, p types.NewProduct) (*types.Product, error) {
	var created types.Product
	if err := c.do(ctx, "POST", "/products", nil, p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProduct replaces a product wholesale (PUT).
func (c *Client) UpdateProduct(ctx context.Context, id int, p types.NewProduct) (*types.Product, error) {
	var updated types.Product
	if err := c.do(ctx, "PUT", fmt.Sprintf("/products/%d", id), nil, p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// PatchProduct applies a partial update (PATCH); nil fields are untouched.
func (c *Client) PatchProduct(ctx context.Context, id int, p types.ProductPatch) (*types.Product, error) {
	var updated types.Product
	if err := c.do(ctx, "PATCH", fmt.Sprintf("/products/%d", id), nil, p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProduct deletes a product and returns the deleted record.
func (c *Client) DeleteProduct(ctx context.Context, id int) (*types.Product, error) {
	var deleted types.Product
	if err := c.do(ctx, "DELETE", fmt.Sprintf("/products/%d", id), nil, nil, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}
