package api

import (
	"context"
	"fmt"

	"shophub/internal/types"
)

// ListCarts fetches remote cart records, optionally limited, sorted, and
// filtered by date range.
func (c *Client) ListCarts(ctx context.Context, opts CartListOptions) ([]types.RemoteCart, error) {
	var carts []types.RemoteCart
	if err := c.do(ctx, "GET", "/carts", opts.values(), nil, &carts); err != nil {
		return nil, err
	}
	return carts, nil
}

// GetCart fetches a single remote cart by ID.
func (c *Client) GetCart(ctx context.Context, id int) (*types.RemoteCart, error) {
	var cart types.RemoteCart
	if err := c.do(ctx, "GET", fmt.Sprintf("/carts/%d", id), nil, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// CartsByUser fetches all remote carts belonging to one user.
func (c *Client) CartsByUser(ctx context.Context, userID int) ([]types.RemoteCart, error) {
	var carts []types.RemoteCart
	if err := c.do(ctx, "GET", fmt.Sprintf("/carts/user/%d", userID), nil, nil, &carts); err != nil {
		return nil, err
	}
	return carts, nil
}

// CreateCart creates a remote cart record.
func (c *Client) CreateCart(ctx context.Context, cart types.NewCart) (*types.RemoteCart, error) {
	var created types.RemoteCart
	if err := c.do(ctx, "POST", "/carts", nil, cart, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCart replaces a remote cart wholesale (PUT).
func (c *Client) UpdateCart(ctx context.Context, id int, cart types.NewCart) (*types.RemoteCart, error) {
	var updated types.RemoteCart
	if err := c.do(ctx, "PUT", fmt.Sprintf("/carts/%d", id), nil, cart, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCart deletes a remote cart and returns the deleted record.
func (c *Client) DeleteCart(ctx context.Context, id int) (*types.RemoteCart, error) {
	var deleted types.RemoteCart
	if err := c.do(ctx, "DELETE", fmt.Sprintf("/carts/%d", id), nil, nil, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}
