package api

import (
	"context"
	"fmt"

	"shophub/internal/types"
)

// ListUsers fetches all users, optionally limited and sorted by ID.
func (c *Client) ListUsers(ctx context.Context, opts ListOptions) ([]types.User, error) {
	var users []types.User
	if err := c.do(ctx, "GET", "/users", opts.values(), nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches a single user by ID.
func (c *Client) GetUser(ctx context.Context, id int) (*types.User, error) {
	var user types.User
	if err := c.do(ctx, "GET", fmt.Sprintf("/users/%d", id), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a user; the server assigns and returns the ID.
func (c *Client) CreateUser(ctx context.Context, u types.NewUser) (*types.User, error) {
	var created types.User
	if err := c.do(ctx, "POST", "/users", nil, u, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateUser replaces a user wholesale (PUT).
func (c *Client) UpdateUser(ctx context.Context, id int, u types.NewUser) (*types.User, error) {
	var updated types.User
	if err := c.do(ctx, "PUT", fmt.Sprintf("/users/%d", id), nil, u, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteUser deletes a user and returns the deleted record.
func (c *Client) DeleteUser(ctx context.Context, id int) (*types.User, error) {
	var deleted types.User
	if err := c.do(ctx, "DELETE", fmt.Sprintf("/users/%d", id), nil, nil, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}
