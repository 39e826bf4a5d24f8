package api

import (
	"context"

	"shophub/internal/types"
)

// Login exchanges remote API credentials for a token via /auth/login.
// This is the demo service's own login and is unrelated to the local
// admin session.
func (c *Client) Login(ctx context.Context, creds types.Credentials) (*types.LoginResponse, error) {
	var resp types.LoginResponse
	if err := c.do(ctx, "POST", "/auth/login", nil, creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
