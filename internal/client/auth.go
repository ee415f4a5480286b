package client

import (
	"context"
	"net/http"

	"github.com/pageza/fridgechef/internal/types"
)

// Login authenticates with email and password. The returned token is not
// retained by the client.
func (c *Client) Login(ctx context.Context, email, password string) (*types.AuthResponse, error) {
	var resp types.AuthResponse
	body := types.LoginRequest{Email: email, Password: password}
	if err := c.doJSON(ctx, types.Credential{}, http.MethodPost, "/auth/login", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Signup registers a new account
func (c *Client) Signup(ctx context.Context, fullName, email, password string) (*types.AuthResponse, error) {
	var resp types.AuthResponse
	body := types.SignupRequest{FullName: fullName, Email: email, Password: password}
	if err := c.doJSON(ctx, types.Credential{}, http.MethodPost, "/auth/signup", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
