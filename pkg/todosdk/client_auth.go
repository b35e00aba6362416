package todosdk

import (
	"context"
	"net/http"
)

// Register creates an account and starts a session for it.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var resp UserResponse
	if err := c.doJSON(ctx, http.MethodPost, "/register", req, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Login starts a session for an existing account.
func (c *Client) Login(ctx context.Context, username, password string) (*User, error) {
	var resp UserResponse
	req := LoginRequest{Username: username, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/login", req, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Logout ends the current session. It succeeds even without one.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/logout", nil, nil)
}

// GetSession reports whether the client holds a live session.
func (c *Client) GetSession(ctx context.Context) (*SessionResponse, error) {
	var resp SessionResponse
	if err := c.doJSON(ctx, http.MethodGet, "/get-session", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
