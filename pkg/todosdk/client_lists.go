package todosdk

import (
	"context"
	"net/http"
)

// ListLists returns every list, newest first.
func (c *Client) ListLists(ctx context.Context) ([]List, error) {
	var resp ListsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/get-list", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Lists, nil
}

// GetList returns a single list.
func (c *Client) GetList(ctx context.Context, id string) (*List, error) {
	var resp ListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/get-list/"+pathID(id), nil, &resp); err != nil {
		return nil, err
	}
	return resp.List, nil
}

// CreateList creates a list with status "pending".
func (c *Client) CreateList(ctx context.Context, title string) (*List, error) {
	var resp ListResponse
	if err := c.doJSON(ctx, http.MethodPost, "/add-list", CreateListRequest{Title: title}, &resp); err != nil {
		return nil, err
	}
	return resp.List, nil
}

// DeleteList removes a list together with its items. Unknown ids succeed.
func (c *Client) DeleteList(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodPost, "/delete-list/"+pathID(id), nil, nil)
}
