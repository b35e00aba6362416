package todosdk

import (
	"context"
	"net/http"
)

// ListItems returns the items of a list, oldest first.
func (c *Client) ListItems(ctx context.Context, listID string) ([]Item, error) {
	var resp ItemsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/get-items/"+pathID(listID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// CreateItem adds a pending item to a list.
func (c *Client) CreateItem(ctx context.Context, listID, description string) (*Item, error) {
	var resp ItemResponse
	req := CreateItemRequest{ListID: listID, Description: description}
	if err := c.doJSON(ctx, http.MethodPost, "/add-item", req, &resp); err != nil {
		return nil, err
	}
	return resp.Item, nil
}

// UpdateItem applies a partial update. The returned item is nil when id does
// not exist.
func (c *Client) UpdateItem(ctx context.Context, id string, req UpdateItemRequest) (*Item, error) {
	var resp ItemResponse
	if err := c.doJSON(ctx, http.MethodPost, "/update-item/"+pathID(id), req, &resp); err != nil {
		return nil, err
	}
	return resp.Item, nil
}

// DeleteItem removes an item. Unknown ids succeed.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodPost, "/delete-item/"+pathID(id), nil, nil)
}
