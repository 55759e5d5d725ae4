package client

import (
	"context"
	"net/http"

	"exaroton-go/api"
	"exaroton-go/models"
)

// Account returns information about the authenticated account.
func (c *Client) Account(ctx context.Context) (*models.Account, error) {
	data, err := c.call(ctx, http.MethodGet, "account", nil, api.ShapeObject)
	if err != nil {
		return nil, err
	}
	return models.DecodeAccount(data)
}
