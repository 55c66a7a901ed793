package backend

import (
	"context"
	"net/http"

	"restaurant-client/models"
)

// ListTables fetches the seating reference data shown on the cart view
func (c *Client) ListTables(ctx context.Context) ([]models.Table, error) {
	data, err := c.doRaw(ctx, http.MethodGet, "/tables/", "", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Table](data)
}
