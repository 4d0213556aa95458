package shopapi

import (
	"context"
	"net/http"

	"github.com/kthsports/storefront/internal/models"
)

type orderWrapper struct {
	Data models.Order `json:"data"`
}

type orderListWrapper struct {
	Data []models.Order `json:"data"`
}

// ListOrders retrieves all order requests.
func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var wrapper orderListWrapper
	if err := c.doJSON(ctx, http.MethodGet, "/order/allorder", nil, &wrapper); err != nil {
		return nil, err
	}
	return wrapper.Data, nil
}

// GetOrder retrieves a single order by id.
func (c *Client) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var wrapper orderWrapper
	if err := c.doJSON(ctx, http.MethodGet, "/order/"+id, nil, &wrapper); err != nil {
		return nil, err
	}
	return &wrapper.Data, nil
}

// CreateOrder submits a new order request as JSON.
func (c *Client) CreateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	var wrapper orderWrapper
	if err := c.doJSON(ctx, http.MethodPost, "/order/add", order, &wrapper); err != nil {
		return nil, err
	}
	return &wrapper.Data, nil
}

// UpdateOrder replaces the mutable fields of an order. The admin console uses
// this to move orders through the status lifecycle.
func (c *Client) UpdateOrder(ctx context.Context, id string, payload any) (*models.Order, error) {
	var wrapper orderWrapper
	if err := c.doJSON(ctx, http.MethodPut, "/order/"+id, payload, &wrapper); err != nil {
		return nil, err
	}
	return &wrapper.Data, nil
}

// DeleteOrder removes an order.
func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/order/"+id, nil, nil)
}
