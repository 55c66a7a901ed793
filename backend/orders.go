package backend

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"restaurant-client/models"
)

// OrderItemInput is one requested line: a dish id and a quantity
type OrderItemInput struct {
	Dish     uint `json:"dish"`
	Quantity int  `json:"quantity"`
}

// CreateOrderRequest opens a new order on a table
type CreateOrderRequest struct {
	Items       []OrderItemInput `json:"items"`
	Table       uint             `json:"table"`
	NumGuests   int              `json:"num_guests"`
	CheckinTime time.Time        `json:"checkin_time"`
}

// UpdateOrderRequest is a partial update. Absent fields are left untouched
// server-side; merging new items into the existing order is the backend's
// responsibility.
type UpdateOrderRequest struct {
	Items []OrderItemInput `json:"items,omitempty"`
	Table *uint            `json:"table,omitempty"`
}

func (c *Client) GetOrder(ctx context.Context, token string, id uint) (*models.Order, error) {
	var o models.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d/", id), token, nil, nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) CreateOrder(ctx context.Context, token string, req CreateOrderRequest) (*models.Order, error) {
	var o models.Order
	if err := c.do(ctx, http.MethodPost, "/orders/", token, nil, req, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) UpdateOrder(ctx context.Context, token string, id uint, req UpdateOrderRequest) (*models.Order, error) {
	var o models.Order
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/orders/%d/update-order/", id), token, nil, req, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrders returns the caller's order history, or for chefs the kitchen queue
func (c *Client) ListOrders(ctx context.Context, token string) ([]models.Order, error) {
	data, err := c.doRaw(ctx, http.MethodGet, "/orders/", token, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Order](data)
}

// PayOrder finalizes the order with the given payment method
func (c *Client) PayOrder(ctx context.Context, token string, id uint, method models.PaymentMethod) (*models.Order, error) {
	body := map[string]models.PaymentMethod{"payment_method": method}
	var o models.Order
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/pay/", id), token, nil, body, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) CancelOrder(ctx context.Context, token string, id uint) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/cancel/", id), token, nil, nil, nil)
}

// TakeOrder moves a pending order into COOKING (chef action)
func (c *Client) TakeOrder(ctx context.Context, token string, id uint) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/take-order/", id), token, nil, nil, nil)
}

// ReadyOrder moves a cooking order into READY (chef action)
func (c *Client) ReadyOrder(ctx context.Context, token string, id uint) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/ready-order/", id), token, nil, nil, nil)
}
