// Package ordering reconciles the client-local cart with the backend's
// authoritative order resource: rehydrating an active order on view load,
// deciding create-vs-update on submission, and finalizing payment. It is
// UI-free; all collaborators are injected.
package ordering

import (
	"context"
	"errors"

	"restaurant-client/backend"
	"restaurant-client/models"
)

// ErrAuthRequired means the session carries no backend credential; no
// request is attempted.
var ErrAuthRequired = errors.New("authentication required")

// ErrNoTable means a brand-new order was submitted without a table selected
var ErrNoTable = errors.New("no table selected")

// UserError wraps a failure into the single message shown to the user
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string { return e.Message }
func (e *UserError) Unwrap() error { return e.Err }

// Session identifies one device session: its id scopes the persisted keys,
// its token authenticates backend calls. An empty token means "not logged in".
type Session struct {
	ID    string
	Token string
}

// KV is the device-local persisted store (session pointer lives here)
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// OrderAPI is the slice of the backend client the core needs for orders
type OrderAPI interface {
	GetOrder(ctx context.Context, token string, id uint) (*models.Order, error)
	CreateOrder(ctx context.Context, token string, req backend.CreateOrderRequest) (*models.Order, error)
	UpdateOrder(ctx context.Context, token string, id uint, req backend.UpdateOrderRequest) (*models.Order, error)
	PayOrder(ctx context.Context, token string, id uint, method models.PaymentMethod) (*models.Order, error)
}

// TableAPI lists the seating reference data
type TableAPI interface {
	ListTables(ctx context.Context) ([]models.Table, error)
}

const pointerPrefix = "active_order:"

func pointerKey(sessionID string) string { return pointerPrefix + sessionID }
