package ordering

import (
	"context"
	"errors"
	"strconv"
	"time"

	"restaurant-client/backend"
	"restaurant-client/cart"
	"restaurant-client/models"
)

// Coordinator turns a cart snapshot into a create or a partial update of the
// active order, then drives the post-submission reset and re-sync.
type Coordinator struct {
	kv       KV
	orders   OrderAPI
	carts    *cart.Store
	resolver *Resolver
}

func NewCoordinator(kv KV, orders OrderAPI, carts *cart.Store, resolver *Resolver) *Coordinator {
	return &Coordinator{kv: kv, orders: orders, carts: carts, resolver: resolver}
}

// SubmitOptions modifies a submission. A table change only applies to an
// existing order; TargetTable selects the table for a brand-new one.
type SubmitOptions struct {
	ChangeTable bool
	TargetTable *models.Table
}

// Submit sends the pending cart to the kitchen.
//
// With an active order it issues a partial update: items only when the cart
// is non-empty, table only when a change was requested. Without one it
// creates a new order and persists the returned id as the session pointer.
// On success the cart is cleared and the view is re-resolved from the
// server; the client never merges optimistically, computed totals and line
// identities belong to the backend.
func (co *Coordinator) Submit(ctx context.Context, sess Session, opts SubmitOptions) (View, error) {
	if sess.Token == "" {
		return View{}, ErrAuthRequired
	}

	activeID, hasActive, err := co.resolver.ActiveOrderID(sess.ID)
	if err != nil {
		return View{}, err
	}

	items := co.carts.Items(sess.ID)
	if !hasActive && opts.TargetTable == nil {
		return View{}, ErrNoTable
	}

	if hasActive {
		req := backend.UpdateOrderRequest{}
		if len(items) > 0 {
			req.Items = toOrderItems(items)
		}
		if opts.ChangeTable && opts.TargetTable != nil {
			id := opts.TargetTable.ID
			req.Table = &id
		}
		if _, err := co.orders.UpdateOrder(ctx, sess.Token, activeID, req); err != nil {
			return View{}, asUserError(err)
		}
	} else {
		req := backend.CreateOrderRequest{
			Items:       toOrderItems(items),
			Table:       opts.TargetTable.ID,
			NumGuests:   1,
			CheckinTime: time.Now().UTC(),
		}
		order, err := co.orders.CreateOrder(ctx, sess.Token, req)
		if err != nil {
			return View{}, asUserError(err)
		}
		key := pointerKey(sess.ID)
		if err := co.kv.Set(key, strconv.FormatUint(uint64(order.ID), 10)); err != nil {
			return View{}, err
		}
	}

	co.carts.Clear(sess.ID)
	return co.resolver.Resolve(ctx, sess)
}

func toOrderItems(items []models.CartItem) []backend.OrderItemInput {
	out := make([]backend.OrderItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, backend.OrderItemInput{Dish: it.DishID, Quantity: it.Quantity})
	}
	return out
}

// asUserError collapses backend failures into the message shown to the user.
// A table conflict or an explicit 4xx rejection (e.g. paying an order that
// is already completed) keeps the server's wording verbatim; transport and
// server failures become a generic message. Retries are user-initiated
// re-submissions.
func asUserError(err error) error {
	var conflict *backend.TableConflictError
	if errors.As(err, &conflict) {
		return &UserError{Message: conflict.Message, Err: err}
	}
	var rejected *backend.RequestError
	if errors.As(err, &rejected) {
		return &UserError{Message: rejected.Message, Err: err}
	}
	if errors.Is(err, backend.ErrUnauthorized) {
		return ErrAuthRequired
	}
	return &UserError{Message: "operation failed", Err: err}
}
