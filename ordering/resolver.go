package ordering

import (
	"context"
	"errors"
	"log"
	"strconv"

	"restaurant-client/backend"
	"restaurant-client/models"
)

// Resolver determines whether a persisted, not-yet-completed order exists
// for the session and keeps the local pointer consistent with server truth.
type Resolver struct {
	kv     KV
	orders OrderAPI
	tables TableAPI
}

func NewResolver(kv KV, orders OrderAPI, tables TableAPI) *Resolver {
	return &Resolver{kv: kv, orders: orders, tables: tables}
}

// View is what the cart screen renders from: the active order (nil when
// none), the table derived from it, and the selectable tables.
type View struct {
	Order  *models.Order
	Table  *models.Table
	Tables []models.Table
}

// GrandTotal is the committed amount plus the pending cart amount
func (v View) GrandTotal(cartTotal int64) int64 {
	if v.Order == nil {
		return cartTotal
	}
	return v.Order.TotalAmount + cartTotal
}

// Resolve rehydrates the session's active order from the persisted pointer.
//
// A stale pointer (order gone, or already COMPLETED/CANCELLED) is cleared
// and degrades to "no active session" rather than failing the view. The
// table list is fetched regardless of the pointer outcome and degrades to
// empty on failure.
func (r *Resolver) Resolve(ctx context.Context, sess Session) (View, error) {
	var view View

	if id, ok, err := r.readPointer(sess.ID); err != nil {
		return view, err
	} else if ok {
		order, err := r.orders.GetOrder(ctx, sess.Token, id)
		switch {
		case errors.Is(err, backend.ErrNotFound):
			if err := r.kv.Remove(pointerKey(sess.ID)); err != nil {
				return view, err
			}
		case err != nil:
			// transient failure: keep the pointer, render without the order
			log.Printf("resolve order %d: %v", id, err)
		case order.Status.IsTerminal():
			if err := r.kv.Remove(pointerKey(sess.ID)); err != nil {
				return view, err
			}
		default:
			view.Order = order
			if order.Table != nil {
				name := order.TableName
				if name == "" {
					name = "Table " + strconv.FormatUint(uint64(*order.Table), 10)
				}
				view.Table = &models.Table{ID: *order.Table, Name: name}
			}
		}
	}

	tables, err := r.tables.ListTables(ctx)
	if err != nil {
		log.Printf("list tables: %v", err)
		tables = nil
	}
	view.Tables = tables
	return view, nil
}

// ActiveOrderID returns the persisted pointer without touching the network
func (r *Resolver) ActiveOrderID(sessionID string) (uint, bool, error) {
	return r.readPointer(sessionID)
}

func (r *Resolver) readPointer(sessionID string) (uint, bool, error) {
	v, ok, err := r.kv.Get(pointerKey(sessionID))
	if err != nil || !ok {
		return 0, false, err
	}
	id, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		// corrupt pointer: treat as stale
		if err := r.kv.Remove(pointerKey(sessionID)); err != nil {
			return 0, false, err
		}
		return 0, false, nil
	}
	return uint(id), true, nil
}
