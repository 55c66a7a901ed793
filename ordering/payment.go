package ordering

import (
	"context"

	"restaurant-client/models"
)

// Payments finalizes orders and clears the local session state afterwards
type Payments struct {
	kv     KV
	orders OrderAPI
}

func NewPayments(kv KV, orders OrderAPI) *Payments {
	return &Payments{kv: kv, orders: orders}
}

// Pay marks the order paid. On success the session pointer is removed, which
// also resets the derived table selection to none. On failure every piece of
// local state is left untouched so the user can retry; paying an already
// finalized order fails server-side and that error is surfaced, not
// suppressed.
func (p *Payments) Pay(ctx context.Context, sess Session, orderID uint, method models.PaymentMethod) error {
	if sess.Token == "" {
		return ErrAuthRequired
	}
	if _, err := p.orders.PayOrder(ctx, sess.Token, orderID, method); err != nil {
		return asUserError(err)
	}
	return p.kv.Remove(pointerKey(sess.ID))
}
