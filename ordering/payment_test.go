package ordering

import (
	"context"
	"errors"
	"testing"

	"restaurant-client/backend"
	"restaurant-client/models"
)

func TestPay_Success(t *testing.T) {
	kv := newFakeKV()
	kv.setPointer("s1", 10)
	api := newFakeAPI()
	api.orders[10] = models.Order{ID: 10, Status: models.StatusReady, Table: tableID(5)}
	p := NewPayments(kv, api)

	err := p.Pay(context.Background(), Session{ID: "s1", Token: "tok"}, 10, models.PaymentCash)
	if err != nil {
		t.Fatalf("pay: %v", err)
	}
	if _, ok := kv.pointer("s1"); ok {
		t.Error("session pointer must be cleared after payment")
	}
	if len(api.payCalls) != 1 || api.payCalls[0] != 10 {
		t.Errorf("pay calls = %v, want [10]", api.payCalls)
	}
}

func TestPay_RequiresAuth(t *testing.T) {
	kv := newFakeKV()
	api := newFakeAPI()
	p := NewPayments(kv, api)

	err := p.Pay(context.Background(), Session{ID: "s1"}, 10, models.PaymentCash)
	if !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("got %v, want ErrAuthRequired", err)
	}
	if len(api.payCalls) != 0 {
		t.Error("no request may be attempted without a credential")
	}
}

func TestPay_FailureLeavesStateUntouched(t *testing.T) {
	kv := newFakeKV()
	kv.setPointer("s1", 10)
	api := newFakeAPI()
	api.payErr = &backend.APIError{StatusCode: 500, Detail: "db down"}
	p := NewPayments(kv, api)

	err := p.Pay(context.Background(), Session{ID: "s1", Token: "tok"}, 10, models.PaymentCash)

	var userErr *UserError
	if !errors.As(err, &userErr) {
		t.Fatalf("got %v, want UserError", err)
	}
	if userErr.Message != "operation failed" {
		t.Errorf("got message %q", userErr.Message)
	}
	if got, ok := kv.pointer("s1"); !ok || got != "10" {
		t.Errorf("pointer must stay on failed payment, got %q %v", got, ok)
	}
}

func TestPay_TerminalStateErrorSurfacedAsIs(t *testing.T) {
	kv := newFakeKV()
	kv.setPointer("s1", 10)
	api := newFakeAPI()
	api.payErr = &backend.RequestError{StatusCode: 400, Message: "Order is already completed"}
	p := NewPayments(kv, api)

	err := p.Pay(context.Background(), Session{ID: "s1", Token: "tok"}, 10, models.PaymentCash)

	var userErr *UserError
	if !errors.As(err, &userErr) {
		t.Fatalf("got %v, want UserError", err)
	}
	if userErr.Message != "Order is already completed" {
		t.Errorf("terminal-state message altered: %q", userErr.Message)
	}
	if _, ok := kv.pointer("s1"); !ok {
		t.Error("pointer must stay when the backend refuses the payment")
	}
}
