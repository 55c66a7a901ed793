package ordering

import (
	"context"
	"errors"
	"strconv"

	"restaurant-client/backend"
	"restaurant-client/models"
)

// fakeKV is an in-memory stand-in for the device-local store
type fakeKV struct {
	data    map[string]string
	failure error
}

func newFakeKV() *fakeKV { return &fakeKV{data: map[string]string{}} }

func (f *fakeKV) Get(key string) (string, bool, error) {
	if f.failure != nil {
		return "", false, f.failure
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeKV) Set(key, value string) error {
	if f.failure != nil {
		return f.failure
	}
	f.data[key] = value
	return nil
}

func (f *fakeKV) Remove(key string) error {
	if f.failure != nil {
		return f.failure
	}
	delete(f.data, key)
	return nil
}

func (f *fakeKV) setPointer(session string, orderID uint) {
	f.data[pointerKey(session)] = strconv.FormatUint(uint64(orderID), 10)
}

func (f *fakeKV) pointer(session string) (string, bool) {
	v, ok := f.data[pointerKey(session)]
	return v, ok
}

// fakeAPI implements OrderAPI and TableAPI and records every request
type fakeAPI struct {
	orders map[uint]models.Order
	tables []models.Table

	getErr    error
	createErr error
	updateErr error
	payErr    error
	tablesErr error

	nextID       uint
	lastCreate   *backend.CreateOrderRequest
	lastUpdate   *backend.UpdateOrderRequest
	lastUpdateID uint
	payCalls     []uint
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{orders: map[uint]models.Order{}, nextID: 100}
}

func (f *fakeAPI) GetOrder(_ context.Context, _ string, id uint) (*models.Order, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	o, ok := f.orders[id]
	if !ok {
		return nil, backend.ErrNotFound
	}
	return &o, nil
}

func (f *fakeAPI) CreateOrder(_ context.Context, _ string, req backend.CreateOrderRequest) (*models.Order, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.lastCreate = &req
	table := req.Table
	o := models.Order{
		ID:        f.nextID,
		Status:    models.StatusPending,
		Table:     &table,
		NumGuests: req.NumGuests,
	}
	f.orders[o.ID] = o
	return &o, nil
}

func (f *fakeAPI) UpdateOrder(_ context.Context, _ string, id uint, req backend.UpdateOrderRequest) (*models.Order, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.lastUpdate = &req
	f.lastUpdateID = id
	o := f.orders[id]
	if req.Table != nil {
		o.Table = req.Table
	}
	f.orders[id] = o
	return &o, nil
}

func (f *fakeAPI) PayOrder(_ context.Context, _ string, id uint, _ models.PaymentMethod) (*models.Order, error) {
	f.payCalls = append(f.payCalls, id)
	if f.payErr != nil {
		return nil, f.payErr
	}
	o := f.orders[id]
	o.Status = models.StatusCompleted
	f.orders[id] = o
	return &o, nil
}

func (f *fakeAPI) ListTables(_ context.Context) ([]models.Table, error) {
	if f.tablesErr != nil {
		return nil, f.tablesErr
	}
	return f.tables, nil
}

var errBoom = errors.New("boom")
