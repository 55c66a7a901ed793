package models

import "time"

// OrderStatus represents all possible states of a dine-in order
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusCooking   OrderStatus = "COOKING"
	StatusReady     OrderStatus = "READY"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// IsTerminal reports whether an order in this status can no longer be resumed
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// PaymentMethod values accepted by the backend's pay endpoint
type PaymentMethod string

const (
	PaymentUnknown PaymentMethod = "UNKNOWN"
	PaymentCash    PaymentMethod = "CASH"
	PaymentPaypal  PaymentMethod = "PAYPAL"
	PaymentMomo    PaymentMethod = "MOMO"
	PaymentZalo    PaymentMethod = "ZALO"
)

// Order is the backend's authoritative order record. The client never
// mutates it locally; it is replaced wholesale after each round trip.
type Order struct {
	ID            uint          `json:"id"`
	Status        OrderStatus   `json:"status"`
	Table         *uint         `json:"table"`
	TableName     string        `json:"table_name"`
	NumGuests     int           `json:"num_guests"`
	CheckinTime   time.Time     `json:"checkin_time"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	TotalAmount   int64         `json:"total_amount"`
	Details       []OrderDetail `json:"details"`
	CreatedDate   time.Time     `json:"created_date"`
}

// OrderDetail is a committed line item on the server-side order
type OrderDetail struct {
	DishID    uint   `json:"dish"`
	DishName  string `json:"dish_name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}
