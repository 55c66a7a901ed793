package models

// CartItem is a client-local, not-yet-submitted line: a dish reference plus
// the chosen quantity. Quantity never drops below 1 and dish ids are unique
// within a cart.
type CartItem struct {
	DishID    uint   `json:"dish_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image,omitempty"`
}

// LineTotal is the pending amount for this line
func (i CartItem) LineTotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}
