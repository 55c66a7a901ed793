// Package cart holds the client-local selection of dishes that has not been
// submitted yet. The reducer is a pure fold over actions, so the whole cart
// life cycle is deterministic given the action sequence.
package cart

import "restaurant-client/models"

// ActionType tags a cart mutation
type ActionType string

const (
	ActionAdd    ActionType = "add"
	ActionRemove ActionType = "remove"
	ActionInc    ActionType = "inc"
	ActionDec    ActionType = "dec"
	ActionClear  ActionType = "clear"
)

// Action is one cart mutation. Add carries the dish; the others carry only
// the dish id.
type Action struct {
	Type   ActionType
	Dish   *models.Dish
	DishID uint
}

func Add(dish models.Dish) Action  { return Action{Type: ActionAdd, Dish: &dish} }
func Remove(dishID uint) Action    { return Action{Type: ActionRemove, DishID: dishID} }
func Increment(dishID uint) Action { return Action{Type: ActionInc, DishID: dishID} }
func Decrement(dishID uint) Action { return Action{Type: ActionDec, DishID: dishID} }
func Clear() Action                { return Action{Type: ActionClear} }

// Apply folds one action into the item list and returns the new list. The
// input slice is never mutated.
//
// Invariants: dish ids stay unique, quantities never drop below 1.
// Re-adding a dish already in the cart is a no-op, not a quantity bump, and
// decrementing at quantity 1 keeps the item (deliberate product behavior).
func Apply(items []models.CartItem, action Action) []models.CartItem {
	switch action.Type {
	case ActionAdd:
		if action.Dish == nil {
			return items
		}
		for _, it := range items {
			if it.DishID == action.Dish.ID {
				return items
			}
		}
		next := make([]models.CartItem, len(items), len(items)+1)
		copy(next, items)
		return append(next, models.CartItem{
			DishID:    action.Dish.ID,
			Name:      action.Dish.Name,
			UnitPrice: action.Dish.Price,
			Quantity:  1,
			Image:     action.Dish.Image,
		})

	case ActionRemove:
		next := make([]models.CartItem, 0, len(items))
		for _, it := range items {
			if it.DishID != action.DishID {
				next = append(next, it)
			}
		}
		return next

	case ActionInc:
		next := make([]models.CartItem, len(items))
		copy(next, items)
		for i := range next {
			if next[i].DishID == action.DishID {
				next[i].Quantity++
			}
		}
		return next

	case ActionDec:
		next := make([]models.CartItem, len(items))
		copy(next, items)
		for i := range next {
			if next[i].DishID == action.DishID && next[i].Quantity > 1 {
				next[i].Quantity--
			}
		}
		return next

	case ActionClear:
		return nil
	}
	return items
}

// Total sums the pending amount across all lines
func Total(items []models.CartItem) int64 {
	var total int64
	for _, it := range items {
		total += it.LineTotal()
	}
	return total
}
