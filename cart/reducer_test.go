package cart

import (
	"testing"

	"restaurant-client/models"
)

var (
	pho = models.Dish{ID: 1, Name: "Pho Bo", Price: 65000, Image: "pho.jpg"}
	bun = models.Dish{ID: 2, Name: "Bun Cha", Price: 55000}
	goi = models.Dish{ID: 3, Name: "Goi Cuon", Price: 30000}
)

func TestApply_AddNewDish(t *testing.T) {
	items := Apply(nil, Add(pho))

	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	it := items[0]
	if it.DishID != pho.ID || it.Name != pho.Name || it.UnitPrice != pho.Price {
		t.Errorf("item fields not copied from dish: %+v", it)
	}
	if it.Quantity != 1 {
		t.Errorf("got quantity %d, want 1", it.Quantity)
	}
}

func TestApply_AddExistingDishIsNoOp(t *testing.T) {
	items := Apply(nil, Add(pho))
	items = Apply(items, Increment(pho.ID))
	items = Apply(items, Increment(pho.ID))

	again := Apply(items, Add(pho))

	if len(again) != 1 {
		t.Fatalf("got %d items, want 1", len(again))
	}
	if again[0].Quantity != 3 {
		t.Errorf("re-add changed quantity: got %d, want 3", again[0].Quantity)
	}
}

func TestApply_RemoveFiltersById(t *testing.T) {
	items := Apply(Apply(nil, Add(pho)), Add(bun))

	items = Apply(items, Remove(pho.ID))
	if len(items) != 1 || items[0].DishID != bun.ID {
		t.Fatalf("remove left wrong items: %+v", items)
	}

	// removing an absent dish changes nothing
	items = Apply(items, Remove(99))
	if len(items) != 1 {
		t.Errorf("remove of absent id changed cart: %+v", items)
	}
}

func TestApply_IncrementAndDecrement(t *testing.T) {
	items := Apply(nil, Add(pho))

	items = Apply(items, Increment(pho.ID))
	if items[0].Quantity != 2 {
		t.Errorf("got quantity %d, want 2", items[0].Quantity)
	}

	items = Apply(items, Decrement(pho.ID))
	if items[0].Quantity != 1 {
		t.Errorf("got quantity %d, want 1", items[0].Quantity)
	}

	// inc/dec of an absent dish is a no-op
	before := len(items)
	items = Apply(items, Increment(99))
	items = Apply(items, Decrement(99))
	if len(items) != before {
		t.Errorf("inc/dec of absent id changed cart size")
	}
}

func TestApply_DecrementAtOneKeepsItem(t *testing.T) {
	items := Apply(nil, Add(pho))

	for i := 0; i < 5; i++ {
		items = Apply(items, Decrement(pho.ID))
	}

	if len(items) != 1 {
		t.Fatalf("decrement removed the item, want it kept")
	}
	if items[0].Quantity != 1 {
		t.Errorf("got quantity %d, want floor of 1", items[0].Quantity)
	}
}

func TestApply_Clear(t *testing.T) {
	items := Apply(Apply(nil, Add(pho)), Add(bun))
	items = Apply(items, Clear())
	if len(items) != 0 {
		t.Errorf("clear left %d items", len(items))
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	items := Apply(nil, Add(pho))
	snapshot := items[0]

	_ = Apply(items, Increment(pho.ID))
	_ = Apply(items, Remove(pho.ID))

	if items[0] != snapshot {
		t.Errorf("input slice mutated: got %+v, want %+v", items[0], snapshot)
	}
}

// Any action sequence keeps dish ids unique and quantities at least 1
func TestApply_InvariantsHoldAcrossSequences(t *testing.T) {
	sequences := [][]Action{
		{Add(pho), Add(pho), Add(bun), Increment(1), Decrement(2), Decrement(2)},
		{Add(goi), Decrement(3), Remove(3), Add(goi), Add(goi)},
		{Add(pho), Add(bun), Add(goi), Remove(2), Add(bun), Increment(2), Clear(), Add(pho)},
		{Decrement(1), Increment(1), Remove(1), Add(bun), Decrement(2)},
	}

	for i, seq := range sequences {
		var items []models.CartItem
		for _, a := range seq {
			items = Apply(items, a)
		}
		seen := map[uint]bool{}
		for _, it := range items {
			if seen[it.DishID] {
				t.Errorf("sequence %d: duplicate dish id %d", i, it.DishID)
			}
			seen[it.DishID] = true
			if it.Quantity < 1 {
				t.Errorf("sequence %d: dish %d quantity %d < 1", i, it.DishID, it.Quantity)
			}
		}
	}
}

func TestTotal(t *testing.T) {
	items := Apply(Apply(nil, Add(pho)), Add(goi))
	items = Apply(items, Increment(pho.ID))

	want := 2*pho.Price + goi.Price
	if got := Total(items); got != want {
		t.Errorf("got total %d, want %d", got, want)
	}

	if got := Total(nil); got != 0 {
		t.Errorf("empty cart total = %d, want 0", got)
	}
}
