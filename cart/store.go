package cart

import (
	"sync"

	"restaurant-client/models"
)

// Store keeps one cart per device session. Mutations for a session are
// serialized through the mutex, matching single-writer reducer semantics;
// there is no cross-session sharing.
type Store struct {
	mu    sync.Mutex
	carts map[string][]models.CartItem
}

func NewStore() *Store {
	return &Store{carts: make(map[string][]models.CartItem)}
}

// Dispatch applies an action to the session's cart and returns the new items
func (s *Store) Dispatch(session string, action Action) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := Apply(s.carts[session], action)
	if len(next) == 0 {
		delete(s.carts, session)
	} else {
		s.carts[session] = next
	}
	return copyItems(next)
}

// Items returns a copy of the session's current cart
func (s *Store) Items(session string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyItems(s.carts[session])
}

// Total returns the pending amount for the session's cart
func (s *Store) Total(session string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Total(s.carts[session])
}

// Clear empties the session's cart; used after a successful submission
func (s *Store) Clear(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, session)
}

func copyItems(items []models.CartItem) []models.CartItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}
