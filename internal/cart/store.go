// Package cart implements the local shopping cart: an ordered list of
// (product, quantity) lines persisted to the state store on every mutation.
package cart

import (
	"sync"

	"shophub/internal/logging"
	"shophub/internal/state"
	"shophub/internal/types"
)

// StorageKey is the state-store record holding the cart line list.
const StorageKey = "shopping-cart"

// LoadResult reports how the cart was initialized.
type LoadResult int

const (
	// Restored means a persisted cart was deserialized successfully.
	Restored LoadResult = iota
	// StartedEmpty means no persisted cart existed.
	StartedEmpty
	// DiscardedCorrupt means a persisted cart existed but could not be
	// parsed and was replaced by an empty cart.
	DiscardedCorrupt
)

// Store holds the cart lines. It is a process-wide singleton constructed once
// at startup and passed to consumers; all methods are safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	lines []types.CartLine
	state *state.Store
}

// NewStore restores the cart from the state store, falling back to an empty
// cart on missing or corrupt data.
func NewStore(st *state.Store) (*Store, LoadResult) {
	s := &Store{state: st}

	var lines []types.CartLine
	switch st.Load(StorageKey, &lines) {
	case state.Restored:
		s.lines = lines
		logging.Cart("restored %d lines", len(lines))
		return s, Restored
	case state.Corrupt:
		logging.CartWarn("persisted cart was corrupt, starting empty")
		return s, DiscardedCorrupt
	default:
		return s, StartedEmpty
	}
}

// Add merges quantity into the line for product's ID, appending a new line on
// first add. Insertion order is first-add order. Quantity is not validated
// here; callers pass positive values.
func (s *Store) Add(product types.Product, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == product.ID {
			s.lines[i].Quantity += quantity
			logging.Cart("add: product %d now qty %d", product.ID, s.lines[i].Quantity)
			s.persist()
			return
		}
	}
	s.lines = append(s.lines, types.CartLine{Product: product, Quantity: quantity})
	logging.Cart("add: product %d qty %d (new line)", product.ID, quantity)
	s.persist()
}

// Remove deletes the line for productID. No-op if absent.
func (s *Store) Remove(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			logging.Cart("remove: product %d", productID)
			s.persist()
			return
		}
	}
}

// UpdateQuantity sets the line's quantity exactly (not additive). A quantity
// of zero or less removes the line entirely.
func (s *Store) UpdateQuantity(productID, quantity int) {
	if quantity <= 0 {
		s.Remove(productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Quantity = quantity
			logging.Cart("update: product %d qty %d", productID, quantity)
			s.persist()
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	logging.Cart("cleared")
	s.persist()
}

// Lines returns a copy of the cart lines in first-add order.
func (s *Store) Lines() []types.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total returns the sum of price x quantity over all lines, recomputed on
// demand.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

// ItemCount returns the sum of quantities over all lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

// Contains reports whether a line for productID exists.
func (s *Store) Contains(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.lines {
		if l.Product.ID == productID {
			return true
		}
	}
	return false
}

// persist serializes the full line list. Failures are logged and swallowed;
// the in-memory cart stays authoritative for the session.
// Callers must hold s.mu.
func (s *Store) persist() {
	if s.lines == nil {
		// Persist an empty array rather than null.
		if err := s.state.Save(StorageKey, []types.CartLine{}); err != nil {
			logging.CartWarn("persist failed: %v", err)
		}
		return
	}
	if err := s.state.Save(StorageKey, s.lines); err != nil {
		logging.CartWarn("persist failed: %v", err)
	}
}
