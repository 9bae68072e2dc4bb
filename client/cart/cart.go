// Package cart holds the client-side shopping cart: an ordered list of
// product lines persisted in full after every mutation, with derived totals
// recomputed from the lines on every read.
package cart

import (
	"sync"

	"sanjeevika-shop/client/notify"
	"sanjeevika-shop/client/storage"
	"sanjeevika-shop/models"
)

// Store owns the cart lines. All mutations go through its methods; nothing
// else writes the cart's storage key.
type Store struct {
	mu      sync.Mutex
	storage storage.Store
	events  *notify.Channel
	items   []models.CartLine
}

// New loads any persisted cart from st. events may be nil when no one renders
// notifications (tests, headless use).
func New(st storage.Store, events *notify.Channel) *Store {
	s := &Store{
		storage: st,
		events:  events,
	}
	s.items = storage.GetOr(st, storage.CartKey, []models.CartLine{})
	return s
}

// Add puts quantity units of the product in the cart. A product already
// present has its quantity increased; it never produces a second line.
func (s *Store) Add(product models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ProductID == product.ID {
			s.items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		s.items = append(s.items, models.NewCartLine(product, quantity))
	}
	s.persist()
	s.mu.Unlock()

	s.publish(notify.Event{Kind: notify.KindAdd, ProductTitle: product.Title, Quantity: quantity})
}

// Remove deletes the product's line. Removing a product that is not in the
// cart is a no-op and emits no event.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	var removed *models.CartLine
	for i := range s.items {
		if s.items[i].ProductID == productID {
			line := s.items[i]
			removed = &line
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.persist()
	s.mu.Unlock()

	if removed != nil {
		s.publish(notify.Event{Kind: notify.KindRemove, ProductTitle: removed.Title})
	}
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less removes
// the line instead; there is never a zero-quantity line. Unlike Add and
// Remove, a plain quantity change emits no event.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.Remove(productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = max(1, quantity)
			break
		}
	}
	s.persist()
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = []models.CartLine{}
	s.persist()
	s.mu.Unlock()

	s.publish(notify.Event{Kind: notify.KindClear})
}

// Items returns a copy of the lines in display order.
func (s *Store) Items() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartLine, len(s.items))
	copy(items, s.items)
	return items
}

// Contains reports whether the product has a line in the cart.
func (s *Store) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			return true
		}
	}
	return false
}

// Quantity returns the product's line quantity, or 0 when absent.
func (s *Store) Quantity(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			return s.items[i].Quantity
		}
	}
	return 0
}

// TotalPrice sums price times quantity over all lines.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for i := range s.items {
		total += s.items[i].Price * float64(s.items[i].Quantity)
	}
	return total
}

// ItemCount sums the quantities over all lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for i := range s.items {
		count += s.items[i].Quantity
	}
	return count
}

// persist writes the whole line sequence. Callers hold the lock.
func (s *Store) persist() {
	s.storage.Set(storage.CartKey, s.items)
}

func (s *Store) publish(event notify.Event) {
	if s.events != nil {
		s.events.Publish(event)
	}
}
