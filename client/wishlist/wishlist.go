// Package wishlist keeps the saved-for-later product list, persisted the same
// way as the cart but without quantities or notifications.
package wishlist

import (
	"sync"

	"sanjeevika-shop/client/storage"
	"sanjeevika-shop/models"
)

type Store struct {
	mu      sync.Mutex
	storage storage.Store
	items   []models.Product
}

func New(st storage.Store) *Store {
	s := &Store{storage: st}
	s.items = storage.GetOr(st, storage.WishlistKey, []models.Product{})
	return s
}

// Add saves the product; a product already on the list stays as is.
func (s *Store) Add(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == product.ID {
			return
		}
	}
	s.items = append(s.items, product)
	s.persist()
}

func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// Toggle adds the product if absent or removes it if present, and reports
// whether it is on the list afterwards.
func (s *Store) Toggle(product models.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == product.ID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return false
		}
	}
	s.items = append(s.items, product)
	s.persist()
	return true
}

func (s *Store) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == productID {
			return true
		}
	}
	return false
}

func (s *Store) Items() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.Product, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = []models.Product{}
	s.persist()
}

func (s *Store) persist() {
	s.storage.Set(storage.WishlistKey, s.items)
}
