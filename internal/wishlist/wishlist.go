package wishlist

import (
	"context"
	"sync"
	"time"

	"github.com/bhushankhairnar-QA/giftshop/internal/domain"
	"github.com/bhushankhairnar-QA/giftshop/internal/storage"
)

// DefaultStorageKey is the persistence key for the saved-items
// collection, fully independent of the cart's key.
const DefaultStorageKey = "giftShopWishlist"

// Store holds a deduplicated collection of saved items. Items are never
// mutated after insertion; they are only added, removed, or bulk-cleared.
type Store struct {
	mu      sync.Mutex
	backend storage.Store
	key     string

	items    []domain.WishlistItem
	hydrated bool
	now      func() time.Time
}

// New hydrates the wishlist once from the backing store, with the same
// write-suppression-until-hydrated discipline as the cart.
func New(ctx context.Context, backend storage.Store, key string) *Store {
	if key == "" {
		key = DefaultStorageKey
	}
	s := &Store{backend: backend, key: key, now: time.Now}
	storage.LoadJSON(ctx, backend, key, &s.items)
	s.hydrated = true
	return s
}

// AddItem saves the product. Adding an id that is already present is a
// silent no-op; in particular DateAdded is not refreshed.
func (s *Store) AddItem(ctx context.Context, p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(p.ID) >= 0 {
		return
	}
	s.items = append(s.items, p.Saved(s.now()))
	s.persistLocked(ctx)
}

// RemoveItem deletes the saved item if present, no-op otherwise.
func (s *Store) RemoveItem(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.persistLocked(ctx)
}

// Toggle removes the product if it is saved and saves it otherwise.
// It returns true when the product ended up added, false when removed,
// so callers can drive icon state without a separate lookup.
func (s *Store) Toggle(ctx context.Context, p domain.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(p.ID); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
		s.persistLocked(ctx)
		return false
	}
	s.items = append(s.items, p.Saved(s.now()))
	s.persistLocked(ctx)
	return true
}

// Clear empties the collection.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persistLocked(ctx)
}

// Contains reports whether the id is saved.
func (s *Store) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(id) >= 0
}

// Items returns a copy of the saved items in insertion order.
func (s *Store) Items() []domain.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.WishlistItem, len(s.items))
	copy(out, s.items)
	return out
}

// ItemCount is the number of saved items.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// IsEmpty reports whether nothing is saved.
func (s *Store) IsEmpty() bool {
	return s.ItemCount() == 0
}

func (s *Store) indexOf(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persistLocked(ctx context.Context) {
	if !s.hydrated {
		return
	}
	items := s.items
	if items == nil {
		items = []domain.WishlistItem{}
	}
	storage.SaveJSON(ctx, s.backend, s.key, items)
}
