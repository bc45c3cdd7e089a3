package cart

import (
	"context"
	"sync"
	"time"

	"github.com/bhushankhairnar-QA/giftshop/internal/domain"
	"github.com/bhushankhairnar-QA/giftshop/internal/storage"
)

// DefaultStorageKey is the persistence key the cart collection lives under.
const DefaultStorageKey = "giftShopCart"

// notificationTTL is how long the add-to-cart toast stays visible.
const notificationTTL = 3 * time.Second

const (
	msgItemAdded       = "Product added to your cart"
	msgQuantityUpdated = "Quantity updated in your cart"
)

// Notification is the transient add-to-cart toast. Exactly one is live
// at a time; a new add replaces it and restarts the expiry timer.
type Notification struct {
	Visible bool   `json:"visible"`
	Message string `json:"message"`
	Subject string `json:"subject"`
}

// Store holds the ordered cart line items. All mutations are synchronous
// and re-serialize the whole collection to the backing store; derived
// reads are recomputed on every call, never cached.
type Store struct {
	mu      sync.Mutex
	backend storage.Store
	key     string

	items        []domain.LineItem
	hydrated     bool
	notification Notification
	timer        *time.Timer
	ttl          time.Duration
}

// New hydrates the cart once from the backing store. Persistence writes
// are suppressed until hydration completes, so a failed load can never
// clobber stored data with an empty collection.
func New(ctx context.Context, backend storage.Store, key string) *Store {
	if key == "" {
		key = DefaultStorageKey
	}
	s := &Store{backend: backend, key: key, ttl: notificationTTL}
	storage.LoadJSON(ctx, backend, key, &s.items)
	s.hydrated = true
	return s
}

// AddItem inserts a new line item with quantity 1, or increments the
// quantity of the existing line for the same product id. Either way the
// toast is (re)shown with a fresh expiry timer.
func (s *Store) AddItem(ctx context.Context, p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	message := msgItemAdded
	if i := s.indexOf(p.ID); i >= 0 {
		s.items[i].Quantity++
		message = msgQuantityUpdated
	} else {
		s.items = append(s.items, p.Line(1))
	}

	s.showNotificationLocked(message, p.Title)
	s.persistLocked(ctx)
}

// RemoveItem deletes the line item with the given id. Absent ids are a
// no-op, not an error.
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

// SetQuantity sets the line's quantity exactly. A quantity <= 0 removes
// the line; an absent id is a no-op.
func (s *Store) SetQuantity(ctx context.Context, id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	} else {
		s.items[i].Quantity = quantity
	}
	s.persistLocked(ctx)
}

// Clear empties the collection. The live notification is left alone.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persistLocked(ctx)
}

// DismissNotification hides the toast immediately.
func (s *Store) DismissNotification() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.notification.Visible = false
}

// Notification returns the current toast state.
func (s *Store) Notification() Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notification
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// ItemCount is the sum of quantities across all line items.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// TotalPrice sums discounted line totals across the collection.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.OrderTotal(s.items)
}

// IsEmpty reports whether the cart holds no line items.
func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items) == 0
}

func (s *Store) indexOf(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) showNotificationLocked(message, subject string) {
	s.notification = Notification{Visible: true, Message: message, Subject: subject}

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.ttl, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.notification.Visible = false
	})
}

func (s *Store) persistLocked(ctx context.Context) {
	if !s.hydrated {
		return
	}
	items := s.items
	if items == nil {
		items = []domain.LineItem{}
	}
	storage.SaveJSON(ctx, s.backend, s.key, items)
}
