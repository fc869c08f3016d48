package app

import (
	"sync"

	"github.com/karyatoko/storefront/internal/cart/domain"
)

// CartStore is the in-memory cart aggregate. Only the Service mutates it;
// everyone else reads copied snapshots. The mutex covers the short critical
// sections around transitions, never a network call.
type CartStore struct {
	mu        sync.Mutex
	items     []domain.CartItem
	status    domain.Status
	lastError error
}

func NewCartStore() *CartStore {
	return &CartStore{status: domain.StatusIdle}
}

// Snapshot copies the aggregate for read-only consumption.
func (s *CartStore) Snapshot() domain.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)

	return domain.CartSnapshot{
		Items:     items,
		Status:    s.status,
		LastError: s.lastError,
	}
}

// Reset empties the aggregate, e.g. on logout.
func (s *CartStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.status = domain.StatusIdle
	s.lastError = nil
}

func (s *CartStore) beginPending() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = domain.StatusPending
	s.lastError = nil
}

// resolveFulfilled applies mutate to the item list under the lock and marks
// the operation fulfilled.
func (s *CartStore) resolveFulfilled(mutate func(items []domain.CartItem) []domain.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if mutate != nil {
		s.items = mutate(s.items)
	}
	s.status = domain.StatusFulfilled
	s.lastError = nil
}

// resolveRejected records the failure and leaves the item list untouched.
func (s *CartStore) resolveRejected(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = domain.StatusRejected
	s.lastError = err
}

func (s *CartStore) findItem(productID string) (domain.CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.items {
		if it.ProductID == productID {
			return it, true
		}
	}
	return domain.CartItem{}, false
}
