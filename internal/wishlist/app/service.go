package app

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/karyatoko/storefront/internal/storage"
	"github.com/karyatoko/storefront/internal/wishlist/domain"
)

// snapshotKey is where the full wishlist snapshot lives in the key-value
// adapter. Every mutation rewrites the whole snapshot; there is no delta
// persistence.
const snapshotKey = "wishlist:v1"

// Store is the locally authoritative wishlist aggregate. All operations are
// synchronous; Add and Remove persist before returning.
type Store struct {
	mu    sync.Mutex
	kv    storage.Adapter
	items []domain.Item
	log   *slog.Logger
}

// NewStore loads the persisted snapshot if one exists. A snapshot that fails
// to decode is discarded and the wishlist starts empty.
func NewStore(kv storage.Adapter, log *slog.Logger) *Store {
	s := &Store{kv: kv, log: log}

	raw, ok := kv.Get(snapshotKey)
	if !ok {
		return s
	}

	if err := json.Unmarshal([]byte(raw), &s.items); err != nil {
		log.Warn("wishlist snapshot unreadable, starting empty", slog.Any("err", err))
		s.items = nil
	}

	return s
}

// Add saves the item and reports whether it was new. Adding an id already on
// the wishlist is a no-op; the caller surfaces the "already saved" notice.
func (s *Store) Add(item domain.Item) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.items {
		if it.ProductID == item.ProductID {
			return false
		}
	}

	s.items = append(s.items, item)
	s.persist()
	return true
}

// Remove is idempotent: removing an absent id succeeds and changes nothing.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.items[:0]
	for _, it := range s.items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	s.items = out
	s.persist()
}

// List returns a copy of the current items.
func (s *Store) List() []domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.Item, len(s.items))
	copy(items, s.items)
	return items
}

// Contains reports whether the product is saved.
func (s *Store) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

// persist writes the full snapshot; callers hold the lock.
func (s *Store) persist() {
	raw, err := json.Marshal(s.items)
	if err != nil {
		s.log.Error("wishlist snapshot encode failed", slog.Any("err", err))
		return
	}
	s.kv.Set(snapshotKey, string(raw))
}
