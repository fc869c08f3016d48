package app

import "sync"

// itemLocks serializes operations per product id while leaving distinct ids
// fully parallel. Entries are reference-counted so the map does not grow with
// every product ever touched.
type itemLocks struct {
	mu    sync.Mutex
	locks map[string]*itemLock
}

type itemLock struct {
	mu   sync.Mutex
	refs int
}

func newItemLocks() *itemLocks {
	return &itemLocks{locks: make(map[string]*itemLock)}
}

// acquire blocks until the id's lock is held and returns the release func.
func (l *itemLocks) acquire(productID string) func() {
	l.mu.Lock()
	entry, ok := l.locks[productID]
	if !ok {
		entry = &itemLock{}
		l.locks[productID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, productID)
		}
		l.mu.Unlock()
	}
}
