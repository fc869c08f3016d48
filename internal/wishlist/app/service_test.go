package app

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cart "github.com/karyatoko/storefront/internal/cart/domain"
	"github.com/karyatoko/storefront/internal/storage"
	"github.com/karyatoko/storefront/internal/wishlist/domain"
	"github.com/karyatoko/storefront/pkg/logger"
)

func testItem(t *testing.T, productID, name string) domain.Item {
	t.Helper()

	price, err := cart.NewMoney("150", "USD")
	require.NoError(t, err)

	return domain.Item{ProductID: productID, Name: name, UnitPrice: price}
}

func newTestStore(t *testing.T, kv storage.Adapter) *Store {
	t.Helper()
	log := logger.New(logger.Options{Service: "test", Out: io.Discard})
	return NewStore(kv, log)
}

func TestAddIsSetSemantics(t *testing.T) {
	store := newTestStore(t, storage.NewMemoryStore())

	bag := testItem(t, "w1", "Bag")

	assert.True(t, store.Add(bag))
	assert.False(t, store.Add(bag), "second add is a no-op")

	require.Len(t, store.List(), 1)
	assert.True(t, store.Contains("w1"))
}

func TestRemoveIsIdempotent(t *testing.T) {
	store := newTestStore(t, storage.NewMemoryStore())
	store.Add(testItem(t, "w1", "Bag"))

	store.Remove("w1")
	store.Remove("w1")
	store.Remove("never-there")

	assert.Empty(t, store.List())
}

func TestSnapshotSurvivesRestart(t *testing.T) {
	kv := storage.NewMemoryStore()

	first := newTestStore(t, kv)
	first.Add(testItem(t, "w1", "Bag"))
	first.Add(testItem(t, "w2", "Shoes"))
	first.Remove("w1")

	second := newTestStore(t, kv)
	items := second.List()
	require.Len(t, items, 1)
	assert.Equal(t, "w2", items[0].ProductID)
}

func TestUnreadableSnapshotStartsEmpty(t *testing.T) {
	kv := storage.NewMemoryStore()
	kv.Set("wishlist:v1", "{not json")

	store := newTestStore(t, kv)
	assert.Empty(t, store.List())

	// The next mutation replaces the broken snapshot.
	store.Add(testItem(t, "w1", "Bag"))
	assert.Len(t, newTestStore(t, kv).List(), 1)
}

func TestListReturnsCopy(t *testing.T) {
	store := newTestStore(t, storage.NewMemoryStore())
	store.Add(testItem(t, "w1", "Bag"))

	items := store.List()
	items[0].ProductID = "mutated"

	assert.Equal(t, "w1", store.List()[0].ProductID)
}
