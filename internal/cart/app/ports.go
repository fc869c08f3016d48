package app

import (
	"context"

	"github.com/karyatoko/storefront/internal/cart/domain"
	catalog "github.com/karyatoko/storefront/internal/catalog/domain"
)

// RemoteCart is the authoritative cart service. Every call crosses the
// network and may fail with one of the domain error kinds; implementations
// must never mutate the passed-in items.
type RemoteCart interface {
	Fetch(ctx context.Context) ([]domain.CartItem, error)
	AddItem(ctx context.Context, productID string, quantity int) error
	UpdateItem(ctx context.Context, productID string, quantity int) error
	RemoveItem(ctx context.Context, productID string) error
	Clear(ctx context.Context) error

	// Sync pushes a full item list and returns the list the server accepted.
	Sync(ctx context.Context, items []domain.CartItem) ([]domain.CartItem, error)
}

// ProductLookup resolves catalog data for an item about to enter the cart.
type ProductLookup interface {
	GetProduct(ctx context.Context, productID string) (catalog.Product, error)
}
