package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/karyatoko/storefront/internal/cart/domain"
)

// Service coordinates every user-initiated cart operation against the remote
// cart service. Each operation follows the same protocol: validate locally,
// transition the aggregate to pending, call the remote, then resolve to
// fulfilled or rejected. A rejected operation leaves the item list exactly as
// it was before the call.
//
// Operations on the same product id are serialized, so the call issued last
// is the call whose outcome sticks. Operations on distinct ids run in
// parallel; cart-wide operations (clear, fetch, sync) exclude everything.
type Service struct {
	store   *CartStore
	remote  RemoteCart
	catalog ProductLookup
	log     *slog.Logger

	cartMu sync.RWMutex
	items  *itemLocks
}

func NewService(store *CartStore, remote RemoteCart, catalog ProductLookup, log *slog.Logger) *Service {
	return &Service{
		store:   store,
		remote:  remote,
		catalog: catalog,
		log:     log,
		items:   newItemLocks(),
	}
}

// Snapshot exposes the current aggregate for rendering.
func (s *Service) Snapshot() domain.CartSnapshot {
	return s.store.Snapshot()
}

// AddToCart builds a cart item from the catalog lookup and registers it with
// the remote cart. Adding an id already in the cart is rejected locally; the
// caller decides whether to offer a quantity update instead.
func (s *Service) AddToCart(ctx context.Context, productID string, quantity int) (domain.CartSnapshot, error) {
	op := s.begin("add_to_cart", productID)

	s.cartMu.RLock()
	defer s.cartMu.RUnlock()
	release := s.items.acquire(productID)
	defer release()

	if _, exists := s.store.findItem(productID); exists {
		return s.reject(op, &domain.ValidationError{Reason: domain.ReasonAlreadyInCart})
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return s.reject(op, fmt.Errorf("catalog.GetProduct: %w", err))
	}

	if _, err := domain.ValidateQuantity(quantity, product.Stock); err != nil {
		return s.reject(op, err)
	}

	s.store.beginPending()

	if err := s.remote.AddItem(ctx, productID, quantity); err != nil {
		return s.reject(op, fmt.Errorf("remote.AddItem: %w", err))
	}
	if ctx.Err() != nil {
		return s.reject(op, domain.ErrCancelled)
	}

	// The committed item is the locally built one, not the server's
	// acknowledgment payload, which saves a second round trip. Fetch and
	// Sync remain the reconciliation paths should the two ever drift.
	item := domain.CartItem{
		ProductID:      productID,
		Name:           product.Name,
		UnitPrice:      product.Price,
		OriginalPrice:  product.OriginalPrice,
		ImageRef:       product.ImageURL,
		AvailableStock: product.Stock,
		Quantity:       quantity,
	}

	s.store.resolveFulfilled(func(items []domain.CartItem) []domain.CartItem {
		return append(items, item)
	})

	return s.fulfill(op), nil
}

// RemoveFromCart deletes the item remotely and then locally. Removing an id
// that is already absent succeeds and changes nothing.
func (s *Service) RemoveFromCart(ctx context.Context, productID string) (domain.CartSnapshot, error) {
	op := s.begin("remove_from_cart", productID)

	s.cartMu.RLock()
	defer s.cartMu.RUnlock()
	release := s.items.acquire(productID)
	defer release()

	s.store.beginPending()

	if err := s.remote.RemoveItem(ctx, productID); err != nil {
		return s.reject(op, fmt.Errorf("remote.RemoveItem: %w", err))
	}
	if ctx.Err() != nil {
		return s.reject(op, domain.ErrCancelled)
	}

	s.store.resolveFulfilled(func(items []domain.CartItem) []domain.CartItem {
		out := make([]domain.CartItem, 0, len(items))
		for _, it := range items {
			if it.ProductID != productID {
				out = append(out, it)
			}
		}
		return out
	})

	return s.fulfill(op), nil
}

// UpdateCartQuantity validates the new quantity against the item's last known
// stock before touching the network. Validation failures never cause a
// remote call.
func (s *Service) UpdateCartQuantity(ctx context.Context, productID string, quantity int) (domain.CartSnapshot, error) {
	op := s.begin("update_cart_quantity", productID)

	s.cartMu.RLock()
	defer s.cartMu.RUnlock()
	release := s.items.acquire(productID)
	defer release()

	current, ok := s.store.findItem(productID)
	if !ok {
		return s.reject(op, fmt.Errorf("product[%s]: %w", productID, domain.ErrNotFound))
	}

	if _, err := domain.ValidateQuantity(quantity, current.AvailableStock); err != nil {
		return s.reject(op, err)
	}

	s.store.beginPending()

	if err := s.remote.UpdateItem(ctx, productID, quantity); err != nil {
		return s.reject(op, fmt.Errorf("remote.UpdateItem: %w", err))
	}
	if ctx.Err() != nil {
		return s.reject(op, domain.ErrCancelled)
	}

	s.store.resolveFulfilled(func(items []domain.CartItem) []domain.CartItem {
		for i := range items {
			if items[i].ProductID == productID {
				items[i].Quantity = quantity
			}
		}
		return items
	})

	return s.fulfill(op), nil
}

// ClearCart empties the remote cart and mirrors the result locally.
func (s *Service) ClearCart(ctx context.Context) (domain.CartSnapshot, error) {
	op := s.begin("clear_cart", "")

	s.cartMu.Lock()
	defer s.cartMu.Unlock()

	s.store.beginPending()

	if err := s.remote.Clear(ctx); err != nil {
		return s.reject(op, fmt.Errorf("remote.Clear: %w", err))
	}
	if ctx.Err() != nil {
		return s.reject(op, domain.ErrCancelled)
	}

	s.store.resolveFulfilled(func([]domain.CartItem) []domain.CartItem {
		return nil
	})

	return s.fulfill(op), nil
}

// FetchCartItems replaces the aggregate wholesale with the server's list.
// This is an authoritative path: whatever the server holds wins.
func (s *Service) FetchCartItems(ctx context.Context) (domain.CartSnapshot, error) {
	op := s.begin("fetch_cart_items", "")

	s.cartMu.Lock()
	defer s.cartMu.Unlock()

	s.store.beginPending()

	fetched, err := s.remote.Fetch(ctx)
	if err != nil {
		return s.reject(op, fmt.Errorf("remote.Fetch: %w", err))
	}
	if ctx.Err() != nil {
		return s.reject(op, domain.ErrCancelled)
	}

	s.store.resolveFulfilled(func([]domain.CartItem) []domain.CartItem {
		out := make([]domain.CartItem, len(fetched))
		copy(out, fetched)
		return out
	})

	return s.fulfill(op), nil
}

// SyncCartWithServer pushes a locally assembled list and mirrors whatever
// the server accepted, like FetchCartItems an authoritative path.
func (s *Service) SyncCartWithServer(ctx context.Context, items []domain.CartItem) (domain.CartSnapshot, error) {
	op := s.begin("sync_cart_with_server", "")

	s.cartMu.Lock()
	defer s.cartMu.Unlock()

	s.store.beginPending()

	accepted, err := s.remote.Sync(ctx, items)
	if err != nil {
		return s.reject(op, fmt.Errorf("remote.Sync: %w", err))
	}
	if ctx.Err() != nil {
		return s.reject(op, domain.ErrCancelled)
	}

	s.store.resolveFulfilled(func([]domain.CartItem) []domain.CartItem {
		out := make([]domain.CartItem, len(accepted))
		copy(out, accepted)
		return out
	})

	return s.fulfill(op), nil
}

type operation struct {
	id        string
	name      string
	productID string
}

func (s *Service) begin(name, productID string) operation {
	op := operation{id: uuid.NewString(), name: name, productID: productID}
	s.log.Debug("cart operation started",
		slog.String("op_id", op.id),
		slog.String("op", op.name),
		slog.String("product_id", op.productID),
	)
	return op
}

func (s *Service) reject(op operation, err error) (domain.CartSnapshot, error) {
	s.store.resolveRejected(err)
	s.log.Warn("cart operation rejected",
		slog.String("op_id", op.id),
		slog.String("op", op.name),
		slog.String("product_id", op.productID),
		slog.String("kind", string(domain.Classify(err))),
		slog.Any("err", err),
	)
	return s.store.Snapshot(), err
}

func (s *Service) fulfill(op operation) domain.CartSnapshot {
	s.log.Info("cart operation fulfilled",
		slog.String("op_id", op.id),
		slog.String("op", op.name),
		slog.String("product_id", op.productID),
	)
	return s.store.Snapshot()
}
