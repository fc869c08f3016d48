package domain

import (
	cart "github.com/karyatoko/storefront/internal/cart/domain"
)

// Item is a product saved for later. The wishlist has no remote counterpart,
// so this is also the persisted shape.
type Item struct {
	ProductID string     `json:"productId"`
	Name      string     `json:"name"`
	UnitPrice cart.Money `json:"unitPrice"`
	ImageRef  string     `json:"imageRef,omitempty"`
}
