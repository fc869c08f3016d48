package domain

import (
	cart "github.com/karyatoko/storefront/internal/cart/domain"
)

// Product is the catalog view the cart builds its items from. OriginalPrice
// is nil when the product is not discounted; ImageURL is empty when the
// catalog has no image.
type Product struct {
	ID            string
	Name          string
	Price         cart.Money
	OriginalPrice *cart.Money
	Stock         int
	ImageURL      string
}
