package domain

// Status tracks the lifecycle of the most recent cart operation.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusPending   Status = "pending"
	StatusFulfilled Status = "fulfilled"
	StatusRejected  Status = "rejected"
)

// StockUnknown marks an item whose catalog stock was never observed.
const StockUnknown = -1

type CartItem struct {
	ProductID string
	Name      string
	UnitPrice Money

	// OriginalPrice is the pre-discount price; nil means it equals UnitPrice.
	OriginalPrice *Money

	// ImageRef is empty when the catalog has no image for the product.
	ImageRef string

	// AvailableStock is the last value seen from the catalog, StockUnknown if
	// never observed. It is not kept in sync with Quantity afterwards.
	AvailableStock int

	Quantity int
}

// EffectiveOriginalPrice resolves the optional OriginalPrice.
func (i CartItem) EffectiveOriginalPrice() Money {
	if i.OriginalPrice != nil {
		return *i.OriginalPrice
	}
	return i.UnitPrice
}

// CartSnapshot is a point-in-time copy of the aggregate, safe to hand to callers.
type CartSnapshot struct {
	Items     []CartItem
	Status    Status
	LastError error
}

// ErrorKind classifies LastError, KindNone when the snapshot carries no error.
func (s CartSnapshot) ErrorKind() ErrorKind {
	return Classify(s.LastError)
}

// FindItem returns the item with the given product id, false if absent.
func (s CartSnapshot) FindItem(productID string) (CartItem, bool) {
	for _, it := range s.Items {
		if it.ProductID == productID {
			return it, true
		}
	}
	return CartItem{}, false
}
