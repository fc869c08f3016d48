package rest

import (
	"github.com/karyatoko/storefront/internal/cart/domain"
)

// wireItem is the JSON shape the cart service speaks. AvailableStock is a
// pointer because the server does not track stock for every item.
type wireItem struct {
	ProductID      string        `json:"productId"`
	Name           string        `json:"name"`
	UnitPrice      domain.Money  `json:"unitPrice"`
	OriginalPrice  *domain.Money `json:"originalPrice,omitempty"`
	ImageRef       string        `json:"imageRef,omitempty"`
	AvailableStock *int          `json:"availableStock,omitempty"`
	Quantity       int           `json:"quantity"`
}

type cartPayload struct {
	Items []wireItem `json:"items"`
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toWire(item domain.CartItem) wireItem {
	w := wireItem{
		ProductID:     item.ProductID,
		Name:          item.Name,
		UnitPrice:     item.UnitPrice,
		OriginalPrice: item.OriginalPrice,
		ImageRef:      item.ImageRef,
		Quantity:      item.Quantity,
	}
	if item.AvailableStock != domain.StockUnknown {
		stock := item.AvailableStock
		w.AvailableStock = &stock
	}
	return w
}

func toWireList(items []domain.CartItem) []wireItem {
	out := make([]wireItem, 0, len(items))
	for _, it := range items {
		out = append(out, toWire(it))
	}
	return out
}

func toDomain(w wireItem) domain.CartItem {
	item := domain.CartItem{
		ProductID:      w.ProductID,
		Name:           w.Name,
		UnitPrice:      w.UnitPrice,
		OriginalPrice:  w.OriginalPrice,
		ImageRef:       w.ImageRef,
		AvailableStock: domain.StockUnknown,
		Quantity:       w.Quantity,
	}
	if w.AvailableStock != nil {
		item.AvailableStock = *w.AvailableStock
	}
	return item
}

func toDomainList(ws []wireItem) []domain.CartItem {
	out := make([]domain.CartItem, 0, len(ws))
	for _, w := range ws {
		out = append(out, toDomain(w))
	}
	return out
}
