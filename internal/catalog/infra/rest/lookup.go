// Package rest resolves catalog products from the storefront REST API.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	cart "github.com/karyatoko/storefront/internal/cart/domain"
	"github.com/karyatoko/storefront/internal/catalog/domain"
)

type wireProduct struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Price         cart.Money  `json:"price"`
	OriginalPrice *cart.Money `json:"originalPrice,omitempty"`
	Stock         *int        `json:"stock,omitempty"`
	ImageURL      string      `json:"imageUrl,omitempty"`
}

type Lookup struct {
	baseURL string
	http    *http.Client
}

func NewLookup(baseURL string, timeout time.Duration) *Lookup {
	return &Lookup{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (l *Lookup) GetProduct(ctx context.Context, productID string) (domain.Product, error) {
	reqURL := l.baseURL + "/products/" + url.PathEscape(productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.Product{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := l.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return domain.Product{}, err
		}
		return domain.Product{}, fmt.Errorf("%w: %v", cart.ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.Product{}, fmt.Errorf("product[%s]: %w", productID, cart.ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return domain.Product{}, fmt.Errorf("http %d from GET /products/%s: %w", resp.StatusCode, productID, cart.ErrNetwork)
	}

	var w wireProduct
	if err := json.NewDecoder(resp.Body).Decode(&w); err != nil {
		return domain.Product{}, fmt.Errorf("%w: decoding response: %v", cart.ErrNetwork, err)
	}

	p := domain.Product{
		ID:            w.ID,
		Name:          w.Name,
		Price:         w.Price,
		OriginalPrice: w.OriginalPrice,
		Stock:         cart.StockUnknown,
		ImageURL:      w.ImageURL,
	}
	if w.Stock != nil {
		p.Stock = *w.Stock
	}
	return p, nil
}
