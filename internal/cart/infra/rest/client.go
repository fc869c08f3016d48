// Package rest implements the remote cart port over the storefront REST API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/karyatoko/storefront/internal/cart/domain"
)

// TokenSource supplies the bearer credential for each request. It reports
// false when no credential is held; requests then go out unauthenticated and
// the server answers 401.
type TokenSource interface {
	Token() (string, bool)
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

func (c *Client) Fetch(ctx context.Context) ([]domain.CartItem, error) {
	var out cartPayload
	if err := c.do(ctx, http.MethodGet, "/cart", nil, &out); err != nil {
		return nil, err
	}
	return toDomainList(out.Items), nil
}

func (c *Client) AddItem(ctx context.Context, productID string, quantity int) error {
	body := addItemRequest{ProductID: productID, Quantity: quantity}
	return c.do(ctx, http.MethodPost, "/cart/items", body, nil)
}

func (c *Client) UpdateItem(ctx context.Context, productID string, quantity int) error {
	body := updateItemRequest{Quantity: quantity}
	return c.do(ctx, http.MethodPut, "/cart/items/"+url.PathEscape(productID), body, nil)
}

func (c *Client) RemoveItem(ctx context.Context, productID string) error {
	return c.do(ctx, http.MethodDelete, "/cart/items/"+url.PathEscape(productID), nil, nil)
}

func (c *Client) Clear(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/cart", nil, nil)
}

func (c *Client) Sync(ctx context.Context, items []domain.CartItem) ([]domain.CartItem, error) {
	body := cartPayload{Items: toWireList(items)}

	var out cartPayload
	if err := c.do(ctx, http.MethodPut, "/cart", body, &out); err != nil {
		return nil, err
	}
	return toDomainList(out.Items), nil
}

// do executes one JSON request and maps the response onto the domain error
// taxonomy: 401 -> ErrAuth, 404 -> ErrNotFound, structured non-2xx ->
// ServerError with the message kept verbatim, anything else -> ErrNetwork.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("json.Marshal: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decoding response: %v", domain.ErrNetwork, err)
		}
		return nil

	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%s %s: %w", method, path, domain.ErrAuth)

	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, domain.ErrNotFound)

	default:
		var body errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
			return &domain.ServerError{StatusCode: resp.StatusCode, Message: body.Error}
		}
		return fmt.Errorf("http %d from %s %s: %w", resp.StatusCode, method, path, domain.ErrNetwork)
	}
}
