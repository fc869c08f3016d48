// Package auth holds the bearer credential supplied by the external login
// flow. Token issuance and refresh happen elsewhere; this package only
// stores, exposes and invalidates the credential.
package auth

import "github.com/karyatoko/storefront/internal/storage"

const tokenKey = "auth:token"

// TokenStore keeps the bearer token in the key-value adapter so it survives
// the session the same way the wishlist snapshot does.
type TokenStore struct {
	kv storage.Adapter
}

func NewTokenStore(kv storage.Adapter) *TokenStore {
	return &TokenStore{kv: kv}
}

// Token returns the current bearer token, false when logged out.
func (s *TokenStore) Token() (string, bool) {
	v, ok := s.kv.Get(tokenKey)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (s *TokenStore) SetToken(token string) {
	s.kv.Set(tokenKey, token)
}

// Clear drops the credential, e.g. on logout or after the server rejects it.
func (s *TokenStore) Clear() {
	s.kv.Remove(tokenKey)
}
