package vault

import (
	lru "github.com/hashicorp/golang-lru"
)

const defaultCacheSize = 128

// TokenCache keeps decrypted tokens per account. It is safe for concurrent use and
// may drop entries at any time; the encrypted store stays the source of truth.
type TokenCache struct {
	cache *lru.Cache
}

func NewTokenCache(size int) (*TokenCache, error) {
	if size <= 0 {
		size = defaultCacheSize
	}

	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}

	return &TokenCache{
		cache: cache,
	}, nil
}

func (t *TokenCache) Get(accountID string) (string, bool) {
	val, ok := t.cache.Get(accountID)
	if !ok {
		return "", false
	}

	token, ok := val.(string)

	return token, ok
}

func (t *TokenCache) Set(accountID string, token string) {
	t.cache.Add(accountID, token)
}

func (t *TokenCache) Remove(accountID string) {
	t.cache.Remove(accountID)
}

func (t *TokenCache) Clear() {
	t.cache.Purge()
}

func (t *TokenCache) Len() int {
	return t.cache.Len()
}
