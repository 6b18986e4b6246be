package service

import (
	"context"
	"regexp"
	"strings"

	"cardplanet/internal/domain/entity"
	"cardplanet/pkg/logger"
)

// SetLookup is the remote single-id lookup used as the first resolution
// step. Implementations must treat any failure as "no match".
type SetLookup interface {
	SetName(ctx context.Context, id string) (string, error)
}

// TranslationCache maps set identifiers and cleaned English names to
// French display names. Iteration follows insertion order so substring
// matching is deterministic; the cache is injected, never a global.
type TranslationCache struct {
	keys    []string
	entries map[string]string
}

func NewTranslationCache() *TranslationCache {
	return &TranslationCache{entries: make(map[string]string)}
}

func (c *TranslationCache) Put(key, name string) {
	if key == "" || name == "" {
		return
	}
	if _, exists := c.entries[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.entries[key] = name
}

func (c *TranslationCache) Get(key string) (string, bool) {
	name, ok := c.entries[key]
	return name, ok
}

func (c *TranslationCache) Len() int {
	return len(c.keys)
}

func (c *TranslationCache) Clear() {
	c.keys = nil
	c.entries = make(map[string]string)
}

// Range visits entries in insertion order until fn returns false.
func (c *TranslationCache) Range(fn func(key, name string) bool) {
	for _, key := range c.keys {
		if !fn(key, c.entries[key]) {
			return
		}
	}
}

var setIDPattern = regexp.MustCompile(`^(?i)[a-z0-9-]{2,8}$`)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// CleanKey strips everything but letters and digits and lowercases, the
// normalization used for cached name keys.
func CleanKey(key string) string {
	return strings.ToLower(nonAlphanumeric.ReplaceAllString(key, ""))
}

// NameResolver translates expansion identifiers or English set names to
// French display names, best effort.
type NameResolver struct {
	cache  *TranslationCache
	lookup SetLookup
}

func NewNameResolver(cache *TranslationCache, lookup SetLookup) *NameResolver {
	return &NameResolver{cache: cache, lookup: lookup}
}

func (r *NameResolver) Cache() *TranslationCache {
	return r.cache
}

// Populate fills the cache from a bulk set list: the lowercased id and
// the cleaned name both map to the display name.
func (r *NameResolver) Populate(sets []entity.Series) {
	for _, set := range sets {
		r.cache.Put(strings.ToLower(set.ID), set.Name)
		r.cache.Put(CleanKey(set.Name), set.Name)
	}
}

// Resolve applies the fallback chain, first hit wins:
// remote lookup for id-shaped keys, cache by lowercased key, cache by
// cleaned key, substring match in insertion order, then the original key
// unchanged. No step ever propagates an error.
func (r *NameResolver) Resolve(ctx context.Context, key string) string {
	if key == "" {
		return key
	}

	if r.lookup != nil && setIDPattern.MatchString(key) {
		name, err := r.lookup.SetName(ctx, key)
		if err != nil {
			logger.LogFetchError("tcgdex", key, err)
		} else if name != "" {
			return name
		}
	}

	if name, ok := r.cache.Get(strings.ToLower(key)); ok {
		return name
	}

	clean := CleanKey(key)
	if clean != "" {
		if name, ok := r.cache.Get(clean); ok {
			return name
		}

		var matched string
		r.cache.Range(func(cachedKey, name string) bool {
			if strings.Contains(cachedKey, clean) || strings.Contains(clean, cachedKey) {
				matched = name
				return false
			}
			return true
		})
		if matched != "" {
			return matched
		}
	}

	return key
}
