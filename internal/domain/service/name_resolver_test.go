package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"cardplanet/internal/domain/entity"
)

type fakeLookup struct {
	names map[string]string
	err   error
	calls int
}

func (f *fakeLookup) SetName(ctx context.Context, id string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.names[id], nil
}

func TestResolvePrefersRemoteLookupForIDs(t *testing.T) {
	lookup := &fakeLookup{names: map[string]string{"swsh1": "Épée et Bouclier"}}
	resolver := NewNameResolver(NewTranslationCache(), lookup)

	name := resolver.Resolve(context.Background(), "swsh1")

	assert.Equal(t, "Épée et Bouclier", name)
	assert.Equal(t, 1, lookup.calls)
}

func TestResolveSkipsRemoteLookupForLongNames(t *testing.T) {
	lookup := &fakeLookup{}
	resolver := NewNameResolver(NewTranslationCache(), lookup)
	resolver.Populate([]entity.Series{{ID: "swsh1", Name: "Épée et Bouclier"}})

	name := resolver.Resolve(context.Background(), "Sword & Shield Base Set")

	assert.Zero(t, lookup.calls)
	assert.Equal(t, "Sword & Shield Base Set", name)
}

func TestResolveFallsBackToCacheOnRemoteFailure(t *testing.T) {
	lookup := &fakeLookup{err: errors.New("connection refused")}
	resolver := NewNameResolver(NewTranslationCache(), lookup)
	resolver.Populate([]entity.Series{{ID: "swsh1", Name: "Épée et Bouclier"}})

	name := resolver.Resolve(context.Background(), "SWSH1")

	assert.Equal(t, "Épée et Bouclier", name)
}

func TestResolveByCleanedName(t *testing.T) {
	resolver := NewNameResolver(NewTranslationCache(), nil)
	resolver.Populate([]entity.Series{{ID: "sv01", Name: "Scarlet & Violet"}})

	// "Scarlet & Violet" is cached under "scarletviolet".
	name := resolver.Resolve(context.Background(), "Scarlet - & - Violet!!!")

	assert.Equal(t, "Scarlet & Violet", name)
}

func TestResolveBySubstringInInsertionOrder(t *testing.T) {
	cache := NewTranslationCache()
	cache.Put("celebrationsclassic", "Célébrations : Collection Classique")
	cache.Put("celebrations", "Célébrations")
	resolver := NewNameResolver(cache, nil)

	// Both keys contain the cleaned query; the first inserted wins,
	// deterministically.
	name := resolver.Resolve(context.Background(), "Celebrations!!!")

	assert.Equal(t, "Célébrations : Collection Classique", name)
}

func TestResolveUnknownKeyReturnsKeyUnchanged(t *testing.T) {
	lookup := &fakeLookup{err: errors.New("network down")}
	resolver := NewNameResolver(NewTranslationCache(), lookup)

	name := resolver.Resolve(context.Background(), "swsh1")

	assert.Equal(t, "swsh1", name)
}

func TestTranslationCacheLifecycle(t *testing.T) {
	cache := NewTranslationCache()
	cache.Put("a", "Alpha")
	cache.Put("b", "Beta")
	cache.Put("a", "Alpha 2") // overwrite keeps position

	assert.Equal(t, 2, cache.Len())

	var keys []string
	cache.Range(func(key, name string) bool {
		keys = append(keys, key)
		return true
	})
	assert.Equal(t, []string{"a", "b"}, keys)

	name, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "Alpha 2", name)

	cache.Clear()
	assert.Zero(t, cache.Len())
	_, ok = cache.Get("a")
	assert.False(t, ok)
}

func TestCleanKey(t *testing.T) {
	assert.Equal(t, "swordshield", CleanKey("Sword & Shield"))
	assert.Equal(t, "sv01", CleanKey("SV-01"))
	assert.Equal(t, "", CleanKey("!!!"))
}
