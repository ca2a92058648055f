package translation

import (
	"fmt"
	"testing"
	"time"
)

func newTestCache(ttl time.Duration, maxSize int) (*Cache, *time.Time) {
	cache := NewCache(ttl, maxSize)
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	return cache, &now
}

func okResult(translation, provider string) Result {
	return Result{Translation: translation, Provider: provider}
}

func TestCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(time.Hour, 16)

	cache.Store("Hello", "en", "es", ToneDefault, okResult("Hola", "deepl"))

	got, ok := cache.Lookup("Hello", "en", "es", ToneDefault)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.Translation != "Hola" || got.Provider != "deepl" {
		t.Fatalf("unexpected cached result: %+v", got)
	}
}

func TestCacheKeyDistinguishesParameters(t *testing.T) {
	cache, _ := newTestCache(time.Hour, 16)
	cache.Store("Hello", "en", "es", ToneDefault, okResult("Hola", "deepl"))

	misses := []struct {
		name                     string
		text, source, target     string
		tone                     Tone
	}{
		{"different text", "Hello!", "en", "es", ToneDefault},
		{"different source", "Hello", "de", "es", ToneDefault},
		{"auto source", "Hello", "", "es", ToneDefault},
		{"different target", "Hello", "en", "fr", ToneDefault},
		{"different tone", "Hello", "en", "es", ToneFormal},
	}
	for _, tt := range misses {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := cache.Lookup(tt.text, tt.source, tt.target, tt.tone); ok {
				t.Fatal("expected cache miss")
			}
		})
	}
}

func TestCacheNormalizesLanguageCase(t *testing.T) {
	cache, _ := newTestCache(time.Hour, 16)
	cache.Store("Hello", "EN", "ES", ToneDefault, okResult("Hola", "deepl"))

	if _, ok := cache.Lookup("Hello", "en", "es", ToneDefault); !ok {
		t.Fatal("expected case-insensitive language codes to share one entry")
	}
}

func TestCacheEmptyToneMatchesDefault(t *testing.T) {
	cache, _ := newTestCache(time.Hour, 16)
	cache.Store("Hello", "en", "es", "", okResult("Hola", "deepl"))

	if _, ok := cache.Lookup("Hello", "en", "es", ToneDefault); !ok {
		t.Fatal("expected empty tone to normalize to default")
	}
}

func TestCacheExpiry(t *testing.T) {
	cache, now := newTestCache(time.Hour, 16)
	cache.Store("Hello", "en", "es", ToneDefault, okResult("Hola", "deepl"))

	*now = now.Add(time.Hour - time.Second)
	if _, ok := cache.Lookup("Hello", "en", "es", ToneDefault); !ok {
		t.Fatal("entry just under the TTL should still be served")
	}

	*now = now.Add(time.Second)
	if _, ok := cache.Lookup("Hello", "en", "es", ToneDefault); ok {
		t.Fatal("entry at the TTL boundary should be expired")
	}
	if cache.Len() != 0 {
		t.Fatalf("expired entry should be purged on probe, Len = %d", cache.Len())
	}
}

func TestCacheNeverStoresFailures(t *testing.T) {
	cache, _ := newTestCache(time.Hour, 16)

	cache.Store("Hello", "en", "es", ToneDefault, Result{Err: "deepl translation failed: boom"})
	cache.Store("Hello", "en", "es", ToneDefault, Result{})

	if cache.Len() != 0 {
		t.Fatalf("failed results must not be cached, Len = %d", cache.Len())
	}
}

func TestCacheEvictsOldestOverBound(t *testing.T) {
	cache, now := newTestCache(time.Hour, 3)

	for i := 0; i < 4; i++ {
		text := fmt.Sprintf("text-%d", i)
		cache.Store(text, "en", "es", ToneDefault, okResult("t-"+text, "deepl"))
		*now = now.Add(time.Minute)
	}

	if cache.Len() != 3 {
		t.Fatalf("cache should hold at most 3 entries, Len = %d", cache.Len())
	}
	if _, ok := cache.Lookup("text-0", "en", "es", ToneDefault); ok {
		t.Fatal("oldest entry should have been evicted")
	}
	for i := 1; i < 4; i++ {
		if _, ok := cache.Lookup(fmt.Sprintf("text-%d", i), "en", "es", ToneDefault); !ok {
			t.Fatalf("entry text-%d should have survived eviction", i)
		}
	}
}

func TestCacheClear(t *testing.T) {
	cache, _ := newTestCache(time.Hour, 16)
	cache.Store("Hello", "en", "es", ToneDefault, okResult("Hola", "deepl"))
	cache.Store("World", "en", "es", ToneDefault, okResult("Mundo", "deepl"))

	cache.Clear()

	if cache.Len() != 0 {
		t.Fatalf("Clear should drop every entry, Len = %d", cache.Len())
	}
}

func TestCacheNilReceiver(t *testing.T) {
	var cache *Cache

	cache.Store("Hello", "en", "es", ToneDefault, okResult("Hola", "deepl"))
	if _, ok := cache.Lookup("Hello", "en", "es", ToneDefault); ok {
		t.Fatal("nil cache should never hit")
	}
	cache.Clear()
	if cache.Len() != 0 {
		t.Fatal("nil cache should report zero length")
	}
}
