package translation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

// newDeepLMock stands in for the DeepL REST API and counts backend calls.
func newDeepLMock(t *testing.T, translation string) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"translations":[{"detected_source_language":"EN","text":"` + translation + `"}]}`))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestSmartTranslateRejectsEmptyText(t *testing.T) {
	result := SmartTranslate(context.Background(), Request{Text: "   ", TargetLang: "es"},
		Credentials{DeepLKey: "key"}, Options{})
	if result.OK() {
		t.Fatalf("expected validation failure, got %+v", result)
	}
	if result.Err != "text is required" {
		t.Fatalf("unexpected error: %q", result.Err)
	}
}

func TestSmartTranslateRejectsMissingTargetLang(t *testing.T) {
	result := SmartTranslate(context.Background(), Request{Text: "Hello"},
		Credentials{DeepLKey: "key"}, Options{})
	if result.Err != "target language is required" {
		t.Fatalf("unexpected error: %q", result.Err)
	}
}

func TestSmartTranslateNoCredentials(t *testing.T) {
	result := SmartTranslate(context.Background(), Request{Text: "Hello", TargetLang: "es"},
		Credentials{}, Options{})
	if result.Err != ErrNoProviders {
		t.Fatalf("expected %q, got %+v", ErrNoProviders, result)
	}
}

func TestSmartTranslateDeepLEndToEnd(t *testing.T) {
	srv, calls := newDeepLMock(t, "Hola mundo")

	result := SmartTranslate(context.Background(),
		Request{Text: "Hello world", SourceLang: "en", TargetLang: "es", Tone: ToneFormal},
		Credentials{DeepLKey: "test-key"}, Options{DeepLBaseURL: srv.URL})
	if !result.OK() {
		t.Fatalf("expected success, got %+v", result)
	}
	if result.Translation != "Hola mundo" || result.Provider != "deepl" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected one backend call, got %d", calls.Load())
	}
}

func TestSmartTranslateCacheSkipsBackend(t *testing.T) {
	srv, calls := newDeepLMock(t, "Hola mundo")
	cache := NewCache(time.Hour, 16)

	opts := Options{Cache: cache, UseCache: true, DeepLBaseURL: srv.URL}
	req := Request{Text: "Hello world", TargetLang: "es"}

	first := SmartTranslate(context.Background(), req, Credentials{DeepLKey: "test-key"}, opts)
	if !first.OK() {
		t.Fatalf("expected success, got %+v", first)
	}

	second := SmartTranslate(context.Background(), req, Credentials{DeepLKey: "test-key"}, opts)
	if second != first {
		t.Fatalf("cached result differs: %+v vs %+v", second, first)
	}
	if calls.Load() != 1 {
		t.Fatalf("second call should be served from cache, backend calls = %d", calls.Load())
	}
}

func TestSmartTranslateFailuresBypassCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"quota exceeded"}`, http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)
	cache := NewCache(time.Hour, 16)

	result := SmartTranslate(context.Background(), Request{Text: "Hello world", TargetLang: "es"},
		Credentials{DeepLKey: "test-key"},
		Options{Cache: cache, UseCache: true, DeepLBaseURL: srv.URL, RetryDelay: -1})
	if result.OK() {
		t.Fatalf("expected failure, got %+v", result)
	}
	if cache.Len() != 0 {
		t.Fatalf("failures must not be cached, Len = %d", cache.Len())
	}
}

func TestSmartTranslateSingleCredentialSkipsRetries(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"message":"server error"}`, http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	result := SmartTranslate(context.Background(), Request{Text: "Hello world", TargetLang: "es"},
		Credentials{DeepLKey: "test-key"},
		Options{RetryCount: 3, RetryDelay: -1, DeepLBaseURL: srv.URL})
	if result.OK() {
		t.Fatalf("expected failure, got %+v", result)
	}
	if calls.Load() != 1 {
		t.Fatalf("a single credential gets exactly one attempt, got %d", calls.Load())
	}
}

func TestSmartTranslateSingleCredentialMatchesChain(t *testing.T) {
	srv, _ := newDeepLMock(t, "Hola mundo")
	opts := Options{DeepLBaseURL: srv.URL}
	req := Request{Text: "Hello world", TargetLang: "es", Tone: ToneDefault}

	fast := SmartTranslate(context.Background(), req, Credentials{DeepLKey: "test-key"}, opts)

	chain := NewChain(NewDeepLProviderWithBaseURL("test-key", srv.URL))
	full := chain.Translate(context.Background(), req, 0)

	if fast != full {
		t.Fatalf("fast path and single-adapter chain disagree: %+v vs %+v", fast, full)
	}
}

func TestBuildProvidersOrderAndSkipping(t *testing.T) {
	providers := BuildProviders(Credentials{DeepLKey: "a", GeminiKey: "b", OpenAIKey: "c"}, Options{})
	want := []string{"deepl", "gemini", "openai"}
	if len(providers) != len(want) {
		t.Fatalf("expected %d providers, got %d", len(want), len(providers))
	}
	for i, p := range providers {
		if p.Name() != want[i] {
			t.Fatalf("provider %d = %q, want %q", i, p.Name(), want[i])
		}
	}

	providers = BuildProviders(Credentials{GeminiKey: "b"}, Options{})
	if len(providers) != 1 || providers[0].Name() != "gemini" {
		t.Fatalf("unexpected providers for gemini-only credentials: %v", providers)
	}
}
