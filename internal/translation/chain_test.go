package translation

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubProvider struct {
	name        string
	available   bool
	translation string
	errs        []error
	panicMsg    string
	calls       int
}

func (s *stubProvider) Name() string    { return s.name }
func (s *stubProvider) Available() bool { return s.available }

func (s *stubProvider) Translate(_ context.Context, _ Request) (string, error) {
	s.calls++
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		if err != nil {
			return "", err
		}
	}
	return s.translation, nil
}

func newStub(name, translation string, errs ...error) *stubProvider {
	return &stubProvider{name: name, available: true, translation: translation, errs: errs}
}

func TestChainFirstProviderWins(t *testing.T) {
	first := newStub("deepl", "Hola")
	second := newStub("gemini", "unused")

	chain := NewChain(first, second)
	chain.SetRetryDelay(0)

	result := chain.Translate(context.Background(), Request{Text: "Hello", TargetLang: "es"}, 1)
	if !result.OK() {
		t.Fatalf("expected success, got %+v", result)
	}
	if result.Translation != "Hola" || result.Provider != "deepl" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if second.calls != 0 {
		t.Fatalf("second provider must not run after first succeeds, calls = %d", second.calls)
	}
}

func TestChainFallsBackInOrder(t *testing.T) {
	first := newStub("deepl", "", errors.New("quota exceeded"))
	second := newStub("gemini", "", errors.New("model overloaded"))
	third := newStub("openai", "Hola")

	chain := NewChain(first, second, third)
	chain.SetRetryDelay(0)

	result, diagnostics := chain.translate(context.Background(), Request{Text: "Hello", TargetLang: "es"}, 0)
	if !result.OK() {
		t.Fatalf("expected fallback success, got %+v", result)
	}
	if result.Provider != "openai" {
		t.Fatalf("expected openai to serve the fallback, got %q", result.Provider)
	}
	if first.calls != 1 {
		t.Fatalf("first provider should get one attempt with retryCount=0, calls = %d", first.calls)
	}

	want := []string{
		"deepl (attempt 1): quota exceeded",
		"gemini (attempt 1): model overloaded",
	}
	if len(diagnostics) != len(want) {
		t.Fatalf("expected %d diagnostics, got %v", len(want), diagnostics)
	}
	for i := range want {
		if diagnostics[i] != want[i] {
			t.Fatalf("diagnostic %d = %q, want %q", i, diagnostics[i], want[i])
		}
	}
}

func TestChainRetriesBeforeFallingBack(t *testing.T) {
	first := newStub("deepl", "", errors.New("timeout"), errors.New("timeout"))
	second := newStub("gemini", "Hola")

	chain := NewChain(first, second)
	chain.SetRetryDelay(0)

	result := chain.Translate(context.Background(), Request{Text: "Hello", TargetLang: "es"}, 1)
	if result.Provider != "gemini" {
		t.Fatalf("expected gemini after deepl exhausted retries, got %+v", result)
	}
	if first.calls != 2 {
		t.Fatalf("retryCount=1 means 2 attempts per provider, calls = %d", first.calls)
	}
}

func TestChainAggregatesAllFailures(t *testing.T) {
	first := newStub("deepl", "", errors.New("quota exceeded"), errors.New("quota exceeded"))
	second := newStub("gemini", "", errors.New("model overloaded"), errors.New("model overloaded"))

	chain := NewChain(first, second)
	chain.SetRetryDelay(0)

	result := chain.Translate(context.Background(), Request{Text: "Hello", TargetLang: "es"}, 1)
	if result.OK() {
		t.Fatalf("expected failure, got %+v", result)
	}
	if !strings.HasPrefix(result.Err, "All translation providers failed: ") {
		t.Fatalf("unexpected aggregate prefix: %q", result.Err)
	}

	wantDiagnostics := []string{
		"deepl (attempt 1): quota exceeded",
		"deepl (attempt 2): quota exceeded",
		"gemini (attempt 1): model overloaded",
		"gemini (attempt 2): model overloaded",
	}
	got := strings.Split(strings.TrimPrefix(result.Err, "All translation providers failed: "), "; ")
	if len(got) != len(wantDiagnostics) {
		t.Fatalf("expected %d diagnostics, got %d: %q", len(wantDiagnostics), len(got), result.Err)
	}
	for i, want := range wantDiagnostics {
		if got[i] != want {
			t.Fatalf("diagnostic %d = %q, want %q", i, got[i], want)
		}
	}
}

func TestChainNoProviders(t *testing.T) {
	chain := NewChain()

	result := chain.Translate(context.Background(), Request{Text: "Hello", TargetLang: "es"}, 1)
	if result.Err != ErrNoProviders {
		t.Fatalf("expected %q, got %+v", ErrNoProviders, result)
	}
}

func TestChainSkipsUnavailableProviders(t *testing.T) {
	unavailable := &stubProvider{name: "deepl", available: false, translation: "unused"}
	ready := newStub("gemini", "Hola")

	chain := NewChain(unavailable, nil, ready)
	chain.SetRetryDelay(0)

	names := chain.ProviderNames()
	if len(names) != 1 || names[0] != "gemini" {
		t.Fatalf("unexpected provider order: %v", names)
	}

	result := chain.Translate(context.Background(), Request{Text: "Hello", TargetLang: "es"}, 0)
	if result.Provider != "gemini" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if unavailable.calls != 0 {
		t.Fatal("unavailable provider must never be called")
	}
}

func TestChainRecoversFromProviderPanic(t *testing.T) {
	panicking := &stubProvider{name: "deepl", available: true, panicMsg: "nil dereference"}
	ready := newStub("gemini", "Hola")

	chain := NewChain(panicking, ready)
	chain.SetRetryDelay(0)

	result := chain.Translate(context.Background(), Request{Text: "Hello", TargetLang: "es"}, 0)
	if result.Provider != "gemini" {
		t.Fatalf("expected fallback past panicking provider, got %+v", result)
	}
}

func TestChainTreatsEmptySuccessAsFailure(t *testing.T) {
	empty := newStub("deepl", "   ")
	ready := newStub("gemini", "Hola")

	chain := NewChain(empty, ready)
	chain.SetRetryDelay(0)

	result := chain.Translate(context.Background(), Request{Text: "Hello", TargetLang: "es"}, 0)
	if result.Provider != "gemini" {
		t.Fatalf("expected fallback on empty translation, got %+v", result)
	}
}

func TestChainNilReceiver(t *testing.T) {
	var chain *Chain
	result := chain.Translate(context.Background(), Request{Text: "Hello", TargetLang: "es"}, 0)
	if result.Err != ErrNoProviders {
		t.Fatalf("nil chain should report no providers, got %+v", result)
	}
}
