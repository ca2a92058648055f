package translation

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// DefaultRetryDelay is the flat pause between retries of the same provider.
// It exists to avoid hammering a rate-limited backend, not as backoff.
const DefaultRetryDelay = time.Second

// ErrNoProviders is the fixed message reported when no credentials were
// supplied.
const ErrNoProviders = "No translation providers available"

// Chain tries providers in a fixed priority order until one succeeds or all
// are exhausted. The order is a policy choice (cost, then quality) and is
// never reordered adaptively.
type Chain struct {
	providers  []Provider
	retryDelay time.Duration
}

// NewChain builds a chain over the given providers, preserving their order.
func NewChain(providers ...Provider) *Chain {
	kept := make([]Provider, 0, len(providers))
	for _, p := range providers {
		if p != nil && p.Available() {
			kept = append(kept, p)
		}
	}
	return &Chain{
		providers:  kept,
		retryDelay: DefaultRetryDelay,
	}
}

// SetRetryDelay overrides the pause between retries of one provider. Zero
// disables the pause; tests use this.
func (c *Chain) SetRetryDelay(d time.Duration) {
	if c == nil {
		return
	}
	c.retryDelay = d
}

// ProviderNames lists the configured providers in priority order.
func (c *Chain) ProviderNames() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.providers))
	for _, p := range c.providers {
		names = append(names, p.Name())
	}
	return names
}

// Translate runs the fallback loop: each provider gets retryCount+1
// attempts, the first success wins, and every failure is recorded as a
// labeled diagnostic. The loop always terminates with a well-formed Result.
func (c *Chain) Translate(ctx context.Context, req Request, retryCount int) Result {
	result, _ := c.translate(ctx, req, retryCount)
	return result
}

// translate also returns the diagnostics recorded before the outcome, so
// the fallback trail stays observable when a later provider succeeds.
func (c *Chain) translate(ctx context.Context, req Request, retryCount int) (Result, []string) {
	if c == nil || len(c.providers) == 0 {
		return Result{Err: ErrNoProviders}, nil
	}
	if retryCount < 0 {
		retryCount = 0
	}

	attempts := retryCount + 1
	diagnostics := make([]string, 0, len(c.providers)*attempts)

	for _, provider := range c.providers {
		for attempt := 1; attempt <= attempts; attempt++ {
			if attempt > 1 {
				c.pause(ctx)
			}

			translated, err := c.attempt(ctx, provider, req)
			if err == nil {
				return Result{Translation: translated, Provider: provider.Name()}, diagnostics
			}
			diagnostics = append(diagnostics, fmt.Sprintf("%s (attempt %d): %s", provider.Name(), attempt, err.Error()))
		}
	}

	return Result{Err: "All translation providers failed: " + strings.Join(diagnostics, "; ")}, diagnostics
}

// attempt wraps a single provider call. Adapters normalize their own
// failures, but a panicking provider must not take the loop down with it.
func (c *Chain) attempt(ctx context.Context, provider Provider, req Request) (translated string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panic: %v", r)
		}
	}()

	translated, err = provider.Translate(ctx, req)
	if err == nil && strings.TrimSpace(translated) == "" {
		err = newError(provider.Name(), "empty translation in response")
	}
	return translated, err
}

func (c *Chain) pause(ctx context.Context) {
	if c.retryDelay <= 0 {
		return
	}
	timer := time.NewTimer(c.retryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
