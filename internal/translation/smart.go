package translation

import (
	"context"
	"strings"
	"time"

	"github.com/verborum/verborum/internal/language"
)

// Credentials carries the caller-supplied API keys, one per provider. The
// portal never persists them; they live for the duration of one call.
type Credentials struct {
	DeepLKey  string
	GeminiKey string
	OpenAIKey string
}

func (c Credentials) configured() int {
	count := 0
	for _, key := range []string{c.DeepLKey, c.GeminiKey, c.OpenAIKey} {
		if strings.TrimSpace(key) != "" {
			count++
		}
	}
	return count
}

// Options controls SmartTranslate behavior.
type Options struct {
	// Cache is probed before providers run and written through on success.
	// A nil cache disables caching regardless of UseCache.
	Cache    *Cache
	UseCache bool

	// RetryCount is the number of retries per provider on top of the first
	// attempt. Ignored on the single-credential fast path.
	RetryCount int

	// RetryDelay overrides the flat pause between retries of one provider.
	// Zero keeps DefaultRetryDelay; negative disables the pause.
	RetryDelay time.Duration

	GeminiModel string
	OpenAIModel string

	// Endpoint overrides for the DeepL free-plan host, OpenAI-compatible
	// backends, and tests.
	DeepLBaseURL  string
	OpenAIBaseURL string
}

// BuildProviders constructs adapters for every supplied credential in fixed
// priority order: DeepL, then Gemini, then OpenAI.
func BuildProviders(creds Credentials, opts Options) []Provider {
	providers := make([]Provider, 0, 3)
	if strings.TrimSpace(creds.DeepLKey) != "" {
		providers = append(providers, NewDeepLProviderWithBaseURL(creds.DeepLKey, opts.DeepLBaseURL))
	}
	if strings.TrimSpace(creds.GeminiKey) != "" {
		providers = append(providers, NewGeminiProvider(creds.GeminiKey, opts.GeminiModel))
	}
	if strings.TrimSpace(creds.OpenAIKey) != "" {
		providers = append(providers, NewOpenAIProviderWithBaseURL(creds.OpenAIKey, opts.OpenAIModel, opts.OpenAIBaseURL))
	}
	return providers
}

// SmartTranslate is the single-call façade over cache and fallback chain.
// It never returns an error for ordinary translation failure; the outcome is
// always a well-formed Result.
func SmartTranslate(ctx context.Context, req Request, creds Credentials, opts Options) Result {
	if strings.TrimSpace(req.Text) == "" {
		return Result{Err: "text is required"}
	}
	if language.NormalizeTag(req.TargetLang) == "" {
		return Result{Err: "target language is required"}
	}
	if req.Tone == "" {
		req.Tone = ToneDefault
	}

	useCache := opts.UseCache && opts.Cache != nil
	if useCache {
		if cached, ok := opts.Cache.Lookup(req.Text, req.SourceLang, req.TargetLang, req.Tone); ok {
			return cached
		}
	}

	chain := NewChain(BuildProviders(creds, opts)...)
	if opts.RetryDelay != 0 {
		chain.SetRetryDelay(max(opts.RetryDelay, 0))
	}

	// With exactly one credential there is nothing to fall back to, so the
	// retry budget is skipped. Success and failure semantics are identical
	// to running the full chain with one adapter and retryCount=0.
	retryCount := opts.RetryCount
	if creds.configured() == 1 {
		retryCount = 0
	}

	result := chain.Translate(ctx, req, retryCount)
	if useCache {
		opts.Cache.Store(req.Text, req.SourceLang, req.TargetLang, req.Tone, result)
	}
	return result
}
