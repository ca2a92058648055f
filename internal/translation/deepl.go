package translation

import (
	"context"
	"strings"

	"github.com/bounoable/deepl"
)

const deepLProviderName = "deepl"

// DeepLProvider translates text through the DeepL REST API.
type DeepLProvider struct {
	apiKey string
	client *deepl.Client
}

// NewDeepLProvider builds a DeepL adapter from an API key.
func NewDeepLProvider(apiKey string) *DeepLProvider {
	return NewDeepLProviderWithBaseURL(apiKey, "")
}

// NewDeepLProviderWithBaseURL builds a DeepL adapter pointed at a custom
// endpoint. Used for the DeepL free-plan host and for tests.
func NewDeepLProviderWithBaseURL(apiKey, baseURL string) *DeepLProvider {
	p := &DeepLProvider{apiKey: strings.TrimSpace(apiKey)}
	if p.apiKey == "" {
		return p
	}
	client := deepl.New(p.apiKey)
	if url := strings.TrimSpace(baseURL); url != "" {
		deepl.BaseURL(url)(client)
	}
	p.client = client
	return p
}

func (p *DeepLProvider) Name() string {
	return deepLProviderName
}

// Available reports whether a credential was supplied and the client was
// constructed. Performs no network I/O.
func (p *DeepLProvider) Available() bool {
	return p != nil && p.apiKey != "" && p.client != nil
}

func (p *DeepLProvider) Translate(ctx context.Context, req Request) (string, error) {
	if !p.Available() {
		return "", newError(deepLProviderName, "no API key configured")
	}

	target := DeepLLangCode(req.TargetLang)
	if target == "" {
		return "", newError(deepLProviderName, "invalid target language %q", req.TargetLang)
	}

	opts := []deepl.TranslateOption{
		deepl.PreserveFormatting(true),
	}
	if source := DeepLLangCode(req.SourceLang); source != "" {
		opts = append(opts, deepl.SourceLang(deepl.Language(source)))
	}
	switch req.Tone {
	case ToneFormal:
		opts = append(opts, deepl.Formality(deepl.MoreFormal))
	case ToneInformal:
		opts = append(opts, deepl.Formality(deepl.LessFormal))
	}

	translated, _, err := p.client.Translate(ctx, req.Text, deepl.Language(target), opts...)
	if err != nil {
		return "", wrapError(deepLProviderName, err)
	}

	translated = strings.TrimSpace(translated)
	if translated == "" {
		return "", newError(deepLProviderName, "empty translation in response")
	}
	return translated, nil
}
