package translation

import (
	"context"
	"strings"

	"google.golang.org/genai"
)

const geminiProviderName = "gemini"

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiProvider translates text through the Gemini generative API. Gemini
// has no native formality switch, so tone is injected into the prompt.
type GeminiProvider struct {
	apiKey string
	model  string
}

// NewGeminiProvider builds a Gemini adapter from an API key and model name.
func NewGeminiProvider(apiKey, model string) *GeminiProvider {
	model = strings.TrimSpace(model)
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiProvider{
		apiKey: strings.TrimSpace(apiKey),
		model:  model,
	}
}

func (p *GeminiProvider) Name() string {
	return geminiProviderName
}

// Available reports whether a credential was supplied. Performs no network
// I/O; the genai client is built per call because its constructor needs a
// context.
func (p *GeminiProvider) Available() bool {
	return p != nil && p.apiKey != ""
}

// ModelName returns the configured model identifier.
func (p *GeminiProvider) ModelName() string {
	if p == nil {
		return ""
	}
	return p.model
}

func (p *GeminiProvider) Translate(ctx context.Context, req Request) (string, error) {
	if !p.Available() {
		return "", newError(geminiProviderName, "no API key configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", wrapError(geminiProviderName, err)
	}

	resp, err := client.Models.GenerateContent(ctx, p.model, genai.Text(translationPrompt(req)), nil)
	if err != nil {
		return "", wrapError(geminiProviderName, err)
	}

	translated := strings.TrimSpace(resp.Text())
	if translated == "" {
		return "", newError(geminiProviderName, "empty translation in response")
	}
	return translated, nil
}
