package translation

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const openAIProviderName = "openai"

// DefaultOpenAIModel is used when no model is configured.
const DefaultOpenAIModel = openai.GPT4o

// OpenAIProvider translates text through the OpenAI chat completions API.
// Like Gemini it lacks a native formality switch, so tone rides in the
// prompt.
type OpenAIProvider struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAIProvider builds an OpenAI adapter from an API key and model name.
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	return NewOpenAIProviderWithBaseURL(apiKey, model, "")
}

// NewOpenAIProviderWithBaseURL builds an OpenAI adapter pointed at a custom
// endpoint, for OpenAI-compatible backends and tests.
func NewOpenAIProviderWithBaseURL(apiKey, model, baseURL string) *OpenAIProvider {
	model = strings.TrimSpace(model)
	if model == "" {
		model = DefaultOpenAIModel
	}
	p := &OpenAIProvider{
		apiKey: strings.TrimSpace(apiKey),
		model:  model,
	}
	if p.apiKey == "" {
		return p
	}
	cfg := openai.DefaultConfig(p.apiKey)
	if url := strings.TrimSpace(baseURL); url != "" {
		cfg.BaseURL = url
	}
	p.client = openai.NewClientWithConfig(cfg)
	return p
}

func (p *OpenAIProvider) Name() string {
	return openAIProviderName
}

// Available reports whether a credential was supplied and the client was
// constructed. Performs no network I/O.
func (p *OpenAIProvider) Available() bool {
	return p != nil && p.apiKey != "" && p.client != nil
}

// ModelName returns the configured model identifier.
func (p *OpenAIProvider) ModelName() string {
	if p == nil {
		return ""
	}
	return p.model
}

func (p *OpenAIProvider) Translate(ctx context.Context, req Request) (string, error) {
	if !p.Available() {
		return "", newError(openAIProviderName, "no API key configured")
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: translatorSystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: translationPrompt(req),
			},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", wrapError(openAIProviderName, err)
	}
	if len(resp.Choices) == 0 {
		return "", newError(openAIProviderName, "response missing choices")
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", newError(openAIProviderName, "empty translation in response")
	}
	return translated, nil
}
