package translation

import (
	"context"
	"strings"
)

// Tone is a coarse formality hint forwarded to providers.
type Tone string

const (
	ToneDefault  Tone = "default"
	ToneFormal   Tone = "formal"
	ToneInformal Tone = "informal"
)

// ParseTone normalizes a raw tone value. Empty input resolves to ToneDefault.
func ParseTone(raw string) (Tone, bool) {
	switch Tone(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ToneDefault:
		return ToneDefault, true
	case ToneFormal:
		return ToneFormal, true
	case ToneInformal:
		return ToneInformal, true
	default:
		return ToneDefault, false
	}
}

// Provider translates free-form text between languages.
type Provider interface {
	Translate(ctx context.Context, req Request) (string, error)
	Name() string
	Available() bool
}

// Request describes one translation request.
type Request struct {
	Text       string
	SourceLang string // ISO 639-1, optionally with region ("en", "en-us"); empty = auto-detect
	TargetLang string
	Tone       Tone
}

// Result is the outcome of a completed translate call. Exactly one of
// Translation (non-empty) and Err (non-empty) is set.
type Result struct {
	Translation string `json:"translation"`
	Provider    string `json:"provider,omitempty"`
	Err         string `json:"error,omitempty"`
}

// OK reports whether the result carries a usable translation.
func (r Result) OK() bool {
	return r.Err == "" && strings.TrimSpace(r.Translation) != ""
}
