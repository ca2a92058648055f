package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/verborum/verborum/internal/db"
	"github.com/verborum/verborum/internal/langdetect"
	"github.com/verborum/verborum/internal/language"
	"github.com/verborum/verborum/internal/tokens"
	"github.com/verborum/verborum/internal/translation"
)

const translateBodyByteLimit = 256 * 1024

// translateRequestSchema rejects malformed payloads before any credential or
// provider logic runs.
const translateRequestSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["text", "target_lang"],
	"additionalProperties": false,
	"properties": {
		"text":        {"type": "string", "minLength": 1, "maxLength": 100000},
		"target_lang": {"type": "string", "minLength": 2, "maxLength": 16},
		"source_lang": {"type": "string", "maxLength": 16},
		"tone":        {"type": "string", "enum": ["default", "formal", "informal"]},
		"provider":    {"type": "string", "enum": ["auto", "deepl", "gemini", "openai"]},
		"deepl_key":   {"type": "string", "maxLength": 256},
		"gemini_key":  {"type": "string", "maxLength": 256},
		"openai_key":  {"type": "string", "maxLength": 256},
		"use_cache":   {"type": "boolean"},
		"retry_count": {"type": "integer", "minimum": 0, "maximum": 5}
	}
}`

var compiledTranslateSchema = jsonschema.MustCompileString("translate_request.json", translateRequestSchema)

type translateRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"target_lang"`
	SourceLang string `json:"source_lang"`
	Tone       string `json:"tone"`
	Provider   string `json:"provider"`
	DeepLKey   string `json:"deepl_key"`
	GeminiKey  string `json:"gemini_key"`
	OpenAIKey  string `json:"openai_key"`
	UseCache   *bool  `json:"use_cache"`
	RetryCount *int   `json:"retry_count"`
}

type translateResponse struct {
	Translation     string `json:"translation"`
	Provider        string `json:"provider,omitempty"`
	Error           string `json:"error,omitempty"`
	SourceLang      string `json:"source_lang"`
	DetectedLang    string `json:"detected_lang,omitempty"`
	TargetLang      string `json:"target_lang"`
	Tone            string `json:"tone"`
	Cached          bool   `json:"cached"`
	EstimatedTokens int    `json:"estimated_tokens"`
}

func (s *Server) handleTranslate(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, translateBodyByteLimit))
	if err != nil {
		return failValidation(c, map[string]string{"body": "could not read request body"})
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return failValidation(c, map[string]string{"body": "must be valid JSON"})
	}
	if err := compiledTranslateSchema.Validate(raw); err != nil {
		return failValidation(c, map[string]string{"body": err.Error()})
	}

	var req translateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return failValidation(c, map[string]string{"body": "must be valid JSON"})
	}

	if strings.TrimSpace(req.Text) == "" {
		return failValidation(c, map[string]string{"text": "is required"})
	}
	if language.NormalizeTag(req.TargetLang) == "" {
		return failValidation(c, map[string]string{"target_lang": "must be a valid language code"})
	}
	if req.SourceLang != "" && language.NormalizeTag(req.SourceLang) == "" {
		return failValidation(c, map[string]string{"source_lang": "must be a valid language code"})
	}
	tone, ok := translation.ParseTone(req.Tone)
	if !ok {
		return failValidation(c, map[string]string{"tone": "must be default, formal, or informal"})
	}

	creds, err := s.resolveCredentials(req)
	if err != nil {
		return failValidation(c, map[string]string{"provider": err.Error()})
	}

	useCache := true
	if req.UseCache != nil {
		useCache = *req.UseCache
	}
	retryCount := s.cfg.RetryCount
	if req.RetryCount != nil {
		retryCount = *req.RetryCount
	}

	tReq := translation.Request{
		Text:       req.Text,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
		Tone:       tone,
	}

	// A cache hit is detected here rather than inside SmartTranslate so
	// that usage accounting and history can be skipped for repeats.
	cached := false
	var result translation.Result
	if useCache {
		if hit, ok := s.cache.Lookup(tReq.Text, tReq.SourceLang, tReq.TargetLang, tReq.Tone); ok {
			cached = true
			result = hit
		}
	}
	if !cached {
		result = translation.SmartTranslate(c.Request().Context(), tReq, creds, translation.Options{
			Cache:         s.cache,
			UseCache:      useCache,
			RetryCount:    retryCount,
			RetryDelay:    s.cfg.RetryDelay,
			GeminiModel:   s.cfg.GeminiModel,
			OpenAIModel:   s.cfg.OpenAIModel,
			DeepLBaseURL:  s.cfg.DeepLAPIURL,
			OpenAIBaseURL: s.cfg.OpenAIAPIURL,
		})
	}

	resp := translateResponse{
		Translation: result.Translation,
		Provider:    result.Provider,
		Error:       result.Err,
		SourceLang:  language.NormalizeTag(req.SourceLang),
		TargetLang:  language.NormalizeTag(req.TargetLang),
		Tone:        string(tone),
		Cached:      cached,
	}
	if resp.SourceLang == "" {
		resp.SourceLang = "auto"
		resp.DetectedLang = langdetect.DetectISO6391(req.Text)
	}

	if result.OK() {
		resp.EstimatedTokens = tokens.Estimate(req.Text) + tokens.Estimate(result.Translation)
		if !cached {
			s.usage.Add(resp.EstimatedTokens)
			s.recordHistory(c, req.Text, resp)
		}
	}

	return success(c, resp)
}

// resolveCredentials merges request-supplied keys with the server's fallback
// keys and applies provider pinning.
func (s *Server) resolveCredentials(req translateRequest) (translation.Credentials, error) {
	creds := translation.Credentials{
		DeepLKey:  firstNonEmpty(req.DeepLKey, s.cfg.DeepLAPIKey),
		GeminiKey: firstNonEmpty(req.GeminiKey, s.cfg.GeminiAPIKey),
		OpenAIKey: firstNonEmpty(req.OpenAIKey, s.cfg.OpenAIAPIKey),
	}

	pinned := strings.ToLower(strings.TrimSpace(req.Provider))
	switch pinned {
	case "", "auto":
		return creds, nil
	case "deepl":
		if strings.TrimSpace(creds.DeepLKey) == "" {
			return translation.Credentials{}, errMissingKey("DeepL")
		}
		return translation.Credentials{DeepLKey: creds.DeepLKey}, nil
	case "gemini":
		if strings.TrimSpace(creds.GeminiKey) == "" {
			return translation.Credentials{}, errMissingKey("Gemini")
		}
		return translation.Credentials{GeminiKey: creds.GeminiKey}, nil
	case "openai":
		if strings.TrimSpace(creds.OpenAIKey) == "" {
			return translation.Credentials{}, errMissingKey("OpenAI")
		}
		return translation.Credentials{OpenAIKey: creds.OpenAIKey}, nil
	default:
		return translation.Credentials{}, errUnknownProvider(pinned)
	}
}

// recordHistory is best-effort; a storage hiccup never fails the
// translation.
func (s *Server) recordHistory(c echo.Context, inputText string, resp translateResponse) {
	if s.pool == nil {
		return
	}

	var detected *string
	if resp.DetectedLang != "" {
		detected = &resp.DetectedLang
	}

	if err := s.pool.InsertTranslationRecord(c.Request().Context(), db.InsertTranslationRecordParams{
		SourceLang:      resp.SourceLang,
		DetectedLang:    detected,
		TargetLang:      resp.TargetLang,
		Tone:            resp.Tone,
		ProviderName:    resp.Provider,
		InputText:       inputText,
		OutputText:      resp.Translation,
		EstimatedTokens: resp.EstimatedTokens,
	}); err != nil {
		s.logger.Warn().Err(err).Msg("record translation history failed")
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func errMissingKey(provider string) error {
	return fmt.Errorf("API key for %s is missing", provider)
}

func errUnknownProvider(name string) error {
	return fmt.Errorf("unknown provider %q", name)
}
