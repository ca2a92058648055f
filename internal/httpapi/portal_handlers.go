package httpapi

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/verborum/verborum/internal/feed"
	"github.com/verborum/verborum/internal/globaltime"
	"github.com/verborum/verborum/internal/translation"
)

type providerStatus struct {
	Name       string `json:"name"`
	Label      string `json:"label"`
	Configured bool   `json:"configured"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return success(c, map[string]any{
		"service": "verborum",
		"time":    globaltime.UTC(),
		"history": s.pool != nil,
	})
}

func (s *Server) handleLanguages(c echo.Context) error {
	return success(c, map[string]any{
		"languages": translation.LanguageOptions(),
		"tones":     []string{string(translation.ToneDefault), string(translation.ToneFormal), string(translation.ToneInformal)},
	})
}

// handleProviders reports which providers have a server-side fallback key.
// Callers supplying their own keys per request may use any provider
// regardless.
func (s *Server) handleProviders(c echo.Context) error {
	items := []providerStatus{
		{Name: "deepl", Label: "DeepL", Configured: strings.TrimSpace(s.cfg.DeepLAPIKey) != ""},
		{Name: "gemini", Label: "Google Gemini", Configured: strings.TrimSpace(s.cfg.GeminiAPIKey) != ""},
		{Name: "openai", Label: "OpenAI", Configured: strings.TrimSpace(s.cfg.OpenAIAPIKey) != ""},
	}
	return success(c, map[string]any{"items": items})
}

func (s *Server) handleUsage(c echo.Context) error {
	return success(c, s.usage.Snapshot())
}

func (s *Server) handleFeed(c echo.Context) error {
	return success(c, map[string]any{"items": feed.LatestPosts()})
}

func (s *Server) handleFeedPreview(c echo.Context) error {
	rawURL := strings.TrimSpace(c.QueryParam("url"))
	if rawURL == "" {
		return failValidation(c, map[string]string{"url": "is required"})
	}

	maxChars, err := parsePositiveInt(c.QueryParam("max_chars"), 1000, 200, 4000)
	if err != nil {
		return failValidation(c, map[string]string{"max_chars": err.Error()})
	}

	preview, err := s.previewer.Fetch(c.Request().Context(), rawURL, maxChars)
	if err != nil {
		s.logger.Warn().Err(err).Str("url", rawURL).Msg("feed preview failed")
		return fail(c, 502, "Failed to load preview", map[string]string{"url": err.Error()})
	}
	return success(c, preview)
}
