package feed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	readability "codeberg.org/readeck/go-readability/v2"
)

const (
	DefaultFetchTimeout  = 12 * time.Second
	DefaultBodyByteLimit = 2 * 1024 * 1024

	defaultUserAgent = "Verborum-Reader/1.0 (+https://github.com/verborum/verborum)"
)

// Preview is extracted readable text for one article URL.
type Preview struct {
	URL       string `json:"url"`
	Text      string `json:"text"`
	CharCount int    `json:"char_count"`
	Truncated bool   `json:"truncated"`
}

// Previewer fetches article URLs and extracts readable text for translation
// practice.
type Previewer struct {
	client        *http.Client
	userAgent     string
	bodyByteLimit int64
}

// PreviewerOptions controls HTTP behavior for preview extraction.
type PreviewerOptions struct {
	Timeout       time.Duration
	BodyByteLimit int64
	UserAgent     string
	HTTPClient    *http.Client
}

func NewPreviewer(opts PreviewerOptions) *Previewer {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	bodyLimit := opts.BodyByteLimit
	if bodyLimit <= 0 {
		bodyLimit = DefaultBodyByteLimit
	}
	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &Previewer{
		client:        client,
		userAgent:     userAgent,
		bodyByteLimit: bodyLimit,
	}
}

// Fetch retrieves rawURL, extracts the readable article text, and clips it
// to maxChars runes.
func (p *Previewer) Fetch(ctx context.Context, rawURL string, maxChars int) (*Preview, error) {
	if p == nil {
		return nil, fmt.Errorf("previewer is nil")
	}
	page := strings.TrimSpace(rawURL)
	if page == "" {
		return nil, fmt.Errorf("url is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, page, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.8")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch url: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, p.bodyByteLimit))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var text string
	contentType := strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Type")))
	if strings.HasPrefix(contentType, "text/plain") {
		text = CleanText(string(body))
	} else {
		pageURL, err := url.Parse(page)
		if err != nil {
			return nil, fmt.Errorf("parse page url: %w", err)
		}

		article, err := readability.FromReader(bytes.NewReader(body), pageURL)
		if err != nil {
			return nil, fmt.Errorf("readability parse: %w", err)
		}

		var rendered bytes.Buffer
		if err := article.RenderText(&rendered); err != nil {
			return nil, fmt.Errorf("render readability text: %w", err)
		}

		text = CleanText(rendered.String())
		if text == "" {
			text = CleanText(article.Excerpt())
		}
	}

	if text == "" {
		return nil, fmt.Errorf("reader extracted empty content")
	}

	clipped, truncated := TruncateText(text, maxChars)
	return &Preview{
		URL:       page,
		Text:      clipped,
		CharCount: utf8.RuneCountInString(clipped),
		Truncated: truncated,
	}, nil
}

// CleanText normalizes line endings and collapses extra in-line whitespace.
func CleanText(raw string) string {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	lines := strings.Split(normalized, "\n")
	paragraphs := make([]string, 0, len(lines))
	for _, line := range lines {
		clean := strings.Join(strings.Fields(strings.TrimSpace(line)), " ")
		if clean == "" {
			continue
		}
		paragraphs = append(paragraphs, clean)
	}

	return strings.TrimSpace(strings.Join(paragraphs, "\n\n"))
}

// TruncateText clips text to maxChars runes and appends a single ellipsis
// rune when truncated.
func TruncateText(raw string, maxChars int) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	if maxChars <= 0 {
		return trimmed, false
	}

	runes := []rune(trimmed)
	if len(runes) <= maxChars {
		return trimmed, false
	}
	if maxChars == 1 {
		return "…", true
	}

	clipped := strings.TrimSpace(string(runes[:maxChars-1]))
	if clipped == "" {
		return "…", true
	}

	return clipped + "…", true
}
