// Package language normalizes ISO 639-1 style language tags as they arrive
// from the portal UI and from per-provider configuration.
package language

import "strings"

// NormalizeTag canonicalizes a language tag to lowercase subtags joined by
// "-" ("EN_us" → "en-us"). Blank input or non-alphabetic subtags normalize
// to the empty string.
func NormalizeTag(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ""
	}

	subtags := splitSubtags(trimmed)
	if len(subtags) == 0 {
		return ""
	}
	return strings.Join(subtags, "-")
}

// NormalizeCode returns the primary language subtag ("en" from "en-US"), or
// an empty string for invalid input.
func NormalizeCode(raw string) string {
	tag := NormalizeTag(raw)
	if tag == "" {
		return ""
	}
	base, _, _ := strings.Cut(tag, "-")
	return base
}

// Region returns the lowercase region subtag of a tag, if any ("us" from
// "en-US").
func Region(raw string) string {
	tag := NormalizeTag(raw)
	if tag == "" {
		return ""
	}
	_, region, ok := strings.Cut(tag, "-")
	if !ok {
		return ""
	}
	return region
}

func splitSubtags(tag string) []string {
	tag = strings.ReplaceAll(tag, "_", "-")
	parts := strings.Split(tag, "-")

	subtags := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		for _, r := range part {
			if r < 'a' || r > 'z' {
				return nil
			}
		}
		subtags = append(subtags, part)
	}
	return subtags
}
