package translation

import (
	"sort"
	"strings"

	"github.com/verborum/verborum/internal/language"
)

// LanguageOption is one selectable language for the portal UI.
type LanguageOption struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// languageNames maps primary ISO 639-1 subtags to English language names.
// Generative backends receive full names; unmapped codes fall back to the
// raw code.
var languageNames = map[string]string{
	"ar": "Arabic",
	"bg": "Bulgarian",
	"cs": "Czech",
	"da": "Danish",
	"de": "German",
	"el": "Greek",
	"en": "English",
	"es": "Spanish",
	"fi": "Finnish",
	"fr": "French",
	"hi": "Hindi",
	"hu": "Hungarian",
	"id": "Indonesian",
	"it": "Italian",
	"ja": "Japanese",
	"ko": "Korean",
	"nl": "Dutch",
	"no": "Norwegian",
	"pl": "Polish",
	"pt": "Portuguese",
	"ro": "Romanian",
	"ru": "Russian",
	"sv": "Swedish",
	"th": "Thai",
	"tr": "Turkish",
	"uk": "Ukrainian",
	"vi": "Vietnamese",
	"zh": "Chinese",
}

// LanguageName resolves a language code to its English name. Region
// suffixes are ignored ("es-mx" resolves to "Spanish"). Unmapped codes are
// returned as given.
func LanguageName(code string) string {
	base := language.NormalizeCode(code)
	if name, ok := languageNames[base]; ok {
		return name
	}
	return strings.TrimSpace(code)
}

// DeepLLangCode normalizes a language tag into the uppercase form DeepL
// expects, preserving a region suffix in BASE-REGION form ("en-us" →
// "EN-US"). Returns an empty string for blank or invalid input.
func DeepLLangCode(code string) string {
	tag := language.NormalizeTag(code)
	if tag == "" {
		return ""
	}
	return strings.ToUpper(tag)
}

// SupportedLanguageCodes lists the catalog codes in sorted order.
func SupportedLanguageCodes() []string {
	codes := make([]string, 0, len(languageNames))
	for code := range languageNames {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// LanguageOptions lists the selectable languages for the portal UI.
func LanguageOptions() []LanguageOption {
	codes := SupportedLanguageCodes()
	options := make([]LanguageOption, 0, len(codes))
	for _, code := range codes {
		options = append(options, LanguageOption{Code: code, Label: languageNames[code]})
	}
	return options
}
