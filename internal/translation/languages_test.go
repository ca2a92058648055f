package translation

import "testing"

func TestLanguageName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"es", "Spanish"},
		{"ES", "Spanish"},
		{"es-mx", "Spanish"},
		{"en-US", "English"},
		{"zz", "zz"},
		{" tlh ", "tlh"},
	}
	for _, tt := range tests {
		if got := LanguageName(tt.code); got != tt.want {
			t.Errorf("LanguageName(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestDeepLLangCode(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"es", "ES"},
		{"en-us", "EN-US"},
		{"EN_GB", "EN-GB"},
		{"", ""},
		{"  ", ""},
	}
	for _, tt := range tests {
		if got := DeepLLangCode(tt.code); got != tt.want {
			t.Errorf("DeepLLangCode(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestSupportedLanguageCodesSorted(t *testing.T) {
	codes := SupportedLanguageCodes()
	if len(codes) == 0 {
		t.Fatal("expected a non-empty language catalog")
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("codes not strictly sorted at %d: %q >= %q", i, codes[i-1], codes[i])
		}
	}
}

func TestLanguageOptionsMatchCatalog(t *testing.T) {
	options := LanguageOptions()
	if len(options) != len(SupportedLanguageCodes()) {
		t.Fatalf("expected one option per catalog code, got %d", len(options))
	}
	for _, opt := range options {
		if opt.Label == "" {
			t.Errorf("option %q has an empty label", opt.Code)
		}
	}
}
