package langdetect

import "testing"

func TestDetectISO6391SkipsShortSamples(t *testing.T) {
	tests := []string{"", "   ", "ok", "a1 b2", "12345"}
	for _, sample := range tests {
		if got := DetectISO6391(sample); got != "" {
			t.Errorf("DetectISO6391(%q) = %q, want empty", sample, got)
		}
	}
}

func TestDetectISO6391RecognizesClearSamples(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"The quick brown fox jumps over the lazy dog near the river bank.", "en"},
		{"El rápido zorro marrón salta sobre el perro perezoso junto al río.", "es"},
		{"Der schnelle braune Fuchs springt über den faulen Hund am Flussufer.", "de"},
	}
	for _, tt := range tests {
		if got := DetectISO6391(tt.text); got != tt.want {
			t.Errorf("DetectISO6391(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
