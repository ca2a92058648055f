package translation

import (
	"fmt"
	"strings"
)

// translationPrompt builds the instruction sent to generative backends.
// The prompt demands bare output because chat models are prone to wrapping
// translations in commentary; the adapters never strip filler themselves.
func translationPrompt(req Request) string {
	var b strings.Builder

	target := LanguageName(req.TargetLang)
	if strings.TrimSpace(req.SourceLang) == "" {
		fmt.Fprintf(&b, "Translate the following text into %s.", target)
	} else {
		fmt.Fprintf(&b, "Translate the following text from %s into %s.", LanguageName(req.SourceLang), target)
	}

	switch req.Tone {
	case ToneFormal:
		b.WriteString(" Use a formal register.")
	case ToneInformal:
		b.WriteString(" Use an informal, conversational register.")
	}

	b.WriteString(" Return only the translated text, without explanations, preambles, or commentary.")
	b.WriteString("\n\n")
	b.WriteString(req.Text)
	return b.String()
}

const translatorSystemPrompt = "You are a professional translator. You translate exactly what you are given and output nothing but the translation."
