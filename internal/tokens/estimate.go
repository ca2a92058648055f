// Package tokens estimates token counts for usage bookkeeping. The portal
// does not bill anything itself; the estimate only feeds the daily usage
// counter shown in the UI.
package tokens

import "strings"

// Estimate approximates the token count of text by averaging a
// character-based estimate (~4 chars per token) with a word-based one
// (~0.75 tokens per word).
func Estimate(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	charEstimate := float64(len(text)) / 4
	wordEstimate := float64(len(strings.Fields(text))) * 0.75
	return int((charEstimate + wordEstimate) / 2)
}
