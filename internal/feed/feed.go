// Package feed supplies reading material for the practice pages: a stubbed
// social feed and reader-mode previews of arbitrary article URLs.
package feed

import (
	"time"
)

// Post is one stubbed social-feed entry.
type Post struct {
	ID       string    `json:"id"`
	Author   string    `json:"author"`
	Lang     string    `json:"lang"`
	Text     string    `json:"text"`
	PostedAt time.Time `json:"posted_at"`
}

// LatestPosts returns a canned feed. The real social-media integration is
// not built yet; the portal ships this placeholder so the practice page has
// content to translate.
func LatestPosts() []Post {
	base := time.Date(2026, time.August, 24, 9, 0, 0, 0, time.UTC)
	return []Post{
		{
			ID:       "post-001",
			Author:   "lingua_quotidiana",
			Lang:     "it",
			Text:     "Imparare una lingua è un viaggio, non una destinazione.",
			PostedAt: base,
		},
		{
			ID:       "post-002",
			Author:   "mot_du_jour",
			Lang:     "fr",
			Text:     "Le mot du jour : flâner — se promener sans but précis, pour le plaisir.",
			PostedAt: base.Add(2 * time.Hour),
		},
		{
			ID:       "post-003",
			Author:   "palavras_diarias",
			Lang:     "pt",
			Text:     "Quem não arrisca, não petisca. Qual é o provérbio equivalente na sua língua?",
			PostedAt: base.Add(5 * time.Hour),
		},
	}
}
