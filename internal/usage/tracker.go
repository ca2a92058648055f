// Package usage keeps in-memory token-usage counters for the portal UI. The
// daily counter rolls over at UTC midnight.
package usage

import (
	"sync"
	"time"

	"github.com/verborum/verborum/internal/globaltime"
)

// Stats is a snapshot of the usage counters.
type Stats struct {
	Total int64  `json:"total_tokens"`
	Today int64  `json:"today_tokens"`
	Day   string `json:"day"`
}

// Tracker accumulates estimated token usage across requests. Safe for
// concurrent use.
type Tracker struct {
	mu    sync.Mutex
	total int64
	today int64
	day   string
	now   func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{now: globaltime.UTC}
}

// Add records estimated tokens for the current day, rolling the daily
// counter over when the UTC day has changed.
func (t *Tracker) Add(estimatedTokens int) {
	if t == nil || estimatedTokens <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rollOverLocked()
	t.total += int64(estimatedTokens)
	t.today += int64(estimatedTokens)
}

// Snapshot returns the current counters.
func (t *Tracker) Snapshot() Stats {
	if t == nil {
		return Stats{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rollOverLocked()
	return Stats{Total: t.total, Today: t.today, Day: t.day}
}

func (t *Tracker) rollOverLocked() {
	day := globaltime.Day(t.now())
	if t.day != day {
		t.day = day
		t.today = 0
	}
}
