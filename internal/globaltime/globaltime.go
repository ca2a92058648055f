// Package globaltime is the single source of wall-clock time for the portal,
// so persisted and reported timestamps always agree on UTC.
package globaltime

import "time"

// UTC returns the current time in UTC.
func UTC() time.Time {
	return time.Now().UTC()
}

// Day formats t as a YYYY-MM-DD bucket in UTC.
func Day(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
