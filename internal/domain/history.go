package domain

import "time"

// HistoryEntry is one past suggestion as the backend recorded it. The
// server owns ordering; the client replaces its copy wholesale on
// every fetch and never merges.
type HistoryEntry struct {
	ID         string
	Suggestion string
	Minutes    int
	Energy     Energy
	CreatedAt  time.Time
}
