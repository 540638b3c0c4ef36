package types

import "time"

// LogEntry is one line of the append-only audit log. Every mutating call
// against the store produces exactly one entry: who acted, what happened,
// and when. Entries are never updated or deleted.
type LogEntry struct {
	LogID     string    // UUID v7, generated on append.
	User      string    // Acting principal, or "-" before login.
	Message   string    // Human-readable description of the mutation.
	Timestamp time.Time // Time of the mutation.
}
