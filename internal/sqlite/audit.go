package sqlite

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/curioshelf/curio/pkg/types"
)

// newLogID generates a UUID v7 string for a log entry.
func newLogID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// AppendLog writes one audit entry: acting user, human-readable message,
// current timestamp. The log is append-only; nothing ever updates or
// deletes its rows.
func (s *Store) AppendLog(user, message string) error {
	if user == "" {
		user = "-"
	}
	_, err := s.db.Exec(
		"INSERT INTO Log (LogID, User, Message, Timestamp) VALUES (?, ?, ?, ?)",
		newLogID(), user, message, time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("appending log entry: %w", classify(err))
	}
	return nil
}

// Logs returns audit entries in insertion order, newest last. Ordering is by
// LogID: UUID v7 keys sort by creation time with sub-second precision, which
// the second-granularity Timestamp column cannot provide. A non-empty user
// narrows the result to that actor's entries.
func (s *Store) Logs(user string) ([]types.LogEntry, error) {
	query := "SELECT LogID, User, Message, Timestamp FROM Log"
	var args []any
	if user != "" {
		query += " WHERE User = ?"
		args = append(args, user)
	}
	query += " ORDER BY LogID"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing log entries: %w", classify(err))
	}
	defer rows.Close()

	var entries []types.LogEntry
	for rows.Next() {
		var e types.LogEntry
		var ts string
		if err := rows.Scan(&e.LogID, &e.User, &e.Message, &ts); err != nil {
			return nil, fmt.Errorf("scanning log entry: %w", err)
		}
		e.Timestamp, err = time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing log timestamp: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
