package repository

import (
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = time.RFC3339
)

// joinTags serializes a tag list for SQLite storage.
func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

// splitTags parses a stored tag list; an empty column yields nil.
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

// nowUTC returns the current UTC time truncated to whole seconds, matching
// the stored RFC3339 precision.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
