package sqlite

import (
	"fmt"
	"time"
)

// storedTimeFormat is lexically ordered, so range queries compare strings.
const storedTimeFormat = "2006-01-02T15:04:05Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(storedTimeFormat)
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		storedTimeFormat,
		"2006-01-02 15:04:05",
		time.RFC3339,
		time.RFC3339Nano,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
