package sqlite

import (
	"strings"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// DATETIME columns may come back as "2025-08-05T10:15:43Z" when the driver
// converts them to time.Time before the string scan.
func tryParseTime(s string) (time.Time, error) {
	if strings.Contains(s, "T") {
		return time.Parse(time.RFC3339Nano, s)
	}
	return time.Parse(timeLayout, s)
}
