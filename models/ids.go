package models

import (
	"strconv"
	"time"
)

// isoMillis is a fixed-width UTC timestamp with milliseconds. Fixed width
// keeps lexicographic order equal to chronological order, which the feed
// sort relies on.
const isoMillis = "2006-01-02T15:04:05.000Z"

// NowISO returns the current UTC time in the persisted timestamp format.
func NowISO() string {
	return time.Now().UTC().Format(isoMillis)
}

// NewID returns a fresh entity id: a type prefix plus a high-resolution
// timestamp. Collisions are not guarded against.
func NewID(prefix string) string {
	return prefix + "-" + strconv.FormatInt(time.Now().UnixNano(), 10)
}
