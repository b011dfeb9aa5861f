package repository

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when an id does not exist in its collection.
	ErrNotFound = errors.New("repository: record not found")
	// ErrInvalidCategory is returned for an unknown notice category or uniform group.
	ErrInvalidCategory = errors.New("repository: invalid category")
)

// Clock returns the current time. Repositories take one so tests can pin ids.
type Clock func() time.Time

func clockOrNow(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}

// nextTimeID returns a Unix-millisecond id that is strictly greater than
// every existing id, so two adds in the same millisecond never collide.
func nextTimeID(now time.Time, existing []int64) int64 {
	id := now.UnixMilli()
	for _, e := range existing {
		if e >= id {
			id = e + 1
		}
	}
	return id
}

// uploadStamp mirrors the en-US locale string the gallery has always stored.
func uploadStamp(t time.Time) string {
	return t.Format("1/2/2006, 3:04:05 PM")
}
