package service

import "time"

// Clock returns the current time. Use cases never call time.Now directly.
type Clock func() time.Time

// SystemClock is the wall clock in UTC.
func SystemClock() Clock {
	return func() time.Time {
		return time.Now().UTC()
	}
}
