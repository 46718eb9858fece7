package testutil

import "time"

// Epoch is the start time used by StepClock when none is given.
var Epoch = time.Date(2025, time.January, 15, 9, 30, 0, 0, time.UTC)

// FixedClock returns a clock that always reports at.
func FixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// StepClock returns a clock that starts at start and advances by step on
// every call. A zero start uses Epoch.
func StepClock(start time.Time, step time.Duration) func() time.Time {
	if start.IsZero() {
		start = Epoch
	}
	next := start
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}
