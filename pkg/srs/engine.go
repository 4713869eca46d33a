// Package srs holds the spaced-repetition interval arithmetic for solved
// problems. It is pure: callers pass the clock in, nothing here touches
// the database.
package srs

import (
	"math"
	"time"
)

// Confidence is the user's self-rated mastery after solving a problem.
type Confidence string

const (
	Low    Confidence = "LOW"
	Medium Confidence = "MEDIUM"
	High   Confidence = "HIGH"
)

// Valid reports whether c is one of the three known confidence levels.
func (c Confidence) Valid() bool {
	switch c {
	case Low, Medium, High:
		return true
	}
	return false
}

// State is the revision-scheduling slice of a progress record. The three
// fields always change together, and only while the problem is solved.
type State struct {
	Interval    int
	Revision    int
	NextAttempt time.Time
}

// Initialize returns the state stamped on a first solve: review again
// tomorrow, no completed revisions yet.
func Initialize(now time.Time) State {
	return State{
		Interval:    1,
		Revision:    0,
		NextAttempt: now.AddDate(0, 0, 1),
	}
}

// Advance recomputes the schedule after a confidence report on an
// already-solved problem. High confidence doubles the interval, medium
// stretches it by half, and anything else resets the schedule to a
// one-day interval with the revision count cleared.
//
// Repeated identical reports compound: two HIGH reports in a row
// quadruple the original interval. That is deliberate, not a bug.
func Advance(prev State, c Confidence, now time.Time) State {
	next := State{}

	switch c {
	case High:
		next.Interval = prev.Interval * 2
		next.Revision = prev.Revision + 1
	case Medium:
		next.Interval = int(math.Round(float64(prev.Interval) * 1.5))
		next.Revision = prev.Revision + 1
	default:
		next.Interval = 1
		next.Revision = 0
	}

	if next.Interval < 1 {
		next.Interval = 1
	}

	next.NextAttempt = now.AddDate(0, 0, next.Interval)
	return next
}
