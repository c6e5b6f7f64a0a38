package model

import "time"

// Interval is half-open: End is excluded, so touching intervals never overlap.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && i.End.After(o.Start)
}

// MinutesOverlap is the same rule on minute-of-day values.
func MinutesOverlap(startA, endA, startB, endB int) bool {
	return startA < endB && endA > startB
}
