package venuetime

import (
	"fmt"
	"time"
)

// Normalizer converts venue-local (date, minute of day) pairs to instants and back. All
// conversions go through the venue zone, never the zone of the process or of the caller.
type Normalizer struct {
	loc *time.Location
	now func() time.Time
}

type Option func(*Normalizer)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		n.now = now
	}
}

func New(zone string, opts ...Option) (*Normalizer, error) {
	loc, err := time.LoadLocation(zone)

	if err != nil {
		return nil, fmt.Errorf("failed to load venue timezone %q: %w", zone, err)
	}

	n := &Normalizer{loc: loc, now: time.Now}

	for _, opt := range opts {
		opt(n)
	}

	return n, nil
}

func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// ToAbsolute resolves a wall clock time on dateKey to an instant. The offset is looked up for
// that exact wall time: a time skipped by a spring-forward transition moves forward by the gap
// and a time repeated by a fall-back transition resolves to its first occurrence.
func (n *Normalizer) ToAbsolute(dateKey string, minutes int) (time.Time, error) {
	day, err := ParseDateKey(dateKey)

	if err != nil {
		return time.Time{}, err
	}

	// wall clock reading expressed as if it were UTC
	wall := day.Add(time.Duration(minutes) * time.Minute)

	before := n.offsetAt(wall.Add(-12 * time.Hour))
	after := n.offsetAt(wall.Add(12 * time.Hour))

	var found []time.Time

	for _, offset := range []int{before, after} {
		candidate := wall.Add(-time.Duration(offset) * time.Second)

		if sameWall(candidate.In(n.loc), wall) {
			found = append(found, candidate)
		}
	}

	switch {
	case len(found) == 2 && found[1].Before(found[0]):
		return found[1].In(n.loc), nil
	case len(found) > 0:
		return found[0].In(n.loc), nil
	}

	// skipped wall time: keep the pre-transition offset, which lands after the gap
	return wall.Add(-time.Duration(before) * time.Second).In(n.loc), nil
}

// FromAbsolute is the inverse of ToAbsolute for wall times that exist.
func (n *Normalizer) FromAbsolute(t time.Time) (string, int) {
	local := t.In(n.loc)

	return local.Format(time.DateOnly), local.Hour()*60 + local.Minute()
}

func (n *Normalizer) Now() time.Time {
	return n.now().In(n.loc)
}

func (n *Normalizer) Today() string {
	return n.Now().Format(time.DateOnly)
}

func (n *Normalizer) offsetAt(approx time.Time) int {
	_, offset := time.Unix(approx.Unix(), 0).In(n.loc).Zone()
	return offset
}

func sameWall(local, wall time.Time) bool {
	return local.Year() == wall.Year() &&
		local.Month() == wall.Month() &&
		local.Day() == wall.Day() &&
		local.Hour() == wall.Hour() &&
		local.Minute() == wall.Minute()
}

// ParseDateKey accepts a strict YYYY-MM-DD calendar date and returns its midnight in UTC.
func ParseDateKey(dateKey string) (time.Time, error) {
	day, err := time.Parse(time.DateOnly, dateKey)

	if err != nil || day.Format(time.DateOnly) != dateKey {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", dateKey)
	}

	return day, nil
}

// ParseClock parses HH:MM into minutes from midnight.
func ParseClock(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)

	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", clock)
	}

	return t.Hour()*60 + t.Minute(), nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
