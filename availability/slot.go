package availability

import (
	"github.com/hanksha/venue-booking-backend/apperrors"
	"github.com/hanksha/venue-booking-backend/model"
	"github.com/hanksha/venue-booking-backend/pricing"
	"github.com/hanksha/venue-booking-backend/venuetime"
)

// dayPlan holds everything loaded for one date so every candidate is judged against the same
// snapshot.
type dayPlan struct {
	query     Query
	needs     pricing.Needs
	clock     *venuetime.Normalizer
	resources map[model.ResourceType][]model.Resource
	busy      map[string][]model.Interval
	blackouts [][2]int
	before    int
	after     int
}

func (d *dayPlan) bookable(start int) (bool, error) {
	end := start + d.query.DurationMinutes
	padStart, padEnd := d.pad(start, end)

	for _, b := range d.blackouts {
		if model.MinutesOverlap(padStart, padEnd, b[0], b[1]) {
			return false, nil
		}
	}

	// combo halves are padded and checked on their own
	for _, w := range d.query.quote().Windows(start, d.query.SegmentOrder) {
		winStart, winEnd := d.pad(w.Start, w.End)
		free, err := d.freeCount(w.Type, winStart, winEnd)

		if err != nil {
			return false, err
		}

		if free < d.needs.Count(w.Type) {
			return false, nil
		}
	}

	return true, nil
}

// pad applies the buffer rules and clamps the result to the operating window.
func (d *dayPlan) pad(start, end int) (int, int) {
	w := d.query.Window
	return max(w.OpenMinute, start-d.before), min(w.CloseMinute, end+d.after)
}

func (d *dayPlan) freeCount(t model.ResourceType, start, end int) (int, error) {
	from, err := d.clock.ToAbsolute(d.query.DateKey, start)

	if err != nil {
		return 0, apperrors.Validation(err.Error(), nil)
	}

	to, err := d.clock.ToAbsolute(d.query.DateKey, end)

	if err != nil {
		return 0, apperrors.Validation(err.Error(), nil)
	}

	window := model.Interval{Start: from, End: to}
	free := 0

	for _, r := range d.resources[t] {
		if !overlapsAny(window, d.busy[r.ID]) {
			free++
		}
	}

	return free, nil
}

func overlapsAny(window model.Interval, busy []model.Interval) bool {
	for _, b := range busy {
		if window.Overlaps(b) {
			return true
		}
	}
	return false
}
