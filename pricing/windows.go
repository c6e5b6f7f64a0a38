package pricing

import "github.com/hanksha/venue-booking-backend/model"

// Window is the minute range during which a resource type is held.
type Window struct {
	Type  model.ResourceType
	Start int
	End   int
}

// Windows lays out the resource windows of a booking starting at start. Combos play one half after
// the other in the given order, every other activity holds its resources for the whole duration.
func (q Quote) Windows(start int, order model.SegmentOrder) []Window {
	end := start + q.DurationMinutes

	if q.Activity != model.ActivityCombo {
		windows := []Window{}

		for _, t := range ResourceNeeds(q.Activity, q.PartySize).Types() {
			windows = append(windows, Window{Type: t, Start: start, End: end})
		}

		return windows
	}

	axe, duckpin := q.Segments()

	if order == model.AxeFirst {
		return []Window{
			{Type: model.ResourceAxeBay, Start: start, End: start + axe},
			{Type: model.ResourceDuckpinLane, Start: start + axe, End: end},
		}
	}

	return []Window{
		{Type: model.ResourceDuckpinLane, Start: start, End: start + duckpin},
		{Type: model.ResourceAxeBay, Start: start + duckpin, End: end},
	}
}
