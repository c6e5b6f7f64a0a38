package pricing

import (
	"fmt"
	"slices"

	"github.com/hanksha/venue-booking-backend/model"
)

const (
	MinPartySize = 1
	MaxPartySize = 24

	// Parties above this size get a second axe bay.
	axeBayThreshold = 6
	maxAxeBays      = 2

	axePerPersonHourCents   int64 = 2000
	duckpinPerLaneHourCents int64 = 4000
)

// Flat combo rates keyed by segment minutes. Durations missing here scale the 60 minute rate.
var (
	comboLaneFlatCents   = map[int]int64{30: 2500, 60: 4000, 120: 7000}
	comboPersonFlatCents = map[int]int64{30: 1200, 60: 2000, 120: 3500}
)

var (
	activityDurations = map[model.Activity][]int{
		model.ActivityAxe:     {60, 90, 120},
		model.ActivityDuckpin: {60, 90, 120},
	}
	comboSegmentDurations = []int{30, 60, 90, 120}
)

type Needs struct {
	AxeBays      int `json:"axeBays"`
	DuckpinLanes int `json:"duckpinLanes"`
}

func (n Needs) Count(t model.ResourceType) int {
	switch t {
	case model.ResourceAxeBay:
		return n.AxeBays
	case model.ResourceDuckpinLane:
		return n.DuckpinLanes
	}

	return 0
}

func (n Needs) IsZero() bool {
	return n.AxeBays == 0 && n.DuckpinLanes == 0
}

// Types lists the resource types with a non-zero need.
func (n Needs) Types() []model.ResourceType {
	types := []model.ResourceType{}

	if n.AxeBays > 0 {
		types = append(types, model.ResourceAxeBay)
	}

	if n.DuckpinLanes > 0 {
		types = append(types, model.ResourceDuckpinLane)
	}

	return types
}

func ResourceNeeds(activity model.Activity, partySize int) Needs {
	switch activity {
	case model.ActivityAxe:
		return Needs{AxeBays: axeBays(partySize)}
	case model.ActivityDuckpin:
		return Needs{DuckpinLanes: duckpinLanes(partySize)}
	case model.ActivityCombo:
		return Needs{AxeBays: axeBays(partySize), DuckpinLanes: duckpinLanes(partySize)}
	}

	return Needs{}
}

func axeBays(partySize int) int {
	if partySize <= 0 {
		return 0
	}

	if partySize <= axeBayThreshold {
		return 1
	}

	return maxAxeBays
}

func duckpinLanes(partySize int) int {
	switch {
	case partySize <= 0:
		return 0
	case partySize <= 6:
		return 1
	case partySize <= 12:
		return 2
	case partySize <= 18:
		return 3
	default:
		return 4
	}
}

type Quote struct {
	Activity        model.Activity
	PartySize       int
	DurationMinutes int
	AxeMinutes      int
	DuckpinMinutes  int
}

// Segments returns the combo split. When neither segment is given the duration gets the
// offered pair closest to an even split.
func (q Quote) Segments() (axeMinutes, duckpinMinutes int) {
	if q.AxeMinutes == 0 && q.DuckpinMinutes == 0 {
		return defaultSplit(q.DurationMinutes)
	}

	return q.AxeMinutes, q.DuckpinMinutes
}

// defaultSplit gives the duckpin segment the larger share when the pair is uneven. A total no
// offered pair adds up to is split evenly and left for Validate to reject.
func defaultSplit(total int) (int, int) {
	axe, duckpin := total/2, total-total/2
	gap := -1

	for _, a := range comboSegmentDurations {
		d := total - a

		if a > d || !slices.Contains(comboSegmentDurations, d) {
			continue
		}

		if gap == -1 || d-a < gap {
			axe, duckpin, gap = a, d, d-a
		}
	}

	return axe, duckpin
}

func (q Quote) Validate() error {
	if !q.Activity.Valid() {
		return fmt.Errorf("unknown activity %q", q.Activity)
	}

	if q.PartySize < MinPartySize || q.PartySize > MaxPartySize {
		return fmt.Errorf("party size must be between %d and %d, got %d", MinPartySize, MaxPartySize, q.PartySize)
	}

	if q.Activity != model.ActivityCombo {
		if !IsAllowedDuration(q.Activity, q.DurationMinutes) {
			return fmt.Errorf("duration %d is not offered for %s, allowed: %v", q.DurationMinutes, q.Activity.DisplayName(), activityDurations[q.Activity])
		}
		return nil
	}

	axe, duckpin := q.Segments()

	if !slices.Contains(comboSegmentDurations, axe) {
		return fmt.Errorf("axe segment of %d minutes is not offered, allowed: %v", axe, comboSegmentDurations)
	}

	if !slices.Contains(comboSegmentDurations, duckpin) {
		return fmt.Errorf("duckpin segment of %d minutes is not offered, allowed: %v", duckpin, comboSegmentDurations)
	}

	if axe+duckpin != q.DurationMinutes {
		return fmt.Errorf("combo duration %d does not match segments %d + %d", q.DurationMinutes, axe, duckpin)
	}

	return nil
}

func IsAllowedDuration(activity model.Activity, minutes int) bool {
	if activity == model.ActivityCombo {
		for _, axe := range comboSegmentDurations {
			if slices.Contains(comboSegmentDurations, minutes-axe) {
				return true
			}
		}
		return false
	}

	return slices.Contains(activityDurations[activity], minutes)
}

// AllowedDurations lists the offered durations. For combos these are the per-segment options.
func AllowedDurations(activity model.Activity) []int {
	if activity == model.ActivityCombo {
		return slices.Clone(comboSegmentDurations)
	}

	return slices.Clone(activityDurations[activity])
}

// TotalCents is the authoritative price in minor currency units. Every term is rounded to the
// nearest cent on its own so no fractional cents are carried between terms.
func TotalCents(q Quote) (int64, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}

	needs := ResourceNeeds(q.Activity, q.PartySize)
	party := int64(q.PartySize)

	switch q.Activity {
	case model.ActivityAxe:
		return roundDiv(party*axePerPersonHourCents*int64(q.DurationMinutes), 60), nil
	case model.ActivityDuckpin:
		return roundDiv(int64(needs.DuckpinLanes)*duckpinPerLaneHourCents*int64(q.DurationMinutes), 60), nil
	}

	axe, duckpin := q.Segments()
	lanes := int64(needs.DuckpinLanes) * comboFlat(comboLaneFlatCents, duckpin)
	people := party * comboFlat(comboPersonFlatCents, axe)

	return lanes + people, nil
}

func comboFlat(table map[int]int64, minutes int) int64 {
	if cents, ok := table[minutes]; ok {
		return cents
	}

	return roundDiv(table[60]*int64(minutes), 60)
}

// roundDiv divides non-negative values rounding half up.
func roundDiv(num, den int64) int64 {
	return (num + den/2) / den
}
