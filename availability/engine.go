package availability

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hanksha/venue-booking-backend/apperrors"
	"github.com/hanksha/venue-booking-backend/model"
	"github.com/hanksha/venue-booking-backend/pricing"
	"github.com/hanksha/venue-booking-backend/venuetime"
)

//go:generate mockgen -source=engine.go -destination=mocks/engine_mock.go -package=mock_availability

type Repository interface {
	// ListActiveResources returns only resources that count as active.
	ListActiveResources(ctx context.Context, types []model.ResourceType) ([]model.Resource, error)
	ListBlackouts(ctx context.Context, dateKey string, activity model.Activity) ([]model.BlackoutRule, error)
	ListBufferRules(ctx context.Context, activity model.Activity) ([]model.BufferRule, error)
	// ListReservations excludes reservations of cancelled bookings.
	ListReservations(ctx context.Context, types []model.ResourceType, from, to time.Time) ([]model.Reservation, error)
}

type Query struct {
	Activity        model.Activity
	PartySize       int
	DateKey         string
	DurationMinutes int
	Window          model.OperatingWindow
	StepMinutes     int
	SegmentOrder    model.SegmentOrder
	AxeMinutes      int
	DuckpinMinutes  int
}

func (q Query) quote() pricing.Quote {
	return pricing.Quote{
		Activity:        q.Activity,
		PartySize:       q.PartySize,
		DurationMinutes: q.DurationMinutes,
		AxeMinutes:      q.AxeMinutes,
		DuckpinMinutes:  q.DuckpinMinutes,
	}
}

func (q Query) Validate() error {
	if err := q.quote().Validate(); err != nil {
		return apperrors.Validation(err.Error(), nil)
	}

	if _, err := venuetime.ParseDateKey(q.DateKey); err != nil {
		return apperrors.Validation(err.Error(), map[string]any{"field": "date"})
	}

	if !q.Window.Valid() {
		return apperrors.Validation("invalid operating window", map[string]any{
			"openMinute":  q.Window.OpenMinute,
			"closeMinute": q.Window.CloseMinute,
		})
	}

	if q.StepMinutes <= 0 {
		return apperrors.Validation(fmt.Sprintf("slot step must be positive, got %d", q.StepMinutes), nil)
	}

	if q.Activity == model.ActivityCombo && q.SegmentOrder != model.DuckpinFirst && q.SegmentOrder != model.AxeFirst {
		return apperrors.Validation(fmt.Sprintf("unknown combo segment order %q", q.SegmentOrder), nil)
	}

	return nil
}

// Candidates lists every start minute the query would consider, in ascending order.
func (q Query) Candidates() []int {
	starts := []int{}

	for start := q.Window.OpenMinute; start+q.DurationMinutes <= q.Window.CloseMinute; start += q.StepMinutes {
		starts = append(starts, start)
	}

	return starts
}

type Engine struct {
	repo   Repository
	clock  *venuetime.Normalizer
	logger *slog.Logger
}

func NewEngine(repo Repository, clock *venuetime.Normalizer) *Engine {
	return &Engine{
		repo:   repo,
		clock:  clock,
		logger: slog.Default().With("component", "availability"),
	}
}

// ComputeBlockedStarts returns the candidate start minutes of the query that cannot be booked.
// The result is a best effort read: the allocator checks again when the booking is written.
func (e *Engine) ComputeBlockedStarts(ctx context.Context, q Query) ([]int, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	candidates := q.Candidates()
	needs := pricing.ResourceNeeds(q.Activity, q.PartySize)

	if needs.IsZero() || len(candidates) == 0 {
		return []int{}, nil
	}

	types := needs.Types()
	resources, err := e.repo.ListActiveResources(ctx, types)

	if err != nil {
		return nil, apperrors.Unavailable("failed to load resources", err)
	}

	byType := map[model.ResourceType][]model.Resource{}

	for _, r := range resources {
		byType[r.Type] = append(byType[r.Type], r)
	}

	for _, t := range types {
		if len(byType[t]) < needs.Count(t) {
			e.logger.Debug("not enough active resources, blocking the whole day",
				"date", q.DateKey, "type", t, "active", len(byType[t]), "needed", needs.Count(t))
			return candidates, nil
		}
	}

	blackouts, err := e.repo.ListBlackouts(ctx, q.DateKey, q.Activity)

	if err != nil {
		e.logger.Warn("failed to load blackout rules, continuing without them", "date", q.DateKey, "err", err)
		blackouts = nil
	}

	buffers, err := e.repo.ListBufferRules(ctx, q.Activity)

	if err != nil {
		e.logger.Warn("failed to load buffer rules, continuing without them", "activity", q.Activity, "err", err)
		buffers = nil
	}

	before, after := bufferPadding(buffers, q.Activity)

	dayStart, err := e.clock.ToAbsolute(q.DateKey, q.Window.OpenMinute)

	if err != nil {
		return nil, apperrors.Validation(err.Error(), nil)
	}

	dayEnd, err := e.clock.ToAbsolute(q.DateKey, q.Window.CloseMinute)

	if err != nil {
		return nil, apperrors.Validation(err.Error(), nil)
	}

	reservations, err := e.repo.ListReservations(ctx, types, dayStart, dayEnd)

	if err != nil {
		return nil, apperrors.Unavailable("failed to load reservations", err)
	}

	day := &dayPlan{
		query:     q,
		needs:     needs,
		clock:     e.clock,
		resources: byType,
		busy:      busyByResource(reservations),
		blackouts: blackoutMinutes(blackouts, q.Activity),
		before:    before,
		after:     after,
	}

	blocked := []int{}

	for _, start := range candidates {
		ok, err := day.bookable(start)

		if err != nil {
			return nil, err
		}

		if !ok {
			blocked = append(blocked, start)
		}
	}

	return blocked, nil
}

func bufferPadding(rules []model.BufferRule, activity model.Activity) (int, int) {
	before, after := 0, 0

	for _, rule := range rules {
		if !rule.Active || !rule.Scope.Covers(activity) {
			continue
		}

		before = max(before, rule.BeforeMinutes)
		after = max(after, rule.AfterMinutes)
	}

	return before, after
}

func blackoutMinutes(rules []model.BlackoutRule, activity model.Activity) [][2]int {
	ranges := [][2]int{}

	for _, rule := range rules {
		if !rule.Scope.Covers(activity) {
			continue
		}

		start, end := rule.Minutes()
		ranges = append(ranges, [2]int{start, end})
	}

	return ranges
}

func busyByResource(reservations []model.Reservation) map[string][]model.Interval {
	busy := map[string][]model.Interval{}

	for _, r := range reservations {
		busy[r.ResourceID] = append(busy[r.ResourceID], r.Interval())
	}

	return busy
}
