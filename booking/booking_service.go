package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hanksha/venue-booking-backend/apperrors"
	"github.com/hanksha/venue-booking-backend/model"
	"github.com/hanksha/venue-booking-backend/pricing"
	"github.com/hanksha/venue-booking-backend/validation"
	"github.com/hanksha/venue-booking-backend/venuetime"
)

//go:generate mockgen -source=booking_service.go -destination=mocks/booking_service_mock.go -package=mock_booking

type BookingRepository interface {
	// CreateBooking stores the booking and claims every unit of every claim in one transaction.
	// The bool is true when the idempotency key already belonged to a booking, which is returned
	// unchanged.
	CreateBooking(ctx context.Context, booking model.Booking, claims []model.ResourceClaim) (model.Booking, bool, error)
	AddReservation(ctx context.Context, bookingID string, claim model.ResourceClaim) (model.Reservation, error)
	GetBookingByID(ctx context.Context, id string) (model.Booking, error)
	SetBookingCustomer(ctx context.Context, bookingID, customerID string) error
	CancelBooking(ctx context.Context, id string) error
	GetResourceByID(ctx context.Context, id string) (model.Resource, error)
	// ListOverlappingReservations returns the live reservations of a resource overlapping [start, end).
	ListOverlappingReservations(ctx context.Context, resourceID string, start, end time.Time) ([]model.Reservation, error)
	ApplyReassignments(ctx context.Context, bookingID string, moves []model.Move) error
	ListBlackouts(ctx context.Context, dateKey string, activity model.Activity) ([]model.BlackoutRule, error)
}

type CustomerDirectory interface {
	UpsertByEmail(ctx context.Context, customer model.Customer) (string, error)
}

type EventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, payload any) error
}

type Service struct {
	repo      BookingRepository
	customers CustomerDirectory
	events    EventPublisher
	clock     *venuetime.Normalizer
	window    model.OperatingWindow
	validator *validation.Validator
	logger    *slog.Logger
}

func NewService(repo BookingRepository, customers CustomerDirectory, events EventPublisher, clock *venuetime.Normalizer, window model.OperatingWindow) *Service {
	return &Service{
		repo:      repo,
		customers: customers,
		events:    events,
		clock:     clock,
		window:    window,
		validator: validation.New(),
		logger:    slog.Default().With("component", "booking"),
	}
}

type allocation struct {
	booking     model.Booking
	claims      []model.ResourceClaim
	dateKey     string
	startMinute int
	endMinute   int
}

func (s *Service) CreateBooking(ctx context.Context, req Request) (Result, error) {
	plan, err := s.allocate(req)

	if err != nil {
		return Result{}, err
	}

	if err := s.checkBlackouts(ctx, plan); err != nil {
		return Result{}, err
	}

	created, replayed, err := s.repo.CreateBooking(ctx, plan.booking, plan.claims)

	if err != nil {
		return Result{}, claimError(err, ErrSlotTaken, "failed to create booking")
	}

	result := Result{
		Booking:    created,
		Needs:      pricing.ResourceNeeds(created.Activity, created.PartySize),
		WaiverOwed: waiverOwed(created.Reservations),
		Replayed:   replayed,
	}

	if replayed {
		s.logger.Info("idempotency key replayed", "bookingID", created.ID, "key", req.IdempotencyKey)
		return result, nil
	}

	s.logger.Info("booking created",
		"bookingID", created.ID, "activity", created.Activity, "partySize", created.PartySize,
		"start", created.Start, "reservations", len(created.Reservations))

	s.linkCustomer(ctx, &result.Booking)

	s.publish(ctx, EventBookingCreated, CreatedEvent{
		BookingID:     result.Booking.ID,
		Activity:      result.Booking.Activity,
		PartySize:     result.Booking.PartySize,
		Start:         result.Booking.Start,
		End:           result.Booking.End,
		TotalCents:    result.Booking.TotalCents,
		CustomerEmail: result.Booking.Customer.Email,
		CustomerID:    result.Booking.CustomerID,
		WaiverOwed:    result.WaiverOwed,
	})

	if req.PartyArea != nil {
		reservation, err := s.addPartyArea(ctx, result.Booking, *req.PartyArea)

		if apperrors.IsKind(err, apperrors.KindConflict) {
			s.logger.Warn("party area not added", "bookingID", result.Booking.ID, "err", err)
			result.PartyAreaUnavailable = true
			return result, nil
		}

		if err != nil {
			s.logger.Error("failed to add party area", "bookingID", result.Booking.ID, "err", err)
			result.PartyAreaError = apperrors.AsAppError(err).Message
			return result, nil
		}

		result.PartyArea = &reservation
		result.Booking.Reservations = append(result.Booking.Reservations, reservation)
	}

	return result, nil
}

// allocate validates the request and turns it into the booking row and the resource claims the
// store has to satisfy.
func (s *Service) allocate(req Request) (allocation, error) {
	if err := s.validator.Struct(req); err != nil {
		return allocation{}, err
	}

	activity, err := model.ParseActivity(req.Activity)

	if err != nil {
		return allocation{}, apperrors.Validation(err.Error(), map[string]any{"field": "activity"})
	}

	order := req.SegmentOrder

	if activity != model.ActivityCombo {
		order = ""
	} else if order == "" {
		order = model.DuckpinFirst
	}

	quote := pricing.Quote{
		Activity:        activity,
		PartySize:       req.PartySize,
		DurationMinutes: req.DurationMinutes,
		AxeMinutes:      req.AxeMinutes,
		DuckpinMinutes:  req.DuckpinMinutes,
	}

	if err := quote.Validate(); err != nil {
		return allocation{}, apperrors.Validation(err.Error(), nil)
	}

	startMinute, err := venuetime.ParseClock(req.StartTime)

	if err != nil {
		return allocation{}, apperrors.Validation(err.Error(), map[string]any{"field": "startTime"})
	}

	if err := s.checkWindow(startMinute, startMinute+req.DurationMinutes); err != nil {
		return allocation{}, err
	}

	if req.PartyArea != nil {
		areaStart, err := venuetime.ParseClock(req.PartyArea.StartTime)

		if err != nil {
			return allocation{}, apperrors.Validation(err.Error(), map[string]any{"field": "partyArea.startTime"})
		}

		if err := s.checkWindow(areaStart, areaStart+req.PartyArea.DurationMinutes); err != nil {
			return allocation{}, err
		}
	}

	start, err := s.clock.ToAbsolute(req.Date, startMinute)

	if err != nil {
		return allocation{}, apperrors.Validation(err.Error(), map[string]any{"field": "date"})
	}

	end, err := s.clock.ToAbsolute(req.Date, startMinute+req.DurationMinutes)

	if err != nil {
		return allocation{}, apperrors.Validation(err.Error(), map[string]any{"field": "date"})
	}

	if !start.After(s.clock.Now()) {
		return allocation{}, apperrors.Validation("start time is in the past", map[string]any{"field": "startTime"})
	}

	total, err := pricing.TotalCents(quote)

	if err != nil {
		return allocation{}, apperrors.Validation(err.Error(), nil)
	}

	discount := min(req.DiscountCents, total)
	needs := pricing.ResourceNeeds(activity, req.PartySize)
	claims := []model.ResourceClaim{}

	for _, w := range quote.Windows(startMinute, order) {
		from, err := s.clock.ToAbsolute(req.Date, w.Start)

		if err != nil {
			return allocation{}, apperrors.Validation(err.Error(), nil)
		}

		to, err := s.clock.ToAbsolute(req.Date, w.End)

		if err != nil {
			return allocation{}, apperrors.Validation(err.Error(), nil)
		}

		claims = append(claims, model.ResourceClaim{Type: w.Type, Start: from, End: to, Count: needs.Count(w.Type)})
	}

	booking := model.Booking{
		ID:              uuid.NewString(),
		IdempotencyKey:  strings.TrimSpace(req.IdempotencyKey),
		Activity:        activity,
		PartySize:       req.PartySize,
		DurationMinutes: req.DurationMinutes,
		Start:           start,
		End:             end,
		SegmentOrder:    order,
		TotalCents:      total - discount,
		DiscountCents:   discount,
		Customer: model.Customer{
			Email: model.NormalizeEmail(req.Customer.Email),
			Name:  strings.TrimSpace(req.Customer.Name),
			Phone: strings.TrimSpace(req.Customer.Phone),
		},
		Status: model.StatusConfirmed,
	}

	return allocation{
		booking:     booking,
		claims:      claims,
		dateKey:     req.Date,
		startMinute: startMinute,
		endMinute:   startMinute + req.DurationMinutes,
	}, nil
}

// checkBlackouts rejects a booking whose window overlaps a blackout of its activity. A failed
// rule load is logged and treated as no blackouts, like the availability engine does.
func (s *Service) checkBlackouts(ctx context.Context, plan allocation) error {
	activity := plan.booking.Activity
	rules, err := s.repo.ListBlackouts(ctx, plan.dateKey, activity)

	if err != nil {
		s.logger.Warn("failed to load blackout rules, continuing without them", "date", plan.dateKey, "err", err)
		return nil
	}

	for _, rule := range rules {
		if !rule.Scope.Covers(activity) {
			continue
		}

		start, end := rule.Minutes()

		if model.MinutesOverlap(plan.startMinute, plan.endMinute, start, end) {
			details := map[string]any{"blackoutId": rule.ID}

			if rule.Reason != "" {
				details["reason"] = rule.Reason
			}

			return apperrors.Conflict(ErrBlackedOut.Error(), ErrBlackedOut).WithDetails(details)
		}
	}

	return nil
}

func (s *Service) checkWindow(start, end int) error {
	if s.window.Contains(start, end) {
		return nil
	}

	return apperrors.Validation(
		fmt.Sprintf("%s-%s is outside opening hours %s-%s",
			venuetime.FormatClock(start), venuetime.FormatClock(end),
			venuetime.FormatClock(s.window.OpenMinute), venuetime.FormatClock(s.window.CloseMinute)),
		nil,
	)
}

func (s *Service) GetBooking(ctx context.Context, id string) (model.Booking, error) {
	if err := s.validator.ID(id); err != nil {
		return model.Booking{}, apperrors.NotFound("booking not found", ErrBookingNotFound)
	}

	booking, err := s.repo.GetBookingByID(ctx, id)

	if errors.Is(err, model.ErrNotFound) {
		return model.Booking{}, apperrors.NotFound("booking not found", ErrBookingNotFound)
	}

	if err != nil {
		return model.Booking{}, apperrors.Unavailable("failed to load booking", err)
	}

	return booking, nil
}

// CancelBooking releases the booking's reservations so they stop blocking availability.
func (s *Service) CancelBooking(ctx context.Context, id string) error {
	booking, err := s.GetBooking(ctx, id)

	if err != nil {
		return err
	}

	if booking.Status == model.StatusCancelled {
		return apperrors.Conflict("booking is already cancelled", ErrInvalidBookingState)
	}

	err = s.repo.CancelBooking(ctx, id)

	if errors.Is(err, model.ErrNotFound) {
		return apperrors.NotFound("booking not found", ErrBookingNotFound)
	}

	if err != nil {
		return apperrors.Unavailable("failed to cancel booking", err)
	}

	s.logger.Info("booking cancelled", "bookingID", id)
	s.publish(ctx, EventBookingCancelled, CancelledEvent{BookingID: id, Start: booking.Start})

	return nil
}

// AddPartyArea claims one party area for an existing booking. A failure leaves the booking and
// its other reservations untouched.
func (s *Service) AddPartyArea(ctx context.Context, bookingID string, req PartyAreaRequest) (model.Reservation, error) {
	if err := s.validator.Struct(req); err != nil {
		return model.Reservation{}, err
	}

	booking, err := s.GetBooking(ctx, bookingID)

	if err != nil {
		return model.Reservation{}, err
	}

	if booking.Status == model.StatusCancelled {
		return model.Reservation{}, apperrors.Conflict("booking is cancelled", ErrInvalidBookingState)
	}

	return s.addPartyArea(ctx, booking, req)
}

func (s *Service) addPartyArea(ctx context.Context, booking model.Booking, req PartyAreaRequest) (model.Reservation, error) {
	startMinute, err := venuetime.ParseClock(req.StartTime)

	if err != nil {
		return model.Reservation{}, apperrors.Validation(err.Error(), map[string]any{"field": "startTime"})
	}

	endMinute := startMinute + req.DurationMinutes

	if err := s.checkWindow(startMinute, endMinute); err != nil {
		return model.Reservation{}, err
	}

	dateKey, _ := s.clock.FromAbsolute(booking.Start)
	start, err := s.clock.ToAbsolute(dateKey, startMinute)

	if err != nil {
		return model.Reservation{}, apperrors.Validation(err.Error(), nil)
	}

	end, err := s.clock.ToAbsolute(dateKey, endMinute)

	if err != nil {
		return model.Reservation{}, apperrors.Validation(err.Error(), nil)
	}

	reservation, err := s.repo.AddReservation(ctx, booking.ID, model.ResourceClaim{
		Type:  model.ResourcePartyArea,
		Start: start,
		End:   end,
		Count: 1,
	})

	if err != nil {
		return model.Reservation{}, claimError(err, ErrAreaUnavailable, "failed to reserve party area")
	}

	s.logger.Info("party area added", "bookingID", booking.ID, "resourceID", reservation.ResourceID)

	return reservation, nil
}

type pendingMove struct {
	reservation model.Reservation
	target      model.Resource
}

// ReassignResources moves reservations of a booking to other resources of the same type. Every
// move is checked before anything is written and the batch is applied all or nothing.
func (s *Service) ReassignResources(ctx context.Context, bookingID string, moves []model.Move) error {
	if len(moves) == 0 {
		return apperrors.Validation("at least one move is required", nil)
	}

	for _, move := range moves {
		if err := s.validator.Struct(move); err != nil {
			return err
		}
	}

	booking, err := s.GetBooking(ctx, bookingID)

	if err != nil {
		return err
	}

	if booking.Status == model.StatusCancelled {
		return apperrors.Conflict("booking is cancelled", ErrInvalidBookingState)
	}

	owned := map[string]model.Reservation{}

	for _, r := range booking.Reservations {
		owned[r.ID] = r
	}

	pending := []pendingMove{}
	seen := map[string]bool{}

	for _, move := range moves {
		reservation, ok := owned[move.ReservationID]

		if !ok {
			return apperrors.Validation("reservation does not belong to the booking", map[string]any{
				"reservationId": move.ReservationID,
				"bookingId":     bookingID,
			})
		}

		if seen[move.ReservationID] {
			return apperrors.Validation("reservation is moved more than once", map[string]any{"reservationId": move.ReservationID})
		}

		seen[move.ReservationID] = true

		if move.ResourceID == reservation.ResourceID {
			continue
		}

		target, err := s.repo.GetResourceByID(ctx, move.ResourceID)

		if errors.Is(err, model.ErrNotFound) {
			return apperrors.NotFound("resource not found", err).WithDetails(map[string]any{"resourceId": move.ResourceID})
		}

		if err != nil {
			return apperrors.Unavailable("failed to load resource", err)
		}

		if !target.IsActive() {
			return apperrors.Validation("resource is not active", map[string]any{"resourceId": target.ID})
		}

		if target.Type != reservation.ResourceType {
			mismatch := apperrors.Validation("resource type does not match the reservation", map[string]any{
				"resourceId":   target.ID,
				"resourceType": target.Type,
				"expectedType": reservation.ResourceType,
			})
			mismatch.Err = ErrResourceTypeMismatch
			return mismatch
		}

		pending = append(pending, pendingMove{reservation: reservation, target: target})
	}

	if len(pending) == 0 {
		return nil
	}

	leaving := map[string]bool{}

	for _, p := range pending {
		leaving[p.reservation.ID] = true
	}

	for i, p := range pending {
		existing, err := s.repo.ListOverlappingReservations(ctx, p.target.ID, p.reservation.Start, p.reservation.End)

		if err != nil {
			return apperrors.Unavailable("failed to check reservations", err)
		}

		for _, other := range existing {
			if !leaving[other.ID] {
				return alreadyBooked(p)
			}
		}

		for _, earlier := range pending[:i] {
			if earlier.target.ID == p.target.ID && earlier.reservation.Interval().Overlaps(p.reservation.Interval()) {
				return alreadyBooked(p)
			}
		}
	}

	applied := make([]model.Move, 0, len(pending))

	for _, p := range pending {
		applied = append(applied, model.Move{ReservationID: p.reservation.ID, ResourceID: p.target.ID})
	}

	err = s.repo.ApplyReassignments(ctx, bookingID, applied)

	if errors.Is(err, model.ErrOverlap) {
		return apperrors.Conflict("resource already booked for that time", fmt.Errorf("%w: %w", ErrAlreadyBooked, err))
	}

	if errors.Is(err, model.ErrNotFound) {
		return apperrors.NotFound("reservation not found", err)
	}

	if err != nil {
		return apperrors.Unavailable("failed to reassign resources", err)
	}

	s.logger.Info("resources reassigned", "bookingID", bookingID, "moves", len(applied))

	return nil
}

func alreadyBooked(p pendingMove) error {
	return apperrors.Conflict("resource already booked for that time", ErrAlreadyBooked).WithDetails(map[string]any{
		"reservationId": p.reservation.ID,
		"resourceId":    p.target.ID,
	})
}

// claimError turns a lost allocation into a conflict and anything else into a retriable error.
func claimError(err error, sentinel error, message string) error {
	if errors.Is(err, model.ErrNoFreeResource) || errors.Is(err, model.ErrOverlap) {
		return apperrors.Conflict(sentinel.Error(), fmt.Errorf("%w: %w", sentinel, err))
	}

	return apperrors.Unavailable(message, err)
}

func waiverOwed(reservations []model.Reservation) bool {
	for _, r := range reservations {
		if r.ResourceType == model.ResourceAxeBay {
			return true
		}
	}

	return false
}

func (s *Service) linkCustomer(ctx context.Context, booking *model.Booking) {
	customerID, err := s.customers.UpsertByEmail(ctx, booking.Customer)

	if err != nil {
		s.logger.Warn("failed to upsert customer", "bookingID", booking.ID, "err", err)
		return
	}

	if err := s.repo.SetBookingCustomer(ctx, booking.ID, customerID); err != nil {
		s.logger.Warn("failed to link customer", "bookingID", booking.ID, "customerID", customerID, "err", err)
		return
	}

	booking.CustomerID = customerID
}

func (s *Service) publish(ctx context.Context, routingKey string, payload any) {
	if err := s.events.PublishJSON(ctx, routingKey, payload); err != nil {
		s.logger.Warn("failed to publish event", "routingKey", routingKey, "err", err)
	}
}
