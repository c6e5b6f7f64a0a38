package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hanksha/venue-booking-backend/model"
	"github.com/jackc/pgx/v5"
)

const bookingColumns = `
	id::text, idempotency_key, activity, party_size, duration_minutes, start_at, end_at, segment_order,
	total_cents, discount_cents, COALESCE(customer_id::text, ''), customer_email, customer_name,
	customer_phone, paid, status, created_at`

const reservationColumns = `x.id::text, x.booking_id::text, x.resource_id::text, x.resource_type, x.start_at, x.end_at`

func scanReservations(rows pgx.Rows) ([]model.Reservation, error) {
	defer rows.Close()

	reservations := []model.Reservation{}

	for rows.Next() {
		var r model.Reservation
		var resourceType string

		err := rows.Scan(&r.ID, &r.BookingID, &r.ResourceID, &resourceType, &r.Start, &r.End)

		if err != nil {
			return nil, fmt.Errorf("error scanning reservation row: %w", err)
		}

		r.ResourceType = model.ResourceType(resourceType)
		reservations = append(reservations, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservation rows: %w", err)
	}

	return reservations, nil
}

// ListReservations returns the live reservations of the given types overlapping [from, to).
func (s *Store) ListReservations(ctx context.Context, types []model.ResourceType, from, to time.Time) ([]model.Reservation, error) {
	sql := `
		SELECT ` + reservationColumns + `
		FROM venue.reservation x
		JOIN venue.booking b ON b.id = x.booking_id
		WHERE x.resource_type = ANY($1)
		AND NOT x.released
		AND b.status <> 'CANCELLED'
		AND x.start_at < $3 AND x.end_at > $2
		ORDER BY x.start_at;
	`

	rows, err := s.pool.Query(ctx, sql, typeNames(types), from, to)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}

	return scanReservations(rows)
}

func (s *Store) ListOverlappingReservations(ctx context.Context, resourceID string, start, end time.Time) ([]model.Reservation, error) {
	return overlapping(ctx, s.pool, resourceID, start, end)
}

func overlapping(ctx context.Context, q querier, resourceID string, start, end time.Time) ([]model.Reservation, error) {
	sql := `
		SELECT ` + reservationColumns + `
		FROM venue.reservation x
		JOIN venue.booking b ON b.id = x.booking_id
		WHERE x.resource_id = $1
		AND NOT x.released
		AND b.status <> 'CANCELLED'
		AND x.start_at < $3 AND x.end_at > $2;
	`

	rows, err := q.Query(ctx, sql, resourceID, start, end)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations of resource %v: %w", resourceID, err)
	}

	return scanReservations(rows)
}

func (s *Store) CreateBooking(ctx context.Context, booking model.Booking, claims []model.ResourceClaim) (model.Booking, bool, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})

	if err != nil {
		return model.Booking{}, false, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	sql := `
		INSERT INTO venue.booking (
			id, idempotency_key, activity, party_size, duration_minutes, start_at, end_at, segment_order,
			total_cents, discount_cents, customer_email, customer_name, customer_phone, paid, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (idempotency_key) DO NOTHING
		RETURNING created_at;
	`

	err = tx.QueryRow(ctx, sql,
		booking.ID,
		booking.IdempotencyKey,
		string(booking.Activity),
		booking.PartySize,
		booking.DurationMinutes,
		booking.Start,
		booking.End,
		string(booking.SegmentOrder),
		booking.TotalCents,
		booking.DiscountCents,
		booking.Customer.Email,
		booking.Customer.Name,
		booking.Customer.Phone,
		booking.Paid,
		string(booking.Status),
	).Scan(&booking.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		existing, err := s.getBookingByKey(ctx, booking.IdempotencyKey)

		if err != nil {
			return model.Booking{}, false, err
		}

		return existing, true, nil
	}

	if err != nil {
		return model.Booking{}, false, fmt.Errorf("failed to insert booking: %w", err)
	}

	booking.Reservations = []model.Reservation{}

	for _, claim := range claims {
		claimed, err := claimUnits(ctx, tx, booking.ID, claim)

		if err != nil {
			return model.Booking{}, false, err
		}

		booking.Reservations = append(booking.Reservations, claimed...)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Booking{}, false, translate(err, "failed to commit booking")
	}

	return booking, false, nil
}

// AddReservation claims one more unit for an existing booking in its own transaction.
func (s *Store) AddReservation(ctx context.Context, bookingID string, claim model.ResourceClaim) (model.Reservation, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})

	if err != nil {
		return model.Reservation{}, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	claim.Count = 1
	claimed, err := claimUnits(ctx, tx, bookingID, claim)

	if err != nil {
		return model.Reservation{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Reservation{}, translate(err, "failed to commit reservation")
	}

	return claimed[0], nil
}

// claimUnits picks claim.Count free active resources in sort order and reserves them. Rows
// written earlier in the same transaction count as busy, and a resource lost to a concurrent
// booking is skipped in favour of the next one.
func claimUnits(ctx context.Context, tx pgx.Tx, bookingID string, claim model.ResourceClaim) ([]model.Reservation, error) {
	candidates, err := activeResources(ctx, tx, []model.ResourceType{claim.Type})

	if err != nil {
		return nil, err
	}

	claimed := []model.Reservation{}

	for _, resource := range candidates {
		if len(claimed) == claim.Count {
			break
		}

		busy, err := overlapping(ctx, tx, resource.ID, claim.Start, claim.End)

		if err != nil {
			return nil, err
		}

		if len(busy) > 0 {
			continue
		}

		reservation := model.Reservation{
			ID:           uuid.NewString(),
			BookingID:    bookingID,
			ResourceID:   resource.ID,
			ResourceType: claim.Type,
			Start:        claim.Start,
			End:          claim.End,
		}

		taken, err := insertReservation(ctx, tx, reservation)

		if err != nil {
			return nil, err
		}

		if taken {
			continue
		}

		claimed = append(claimed, reservation)
	}

	if len(claimed) < claim.Count {
		return nil, fmt.Errorf("%d of %d %s free: %w", len(claimed), claim.Count, claim.Type, model.ErrNoFreeResource)
	}

	return claimed, nil
}

// insertReservation writes the row inside a savepoint. taken reports that the exclusion
// constraint rejected it because of a reservation the overlap query could not see yet. The
// outer transaction stays usable in that case.
func insertReservation(ctx context.Context, tx pgx.Tx, r model.Reservation) (taken bool, err error) {
	sp, err := tx.Begin(ctx)

	if err != nil {
		return false, fmt.Errorf("failed to create savepoint: %w", err)
	}

	defer sp.Rollback(ctx)

	sql := `
		INSERT INTO venue.reservation (id, booking_id, resource_id, resource_type, start_at, end_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`

	_, err = sp.Exec(ctx, sql,
		r.ID,
		r.BookingID,
		r.ResourceID,
		string(r.ResourceType),
		r.Start,
		r.End,
	)

	if err != nil {
		err = translate(err, "failed to insert reservation")

		if errors.Is(err, model.ErrOverlap) {
			return true, nil
		}

		return false, err
	}

	if err := sp.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to release savepoint: %w", err)
	}

	return false, nil
}

func (s *Store) getBookingByKey(ctx context.Context, key string) (model.Booking, error) {
	var id string
	err := s.pool.QueryRow(ctx, `SELECT id::text FROM venue.booking WHERE idempotency_key = $1;`, key).Scan(&id)

	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to fetch booking for idempotency key: %w", err)
	}

	return s.GetBookingByID(ctx, id)
}

func (s *Store) GetBookingByID(ctx context.Context, id string) (model.Booking, error) {
	sql := `SELECT ` + bookingColumns + ` FROM venue.booking WHERE id = $1;`

	var b model.Booking
	var activity, order, status string

	err := s.pool.QueryRow(ctx, sql, id).Scan(
		&b.ID,
		&b.IdempotencyKey,
		&activity,
		&b.PartySize,
		&b.DurationMinutes,
		&b.Start,
		&b.End,
		&order,
		&b.TotalCents,
		&b.DiscountCents,
		&b.CustomerID,
		&b.Customer.Email,
		&b.Customer.Name,
		&b.Customer.Phone,
		&b.Paid,
		&status,
		&b.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Booking{}, model.ErrNotFound
	}

	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	b.Activity = model.Activity(activity)
	b.SegmentOrder = model.SegmentOrder(order)
	b.Status = model.BookingStatus(status)

	rows, err := s.pool.Query(ctx, `
		SELECT `+reservationColumns+`
		FROM venue.reservation x
		WHERE x.booking_id = $1
		ORDER BY x.start_at, x.resource_type;
	`, id)

	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to fetch reservations of booking %v: %w", id, err)
	}

	b.Reservations, err = scanReservations(rows)

	if err != nil {
		return model.Booking{}, err
	}

	return b, nil
}

func (s *Store) SetBookingCustomer(ctx context.Context, bookingID, customerID string) error {
	tag, err := s.pool.Exec(ctx, `UPDATE venue.booking SET customer_id = $1 WHERE id = $2;`, customerID, bookingID)

	if err != nil {
		return fmt.Errorf("failed to link customer to booking '%v': %w", bookingID, err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

// CancelBooking marks the booking cancelled and releases its reservations in one transaction.
func (s *Store) CancelBooking(ctx context.Context, id string) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})

	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `UPDATE venue.booking SET status = 'CANCELLED' WHERE id = $1;`, id)

	if err != nil {
		return fmt.Errorf("failed to cancel booking '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `UPDATE venue.reservation SET released = true WHERE booking_id = $1;`, id); err != nil {
		return fmt.Errorf("failed to release reservations of booking '%v': %w", id, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit cancellation: %w", err)
	}

	return nil
}

// ApplyReassignments moves every reservation in one transaction. The exclusion constraint is
// deferred to commit so two reservations can swap resources.
func (s *Store) ApplyReassignments(ctx context.Context, bookingID string, moves []model.Move) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})

	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `SET CONSTRAINTS venue.reservation_no_overlap DEFERRED;`); err != nil {
		return fmt.Errorf("failed to defer overlap constraint: %w", err)
	}

	for _, move := range moves {
		tag, err := tx.Exec(ctx, `
			UPDATE venue.reservation
			SET resource_id = $1
			WHERE id = $2 AND booking_id = $3 AND NOT released;
		`, move.ResourceID, move.ReservationID, bookingID)

		if err != nil {
			return translate(err, "failed to move reservation")
		}

		if tag.RowsAffected() == 0 {
			return fmt.Errorf("reservation %v of booking %v: %w", move.ReservationID, bookingID, model.ErrNotFound)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return translate(err, "failed to commit reassignment")
	}

	return nil
}
