package booking

import (
	"time"

	"github.com/hanksha/venue-booking-backend/model"
	"github.com/hanksha/venue-booking-backend/pricing"
)

type CustomerRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,max=200"`
	Phone string `json:"phone" validate:"omitempty,max=40"`
}

// PartyAreaRequest is a party area claim on the booking's date. It may be shorter than the
// activity and start at a different time.
type PartyAreaRequest struct {
	StartTime       string `json:"startTime" validate:"required,datetime=15:04"`
	DurationMinutes int    `json:"durationMinutes" validate:"required,min=30,max=240"`
}

type Request struct {
	IdempotencyKey  string             `json:"idempotencyKey" validate:"required,max=128"`
	Activity        string             `json:"activity" validate:"required"`
	PartySize       int                `json:"partySize" validate:"required,min=1,max=24"`
	Date            string             `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime       string             `json:"startTime" validate:"required,datetime=15:04"`
	DurationMinutes int                `json:"durationMinutes" validate:"required,gt=0"`
	SegmentOrder    model.SegmentOrder `json:"segmentOrder" validate:"omitempty,oneof=DUCKPIN_FIRST AXE_FIRST"`
	AxeMinutes      int                `json:"axeMinutes" validate:"gte=0"`
	DuckpinMinutes  int                `json:"duckpinMinutes" validate:"gte=0"`
	DiscountCents   int64              `json:"discountCents" validate:"gte=0"`
	Customer        CustomerRequest    `json:"customer"`
	PartyArea       *PartyAreaRequest  `json:"partyArea,omitempty"`
}

type Result struct {
	Booking    model.Booking `json:"booking"`
	Needs      pricing.Needs `json:"needs"`
	WaiverOwed bool          `json:"waiverOwed"`
	// Replayed is set when the idempotency key matched an earlier booking.
	Replayed             bool               `json:"replayed"`
	PartyArea            *model.Reservation `json:"partyArea,omitempty"`
	PartyAreaUnavailable bool               `json:"partyAreaUnavailable,omitempty"`
	// PartyAreaError is set when the party area could not be attempted, for example because the
	// store was unreachable. The request can be retried with AddPartyArea.
	PartyAreaError       string             `json:"partyAreaError,omitempty"`
}

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

type CreatedEvent struct {
	BookingID     string         `json:"bookingId"`
	Activity      model.Activity `json:"activity"`
	PartySize     int            `json:"partySize"`
	Start         time.Time      `json:"start"`
	End           time.Time      `json:"end"`
	TotalCents    int64          `json:"totalCents"`
	CustomerEmail string         `json:"customerEmail"`
	CustomerID    string         `json:"customerId,omitempty"`
	WaiverOwed    bool           `json:"waiverOwed"`
}

type CancelledEvent struct {
	BookingID string    `json:"bookingId"`
	Start     time.Time `json:"start"`
}
