package model

import (
	"fmt"
	"strings"
	"time"
)

type Activity string

const (
	ActivityAxe     Activity = "AXE"
	ActivityDuckpin Activity = "DUCKPIN"
	ActivityCombo   Activity = "COMBO"
)

// ParseActivity accepts both the enum value and the name shown on the booking page.
func ParseActivity(s string) (Activity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "AXE", "AXE THROWING", "AXE_THROWING":
		return ActivityAxe, nil
	case "DUCKPIN", "DUCKPIN BOWLING", "DUCKPIN_BOWLING":
		return ActivityDuckpin, nil
	case "COMBO", "COMBO PACKAGE", "COMBO_PACKAGE":
		return ActivityCombo, nil
	}

	return "", fmt.Errorf("unknown activity %q", s)
}

func (a Activity) Valid() bool {
	return a == ActivityAxe || a == ActivityDuckpin || a == ActivityCombo
}

func (a Activity) DisplayName() string {
	switch a {
	case ActivityAxe:
		return "Axe Throwing"
	case ActivityDuckpin:
		return "Duckpin Bowling"
	case ActivityCombo:
		return "Combo Package"
	}

	return string(a)
}

// Scope of a blackout or buffer rule: one activity or ALL.
type Scope string

const ScopeAll Scope = "ALL"

func ParseScope(s string) (Scope, error) {
	if strings.EqualFold(strings.TrimSpace(s), string(ScopeAll)) {
		return ScopeAll, nil
	}

	activity, err := ParseActivity(s)

	if err != nil {
		return "", fmt.Errorf("unknown rule scope %q", s)
	}

	return Scope(activity), nil
}

func (s Scope) Covers(a Activity) bool {
	return s == ScopeAll || s == Scope(a)
}

type ResourceType string

const (
	ResourceAxeBay      ResourceType = "AXE_BAY"
	ResourceDuckpinLane ResourceType = "DUCKPIN_LANE"
	ResourcePartyArea   ResourceType = "PARTY_AREA"
)

func (t ResourceType) Valid() bool {
	return t == ResourceAxeBay || t == ResourceDuckpinLane || t == ResourcePartyArea
}

// SegmentOrder says which half of a combo package is played first.
type SegmentOrder string

const (
	DuckpinFirst SegmentOrder = "DUCKPIN_FIRST"
	AxeFirst     SegmentOrder = "AXE_FIRST"
)

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
)

type Resource struct {
	ID        string       `json:"id"`
	Type      ResourceType `json:"type"`
	Active    *bool        `json:"active,omitempty"`
	Name      string       `json:"name"`
	SortOrder int          `json:"sortOrder"`
}

// IsActive treats a missing flag as active. Rows created before the flag existed carry NULL.
func (r Resource) IsActive() bool {
	return r.Active == nil || *r.Active
}

type Reservation struct {
	ID           string       `json:"id"`
	BookingID    string       `json:"bookingId"`
	ResourceID   string       `json:"resourceId"`
	ResourceType ResourceType `json:"resourceType"`
	Start        time.Time    `json:"start"`
	End          time.Time    `json:"end"`
}

func (r Reservation) Interval() Interval {
	return Interval{Start: r.Start, End: r.End}
}

type Customer struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type Booking struct {
	ID              string        `json:"id"`
	IdempotencyKey  string        `json:"idempotencyKey"`
	Activity        Activity      `json:"activity"`
	PartySize       int           `json:"partySize"`
	DurationMinutes int           `json:"durationMinutes"`
	Start           time.Time     `json:"start"`
	End             time.Time     `json:"end"`
	SegmentOrder    SegmentOrder  `json:"segmentOrder,omitempty"`
	TotalCents      int64         `json:"totalCents"`
	DiscountCents   int64         `json:"discountCents"`
	CustomerID      string        `json:"customerId,omitempty"`
	Customer        Customer      `json:"customer"`
	Paid            bool          `json:"paid"`
	Status          BookingStatus `json:"status"`
	Reservations    []Reservation `json:"reservations"`
	CreatedAt       time.Time     `json:"createdAt"`
}

type BlackoutRule struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	StartMinute *int   `json:"startMinute,omitempty"`
	EndMinute   *int   `json:"endMinute,omitempty"`
	Scope       Scope  `json:"scope"`
	Reason      string `json:"reason,omitempty"`
}

// Minutes returns the blocked [start, end) minute range of the rule's date.
func (b BlackoutRule) Minutes() (int, int) {
	start, end := 0, MinutesPerDay

	if b.StartMinute != nil {
		start = *b.StartMinute
	}

	if b.EndMinute != nil {
		end = *b.EndMinute
	}

	return start, end
}

type BufferRule struct {
	ID            string `json:"id"`
	Scope         Scope  `json:"scope"`
	BeforeMinutes int    `json:"beforeMinutes"`
	AfterMinutes  int    `json:"afterMinutes"`
	Active        bool   `json:"active"`
}

// ResourceClaim asks the store for Count units of Type over [Start, End).
type ResourceClaim struct {
	Type  ResourceType
	Start time.Time
	End   time.Time
	Count int
}

// Move points an existing reservation at another resource of the same type.
type Move struct {
	ReservationID string `json:"reservationId" validate:"required,uuid"`
	ResourceID    string `json:"resourceId" validate:"required,uuid"`
}

const MinutesPerDay = 24 * 60

// OperatingWindow is the bookable part of a day in minutes from local midnight.
type OperatingWindow struct {
	OpenMinute  int `json:"openMinute"`
	CloseMinute int `json:"closeMinute"`
}

func (w OperatingWindow) Valid() bool {
	return w.OpenMinute >= 0 && w.CloseMinute <= MinutesPerDay && w.OpenMinute < w.CloseMinute
}

func (w OperatingWindow) Contains(start, end int) bool {
	return start >= w.OpenMinute && end <= w.CloseMinute
}
