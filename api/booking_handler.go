package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/venue-booking-backend/apperrors"
	bk "github.com/hanksha/venue-booking-backend/booking"
	"github.com/hanksha/venue-booking-backend/model"
)

//go:generate mockgen -source=booking_handler.go -destination=mocks/booking_handler_mock.go -package=mock_api

const IdempotencyKeyHeader = "Idempotency-Key"

type BookingService interface {
	CreateBooking(ctx context.Context, req bk.Request) (bk.Result, error)
	GetBooking(ctx context.Context, id string) (model.Booking, error)
	CancelBooking(ctx context.Context, id string) error
	AddPartyArea(ctx context.Context, bookingID string, req bk.PartyAreaRequest) (model.Reservation, error)
	ReassignResources(ctx context.Context, bookingID string, moves []model.Move) error
}

type reassignRequest struct {
	Moves []model.Move `json:"moves"`
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Register mounts the public create route and the staff routes, which go through staffOnly.
func (h *BookingHandler) Register(rg *gin.RouterGroup, staffOnly gin.HandlerFunc) {
	rg.POST("", h.Create)
	rg.GET("/:id", staffOnly, h.GetByID)
	rg.PUT("/:id/cancel", staffOnly, h.Cancel)
	rg.POST("/:id/party-area", staffOnly, h.AddPartyArea)
	rg.PUT("/:id/resources", staffOnly, h.Reassign)
}

// Create answers 201 for a new booking and 200 when the idempotency key replays an earlier one.
func (h *BookingHandler) Create(c *gin.Context) {
	var req bk.Request

	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c, err)
		return
	}

	if key := strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader)); len(key) > 0 {
		if len(req.IdempotencyKey) > 0 && req.IdempotencyKey != key {
			respondError(c, apperrors.Validation("idempotency key header and body disagree", map[string]any{
				"field": "idempotencyKey",
			}))
			return
		}

		req.IdempotencyKey = key
	}

	result, err := h.service.CreateBooking(c.Request.Context(), req)

	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated

	if result.Replayed {
		status = http.StatusOK
	}

	c.JSON(status, result)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	booking, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))

	if err != nil {
		respondError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.service.CancelBooking(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

func (h *BookingHandler) AddPartyArea(c *gin.Context) {
	var req bk.PartyAreaRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c, err)
		return
	}

	reservation, err := h.service.AddPartyArea(c.Request.Context(), c.Param("id"), req)

	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reservation)
}

func (h *BookingHandler) Reassign(c *gin.Context) {
	var req reassignRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c, err)
		return
	}

	if err := h.service.ReassignResources(c.Request.Context(), c.Param("id"), req.Moves); err != nil {
		respondError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "resources reassigned"})
}
