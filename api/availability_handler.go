package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/venue-booking-backend/apperrors"
	"github.com/hanksha/venue-booking-backend/availability"
	"github.com/hanksha/venue-booking-backend/model"
	"github.com/hanksha/venue-booking-backend/venuetime"
)

//go:generate mockgen -source=availability_handler.go -destination=mocks/availability_handler_mock.go -package=mock_api

type AvailabilityService interface {
	ComputeBlockedStarts(ctx context.Context, q availability.Query) ([]int, error)
}

type availabilityQuery struct {
	Activity        string `form:"activity"`
	PartySize       int    `form:"partySize"`
	Date            string `form:"date"`
	DurationMinutes int    `form:"duration"`
	SegmentOrder    string `form:"segmentOrder"`
	AxeMinutes      int    `form:"axeMinutes"`
	DuckpinMinutes  int    `form:"duckpinMinutes"`
}

type availabilityResponse struct {
	Date          string   `json:"date"`
	Activity      string   `json:"activity"`
	OpenTime      string   `json:"openTime"`
	CloseTime     string   `json:"closeTime"`
	StepMinutes   int      `json:"stepMinutes"`
	BlockedStarts []int    `json:"blockedStarts"`
	BlockedTimes  []string `json:"blockedTimes"`
}

type AvailabilityHandler struct {
	service AvailabilityService
	window  model.OperatingWindow
	step    int
}

func NewAvailabilityHandler(service AvailabilityService, window model.OperatingWindow, stepMinutes int) *AvailabilityHandler {
	return &AvailabilityHandler{service: service, window: window, step: stepMinutes}
}

func (h *AvailabilityHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.BlockedStarts)
}

// BlockedStarts answers GET /availability?activity=AXE&partySize=4&date=2024-06-15&duration=60.
func (h *AvailabilityHandler) BlockedStarts(c *gin.Context) {
	var query availabilityQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, apperrors.Validation("failed to parse query", map[string]any{"cause": err.Error()}))
		return
	}

	activity, err := model.ParseActivity(query.Activity)

	if err != nil {
		respondError(c, apperrors.Validation(err.Error(), map[string]any{"field": "activity"}))
		return
	}

	order := model.SegmentOrder(query.SegmentOrder)

	if activity == model.ActivityCombo && order == "" {
		order = model.DuckpinFirst
	}

	blocked, err := h.service.ComputeBlockedStarts(c.Request.Context(), availability.Query{
		Activity:        activity,
		PartySize:       query.PartySize,
		DateKey:         query.Date,
		DurationMinutes: query.DurationMinutes,
		Window:          h.window,
		StepMinutes:     h.step,
		SegmentOrder:    order,
		AxeMinutes:      query.AxeMinutes,
		DuckpinMinutes:  query.DuckpinMinutes,
	})

	if err != nil {
		respondError(c, err)
		return
	}

	if blocked == nil {
		blocked = []int{}
	}

	times := make([]string, 0, len(blocked))

	for _, start := range blocked {
		times = append(times, venuetime.FormatClock(start))
	}

	c.JSON(http.StatusOK, availabilityResponse{
		Date:          query.Date,
		Activity:      string(activity),
		OpenTime:      venuetime.FormatClock(h.window.OpenMinute),
		CloseTime:     venuetime.FormatClock(h.window.CloseMinute),
		StepMinutes:   h.step,
		BlockedStarts: blocked,
		BlockedTimes:  times,
	})
}
