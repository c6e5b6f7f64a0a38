package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/venue-booking-backend/catalog"
	"github.com/hanksha/venue-booking-backend/model"
)

//go:generate mockgen -source=admin_handler.go -destination=mocks/admin_handler_mock.go -package=mock_api

type CatalogService interface {
	ListResources(ctx context.Context, resourceType string) ([]model.Resource, error)
	CreateResource(ctx context.Context, req catalog.ResourceRequest) (model.Resource, error)
	SetResourceActive(ctx context.Context, id string, req catalog.ActiveRequest) error
	ListBlackouts(ctx context.Context, dateKey string) ([]model.BlackoutRule, error)
	CreateBlackout(ctx context.Context, req catalog.BlackoutRequest) (model.BlackoutRule, error)
	DeleteBlackout(ctx context.Context, id string) error
	ListBufferRules(ctx context.Context) ([]model.BufferRule, error)
	CreateBufferRule(ctx context.Context, req catalog.BufferRequest) (model.BufferRule, error)
}

type AdminHandler struct {
	service CatalogService
}

func NewAdminHandler(service CatalogService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Register expects a group that is already behind the staff middleware.
func (h *AdminHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/resources", h.ListResources)
	rg.POST("/resources", h.CreateResource)
	rg.PUT("/resources/:id/active", h.SetResourceActive)

	rg.GET("/blackouts", h.ListBlackouts)
	rg.POST("/blackouts", h.CreateBlackout)
	rg.DELETE("/blackouts/:id", h.DeleteBlackout)

	rg.GET("/buffers", h.ListBufferRules)
	rg.POST("/buffers", h.CreateBufferRule)
}

func (h *AdminHandler) ListResources(c *gin.Context) {
	resources, err := h.service.ListResources(c.Request.Context(), c.Query("type"))

	if err != nil {
		respondError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, resources)
}

func (h *AdminHandler) CreateResource(c *gin.Context) {
	var req catalog.ResourceRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c, err)
		return
	}

	created, err := h.service.CreateResource(c.Request.Context(), req)

	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) SetResourceActive(c *gin.Context) {
	var req catalog.ActiveRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c, err)
		return
	}

	if err := h.service.SetResourceActive(c.Request.Context(), c.Param("id"), req); err != nil {
		respondError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "resource updated"})
}

func (h *AdminHandler) ListBlackouts(c *gin.Context) {
	rules, err := h.service.ListBlackouts(c.Request.Context(), c.Query("date"))

	if err != nil {
		respondError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, rules)
}

func (h *AdminHandler) CreateBlackout(c *gin.Context) {
	var req catalog.BlackoutRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c, err)
		return
	}

	created, err := h.service.CreateBlackout(c.Request.Context(), req)

	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) DeleteBlackout(c *gin.Context) {
	if err := h.service.DeleteBlackout(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) ListBufferRules(c *gin.Context) {
	rules, err := h.service.ListBufferRules(c.Request.Context())

	if err != nil {
		respondError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, rules)
}

func (h *AdminHandler) CreateBufferRule(c *gin.Context) {
	var req catalog.BufferRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c, err)
		return
	}

	created, err := h.service.CreateBufferRule(c.Request.Context(), req)

	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}
