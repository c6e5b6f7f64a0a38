package catalog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hanksha/venue-booking-backend/apperrors"
	"github.com/hanksha/venue-booking-backend/model"
	"github.com/hanksha/venue-booking-backend/validation"
	"github.com/hanksha/venue-booking-backend/venuetime"
)

//go:generate mockgen -source=catalog_service.go -destination=mocks/catalog_service_mock.go -package=mock_catalog

var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrBlackoutNotFound = errors.New("blackout not found")
)

type Repository interface {
	ListResources(ctx context.Context, types []model.ResourceType) ([]model.Resource, error)
	InsertResource(ctx context.Context, r model.Resource) (model.Resource, error)
	SetResourceActive(ctx context.Context, id string, active bool) error
	ListBlackoutsByDate(ctx context.Context, dateKey string) ([]model.BlackoutRule, error)
	InsertBlackout(ctx context.Context, rule model.BlackoutRule) (model.BlackoutRule, error)
	DeleteBlackout(ctx context.Context, id string) error
	ListAllBufferRules(ctx context.Context) ([]model.BufferRule, error)
	InsertBufferRule(ctx context.Context, rule model.BufferRule) (model.BufferRule, error)
}

// Service maintains the staff-managed data the availability engine reads: resources, blackout
// rules and buffer rules.
type Service struct {
	repo      Repository
	validator *validation.Validator
	logger    *slog.Logger
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:      repo,
		validator: validation.New(),
		logger:    slog.Default().With("component", "catalog"),
	}
}

func (s *Service) ListResources(ctx context.Context, resourceType string) ([]model.Resource, error) {
	types := []model.ResourceType{}

	if resourceType != "" {
		t := model.ResourceType(resourceType)

		if !t.Valid() {
			return nil, apperrors.Validation("unknown resource type", map[string]any{"type": resourceType})
		}

		types = append(types, t)
	}

	resources, err := s.repo.ListResources(ctx, types)

	if err != nil {
		return nil, apperrors.Unavailable("failed to load resources", err)
	}

	return resources, nil
}

func (s *Service) CreateResource(ctx context.Context, req ResourceRequest) (model.Resource, error) {
	if err := s.validator.Struct(req); err != nil {
		return model.Resource{}, err
	}

	created, err := s.repo.InsertResource(ctx, model.Resource{
		ID:        uuid.NewString(),
		Type:      model.ResourceType(req.Type),
		Active:    req.Active,
		Name:      req.Name,
		SortOrder: req.SortOrder,
	})

	if err != nil {
		return model.Resource{}, apperrors.Unavailable("failed to create resource", err)
	}

	s.logger.Info("resource created", "resourceID", created.ID, "type", created.Type, "name", created.Name)

	return created, nil
}

// SetResourceActive takes a resource in or out of service. Existing reservations are kept.
func (s *Service) SetResourceActive(ctx context.Context, id string, req ActiveRequest) error {
	if err := s.validator.ID(id); err != nil {
		return apperrors.NotFound("resource not found", ErrResourceNotFound)
	}

	if err := s.validator.Struct(req); err != nil {
		return err
	}

	err := s.repo.SetResourceActive(ctx, id, *req.Active)

	if errors.Is(err, model.ErrNotFound) {
		return apperrors.NotFound("resource not found", ErrResourceNotFound)
	}

	if err != nil {
		return apperrors.Unavailable("failed to update resource", err)
	}

	s.logger.Info("resource status changed", "resourceID", id, "active", *req.Active)

	return nil
}

func (s *Service) ListBlackouts(ctx context.Context, dateKey string) ([]model.BlackoutRule, error) {
	if _, err := venuetime.ParseDateKey(dateKey); err != nil {
		return nil, apperrors.Validation(err.Error(), map[string]any{"field": "date"})
	}

	rules, err := s.repo.ListBlackoutsByDate(ctx, dateKey)

	if err != nil {
		return nil, apperrors.Unavailable("failed to load blackouts", err)
	}

	return rules, nil
}

func (s *Service) CreateBlackout(ctx context.Context, req BlackoutRequest) (model.BlackoutRule, error) {
	if err := s.validator.Struct(req); err != nil {
		return model.BlackoutRule{}, err
	}

	if _, err := venuetime.ParseDateKey(req.Date); err != nil {
		return model.BlackoutRule{}, apperrors.Validation(err.Error(), map[string]any{"field": "date"})
	}

	scope, err := model.ParseScope(req.Scope)

	if err != nil {
		return model.BlackoutRule{}, apperrors.Validation(err.Error(), map[string]any{"field": "scope"})
	}

	rule := model.BlackoutRule{
		ID:     uuid.NewString(),
		Date:   req.Date,
		Scope:  scope,
		Reason: req.Reason,
	}

	if req.StartTime != "" {
		start, _ := venuetime.ParseClock(req.StartTime)
		rule.StartMinute = &start
	}

	if req.EndTime != "" {
		end, _ := venuetime.ParseClock(req.EndTime)
		rule.EndMinute = &end
	}

	if start, end := rule.Minutes(); start >= end {
		return model.BlackoutRule{}, apperrors.Validation("start time must be before end time", map[string]any{
			"startTime": req.StartTime,
			"endTime":   req.EndTime,
		})
	}

	created, err := s.repo.InsertBlackout(ctx, rule)

	if err != nil {
		return model.BlackoutRule{}, apperrors.Unavailable("failed to create blackout", err)
	}

	s.logger.Info("blackout created", "blackoutID", created.ID, "date", created.Date, "scope", created.Scope)

	return created, nil
}

func (s *Service) DeleteBlackout(ctx context.Context, id string) error {
	if err := s.validator.ID(id); err != nil {
		return apperrors.NotFound("blackout not found", ErrBlackoutNotFound)
	}

	err := s.repo.DeleteBlackout(ctx, id)

	if errors.Is(err, model.ErrNotFound) {
		return apperrors.NotFound("blackout not found", ErrBlackoutNotFound)
	}

	if err != nil {
		return apperrors.Unavailable("failed to delete blackout", err)
	}

	s.logger.Info("blackout deleted", "blackoutID", id)

	return nil
}

func (s *Service) ListBufferRules(ctx context.Context) ([]model.BufferRule, error) {
	rules, err := s.repo.ListAllBufferRules(ctx)

	if err != nil {
		return nil, apperrors.Unavailable("failed to load buffer rules", err)
	}

	return rules, nil
}

func (s *Service) CreateBufferRule(ctx context.Context, req BufferRequest) (model.BufferRule, error) {
	if err := s.validator.Struct(req); err != nil {
		return model.BufferRule{}, err
	}

	scope, err := model.ParseScope(req.Scope)

	if err != nil {
		return model.BufferRule{}, apperrors.Validation(err.Error(), map[string]any{"field": "scope"})
	}

	active := req.Active == nil || *req.Active

	created, err := s.repo.InsertBufferRule(ctx, model.BufferRule{
		ID:            uuid.NewString(),
		Scope:         scope,
		BeforeMinutes: req.BeforeMinutes,
		AfterMinutes:  req.AfterMinutes,
		Active:        active,
	})

	if err != nil {
		return model.BufferRule{}, apperrors.Unavailable("failed to create buffer rule", err)
	}

	s.logger.Info("buffer rule created", "bufferID", created.ID, "scope", created.Scope,
		"before", created.BeforeMinutes, "after", created.AfterMinutes)

	return created, nil
}
