package services

import (
	"context"
	"strings"
	"time"

	"github.com/karan/societyhub/internal/app/auth"
	"github.com/karan/societyhub/internal/app/models"
	"github.com/karan/societyhub/internal/app/models/dto"
	"github.com/karan/societyhub/internal/cache"
	"github.com/karan/societyhub/internal/pkg/apperrors"
	"github.com/karan/societyhub/internal/pkg/helpers"
	"github.com/karan/societyhub/internal/pkg/validation"
)

// EventStore is the repository surface EventService needs
type EventStore interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	GetAll(ctx context.Context) ([]*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) error
}

// EventService handles community-wide events: admin-written, readable by all
type EventService struct {
	eventRepo EventStore
	policy    *auth.Policy
	views     *cache.ViewCache
}

// NewEventService creates a new event service
func NewEventService(eventRepo EventStore, policy *auth.Policy, views *cache.ViewCache) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		policy:    policy,
		views:     views,
	}
}

// ListEvents returns all events. Every authenticated role may read them.
func (s *EventService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return listCached(ctx, s.views, cache.ViewEvents, s.eventRepo.GetAll)
}

// GetEvent returns one event by id
func (s *EventService) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("event id must be positive")
	}

	return s.eventRepo.GetByID(ctx, id)
}

// CreateEvent announces an event. Admin only; the announcing admin is taken
// from the session identity, never from the payload.
func (s *EventService) CreateEvent(ctx context.Context, identity models.Identity, req *dto.CreateEventRequest) (*models.Event, error) {
	if err := s.policy.RequireAdmin(identity); err != nil {
		return nil, err
	}

	eventDate, err := validateEventFields(req.EventName, req.EventDate, req.Description)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		AdminID:     identity.SubjectID,
		EventName:   strings.TrimSpace(req.EventName),
		EventDate:   eventDate,
		Description: strings.TrimSpace(req.Description),
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.views.Invalidate(ctx, cache.ViewEvents)
	return event, nil
}

// UpdateEvent updates an event's details. Admin only.
func (s *EventService) UpdateEvent(ctx context.Context, identity models.Identity, id int64, req *dto.UpdateEventRequest) (*models.Event, error) {
	if err := s.policy.RequireAdmin(identity); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, apperrors.NewValidationError("event id must be positive")
	}

	eventDate, err := validateEventFields(req.EventName, req.EventDate, req.Description)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		ID:          id,
		EventName:   strings.TrimSpace(req.EventName),
		EventDate:   eventDate,
		Description: strings.TrimSpace(req.Description),
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	s.views.Invalidate(ctx, cache.ViewEvents)
	return s.eventRepo.GetByID(ctx, id)
}

// DeleteEvent removes an event. Admin only.
func (s *EventService) DeleteEvent(ctx context.Context, identity models.Identity, id int64) error {
	if err := s.policy.RequireAdmin(identity); err != nil {
		return err
	}
	if id <= 0 {
		return apperrors.NewValidationError("event id must be positive")
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.views.Invalidate(ctx, cache.ViewEvents)
	return nil
}

func validateEventFields(name, date, description string) (eventDate time.Time, err error) {
	if !validation.IsNonEmpty(name) {
		return eventDate, apperrors.NewValidationError("event name is required")
	}
	if !validation.IsNonEmpty(description) {
		return eventDate, apperrors.NewValidationError("description is required")
	}
	eventDate, parseErr := helpers.ParseDate(date)
	if parseErr != nil {
		return eventDate, apperrors.NewValidationError("event date must be formatted YYYY-MM-DD")
	}
	return eventDate, nil
}
