package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yigit/madrasah/internal/app/models"
	"github.com/yigit/madrasah/internal/app/repositories"
	"github.com/yigit/madrasah/internal/pkg/validation"
)

// EventService manages the academic calendar
type EventService interface {
	List(ctx context.Context, filter models.EventFilter) ([]*models.AcademicEvent, error)
	Get(ctx context.Context, id string) (*models.AcademicEvent, error)
	Create(ctx context.Context, in *models.AcademicEventInput) (*models.AcademicEvent, error)
	Update(ctx context.Context, id string, in *models.AcademicEventInput) (*models.AcademicEvent, error)
	Delete(ctx context.Context, id string) error
}

type eventService struct {
	repo      repositories.IEventRepository
	validator *validation.Validator
	logger    zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(repo repositories.IEventRepository, validator *validation.Validator, logger zerolog.Logger) EventService {
	return &eventService{repo: repo, validator: validator, logger: logger}
}

func (s *eventService) List(ctx context.Context, filter models.EventFilter) ([]*models.AcademicEvent, error) {
	return s.repo.List(ctx, filter)
}

func (s *eventService) Get(ctx context.Context, id string) (*models.AcademicEvent, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, MsgEventNotFound)
	}
	return e, nil
}

func (s *eventService) Create(ctx context.Context, in *models.AcademicEventInput) (*models.AcademicEvent, error) {
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	e := models.NewAcademicEvent(in)
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	s.logger.Info().Str("eventID", e.ID).Time("eventDate", e.EventDate).Msg("Academic event created")
	return e, nil
}

func (s *eventService) Update(ctx context.Context, id string, in *models.AcademicEventInput) (*models.AcademicEvent, error) {
	if err := s.validator.ValidatePartial(in); err != nil {
		return nil, err
	}

	e, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, notFound(err, MsgEventNotFound)
	}
	return e, nil
}

// Delete removes an event; deleting a missing event succeeds
func (s *eventService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
