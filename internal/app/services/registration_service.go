package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yigit/madrasah/internal/app/models"
	"github.com/yigit/madrasah/internal/app/repositories"
	"github.com/yigit/madrasah/internal/pkg/validation"
)

// RegistrationService handles student registrations
type RegistrationService interface {
	Submit(ctx context.Context, in *models.StudentRegistrationInput) (*models.StudentRegistration, error)
	List(ctx context.Context) ([]*models.StudentRegistration, error)
	Get(ctx context.Context, id string) (*models.StudentRegistration, error)
	UpdateStatus(ctx context.Context, id string, in *models.RegistrationStatusInput) error
}

type registrationService struct {
	repo      repositories.IRegistrationRepository
	validator *validation.Validator
	logger    zerolog.Logger
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(repo repositories.IRegistrationRepository, validator *validation.Validator, logger zerolog.Logger) RegistrationService {
	return &registrationService{repo: repo, validator: validator, logger: logger}
}

// Submit stores a new registration as pending
func (s *registrationService) Submit(ctx context.Context, in *models.StudentRegistrationInput) (*models.StudentRegistration, error) {
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	reg := models.NewStudentRegistration(in)
	if err := s.repo.Create(ctx, reg); err != nil {
		return nil, err
	}
	s.logger.Info().Str("registrationID", reg.ID).Str("program", reg.Program).Msg("Student registration received")
	return reg, nil
}

func (s *registrationService) List(ctx context.Context) ([]*models.StudentRegistration, error) {
	return s.repo.List(ctx)
}

func (s *registrationService) Get(ctx context.Context, id string) (*models.StudentRegistration, error) {
	reg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, MsgRegistrationNotFound)
	}
	return reg, nil
}

func (s *registrationService) UpdateStatus(ctx context.Context, id string, in *models.RegistrationStatusInput) error {
	if err := s.validator.Validate(in); err != nil {
		return err
	}
	if err := s.repo.UpdateStatus(ctx, id, models.RegistrationStatus(*in.Status), in.Notes); err != nil {
		return notFound(err, MsgRegistrationNotFound)
	}
	return nil
}
