package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yigit/madrasah/internal/app/models"
	"github.com/yigit/madrasah/internal/app/repositories"
	"github.com/yigit/madrasah/internal/pkg/validation"
)

// AlumniService manages alumni profiles
type AlumniService interface {
	List(ctx context.Context, filter models.AlumniFilter) ([]*models.Alumni, error)
	Get(ctx context.Context, id string) (*models.Alumni, error)
	Submit(ctx context.Context, in *models.AlumniInput) (*models.Alumni, error)
	Update(ctx context.Context, id string, in *models.AlumniInput) (*models.Alumni, error)
	UpdateStatus(ctx context.Context, id string, in *models.AlumniStatusInput) error
}

type alumniService struct {
	repo      repositories.IAlumniRepository
	validator *validation.Validator
	logger    zerolog.Logger
}

// NewAlumniService creates a new AlumniService
func NewAlumniService(repo repositories.IAlumniRepository, validator *validation.Validator, logger zerolog.Logger) AlumniService {
	return &alumniService{repo: repo, validator: validator, logger: logger}
}

func (s *alumniService) List(ctx context.Context, filter models.AlumniFilter) ([]*models.Alumni, error) {
	return s.repo.List(ctx, filter)
}

func (s *alumniService) Get(ctx context.Context, id string) (*models.Alumni, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, MsgAlumniNotFound)
	}
	return a, nil
}

// Submit stores a public submission; it is neither approved nor featured until reviewed
func (s *alumniService) Submit(ctx context.Context, in *models.AlumniInput) (*models.Alumni, error) {
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	a := models.NewAlumni(in)
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	s.logger.Info().Str("alumniID", a.ID).Int("graduationYear", a.GraduationYear).Msg("Alumni profile submitted")
	return a, nil
}

func (s *alumniService) Update(ctx context.Context, id string, in *models.AlumniInput) (*models.Alumni, error) {
	if err := s.validator.ValidatePartial(in); err != nil {
		return nil, err
	}

	a, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, notFound(err, MsgAlumniNotFound)
	}
	return a, nil
}

func (s *alumniService) UpdateStatus(ctx context.Context, id string, in *models.AlumniStatusInput) error {
	if err := s.validator.Validate(in); err != nil {
		return err
	}
	if err := s.repo.UpdateStatus(ctx, id, *in.Approved, in.Featured); err != nil {
		return notFound(err, MsgAlumniNotFound)
	}
	return nil
}
