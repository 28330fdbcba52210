package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yigit/madrasah/internal/app/models"
	"github.com/yigit/madrasah/internal/app/repositories"
	"github.com/yigit/madrasah/internal/pkg/validation"
)

// ContactService handles contact form messages
type ContactService interface {
	Submit(ctx context.Context, in *models.ContactMessageInput) (*models.ContactMessage, error)
	List(ctx context.Context) ([]*models.ContactMessage, error)
	UpdateStatus(ctx context.Context, id string, in *models.ContactStatusInput) error
}

type contactService struct {
	repo      repositories.IContactMessageRepository
	validator *validation.Validator
	logger    zerolog.Logger
}

// NewContactService creates a new ContactService
func NewContactService(repo repositories.IContactMessageRepository, validator *validation.Validator, logger zerolog.Logger) ContactService {
	return &contactService{repo: repo, validator: validator, logger: logger}
}

// Submit validates the trimmed form and stores it as unread
func (s *contactService) Submit(ctx context.Context, in *models.ContactMessageInput) (*models.ContactMessage, error) {
	in.Trim()
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	msg := &models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
		Status:  models.ContactStatusUnread,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	s.logger.Info().Str("messageID", msg.ID).Msg("Contact message received")
	return msg, nil
}

func (s *contactService) List(ctx context.Context) ([]*models.ContactMessage, error) {
	return s.repo.List(ctx)
}

func (s *contactService) UpdateStatus(ctx context.Context, id string, in *models.ContactStatusInput) error {
	if err := s.validator.Validate(in); err != nil {
		return err
	}
	if err := s.repo.UpdateStatus(ctx, id, models.ContactStatus(*in.Status)); err != nil {
		return notFound(err, MsgMessageNotFound)
	}
	return nil
}
