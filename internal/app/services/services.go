package services

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/yigit/madrasah/internal/app/repositories"
	"github.com/yigit/madrasah/internal/pkg/apperrors"
	"github.com/yigit/madrasah/internal/pkg/auth"
	"github.com/yigit/madrasah/internal/pkg/validation"
)

// Client-facing not-found messages
const (
	MsgUserNotFound         = "User not found"
	MsgMessageNotFound      = "Message not found"
	MsgArticleNotFound      = "Article not found"
	MsgRegistrationNotFound = "Registration not found"
	MsgAlumniNotFound       = "Alumni not found"
	MsgEventNotFound        = "Event not found"
)

// Services bundles every service used by the controllers
type Services struct {
	Auth         AuthService
	Contact      ContactService
	News         NewsService
	Registration RegistrationService
	Alumni       AlumniService
	Event        EventService
}

// Options configures NewServices
type Options struct {
	BcryptCost        int
	AllowRegistration bool
}

// NewServices wires the services to repos
func NewServices(repos *repositories.Repositories, opts Options, lgr zerolog.Logger) *Services {
	v := validation.New()
	return &Services{
		Auth:         NewAuthService(repos.UserRepository, auth.NewPasswordHasher(opts.BcryptCost), v, opts.AllowRegistration, lgr),
		Contact:      NewContactService(repos.ContactMessageRepository, v, lgr),
		News:         NewNewsService(repos.NewsRepository, v, lgr),
		Registration: NewRegistrationService(repos.RegistrationRepository, v, lgr),
		Alumni:       NewAlumniService(repos.AlumniRepository, v, lgr),
		Event:        NewEventService(repos.EventRepository, v, lgr),
	}
}

// notFound replaces a repository miss with a not-found error carrying message
func notFound(err error, message string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.NewResourceNotFoundError(message)
	}
	return err
}
