package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/yigit/madrasah/internal/app/models"
	"github.com/yigit/madrasah/internal/app/repositories"
	"github.com/yigit/madrasah/internal/pkg/apperrors"
	"github.com/yigit/madrasah/internal/pkg/auth"
	"github.com/yigit/madrasah/internal/pkg/validation"
)

// AuthService registers administrators and checks their credentials
type AuthService interface {
	Register(ctx context.Context, in *models.UserInput) (*models.User, error)
	Login(ctx context.Context, in *models.LoginInput) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
}

type authService struct {
	userRepo          repositories.IUserRepository
	hasher            *auth.PasswordHasher
	validator         *validation.Validator
	allowRegistration bool
	logger            zerolog.Logger

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	hasher *auth.PasswordHasher,
	validator *validation.Validator,
	allowRegistration bool,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		userRepo:          userRepo,
		hasher:            hasher,
		validator:         validator,
		allowRegistration: allowRegistration,
		logger:            logger,
	}
}

// Register creates a user with a hashed password. It does not log the user in.
func (s *authService) Register(ctx context.Context, in *models.UserInput) (*models.User, error) {
	if !s.allowRegistration {
		return nil, apperrors.ErrRegistrationDisabled
	}
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	_, err := s.userRepo.GetByUsername(ctx, in.Username)
	switch {
	case err == nil:
		return nil, apperrors.ErrUsernameTaken
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: in.Username,
		Password: hashed,
		Role:     models.DefaultRole,
	}
	if in.Role != nil {
		user.Role = models.Role(*in.Role)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("userID", user.ID).Str("username", user.Username).Msg("User registered")
	return user, nil
}

// Login returns the user whose credentials match. Unknown users and wrong passwords
// both yield apperrors.ErrInvalidCredentials after a bcrypt comparison.
func (s *authService) Login(ctx context.Context, in *models.LoginInput) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		_, _ = s.hasher.Compare(s.dummy(), in.Password)
		return nil, apperrors.ErrInvalidCredentials
	}

	ok, err := s.hasher.Compare(user.Password, in.Password)
	if err != nil {
		s.logger.Error().Err(err).Str("userID", user.ID).Msg("Stored password hash is unreadable")
		return nil, apperrors.ErrInvalidCredentials
	}
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// GetUser returns the user by id
func (s *authService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, MsgUserNotFound)
	}
	return user, nil
}

// dummy returns a hash with the configured cost, compared against when the user does not exist
func (s *authService) dummy() string {
	s.dummyOnce.Do(func() {
		hashed, err := s.hasher.Hash("madrasah-dummy-password")
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to prepare dummy password hash")
			return
		}
		s.dummyHash = hashed
	})
	return s.dummyHash
}
