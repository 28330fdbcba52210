package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yigit/madrasah/internal/app/models"
	"github.com/yigit/madrasah/internal/app/repositories"
	"github.com/yigit/madrasah/internal/pkg/validation"
)

// NewsService manages news articles
type NewsService interface {
	List(ctx context.Context, filter models.NewsFilter) ([]*models.NewsArticle, error)
	Get(ctx context.Context, id string) (*models.NewsArticle, error)
	Create(ctx context.Context, in *models.NewsArticleInput) (*models.NewsArticle, error)
	Update(ctx context.Context, id string, in *models.NewsArticleInput) (*models.NewsArticle, error)
	Delete(ctx context.Context, id string) error
}

type newsService struct {
	repo      repositories.INewsRepository
	validator *validation.Validator
	logger    zerolog.Logger
}

// NewNewsService creates a new NewsService
func NewNewsService(repo repositories.INewsRepository, validator *validation.Validator, logger zerolog.Logger) NewsService {
	return &newsService{repo: repo, validator: validator, logger: logger}
}

func (s *newsService) List(ctx context.Context, filter models.NewsFilter) ([]*models.NewsArticle, error) {
	return s.repo.List(ctx, filter)
}

func (s *newsService) Get(ctx context.Context, id string) (*models.NewsArticle, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, MsgArticleNotFound)
	}
	return a, nil
}

func (s *newsService) Create(ctx context.Context, in *models.NewsArticleInput) (*models.NewsArticle, error) {
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	a := models.NewNewsArticle(in)
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	s.logger.Info().Str("newsID", a.ID).Bool("published", a.Published).Msg("News article created")
	return a, nil
}

// Update applies the supplied fields; publishedAt follows publish transitions
func (s *newsService) Update(ctx context.Context, id string, in *models.NewsArticleInput) (*models.NewsArticle, error) {
	if err := s.validator.ValidatePartial(in); err != nil {
		return nil, err
	}

	a, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, notFound(err, MsgArticleNotFound)
	}
	return a, nil
}

// Delete removes an article; deleting a missing article succeeds
func (s *newsService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
