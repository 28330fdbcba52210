package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/madrasah/internal/app/models"
	"github.com/yigit/madrasah/internal/pkg/logger"
)

var newsColumns = []string{"id", "title", "content", "excerpt", "author", "featured", "published", "published_at", "created_at", "updated_at"}

// publishedAtExpr keeps published_at in step with the published flag within the UPDATE itself.
// Column references see the row as it was before the update.
const publishedAtExpr = "CASE WHEN ?::boolean AND NOT published THEN ?::timestamptz WHEN NOT ?::boolean THEN NULL ELSE published_at END"

// NewsRepository handles news article database operations
type NewsRepository struct {
	base
}

// NewNewsRepository creates a new NewsRepository
func NewNewsRepository(db DBTX) *NewsRepository {
	return &NewsRepository{base: newBase(db)}
}

func scanNewsArticle(row rowScanner) (*models.NewsArticle, error) {
	a := &models.NewsArticle{}
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.Excerpt, &a.Author, &a.Featured, &a.Published, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts an article
func (r *NewsRepository) Create(ctx context.Context, article *models.NewsArticle) error {
	article.PrepareForInsert(r.now())

	query, args, err := r.sb.Insert("news_articles").
		Columns(newsColumns...).
		Values(article.ID, article.Title, article.Content, article.Excerpt, article.Author,
			article.Featured, article.Published, article.PublishedAt, article.CreatedAt, article.UpdatedAt).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create news article SQL")
		return fmt.Errorf("failed to build create news article query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error creating news article: %w", err)
	}
	return nil
}

// List returns articles newest first, optionally only (un)published ones
func (r *NewsRepository) List(ctx context.Context, filter models.NewsFilter) ([]*models.NewsArticle, error) {
	q := r.sb.Select(newsColumns...).From("news_articles")
	if where := eqFilter(map[string]*bool{"published": filter.Published}); len(where) > 0 {
		q = q.Where(where)
	}

	query, args, err := q.OrderBy("created_at DESC").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list news SQL")
		return nil, fmt.Errorf("failed to build list news query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying news articles: %w", err)
	}
	defer rows.Close()

	articles := []*models.NewsArticle{}
	for rows.Next() {
		a, err := scanNewsArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning news article row: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating news article rows: %w", err)
	}
	return articles, nil
}

// GetByID retrieves an article by id
func (r *NewsRepository) GetByID(ctx context.Context, id string) (*models.NewsArticle, error) {
	query, args, err := r.sb.Select(newsColumns...).
		From("news_articles").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get news article query: %w", err)
	}

	a, err := scanNewsArticle(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting news article: %w", err)
	}
	return a, nil
}

// Update merges the supplied fields and returns the stored article
func (r *NewsRepository) Update(ctx context.Context, id string, in *models.NewsArticleInput) (*models.NewsArticle, error) {
	now := r.now()
	set := map[string]interface{}{"updated_at": now}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Content != nil {
		set["content"] = *in.Content
	}
	if in.Excerpt != nil {
		set["excerpt"] = *in.Excerpt
	}
	if in.Author != nil {
		set["author"] = *in.Author
	}
	if in.Featured != nil {
		set["featured"] = *in.Featured
	}
	if in.Published != nil {
		set["published"] = *in.Published
		set["published_at"] = squirrel.Expr(publishedAtExpr, *in.Published, now, *in.Published)
	}

	query, args, err := r.sb.Update("news_articles").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(newsColumns, ", ")).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update news article SQL")
		return nil, fmt.Errorf("failed to build update news article query: %w", err)
	}

	a, err := scanNewsArticle(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("newsID", id).Msg("Error executing update news article query")
		return nil, fmt.Errorf("error updating news article: %w", err)
	}
	return a, nil
}

// Delete removes an article; a missing id is not an error
func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	query, args, err := r.sb.Delete("news_articles").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete news article query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error deleting news article: %w", err)
	}
	return nil
}

// Count returns the number of stored articles
func (r *NewsRepository) Count(ctx context.Context) (int, error) {
	query, args, err := r.sb.Select("COUNT(*)").From("news_articles").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count news query: %w", err)
	}

	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting news articles: %w", err)
	}
	return n, nil
}
