package memory

import (
	"context"
	"time"

	"github.com/yigit/madrasah/internal/app/models"
	"github.com/yigit/madrasah/internal/app/repositories"
)

type newsRepository struct {
	db  *table[models.NewsArticle]
	src *DB
}

// NewNewsRepository creates an in-memory news repository
func NewNewsRepository(db *DB) repositories.INewsRepository {
	return &newsRepository{db: db.news, src: db}
}

func (repo *newsRepository) Create(_ context.Context, article *models.NewsArticle) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	article.PrepareForInsert(repo.src.now())
	repo.db.insert(article.ID, *article)
	return nil
}

func (repo *newsRepository) List(_ context.Context, filter models.NewsFilter) ([]*models.NewsArticle, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	rows := repo.db.query(func(a models.NewsArticle) bool { return boolMatches(filter.Published, a.Published) })
	return newestFirst(rows, func(a *models.NewsArticle) time.Time { return a.CreatedAt }), nil
}

func (repo *newsRepository) GetByID(_ context.Context, id string) (*models.NewsArticle, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if r, ok := repo.db.rows[id]; ok {
		a := r.val
		return &a, nil
	}
	return nil, repositories.ErrNotFound
}

func (repo *newsRepository) Update(_ context.Context, id string, in *models.NewsArticleInput) (*models.NewsArticle, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	r, ok := repo.db.rows[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	now := repo.src.now()
	r.val.Apply(in, now)
	r.val.UpdatedAt = now

	a := r.val
	return &a, nil
}

func (repo *newsRepository) Delete(_ context.Context, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	delete(repo.db.rows, id)
	return nil
}

func (repo *newsRepository) Count(_ context.Context) (int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return len(repo.db.rows), nil
}
