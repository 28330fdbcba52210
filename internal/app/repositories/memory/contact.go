package memory

import (
	"context"
	"time"

	"github.com/yigit/madrasah/internal/app/models"
	"github.com/yigit/madrasah/internal/app/repositories"
)

type contactMessageRepository struct {
	db  *table[models.ContactMessage]
	src *DB
}

// NewContactMessageRepository creates an in-memory contact message repository
func NewContactMessageRepository(db *DB) repositories.IContactMessageRepository {
	return &contactMessageRepository{db: db.contacts, src: db}
}

func (repo *contactMessageRepository) Create(_ context.Context, msg *models.ContactMessage) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	msg.PrepareForInsert(repo.src.now())
	repo.db.insert(msg.ID, *msg)
	return nil
}

func (repo *contactMessageRepository) List(_ context.Context) ([]*models.ContactMessage, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return newestFirst(repo.db.query(nil), func(m *models.ContactMessage) time.Time { return m.CreatedAt }), nil
}

func (repo *contactMessageRepository) GetByID(_ context.Context, id string) (*models.ContactMessage, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if r, ok := repo.db.rows[id]; ok {
		m := r.val
		return &m, nil
	}
	return nil, repositories.ErrNotFound
}

func (repo *contactMessageRepository) UpdateStatus(_ context.Context, id string, status models.ContactStatus) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	r, ok := repo.db.rows[id]
	if !ok {
		return repositories.ErrNotFound
	}
	r.val.Status = status
	r.val.UpdatedAt = repo.src.now()
	return nil
}
