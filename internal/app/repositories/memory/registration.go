package memory

import (
	"context"
	"time"

	"github.com/yigit/madrasah/internal/app/models"
	"github.com/yigit/madrasah/internal/app/repositories"
)

type registrationRepository struct {
	db  *table[models.StudentRegistration]
	src *DB
}

// NewRegistrationRepository creates an in-memory student registration repository
func NewRegistrationRepository(db *DB) repositories.IRegistrationRepository {
	return &registrationRepository{db: db.registrations, src: db}
}

func (repo *registrationRepository) Create(_ context.Context, reg *models.StudentRegistration) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	reg.PrepareForInsert(repo.src.now())
	repo.db.insert(reg.ID, *reg)
	return nil
}

func (repo *registrationRepository) List(_ context.Context) ([]*models.StudentRegistration, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return newestFirst(repo.db.query(nil), func(r *models.StudentRegistration) time.Time { return r.CreatedAt }), nil
}

func (repo *registrationRepository) GetByID(_ context.Context, id string) (*models.StudentRegistration, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if r, ok := repo.db.rows[id]; ok {
		reg := r.val
		return &reg, nil
	}
	return nil, repositories.ErrNotFound
}

func (repo *registrationRepository) UpdateStatus(_ context.Context, id string, status models.RegistrationStatus, notes *string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	r, ok := repo.db.rows[id]
	if !ok {
		return repositories.ErrNotFound
	}
	r.val.Status = status
	if notes != nil && *notes != "" {
		n := *notes
		r.val.Notes = &n
	}
	r.val.UpdatedAt = repo.src.now()
	return nil
}
