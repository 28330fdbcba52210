package memory

import (
	"context"
	"sort"

	"github.com/yigit/madrasah/internal/app/models"
	"github.com/yigit/madrasah/internal/app/repositories"
)

type alumniRepository struct {
	db  *table[models.Alumni]
	src *DB
}

// NewAlumniRepository creates an in-memory alumni repository
func NewAlumniRepository(db *DB) repositories.IAlumniRepository {
	return &alumniRepository{db: db.alumni, src: db}
}

func (repo *alumniRepository) Create(_ context.Context, a *models.Alumni) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	a.PrepareForInsert(repo.src.now())
	repo.db.insert(a.ID, *a)
	return nil
}

// List orders by graduation year, latest class first, then newest submission
func (repo *alumniRepository) List(_ context.Context, filter models.AlumniFilter) ([]*models.Alumni, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	rows := repo.db.query(func(a models.Alumni) bool {
		return boolMatches(filter.Approved, a.Approved) && boolMatches(filter.Featured, a.Featured)
	})
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].val, rows[j].val
		if a.GraduationYear != b.GraduationYear {
			return a.GraduationYear > b.GraduationYear
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	out := make([]*models.Alumni, len(rows))
	for i := range rows {
		a := rows[i].val
		out[i] = &a
	}
	return out, nil
}

func (repo *alumniRepository) GetByID(_ context.Context, id string) (*models.Alumni, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if r, ok := repo.db.rows[id]; ok {
		a := r.val
		return &a, nil
	}
	return nil, repositories.ErrNotFound
}

func (repo *alumniRepository) Update(_ context.Context, id string, in *models.AlumniInput) (*models.Alumni, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	r, ok := repo.db.rows[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	r.val.Apply(in)
	r.val.UpdatedAt = repo.src.now()

	a := r.val
	return &a, nil
}

func (repo *alumniRepository) UpdateStatus(_ context.Context, id string, approved bool, featured *bool) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	r, ok := repo.db.rows[id]
	if !ok {
		return repositories.ErrNotFound
	}
	r.val.Approved = approved
	if featured != nil {
		r.val.Featured = *featured
	}
	r.val.UpdatedAt = repo.src.now()
	return nil
}
