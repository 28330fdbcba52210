package memory

import (
	"context"
	"sort"

	"github.com/yigit/madrasah/internal/app/models"
	"github.com/yigit/madrasah/internal/app/repositories"
)

type eventRepository struct {
	db  *table[models.AcademicEvent]
	src *DB
}

// NewEventRepository creates an in-memory academic event repository
func NewEventRepository(db *DB) repositories.IEventRepository {
	return &eventRepository{db: db.events, src: db}
}

func (repo *eventRepository) Create(_ context.Context, e *models.AcademicEvent) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	e.PrepareForInsert(repo.src.now())
	repo.db.insert(e.ID, *e)
	return nil
}

// List orders by event date, soonest first
func (repo *eventRepository) List(_ context.Context, filter models.EventFilter) ([]*models.AcademicEvent, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	rows := repo.db.query(func(e models.AcademicEvent) bool { return boolMatches(filter.IsPublic, e.IsPublic) })
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !a.val.EventDate.Equal(b.val.EventDate) {
			return a.val.EventDate.Before(b.val.EventDate)
		}
		if !a.val.CreatedAt.Equal(b.val.CreatedAt) {
			return a.val.CreatedAt.Before(b.val.CreatedAt)
		}
		return a.seq < b.seq
	})

	out := make([]*models.AcademicEvent, len(rows))
	for i := range rows {
		e := rows[i].val
		out[i] = &e
	}
	return out, nil
}

func (repo *eventRepository) GetByID(_ context.Context, id string) (*models.AcademicEvent, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if r, ok := repo.db.rows[id]; ok {
		e := r.val
		return &e, nil
	}
	return nil, repositories.ErrNotFound
}

func (repo *eventRepository) Update(_ context.Context, id string, in *models.AcademicEventInput) (*models.AcademicEvent, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	r, ok := repo.db.rows[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	r.val.Apply(in)
	r.val.UpdatedAt = repo.src.now()

	e := r.val
	return &e, nil
}

func (repo *eventRepository) Delete(_ context.Context, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	delete(repo.db.rows, id)
	return nil
}
