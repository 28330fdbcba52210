// Package memory keeps every repository in process memory. It backs local runs without
// PostgreSQL and the HTTP tests; data is lost on restart.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/yigit/madrasah/internal/app/models"
	"github.com/yigit/madrasah/internal/app/repositories"
	"github.com/yigit/madrasah/internal/pkg/helpers"
)

type row[T any] struct {
	seq int
	val T
}

// table is a mutex guarded map keyed by id. Rows are stored and returned by value.
type table[T any] struct {
	mutex sync.RWMutex
	seq   int
	rows  map[string]*row[T]
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: map[string]*row[T]{}}
}

func (t *table[T]) insert(id string, v T) {
	t.seq++
	t.rows[id] = &row[T]{seq: t.seq, val: v}
}

// query returns copies of the rows accepted by keep, most recently inserted first
func (t *table[T]) query(keep func(T) bool) []row[T] {
	out := make([]row[T], 0, len(t.rows))
	for _, r := range t.rows {
		if keep == nil || keep(r.val) {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq > out[j].seq })
	return out
}

// DB holds the tables shared by the repositories of one store
type DB struct {
	users         *table[models.User]
	contacts      *table[models.ContactMessage]
	news          *table[models.NewsArticle]
	registrations *table[models.StudentRegistration]
	alumni        *table[models.Alumni]
	events        *table[models.AcademicEvent]

	now func() time.Time
}

// NewDB creates an empty store
func NewDB() *DB {
	return &DB{
		users:         newTable[models.User](),
		contacts:      newTable[models.ContactMessage](),
		news:          newTable[models.NewsArticle](),
		registrations: newTable[models.StudentRegistration](),
		alumni:        newTable[models.Alumni](),
		events:        newTable[models.AcademicEvent](),
		now:           helpers.NowUTC,
	}
}

// NewRepositories wires every repository to a fresh in-memory store
func NewRepositories() *repositories.Repositories {
	return NewDB().Repositories()
}

// Repositories wires every repository to db
func (db *DB) Repositories() *repositories.Repositories {
	return &repositories.Repositories{
		UserRepository:           NewUserRepository(db),
		ContactMessageRepository: NewContactMessageRepository(db),
		NewsRepository:           NewNewsRepository(db),
		RegistrationRepository:   NewRegistrationRepository(db),
		AlumniRepository:         NewAlumniRepository(db),
		EventRepository:          NewEventRepository(db),
	}
}

func boolMatches(filter *bool, v bool) bool {
	return filter == nil || *filter == v
}

// newestFirst orders by created_at descending; equal timestamps keep insertion recency
func newestFirst[T any](rows []row[T], createdAt func(*T) time.Time) []*T {
	sort.SliceStable(rows, func(i, j int) bool {
		return createdAt(&rows[i].val).After(createdAt(&rows[j].val))
	})
	out := make([]*T, len(rows))
	for i := range rows {
		v := rows[i].val
		out[i] = &v
	}
	return out
}
