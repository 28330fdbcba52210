package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/madrasah/internal/app/models"
	"github.com/yigit/madrasah/internal/pkg/apperrors"
	"github.com/yigit/madrasah/internal/pkg/helpers"
)

// ErrNotFound is returned when a row with the requested id does not exist
var ErrNotFound = apperrors.ErrResourceNotFound

// DBTX is the subset of *sql.DB used by the repositories
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// IUserRepository stores administrator accounts
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// IContactMessageRepository stores contact form messages
type IContactMessageRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
	List(ctx context.Context) ([]*models.ContactMessage, error)
	GetByID(ctx context.Context, id string) (*models.ContactMessage, error)
	UpdateStatus(ctx context.Context, id string, status models.ContactStatus) error
}

// INewsRepository stores news articles
type INewsRepository interface {
	Create(ctx context.Context, article *models.NewsArticle) error
	List(ctx context.Context, filter models.NewsFilter) ([]*models.NewsArticle, error)
	GetByID(ctx context.Context, id string) (*models.NewsArticle, error)
	Update(ctx context.Context, id string, in *models.NewsArticleInput) (*models.NewsArticle, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// IRegistrationRepository stores student registrations
type IRegistrationRepository interface {
	Create(ctx context.Context, reg *models.StudentRegistration) error
	List(ctx context.Context) ([]*models.StudentRegistration, error)
	GetByID(ctx context.Context, id string) (*models.StudentRegistration, error)
	UpdateStatus(ctx context.Context, id string, status models.RegistrationStatus, notes *string) error
}

// IAlumniRepository stores alumni profiles
type IAlumniRepository interface {
	Create(ctx context.Context, alumni *models.Alumni) error
	List(ctx context.Context, filter models.AlumniFilter) ([]*models.Alumni, error)
	GetByID(ctx context.Context, id string) (*models.Alumni, error)
	Update(ctx context.Context, id string, in *models.AlumniInput) (*models.Alumni, error)
	UpdateStatus(ctx context.Context, id string, approved bool, featured *bool) error
}

// IEventRepository stores academic calendar events
type IEventRepository interface {
	Create(ctx context.Context, event *models.AcademicEvent) error
	List(ctx context.Context, filter models.EventFilter) ([]*models.AcademicEvent, error)
	GetByID(ctx context.Context, id string) (*models.AcademicEvent, error)
	Update(ctx context.Context, id string, in *models.AcademicEventInput) (*models.AcademicEvent, error)
	Delete(ctx context.Context, id string) error
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository           IUserRepository
	ContactMessageRepository IContactMessageRepository
	NewsRepository           INewsRepository
	RegistrationRepository   IRegistrationRepository
	AlumniRepository         IAlumniRepository
	EventRepository          IEventRepository
}

// NewRepositories initializes the PostgreSQL repositories
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		UserRepository:           NewUserRepository(db),
		ContactMessageRepository: NewContactMessageRepository(db),
		NewsRepository:           NewNewsRepository(db),
		RegistrationRepository:   NewRegistrationRepository(db),
		AlumniRepository:         NewAlumniRepository(db),
		EventRepository:          NewEventRepository(db),
	}
}

// base is embedded by every PostgreSQL repository
type base struct {
	db  DBTX
	sb  squirrel.StatementBuilderType
	now func() time.Time
}

func newBase(db DBTX) base {
	return base{
		db:  db,
		sb:  squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		now: helpers.NowUTC,
	}
}

// execAffecting runs an UPDATE and maps zero affected rows to ErrNotFound
func (b base) execAffecting(ctx context.Context, query string, args []interface{}) error {
	res, err := b.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// eqFilter collects the equality conditions that were supplied
func eqFilter(pairs map[string]*bool) squirrel.Eq {
	eq := squirrel.Eq{}
	for col, v := range pairs {
		if v != nil {
			eq[col] = *v
		}
	}
	return eq
}
