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

var alumniColumns = []string{
	"id", "full_name", "graduation_year", "program", "current_job", "company", "achievement",
	"testimonial", "photo", "email", "linkedin", "featured", "approved", "created_at", "updated_at",
}

// AlumniRepository handles alumni database operations
type AlumniRepository struct {
	base
}

// NewAlumniRepository creates a new AlumniRepository
func NewAlumniRepository(db DBTX) *AlumniRepository {
	return &AlumniRepository{base: newBase(db)}
}

func scanAlumni(row rowScanner) (*models.Alumni, error) {
	a := &models.Alumni{}
	err := row.Scan(&a.ID, &a.FullName, &a.GraduationYear, &a.Program, &a.CurrentJob, &a.Company,
		&a.Achievement, &a.Testimonial, &a.Photo, &a.Email, &a.LinkedIn, &a.Featured, &a.Approved,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts an alumni profile
func (r *AlumniRepository) Create(ctx context.Context, a *models.Alumni) error {
	a.PrepareForInsert(r.now())

	query, args, err := r.sb.Insert("alumni").
		Columns(alumniColumns...).
		Values(a.ID, a.FullName, a.GraduationYear, a.Program, a.CurrentJob, a.Company, a.Achievement,
			a.Testimonial, a.Photo, a.Email, a.LinkedIn, a.Featured, a.Approved, a.CreatedAt, a.UpdatedAt).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create alumni SQL")
		return fmt.Errorf("failed to build create alumni query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error creating alumni: %w", err)
	}
	return nil
}

// List returns profiles by graduation year, most recent class first
func (r *AlumniRepository) List(ctx context.Context, filter models.AlumniFilter) ([]*models.Alumni, error) {
	q := r.sb.Select(alumniColumns...).From("alumni")
	where := eqFilter(map[string]*bool{"approved": filter.Approved, "featured": filter.Featured})
	if len(where) > 0 {
		q = q.Where(where)
	}

	query, args, err := q.OrderBy("graduation_year DESC", "created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list alumni query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying alumni: %w", err)
	}
	defer rows.Close()

	list := []*models.Alumni{}
	for rows.Next() {
		a, err := scanAlumni(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning alumni row: %w", err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alumni rows: %w", err)
	}
	return list, nil
}

// GetByID retrieves a profile by id
func (r *AlumniRepository) GetByID(ctx context.Context, id string) (*models.Alumni, error) {
	query, args, err := r.sb.Select(alumniColumns...).
		From("alumni").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get alumni query: %w", err)
	}

	a, err := scanAlumni(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting alumni: %w", err)
	}
	return a, nil
}

// Update merges the supplied fields and returns the stored profile
func (r *AlumniRepository) Update(ctx context.Context, id string, in *models.AlumniInput) (*models.Alumni, error) {
	set := map[string]interface{}{"updated_at": r.now()}
	for col, v := range map[string]*string{
		"full_name":   in.FullName,
		"program":     in.Program,
		"current_job": in.CurrentJob,
		"company":     in.Company,
		"achievement": in.Achievement,
		"testimonial": in.Testimonial,
		"photo":       in.Photo,
		"email":       in.Email,
		"linkedin":    in.LinkedIn,
	} {
		if v != nil {
			set[col] = *v
		}
	}
	if in.GraduationYear != nil {
		set["graduation_year"] = *in.GraduationYear
	}

	query, args, err := r.sb.Update("alumni").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(alumniColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update alumni query: %w", err)
	}

	a, err := scanAlumni(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("alumniID", id).Msg("Error executing update alumni query")
		return nil, fmt.Errorf("error updating alumni: %w", err)
	}
	return a, nil
}

// UpdateStatus sets approval, and featuring when supplied, and stamps updated_at
func (r *AlumniRepository) UpdateStatus(ctx context.Context, id string, approved bool, featured *bool) error {
	q := r.sb.Update("alumni").
		Set("approved", approved).
		Set("updated_at", r.now())
	if featured != nil {
		q = q.Set("featured", *featured)
	}

	query, args, err := q.Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update alumni status query: %w", err)
	}

	if err := r.execAffecting(ctx, query, args); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		logger.Error().Err(err).Str("alumniID", id).Msg("Error updating alumni status")
		return fmt.Errorf("error updating alumni status: %w", err)
	}
	return nil
}
