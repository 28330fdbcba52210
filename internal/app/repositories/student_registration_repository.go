package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/madrasah/internal/app/models"
	"github.com/yigit/madrasah/internal/pkg/logger"
)

var registrationColumns = []string{
	"id", "full_name", "email", "phone", "date_of_birth", "address", "parent_name", "parent_phone",
	"previous_school", "program", "documents", "status", "notes", "created_at", "updated_at",
}

// RegistrationRepository handles student registration database operations
type RegistrationRepository struct {
	base
}

// NewRegistrationRepository creates a new RegistrationRepository
func NewRegistrationRepository(db DBTX) *RegistrationRepository {
	return &RegistrationRepository{base: newBase(db)}
}

func scanRegistration(row rowScanner) (*models.StudentRegistration, error) {
	reg := &models.StudentRegistration{}
	err := row.Scan(&reg.ID, &reg.FullName, &reg.Email, &reg.Phone, &reg.DateOfBirth, &reg.Address,
		&reg.ParentName, &reg.ParentPhone, &reg.PreviousSchool, &reg.Program, &reg.Documents,
		&reg.Status, &reg.Notes, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return reg, nil
}

// Create inserts a registration with status pending unless one is set
func (r *RegistrationRepository) Create(ctx context.Context, reg *models.StudentRegistration) error {
	reg.PrepareForInsert(r.now())

	query, args, err := r.sb.Insert("student_registrations").
		Columns(registrationColumns...).
		Values(reg.ID, reg.FullName, reg.Email, reg.Phone, reg.DateOfBirth, reg.Address,
			reg.ParentName, reg.ParentPhone, reg.PreviousSchool, reg.Program, reg.Documents,
			reg.Status, reg.Notes, reg.CreatedAt, reg.UpdatedAt).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create registration SQL")
		return fmt.Errorf("failed to build create registration query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error creating registration: %w", err)
	}
	return nil
}

// List returns every registration, newest first
func (r *RegistrationRepository) List(ctx context.Context) ([]*models.StudentRegistration, error) {
	query, args, err := r.sb.Select(registrationColumns...).
		From("student_registrations").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list registrations query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying registrations: %w", err)
	}
	defer rows.Close()

	regs := []*models.StudentRegistration{}
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning registration row: %w", err)
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registration rows: %w", err)
	}
	return regs, nil
}

// GetByID retrieves a registration by id
func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*models.StudentRegistration, error) {
	query, args, err := r.sb.Select(registrationColumns...).
		From("student_registrations").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get registration query: %w", err)
	}

	reg, err := scanRegistration(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting registration: %w", err)
	}
	return reg, nil
}

// UpdateStatus sets the status, and the notes when non-empty, and stamps updated_at
func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id string, status models.RegistrationStatus, notes *string) error {
	q := r.sb.Update("student_registrations").
		Set("status", status).
		Set("updated_at", r.now())
	if notes != nil && *notes != "" {
		q = q.Set("notes", *notes)
	}

	query, args, err := q.Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update registration status query: %w", err)
	}

	if err := r.execAffecting(ctx, query, args); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		logger.Error().Err(err).Str("registrationID", id).Msg("Error updating registration status")
		return fmt.Errorf("error updating registration status: %w", err)
	}
	return nil
}
