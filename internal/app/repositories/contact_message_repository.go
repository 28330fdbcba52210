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

var contactMessageColumns = []string{"id", "name", "email", "subject", "message", "status", "created_at", "updated_at"}

// ContactMessageRepository handles contact message database operations
type ContactMessageRepository struct {
	base
}

// NewContactMessageRepository creates a new ContactMessageRepository
func NewContactMessageRepository(db DBTX) *ContactMessageRepository {
	return &ContactMessageRepository{base: newBase(db)}
}

func scanContactMessage(row rowScanner) (*models.ContactMessage, error) {
	m := &models.ContactMessage{}
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Create inserts a message with status unread unless one is set
func (r *ContactMessageRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	msg.PrepareForInsert(r.now())

	query, args, err := r.sb.Insert("contact_messages").
		Columns(contactMessageColumns...).
		Values(msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message, msg.Status, msg.CreatedAt, msg.UpdatedAt).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create contact message SQL")
		return fmt.Errorf("failed to build create contact message query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error creating contact message: %w", err)
	}
	return nil
}

// List returns every message, newest first
func (r *ContactMessageRepository) List(ctx context.Context) ([]*models.ContactMessage, error) {
	query, args, err := r.sb.Select(contactMessageColumns...).
		From("contact_messages").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list contact messages SQL")
		return nil, fmt.Errorf("failed to build list contact messages query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying contact messages: %w", err)
	}
	defer rows.Close()

	messages := []*models.ContactMessage{}
	for rows.Next() {
		m, err := scanContactMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning contact message row: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact message rows: %w", err)
	}
	return messages, nil
}

// GetByID retrieves a message by id
func (r *ContactMessageRepository) GetByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	query, args, err := r.sb.Select(contactMessageColumns...).
		From("contact_messages").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get contact message query: %w", err)
	}

	m, err := scanContactMessage(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting contact message: %w", err)
	}
	return m, nil
}

// UpdateStatus sets the workflow status and stamps updated_at
func (r *ContactMessageRepository) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) error {
	query, args, err := r.sb.Update("contact_messages").
		Set("status", status).
		Set("updated_at", r.now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update contact message status query: %w", err)
	}

	if err := r.execAffecting(ctx, query, args); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		logger.Error().Err(err).Str("contactMessageID", id).Msg("Error updating contact message status")
		return fmt.Errorf("error updating contact message status: %w", err)
	}
	return nil
}
