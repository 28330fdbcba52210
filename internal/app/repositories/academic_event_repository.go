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

var eventColumns = []string{"id", "title", "description", "event_date", "event_time", "location", "category", "is_public", "created_at", "updated_at"}

// EventRepository handles academic event database operations
type EventRepository struct {
	base
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db DBTX) *EventRepository {
	return &EventRepository{base: newBase(db)}
}

func scanEvent(row rowScanner) (*models.AcademicEvent, error) {
	e := &models.AcademicEvent{}
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.EventDate, &e.EventTime, &e.Location, &e.Category, &e.IsPublic, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Create inserts an event
func (r *EventRepository) Create(ctx context.Context, e *models.AcademicEvent) error {
	e.PrepareForInsert(r.now())

	query, args, err := r.sb.Insert("academic_events").
		Columns(eventColumns...).
		Values(e.ID, e.Title, e.Description, e.EventDate, e.EventTime, e.Location, e.Category, e.IsPublic, e.CreatedAt, e.UpdatedAt).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create event SQL")
		return fmt.Errorf("failed to build create event query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}
	return nil
}

// List returns events in calendar order
func (r *EventRepository) List(ctx context.Context, filter models.EventFilter) ([]*models.AcademicEvent, error) {
	q := r.sb.Select(eventColumns...).From("academic_events")
	if where := eqFilter(map[string]*bool{"is_public": filter.IsPublic}); len(where) > 0 {
		q = q.Where(where)
	}

	query, args, err := q.OrderBy("event_date ASC", "created_at ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list events query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	events := []*models.AcademicEvent{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}
	return events, nil
}

// GetByID retrieves an event by id
func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.AcademicEvent, error) {
	query, args, err := r.sb.Select(eventColumns...).
		From("academic_events").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}

	e, err := scanEvent(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting event: %w", err)
	}
	return e, nil
}

// Update merges the supplied fields and returns the stored event
func (r *EventRepository) Update(ctx context.Context, id string, in *models.AcademicEventInput) (*models.AcademicEvent, error) {
	set := map[string]interface{}{"updated_at": r.now()}
	for col, v := range map[string]*string{
		"title":       in.Title,
		"description": in.Description,
		"event_time":  in.EventTime,
		"location":    in.Location,
		"category":    in.Category,
	} {
		if v != nil {
			set[col] = *v
		}
	}
	if in.EventDate != nil {
		set["event_date"] = in.EventDate.UTC()
	}
	if in.IsPublic != nil {
		set["is_public"] = *in.IsPublic
	}

	query, args, err := r.sb.Update("academic_events").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(eventColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update event query: %w", err)
	}

	e, err := scanEvent(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("eventID", id).Msg("Error executing update event query")
		return nil, fmt.Errorf("error updating event: %w", err)
	}
	return e, nil
}

// Delete removes an event; a missing id is not an error
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	query, args, err := r.sb.Delete("academic_events").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete event query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	return nil
}
