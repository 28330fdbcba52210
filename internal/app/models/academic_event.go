package models

import (
	"time"
)

// AcademicEvent is an entry of the academic calendar, table 'academic_events'
type AcademicEvent struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	EventDate   time.Time `json:"eventDate" db:"event_date"`
	EventTime   *string   `json:"eventTime" db:"event_time" example:"08:00 - 10:00"`
	Location    *string   `json:"location" db:"location"`
	Category    string    `json:"category" db:"category" example:"exam"`
	IsPublic    bool      `json:"isPublic" db:"is_public"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// AcademicEventInput is used for create (Validate) and partial update (ValidatePartial)
type AcademicEventInput struct {
	Title       *string       `json:"title" validate:"required,notblank,max=255"`
	Description *string       `json:"description"`
	EventDate   *FlexibleTime `json:"eventDate" validate:"required"`
	EventTime   *string       `json:"eventTime" validate:"omitempty,max=50"`
	Location    *string       `json:"location" validate:"omitempty,max=255"`
	Category    *string       `json:"category" validate:"required,notblank,max=50"`
	IsPublic    *bool         `json:"isPublic"`
}

// NewAcademicEvent builds an event from a validated create input; events are public unless stated otherwise
func NewAcademicEvent(in *AcademicEventInput) *AcademicEvent {
	e := &AcademicEvent{IsPublic: true}
	e.Apply(in)
	return e
}

// Apply merges the supplied fields into e
func (e *AcademicEvent) Apply(in *AcademicEventInput) {
	setString(&e.Title, in.Title)
	setNullable(&e.Description, in.Description)
	if in.EventDate != nil {
		e.EventDate = in.EventDate.UTC()
	}
	setNullable(&e.EventTime, in.EventTime)
	setNullable(&e.Location, in.Location)
	setString(&e.Category, in.Category)
	setBool(&e.IsPublic, in.IsPublic)
}
