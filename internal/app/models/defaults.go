package models

import (
	"time"

	"github.com/google/uuid"
)

func newID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

// PrepareForInsert assigns the id, role default and creation time
func (u *User) PrepareForInsert(now time.Time) {
	u.ID = newID(u.ID)
	if u.Role == "" {
		u.Role = DefaultRole
	}
	u.CreatedAt = now
}

// PrepareForInsert assigns the id, initial status and timestamps
func (m *ContactMessage) PrepareForInsert(now time.Time) {
	m.ID = newID(m.ID)
	if m.Status == "" {
		m.Status = ContactStatusUnread
	}
	m.CreatedAt, m.UpdatedAt = now, now
}

// PrepareForInsert assigns the id and timestamps; publishedAt follows the published flag
func (a *NewsArticle) PrepareForInsert(now time.Time) {
	a.ID = newID(a.ID)
	if a.Published && a.PublishedAt == nil {
		a.PublishedAt = &now
	}
	if !a.Published {
		a.PublishedAt = nil
	}
	a.CreatedAt, a.UpdatedAt = now, now
}

// PrepareForInsert assigns the id, initial status and timestamps
func (r *StudentRegistration) PrepareForInsert(now time.Time) {
	r.ID = newID(r.ID)
	if r.Status == "" {
		r.Status = RegistrationStatusPending
	}
	r.CreatedAt, r.UpdatedAt = now, now
}

// PrepareForInsert assigns the id and timestamps
func (a *Alumni) PrepareForInsert(now time.Time) {
	a.ID = newID(a.ID)
	a.CreatedAt, a.UpdatedAt = now, now
}

// PrepareForInsert assigns the id and timestamps
func (e *AcademicEvent) PrepareForInsert(now time.Time) {
	e.ID = newID(e.ID)
	e.CreatedAt, e.UpdatedAt = now, now
}
