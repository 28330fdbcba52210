package models

import (
	"time"
)

// Alumni is a graduate profile, table 'alumni'. Only approved rows are meant for public pages.
type Alumni struct {
	ID             string    `json:"id" db:"id"`
	FullName       string    `json:"fullName" db:"full_name"`
	GraduationYear int       `json:"graduationYear" db:"graduation_year" example:"2015"`
	Program        string    `json:"program" db:"program"`
	CurrentJob     *string   `json:"currentJob" db:"current_job"`
	Company        *string   `json:"company" db:"company"`
	Achievement    *string   `json:"achievement" db:"achievement"`
	Testimonial    *string   `json:"testimonial" db:"testimonial"`
	Photo          *string   `json:"photo" db:"photo"`
	Email          *string   `json:"email" db:"email"`
	LinkedIn       *string   `json:"linkedIn" db:"linkedin"`
	Featured       bool      `json:"featured" db:"featured"`
	Approved       bool      `json:"approved" db:"approved"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// AlumniInput is used for the public submission and for authenticated partial edits.
// Moderation flags are only changed through AlumniStatusInput.
type AlumniInput struct {
	FullName       *string `json:"fullName" validate:"required,notblank,max=150"`
	GraduationYear *int    `json:"graduationYear" validate:"required,min=1900,max=2100"`
	Program        *string `json:"program" validate:"required,notblank,max=100"`
	CurrentJob     *string `json:"currentJob" validate:"omitempty,max=150"`
	Company        *string `json:"company" validate:"omitempty,max=150"`
	Achievement    *string `json:"achievement"`
	Testimonial    *string `json:"testimonial"`
	Photo          *string `json:"photo" validate:"omitempty,max=500"`
	Email          *string `json:"email" validate:"omitempty,email"`
	LinkedIn       *string `json:"linkedIn" validate:"omitempty,max=255"`
}

// AlumniStatusInput approves or features an alumni profile
type AlumniStatusInput struct {
	Approved *bool `json:"approved" validate:"required"`
	Featured *bool `json:"featured"`
}

// NewAlumni builds a profile from a public submission; it always starts unapproved and not featured
func NewAlumni(in *AlumniInput) *Alumni {
	a := &Alumni{}
	a.Apply(in)
	return a
}

// Apply merges the supplied fields into a
func (a *Alumni) Apply(in *AlumniInput) {
	setString(&a.FullName, in.FullName)
	if in.GraduationYear != nil {
		a.GraduationYear = *in.GraduationYear
	}
	setString(&a.Program, in.Program)
	setNullable(&a.CurrentJob, in.CurrentJob)
	setNullable(&a.Company, in.Company)
	setNullable(&a.Achievement, in.Achievement)
	setNullable(&a.Testimonial, in.Testimonial)
	setNullable(&a.Photo, in.Photo)
	setNullable(&a.Email, in.Email)
	setNullable(&a.LinkedIn, in.LinkedIn)
}
