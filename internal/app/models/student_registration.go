package models

import (
	"time"
)

// StudentRegistration is a prospective student's application, table 'student_registrations'
type StudentRegistration struct {
	ID             string             `json:"id" db:"id"`
	FullName       string             `json:"fullName" db:"full_name"`
	Email          string             `json:"email" db:"email"`
	Phone          string             `json:"phone" db:"phone"`
	DateOfBirth    string             `json:"dateOfBirth" db:"date_of_birth" example:"2010-05-17"`
	Address        string             `json:"address" db:"address"`
	ParentName     string             `json:"parentName" db:"parent_name"`
	ParentPhone    string             `json:"parentPhone" db:"parent_phone"`
	PreviousSchool string             `json:"previousSchool" db:"previous_school"`
	Program        string             `json:"program" db:"program"`
	Documents      *string            `json:"documents" db:"documents"`
	Status         RegistrationStatus `json:"status" db:"status" example:"pending"`
	Notes          *string            `json:"notes" db:"notes"`
	CreatedAt      time.Time          `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time          `json:"updatedAt" db:"updated_at"`
}

// StudentRegistrationInput is the public registration form payload; reviewer notes are set via RegistrationStatusInput only
type StudentRegistrationInput struct {
	FullName       *string `json:"fullName" validate:"required,notblank,max=150"`
	Email          *string `json:"email" validate:"required,email"`
	Phone          *string `json:"phone" validate:"required,notblank,max=32"`
	DateOfBirth    *string `json:"dateOfBirth" validate:"required,notblank,max=32"`
	Address        *string `json:"address" validate:"required,notblank"`
	ParentName     *string `json:"parentName" validate:"required,notblank,max=150"`
	ParentPhone    *string `json:"parentPhone" validate:"required,notblank,max=32"`
	PreviousSchool *string `json:"previousSchool" validate:"required,notblank,max=200"`
	Program        *string `json:"program" validate:"required,notblank,max=100"`
	Documents      *string `json:"documents"`
}

// RegistrationStatusInput moves a registration through review; empty notes keep the stored ones
type RegistrationStatusInput struct {
	Status *string `json:"status" validate:"required,oneof=pending reviewed accepted rejected"`
	Notes  *string `json:"notes"`
}

// NewStudentRegistration builds a pending registration from a validated input
func NewStudentRegistration(in *StudentRegistrationInput) *StudentRegistration {
	r := &StudentRegistration{Status: RegistrationStatusPending}
	setString(&r.FullName, in.FullName)
	setString(&r.Email, in.Email)
	setString(&r.Phone, in.Phone)
	setString(&r.DateOfBirth, in.DateOfBirth)
	setString(&r.Address, in.Address)
	setString(&r.ParentName, in.ParentName)
	setString(&r.ParentPhone, in.ParentPhone)
	setString(&r.PreviousSchool, in.PreviousSchool)
	setString(&r.Program, in.Program)
	setNullable(&r.Documents, in.Documents)
	return r
}
