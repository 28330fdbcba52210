package dto

import (
	"time"

	"github.com/yigit/madrasah/internal/app/models"
)

// MessageResponse acknowledges a write that returns no entity
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Status updated successfully"`
}

// Success creates a MessageResponse with success set
func Success(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}

// UserResponse is the public view of a user; the password hash never leaves the server
type UserResponse struct {
	ID       string      `json:"id"`
	Username string      `json:"username" example:"admin"`
	Role     models.Role `json:"role" example:"admin"`
}

// NewUserResponse projects u
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Role: u.Role}
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Success bool         `json:"success" example:"true"`
	Message string       `json:"message" example:"Login successful"`
	User    UserResponse `json:"user"`
}

// MeResponse is returned by the current user endpoint
type MeResponse struct {
	Success bool         `json:"success" example:"true"`
	User    UserResponse `json:"user"`
}

// IDResponse acknowledges a created contact message
type IDResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Message sent successfully"`
	ID      string `json:"id"`
}

// ArticleResponse wraps a written news article
type ArticleResponse struct {
	Success bool                `json:"success" example:"true"`
	Message string              `json:"message"`
	Article *models.NewsArticle `json:"article"`
}

// RegistrationResponse wraps a submitted registration
type RegistrationResponse struct {
	Success      bool                        `json:"success" example:"true"`
	Message      string                      `json:"message"`
	Registration *models.StudentRegistration `json:"registration"`
}

// AlumniResponse wraps a written alumni profile
type AlumniResponse struct {
	Success bool           `json:"success" example:"true"`
	Message string         `json:"message"`
	Alumni  *models.Alumni `json:"alumni"`
}

// EventResponse wraps a written academic event
type EventResponse struct {
	Success bool                  `json:"success" example:"true"`
	Message string                `json:"message"`
	Event   *models.AcademicEvent `json:"event"`
}

// HealthResponse reports liveness
type HealthResponse struct {
	Status    string    `json:"status" example:"OK"`
	Timestamp time.Time `json:"timestamp"`
}
