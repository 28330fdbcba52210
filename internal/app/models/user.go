package models

import (
	"time"
)

// User is an administrator account, table 'users'
type User struct {
	ID        string    `json:"id" db:"id" example:"3f1c2b8e-7d4a-4c1e-9b0a-2f6d8e5a1c3b"`
	Username  string    `json:"username" db:"username" example:"admin"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, never serialized
	Role      Role      `json:"role" db:"role" example:"admin"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// UserInput is the registration payload
type UserInput struct {
	Username string  `json:"username" validate:"required,notblank,max=64"`
	Password string  `json:"password" validate:"required,max=72"`
	Role     *string `json:"role" validate:"omitempty,notblank,max=32"`
}

// LoginInput is the login payload
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
