package dto

import (
	"time"

	"github.com/google/uuid"
)

type SignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserDTO struct {
	Id          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type SignupResponse struct {
	Message string  `json:"message"`
	User    UserDTO `json:"user"`
}

type LoginResponse struct {
	Message      string  `json:"message"`
	User         UserDTO `json:"user"`
	SessionToken string  `json:"session_token"`
}

type MeResponse struct {
	User UserDTO `json:"user"`
}

type CheckSessionResponse struct {
	Authenticated bool `json:"authenticated"`
}
