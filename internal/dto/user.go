package dto

import (
	"time"

	"github.com/techforing/project-tracking-api/internal/models"
)

// RegisterRequest is the payload for user registration.
type RegisterRequest struct {
	UserName  string `json:"user_name" binding:"required,max=50"`
	Email     string `json:"email" binding:"required,email,max=50"`
	FirstName string `json:"first_name" binding:"required,max=50"`
	LastName  string `json:"last_name" binding:"required,max=50"`
	Password  string `json:"password" binding:"required"`
	Password2 string `json:"password2" binding:"required"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token to exchange for a new pair.
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// UserDTO represents a user in API responses. The password hash is never
// part of this projection.
type UserDTO struct {
	ID         uint64    `json:"id"`
	UserName   string    `json:"user_name"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	DateJoined time.Time `json:"date_joined"`
	IsAdmin    bool      `json:"is_admin"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:         user.ID,
		UserName:   user.UserName,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		DateJoined: user.DateJoined,
		IsAdmin:    user.IsAdmin,
	}
}
