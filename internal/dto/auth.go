package dto

import (
	"time"

	"github.com/mbeckert/taskboard-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse is the envelope returned by registration, login and guest login
type AuthResponse struct {
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}

// NewAuthResponse builds the auth envelope for a user and their token
func NewAuthResponse(message, token string, user models.User) AuthResponse {
	return AuthResponse{
		Message: message,
		Token:   token,
		User:    ToUserDTO(user),
	}
}
