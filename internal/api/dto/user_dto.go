package dto

import (
	"time"

	"github.com/spec-kit/class-marketplace/internal/domain"
)

// UserCreateRequest records an account seen at the identity frontend.
type UserCreateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserResponse is the outward view of a directory record.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

// NewUserResponses maps a slice of domain users.
func NewUserResponses(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, NewUserResponse(user))
	}
	return out
}
