package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/insurance/backend/internal/domain/identity"
	"github.com/insurance/backend/internal/domain/shared"
)

// CreateUserRequest represents a request to create a user
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=72"`
	Email    string `json:"email" binding:"omitempty,email,max=200"`
	Role     string `json:"role" binding:"omitempty,user_role"`
}

// UpdateUserRequest carries a partial user update.
// A password, when present, is re-hashed.
type UpdateUserRequest struct {
	Username shared.Optional[string] `json:"username"`
	Password shared.Optional[string] `json:"password"`
	Email    shared.Optional[string] `json:"email"`
	Role     shared.Optional[string] `json:"role"`
	Status   shared.Optional[string] `json:"status"`
}

// UserResponse represents a user in API responses. The password hash is never exposed.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserResponse converts a domain user to a response
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// LoginRequest carries the login form
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// ResetPasswordRequest carries the reset-password form
type ResetPasswordRequest struct {
	Username        string `form:"username" json:"username" binding:"required"`
	CurrentPassword string `form:"current_password" json:"current_password" binding:"required"`
	NewPassword     string `form:"new_password" json:"new_password" binding:"required,max=72"`
}

// Principal is the authenticated identity stored in the session
type Principal struct {
	UserID   uuid.UUID
	Username string
	Role     identity.Role
}
