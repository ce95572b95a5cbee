package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/amr-khaled0p/lazez2/internal/domain/entity"
)

// UserResponse is the public account view. The password hash never leaves
// the snapshot.
type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	IsAdmin       bool      `json:"isAdmin"`
	LoyaltyPoints int       `json:"loyaltyPoints"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewUserResponse strips the credential fields from a user entity.
func NewUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		IsAdmin:       user.IsAdmin,
		LoyaltyPoints: user.LoyaltyPoints,
		CreatedAt:     user.CreatedAt,
	}
}
