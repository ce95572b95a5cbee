package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a storefront customer or back-office admin. The password hash is
// persisted in the snapshot but stripped from API responses by the dto layer.
type User struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	PasswordHash  string    `json:"passwordHash,omitempty"`
	IsAdmin       bool      `json:"isAdmin"`
	GoogleID      string    `json:"googleId,omitempty"`
	LoyaltyPoints int       `json:"loyaltyPoints"`
	CreatedAt     time.Time `json:"createdAt"`
}
