package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/amr-khaled0p/lazez2/internal/domain/entity"
)

// UserRepository defines the interface for user account operations
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
}
