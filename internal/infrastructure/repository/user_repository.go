package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/amr-khaled0p/lazez2/internal/domain/entity"
	"github.com/amr-khaled0p/lazez2/internal/domain/repository"
	"github.com/amr-khaled0p/lazez2/internal/infrastructure/state"
	"github.com/amr-khaled0p/lazez2/pkg/apperror"
)

type userRepository struct {
	store *state.Store
}

// NewUserRepository creates a user repository over the state store.
func NewUserRepository(store *state.Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var found *entity.User
	r.store.View(func(st *state.State) {
		for i := range st.Users {
			if strings.EqualFold(st.Users[i].Email, email) {
				u := st.Users[i]
				found = &u
				return
			}
		}
	})
	return found, nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var found *entity.User
	r.store.View(func(st *state.State) {
		for i := range st.Users {
			if st.Users[i].ID == id {
				u := st.Users[i]
				found = &u
				return
			}
		}
	})
	return found, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.store.Update(func(st *state.State) error {
		for i := range st.Users {
			if strings.EqualFold(st.Users[i].Email, user.Email) {
				return apperror.NewConflictError("Email already registered")
			}
		}
		st.Users = append(st.Users, *user)
		return nil
	})
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return r.store.Update(func(st *state.State) error {
		for i := range st.Users {
			if st.Users[i].ID == user.ID {
				st.Users[i] = *user
				return nil
			}
		}
		return apperror.NewNotFoundError("User")
	})
}
