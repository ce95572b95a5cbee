package repository

import (
	"context"

	"github.com/amr-khaled0p/lazez2/internal/domain/entity"
	"github.com/amr-khaled0p/lazez2/internal/domain/repository"
	"github.com/amr-khaled0p/lazez2/internal/infrastructure/state"
)

type settingsRepository struct {
	store *state.Store
}

// NewSettingsRepository creates a settings repository over the state store.
func NewSettingsRepository(store *state.Store) repository.SettingsRepository {
	return &settingsRepository{store: store}
}

func (r *settingsRepository) Get(ctx context.Context) (*entity.SiteSettings, error) {
	var settings entity.SiteSettings
	r.store.View(func(st *state.State) {
		settings = st.Settings
	})
	return &settings, nil
}

func (r *settingsRepository) Update(ctx context.Context, settings *entity.SiteSettings) error {
	return r.store.Update(func(st *state.State) error {
		st.Settings = *settings
		return nil
	})
}

func (r *settingsRepository) Branches(ctx context.Context) ([]entity.Branch, error) {
	var branches []entity.Branch
	r.store.View(func(st *state.State) {
		branches = append(branches, st.Branches...)
	})
	return branches, nil
}
