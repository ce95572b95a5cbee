package service

import (
	"context"

	"github.com/amr-khaled0p/lazez2/internal/domain/entity"
	"github.com/amr-khaled0p/lazez2/internal/domain/repository"
)

// SettingsService handles the storefront site settings and the static
// branch directory
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings retrieves the site settings
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.SiteSettings, error) {
	return s.settingsRepo.Get(ctx)
}

// UpdateSettingsInput represents the input for updating site settings. Nil
// fields are left unchanged.
type UpdateSettingsInput struct {
	HeroTitle    *string
	HeroSubtitle *string
	PrimaryColor *string
	IsClosed     *bool
}

// UpdateSettings updates the site settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.SiteSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if input.HeroTitle != nil {
		settings.HeroTitle = *input.HeroTitle
	}
	if input.HeroSubtitle != nil {
		settings.HeroSubtitle = *input.HeroSubtitle
	}
	if input.PrimaryColor != nil {
		settings.PrimaryColor = *input.PrimaryColor
	}
	if input.IsClosed != nil {
		settings.IsClosed = *input.IsClosed
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// ListBranches returns the branch directory
func (s *SettingsService) ListBranches(ctx context.Context) ([]entity.Branch, error) {
	return s.settingsRepo.Branches(ctx)
}
