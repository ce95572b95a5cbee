package repository

import (
	"context"

	"github.com/amr-khaled0p/lazez2/internal/domain/entity"
)

// SettingsRepository defines the interface for site settings and the static
// branch directory.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.SiteSettings, error)
	Update(ctx context.Context, settings *entity.SiteSettings) error
	Branches(ctx context.Context) ([]entity.Branch, error)
}
