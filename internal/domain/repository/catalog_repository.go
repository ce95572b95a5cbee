package repository

import (
	"context"

	"github.com/amr-khaled0p/lazez2/internal/domain/entity"
)

// CatalogRepository defines the interface for menu catalog operations
type CatalogRepository interface {
	List(ctx context.Context, filter *CatalogFilter) ([]entity.CatalogItem, error)
	GetByID(ctx context.Context, id string) (*entity.CatalogItem, error)
	Create(ctx context.Context, item *entity.CatalogItem) error
	Update(ctx context.Context, item *entity.CatalogItem) error
	Delete(ctx context.Context, id string) error
	// AdjustStock applies stock = max(0, stock+delta) and returns the new count.
	AdjustStock(ctx context.Context, id string, delta int) (int, error)
	// AdjustModifierStock applies the same floor-at-zero rule to one modifier.
	AdjustModifierStock(ctx context.Context, itemID, modifierID string, delta int) (int, error)
	// DecrementForSale atomically takes qty units of the item and of each listed
	// modifier, or takes nothing and returns the names that lacked stock.
	DecrementForSale(ctx context.Context, itemID string, modifierIDs []string, qty int) (insufficient []string, err error)
	// RestoreForSale gives back qty units of the item and each listed modifier.
	RestoreForSale(ctx context.Context, itemID string, modifierIDs []string, qty int) error
}

// CatalogFilter contains filtering parameters for menu queries
type CatalogFilter struct {
	Category   string
	SearchText string
}
