package service

import (
	"context"
	"strings"

	"github.com/amr-khaled0p/lazez2/internal/domain/entity"
	"github.com/amr-khaled0p/lazez2/internal/domain/enum"
	"github.com/amr-khaled0p/lazez2/internal/domain/repository"
	"github.com/amr-khaled0p/lazez2/pkg/apperror"
	"github.com/amr-khaled0p/lazez2/pkg/utils"
)

// CatalogService handles menu catalog operations
type CatalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// ListItems lists menu items, optionally filtered by category and search text
func (s *CatalogService) ListItems(ctx context.Context, category, search string) ([]entity.CatalogItem, error) {
	return s.catalogRepo.List(ctx, &repository.CatalogFilter{
		Category:   category,
		SearchText: search,
	})
}

// GetItem retrieves a menu item by ID
func (s *CatalogService) GetItem(ctx context.Context, id string) (*entity.CatalogItem, error) {
	item, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// CreateItemInput represents the create menu item input
type CreateItemInput struct {
	Name         string
	Description  string
	Price        int64
	Category     string
	Image        string
	Stock        int
	Modifiers    []entity.Modifier
	Exclusions   []entity.Exclusion
	IsBestSeller bool
}

func validateItemFields(name string, price int64, stock int) []apperror.FieldError {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if price <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "Price must be positive"})
	}
	if stock < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "stock", Message: "Stock cannot be negative"})
	}
	return fieldErrors
}

// CreateItem creates a new menu item
func (s *CatalogService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.CatalogItem, error) {
	if fieldErrors := validateItemFields(input.Name, input.Price, input.Stock); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	item := &entity.CatalogItem{
		ID:           utils.NewItemID(),
		Name:         strings.TrimSpace(input.Name),
		Description:  input.Description,
		Price:        input.Price,
		Category:     enum.Category(input.Category),
		Image:        input.Image,
		Stock:        input.Stock,
		Modifiers:    input.Modifiers,
		Exclusions:   input.Exclusions,
		IsBestSeller: input.IsBestSeller,
	}

	// Modifiers and exclusions created inline get ids too
	for i := range item.Modifiers {
		if item.Modifiers[i].ID == "" {
			item.Modifiers[i].ID = utils.NewItemID()
		}
	}
	for i := range item.Exclusions {
		if item.Exclusions[i].ID == "" {
			item.Exclusions[i].ID = utils.NewItemID()
		}
	}

	if err := s.catalogRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItemInput represents the update menu item input. Nil fields are
// left unchanged.
type UpdateItemInput struct {
	ItemID       string
	Name         *string
	Description  *string
	Price        *int64
	Category     *string
	Image        *string
	Stock        *int
	Modifiers    []entity.Modifier
	Exclusions   []entity.Exclusion
	IsBestSeller *bool
}

// UpdateItem updates a menu item
func (s *CatalogService) UpdateItem(ctx context.Context, input *UpdateItemInput) (*entity.CatalogItem, error) {
	item, err := s.catalogRepo.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.Category != nil {
		item.Category = enum.Category(*input.Category)
	}
	if input.Image != nil {
		item.Image = *input.Image
	}
	if input.Stock != nil {
		item.Stock = *input.Stock
	}
	if input.Modifiers != nil {
		for i := range input.Modifiers {
			if input.Modifiers[i].ID == "" {
				input.Modifiers[i].ID = utils.NewItemID()
			}
		}
		item.Modifiers = input.Modifiers
	}
	if input.Exclusions != nil {
		for i := range input.Exclusions {
			if input.Exclusions[i].ID == "" {
				input.Exclusions[i].ID = utils.NewItemID()
			}
		}
		item.Exclusions = input.Exclusions
	}
	if input.IsBestSeller != nil {
		item.IsBestSeller = *input.IsBestSeller
	}

	if fieldErrors := validateItemFields(item.Name, item.Price, item.Stock); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	if err := s.catalogRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem deletes a menu item
func (s *CatalogService) DeleteItem(ctx context.Context, id string) error {
	item, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}
	return s.catalogRepo.Delete(ctx, id)
}

// AdjustStock applies a signed delta to an item's stock. Negative results
// clamp to zero, so an over-correcting admin cannot drive stock negative.
func (s *CatalogService) AdjustStock(ctx context.Context, id string, delta int) (int, error) {
	return s.catalogRepo.AdjustStock(ctx, id, delta)
}

// AdjustModifierStock applies a signed delta to one modifier's stock with
// the same floor-at-zero rule.
func (s *CatalogService) AdjustModifierStock(ctx context.Context, itemID, modifierID string, delta int) (int, error) {
	return s.catalogRepo.AdjustModifierStock(ctx, itemID, modifierID, delta)
}
