package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/amr-khaled0p/lazez2/internal/domain/entity"
	"github.com/amr-khaled0p/lazez2/internal/domain/repository"
	"github.com/amr-khaled0p/lazez2/internal/infrastructure/state"
	"github.com/amr-khaled0p/lazez2/pkg/apperror"
)

type catalogRepository struct {
	store *state.Store
}

// NewCatalogRepository creates a catalog repository over the state store.
func NewCatalogRepository(store *state.Store) repository.CatalogRepository {
	return &catalogRepository{store: store}
}

func (r *catalogRepository) List(ctx context.Context, filter *repository.CatalogFilter) ([]entity.CatalogItem, error) {
	var items []entity.CatalogItem
	r.store.View(func(st *state.State) {
		for i := range st.Menu {
			item := &st.Menu[i]
			if filter != nil {
				if !item.Category.Matches(filter.Category) {
					continue
				}
				if filter.SearchText != "" &&
					!strings.Contains(strings.ToLower(item.Name), strings.ToLower(filter.SearchText)) {
					continue
				}
			}
			items = append(items, *item.Clone())
		}
	})
	return items, nil
}

func (r *catalogRepository) GetByID(ctx context.Context, id string) (*entity.CatalogItem, error) {
	var found *entity.CatalogItem
	r.store.View(func(st *state.State) {
		for i := range st.Menu {
			if st.Menu[i].ID == id {
				found = st.Menu[i].Clone()
				return
			}
		}
	})
	return found, nil
}

func (r *catalogRepository) Create(ctx context.Context, item *entity.CatalogItem) error {
	return r.store.Update(func(st *state.State) error {
		for i := range st.Menu {
			if st.Menu[i].ID == item.ID {
				return apperror.NewConflictError("Menu item already exists")
			}
		}
		st.Menu = append(st.Menu, *item.Clone())
		return nil
	})
}

func (r *catalogRepository) Update(ctx context.Context, item *entity.CatalogItem) error {
	return r.store.Update(func(st *state.State) error {
		for i := range st.Menu {
			if st.Menu[i].ID == item.ID {
				st.Menu[i] = *item.Clone()
				return nil
			}
		}
		return apperror.NewNotFoundError("Menu item")
	})
}

func (r *catalogRepository) Delete(ctx context.Context, id string) error {
	return r.store.Update(func(st *state.State) error {
		for i := range st.Menu {
			if st.Menu[i].ID == id {
				st.Menu = append(st.Menu[:i], st.Menu[i+1:]...)
				return nil
			}
		}
		return apperror.NewNotFoundError("Menu item")
	})
}

func (r *catalogRepository) AdjustStock(ctx context.Context, id string, delta int) (int, error) {
	var newStock int
	err := r.store.Update(func(st *state.State) error {
		for i := range st.Menu {
			if st.Menu[i].ID == id {
				st.Menu[i].Stock = clampStock(st.Menu[i].Stock + delta)
				newStock = st.Menu[i].Stock
				return nil
			}
		}
		return apperror.NewNotFoundError("Menu item")
	})
	return newStock, err
}

func (r *catalogRepository) AdjustModifierStock(ctx context.Context, itemID, modifierID string, delta int) (int, error) {
	var newStock int
	err := r.store.Update(func(st *state.State) error {
		for i := range st.Menu {
			if st.Menu[i].ID != itemID {
				continue
			}
			mod := st.Menu[i].FindModifier(modifierID)
			if mod == nil {
				return apperror.NewNotFoundError("Modifier")
			}
			mod.Stock = clampStock(mod.Stock + delta)
			newStock = mod.Stock
			return nil
		}
		return apperror.NewNotFoundError("Menu item")
	})
	return newStock, err
}

// insufficientStockErr aborts the mutation so nothing is decremented and no
// snapshot is written when any stock is short.
type insufficientStockErr struct {
	names []string
}

func (e *insufficientStockErr) Error() string {
	return "insufficient stock: " + strings.Join(e.names, ", ")
}

func (r *catalogRepository) DecrementForSale(ctx context.Context, itemID string, modifierIDs []string, qty int) ([]string, error) {
	err := r.store.Update(func(st *state.State) error {
		var item *entity.CatalogItem
		for i := range st.Menu {
			if st.Menu[i].ID == itemID {
				item = &st.Menu[i]
				break
			}
		}
		if item == nil {
			return apperror.NewNotFoundError("Menu item")
		}

		var short []string
		if item.Stock < qty {
			short = append(short, item.Name)
		}
		mods := make([]*entity.Modifier, 0, len(modifierIDs))
		for _, id := range modifierIDs {
			mod := item.FindModifier(id)
			if mod == nil {
				return apperror.NewNotFoundError("Modifier")
			}
			if mod.Stock < qty {
				short = append(short, mod.Name)
			}
			mods = append(mods, mod)
		}
		if len(short) > 0 {
			return &insufficientStockErr{names: short}
		}

		item.Stock -= qty
		for _, mod := range mods {
			mod.Stock -= qty
		}
		return nil
	})

	var shortErr *insufficientStockErr
	if errors.As(err, &shortErr) {
		return shortErr.names, nil
	}
	return nil, err
}

func (r *catalogRepository) RestoreForSale(ctx context.Context, itemID string, modifierIDs []string, qty int) error {
	return r.store.Update(func(st *state.State) error {
		for i := range st.Menu {
			if st.Menu[i].ID != itemID {
				continue
			}
			st.Menu[i].Stock += qty
			for _, id := range modifierIDs {
				// Modifiers deleted by an admin mid-transaction are skipped.
				if mod := st.Menu[i].FindModifier(id); mod != nil {
					mod.Stock += qty
				}
			}
			return nil
		}
		// The item itself may have been deleted; the restore is then a no-op.
		return nil
	})
}

func clampStock(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
