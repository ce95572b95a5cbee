package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amr-khaled0p/lazez2/internal/domain/entity"
	"github.com/amr-khaled0p/lazez2/internal/domain/repository"
	"github.com/amr-khaled0p/lazez2/internal/infrastructure/snapshot"
	"github.com/amr-khaled0p/lazez2/internal/infrastructure/state"
)

func newTestStore(t *testing.T) *state.Store {
	t.Helper()

	snapshots, err := snapshot.NewFileStore(filepath.Join(t.TempDir(), "snapshot.json"))
	require.NoError(t, err)

	store, err := state.New(snapshots, state.Seed("admin@test.com", "Admin", "hash"))
	require.NoError(t, err)
	return store
}

func TestAdjustStockFloorsAtZero(t *testing.T) {
	repo := NewCatalogRepository(newTestStore(t))
	ctx := context.Background()

	// b1 seeds with stock 20
	stock, err := repo.AdjustStock(ctx, "b1", -100)
	require.NoError(t, err)
	assert.Equal(t, 0, stock)

	stock, err = repo.AdjustStock(ctx, "b1", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, stock)

	_, err = repo.AdjustStock(ctx, "nope", 1)
	assert.Error(t, err)
}

func TestAdjustModifierStockFloorsAtZero(t *testing.T) {
	repo := NewCatalogRepository(newTestStore(t))
	ctx := context.Background()

	// b1's m1 (Extra Beef) seeds with stock 50
	stock, err := repo.AdjustModifierStock(ctx, "b1", "m1", -200)
	require.NoError(t, err)
	assert.Equal(t, 0, stock)

	stock, err = repo.AdjustModifierStock(ctx, "b1", "m1", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, stock)

	// Modifier stock is scoped per item: b2 shares the template but not the count
	item, err := repo.GetByID(ctx, "b2")
	require.NoError(t, err)
	assert.Equal(t, 50, item.FindModifier("m1").Stock)
}

func TestDecrementForSaleTakesItemAndModifiers(t *testing.T) {
	repo := NewCatalogRepository(newTestStore(t))
	ctx := context.Background()

	insufficient, err := repo.DecrementForSale(ctx, "b1", []string{"m1"}, 2)
	require.NoError(t, err)
	assert.Empty(t, insufficient)

	item, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, 18, item.Stock)
	assert.Equal(t, 48, item.FindModifier("m1").Stock)
}

func TestDecrementForSaleShortageTakesNothing(t *testing.T) {
	repo := NewCatalogRepository(newTestStore(t))
	ctx := context.Background()

	// b1 has 20 in stock; asking for 25 must leave everything untouched
	insufficient, err := repo.DecrementForSale(ctx, "b1", []string{"m1"}, 25)
	require.NoError(t, err)
	assert.Equal(t, []string{"Wagyu Gold Burger"}, insufficient)

	item, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, 20, item.Stock)
	assert.Equal(t, 50, item.FindModifier("m1").Stock)
}

func TestDecrementForSaleReportsEveryShortName(t *testing.T) {
	repo := NewCatalogRepository(newTestStore(t))
	ctx := context.Background()

	// 60 exceeds both the item (20) and Extra Beef (50)
	insufficient, err := repo.DecrementForSale(ctx, "b1", []string{"m1", "m2"}, 60)
	require.NoError(t, err)
	assert.Equal(t, []string{"Wagyu Gold Burger", "Extra Beef"}, insufficient)
}

func TestRestoreForSale(t *testing.T) {
	repo := NewCatalogRepository(newTestStore(t))
	ctx := context.Background()

	_, err := repo.DecrementForSale(ctx, "b1", []string{"m2"}, 3)
	require.NoError(t, err)

	require.NoError(t, repo.RestoreForSale(ctx, "b1", []string{"m2"}, 3))

	item, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, 20, item.Stock)
	assert.Equal(t, 100, item.FindModifier("m2").Stock)

	// Restoring a deleted item is a no-op, not an error
	require.NoError(t, repo.Delete(ctx, "b1"))
	assert.NoError(t, repo.RestoreForSale(ctx, "b1", nil, 1))
}

func TestListFilters(t *testing.T) {
	repo := NewCatalogRepository(newTestStore(t))
	ctx := context.Background()

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 25)

	pizza, err := repo.List(ctx, &repository.CatalogFilter{Category: "Pizza"})
	require.NoError(t, err)
	assert.Len(t, pizza, 6)

	// "All" is a wildcard, matching is case-insensitive
	wildcard, err := repo.List(ctx, &repository.CatalogFilter{Category: "all"})
	require.NoError(t, err)
	assert.Len(t, wildcard, 25)

	burgers, err := repo.List(ctx, &repository.CatalogFilter{SearchText: "BURGER"})
	require.NoError(t, err)
	require.Len(t, burgers, 1)
	assert.Equal(t, "Wagyu Gold Burger", burgers[0].Name)
}

func TestCreateRejectsDuplicateID(t *testing.T) {
	repo := NewCatalogRepository(newTestStore(t))
	ctx := context.Background()

	err := repo.Create(ctx, &entity.CatalogItem{ID: "b1", Name: "Clone", Price: 10, Stock: 1})
	assert.Error(t, err)
}

func TestListReturnsCopies(t *testing.T) {
	repo := NewCatalogRepository(newTestStore(t))
	ctx := context.Background()

	items, err := repo.List(ctx, nil)
	require.NoError(t, err)
	items[0].Stock = -999
	items[0].Modifiers[0].Stock = -999

	fresh, err := repo.GetByID(ctx, items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 20, fresh.Stock)
	assert.Equal(t, 50, fresh.Modifiers[0].Stock)
}
