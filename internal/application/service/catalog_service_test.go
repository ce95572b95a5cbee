package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amr-khaled0p/lazez2/internal/domain/entity"
	"github.com/amr-khaled0p/lazez2/internal/domain/enum"
	"github.com/amr-khaled0p/lazez2/pkg/apperror"
)

func newTestCatalog(t *testing.T) (*CatalogService, *testEnv) {
	env := newTestEnv(t)
	return NewCatalogService(env.catalogRepo), env
}

func TestListItemsFilters(t *testing.T) {
	svc, _ := newTestCatalog(t)
	ctx := context.Background()

	all, err := svc.ListItems(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 25)

	pizza, err := svc.ListItems(ctx, "Pizza", "")
	require.NoError(t, err)
	assert.Len(t, pizza, 6)

	found, err := svc.ListItems(ctx, "", "wagyu")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Wagyu Gold Burger", found[0].Name)
}

func TestGetItemNotFound(t *testing.T) {
	svc, _ := newTestCatalog(t)

	_, err := svc.GetItem(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCreateItemValidation(t *testing.T) {
	svc, _ := newTestCatalog(t)

	_, err := svc.CreateItem(context.Background(), &CreateItemInput{
		Name:  "  ",
		Price: 0,
		Stock: -1,
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.Len(t, appErr.Errors, 3)
}

func TestCreateItemAssignsIDs(t *testing.T) {
	svc, _ := newTestCatalog(t)
	ctx := context.Background()

	item, err := svc.CreateItem(ctx, &CreateItemInput{
		Name:     "  Double Trouble  ",
		Price:    175,
		Category: "Burgers",
		Stock:    10,
		Modifiers: []entity.Modifier{
			{Name: "Bacon", Price: 25, Stock: 30},
		},
		Exclusions: []entity.Exclusion{
			{Name: "No Pickles"},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Double Trouble", item.Name)
	assert.NotEmpty(t, item.Modifiers[0].ID)
	assert.NotEmpty(t, item.Exclusions[0].ID)

	fetched, err := svc.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.Category("Burgers"), fetched.Category)
}

func TestUpdateItemPartialMerge(t *testing.T) {
	svc, _ := newTestCatalog(t)
	ctx := context.Background()

	price := int64(200)
	best := true
	updated, err := svc.UpdateItem(ctx, &UpdateItemInput{
		ItemID:       "b2",
		Price:        &price,
		IsBestSeller: &best,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(200), updated.Price)
	assert.True(t, updated.IsBestSeller)
	// Untouched fields keep their seeded values
	assert.Equal(t, "Classic Smokehouse", updated.Name)
	assert.Equal(t, 25, updated.Stock)
	assert.Len(t, updated.Modifiers, 2)
}

func TestUpdateItemRevalidates(t *testing.T) {
	svc, _ := newTestCatalog(t)

	badPrice := int64(-5)
	_, err := svc.UpdateItem(context.Background(), &UpdateItemInput{
		ItemID: "b2",
		Price:  &badPrice,
	})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestDeleteItem(t *testing.T) {
	svc, _ := newTestCatalog(t)
	ctx := context.Background()

	require.NoError(t, svc.DeleteItem(ctx, "d6"))

	err := svc.DeleteItem(ctx, "d6")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
