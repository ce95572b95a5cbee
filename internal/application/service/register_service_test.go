package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amr-khaled0p/lazez2/internal/domain/enum"
	"github.com/amr-khaled0p/lazez2/internal/domain/repository"
	infra "github.com/amr-khaled0p/lazez2/internal/infrastructure/repository"
	"github.com/amr-khaled0p/lazez2/internal/infrastructure/snapshot"
	"github.com/amr-khaled0p/lazez2/internal/infrastructure/state"
	"github.com/amr-khaled0p/lazez2/pkg/apperror"
)

// testEnv wires the real repositories over a throwaway snapshot file so
// service tests exercise the same stock accounting as production.
type testEnv struct {
	catalogRepo  repository.CatalogRepository
	saleRepo     repository.SaleRepository
	userRepo     repository.UserRepository
	settingsRepo repository.SettingsRepository
	committer    *SaleService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	snapshots, err := snapshot.NewFileStore(filepath.Join(t.TempDir(), "snapshot.json"))
	require.NoError(t, err)

	store, err := state.New(snapshots, state.Seed("admin@test.com", "Admin", "hash"))
	require.NoError(t, err)

	saleRepo := infra.NewSaleRepository(store)
	return &testEnv{
		catalogRepo:  infra.NewCatalogRepository(store),
		saleRepo:     saleRepo,
		userRepo:     infra.NewUserRepository(store),
		settingsRepo: infra.NewSettingsRepository(store),
		committer:    NewSaleService(saleRepo, nil, 32, "Lazez"),
	}
}

func (e *testEnv) itemStock(t *testing.T, id string) int {
	t.Helper()
	item, err := e.catalogRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, item)
	return item.Stock
}

func newTestRegister(t *testing.T) (*RegisterService, *testEnv) {
	env := newTestEnv(t)
	return NewRegisterService(env.catalogRepo, env.committer), env
}

func TestSelectItemUnknown(t *testing.T) {
	svc, _ := newTestRegister(t)

	_, err := svc.SelectItem(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestSelectItemOutOfStock(t *testing.T) {
	svc, env := newTestRegister(t)
	ctx := context.Background()

	_, err := env.catalogRepo.AdjustStock(ctx, "b1", -1000)
	require.NoError(t, err)

	_, err = svc.SelectItem(ctx, "b1")
	assert.ErrorIs(t, err, apperror.ErrOutOfStock)
}

func TestSelectionPricing(t *testing.T) {
	svc, _ := newTestRegister(t)
	ctx := context.Background()

	// Wagyu Gold Burger 190, Extra Beef 45, Cheddar Cheese 15
	sel, err := svc.SelectItem(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, int64(190), sel.UnitPrice)
	assert.Equal(t, 1, sel.Quantity)

	sel, err = svc.ToggleModifier(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, int64(235), sel.UnitPrice)

	sel, err = svc.ToggleModifier(ctx, "m2")
	require.NoError(t, err)
	assert.Equal(t, int64(250), sel.UnitPrice)

	// Toggling again removes the modifier
	sel, err = svc.ToggleModifier(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, int64(205), sel.UnitPrice)
	assert.Equal(t, []string{"m2"}, sel.ModifierIDs)

	sel, err = svc.SetQuantity(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(615), sel.TotalPrice)
}

func TestToggleModifierWithoutSelection(t *testing.T) {
	svc, _ := newTestRegister(t)

	_, err := svc.ToggleModifier(context.Background(), "m1")
	assert.ErrorIs(t, err, apperror.ErrNoActiveItem)
}

func TestToggleDepletedModifierDefersToCommit(t *testing.T) {
	svc, env := newTestRegister(t)
	ctx := context.Background()

	_, err := env.catalogRepo.AdjustModifierStock(ctx, "b1", "m1", -1000)
	require.NoError(t, err)

	// Toggling never checks stock; the commit is where the line fails
	_, err = svc.SelectItem(ctx, "b1")
	require.NoError(t, err)
	sel, err := svc.ToggleModifier(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, []string{"m1"}, sel.ModifierIDs)

	_, err = svc.CommitLineItem(ctx)
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 409, appErr.Code)
	assert.Contains(t, appErr.Message, "Extra Beef")
}

func TestToggleExclusionIsFree(t *testing.T) {
	svc, _ := newTestRegister(t)
	ctx := context.Background()

	_, err := svc.SelectItem(ctx, "b1")
	require.NoError(t, err)

	sel, err := svc.ToggleExclusion(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, []string{"e1"}, sel.ExclusionIDs)
	assert.Equal(t, int64(190), sel.UnitPrice)

	_, err = svc.ToggleExclusion(ctx, "e99")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestSetQuantityClampsToOne(t *testing.T) {
	svc, _ := newTestRegister(t)
	ctx := context.Background()

	_, err := svc.SelectItem(ctx, "b1")
	require.NoError(t, err)

	sel, err := svc.SetQuantity(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, sel.Quantity)
}

func TestCommitLineItemTakesStock(t *testing.T) {
	svc, env := newTestRegister(t)
	ctx := context.Background()

	_, err := svc.SelectItem(ctx, "b1")
	require.NoError(t, err)
	_, err = svc.ToggleModifier(ctx, "m1")
	require.NoError(t, err)
	_, err = svc.SetQuantity(ctx, 2)
	require.NoError(t, err)

	receipt, err := svc.CommitLineItem(ctx)
	require.NoError(t, err)
	require.Len(t, receipt.Lines, 1)
	assert.Equal(t, int64(470), receipt.Total)
	assert.Equal(t, []string{"Extra Beef"}, receipt.Lines[0].Extras)

	assert.Equal(t, 18, env.itemStock(t, "b1"))

	// Selection is consumed by the commit
	assert.Nil(t, svc.GetSelection(ctx))
}

func TestCommitLineItemInsufficientStock(t *testing.T) {
	svc, env := newTestRegister(t)
	ctx := context.Background()

	// Seafood Marinara seeds with stock 8
	_, err := svc.SelectItem(ctx, "p5")
	require.NoError(t, err)
	_, err = svc.SetQuantity(ctx, 9)
	require.NoError(t, err)

	_, err = svc.CommitLineItem(ctx)
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 409, appErr.Code)
	assert.Contains(t, appErr.Message, "Seafood Marinara")

	// Nothing was taken and the receipt stayed empty
	assert.Equal(t, 8, env.itemStock(t, "p5"))
	assert.Empty(t, svc.GetReceipt(ctx).Lines)
}

func TestRemoveLineItemRestoresStock(t *testing.T) {
	svc, env := newTestRegister(t)
	ctx := context.Background()

	_, err := svc.SelectItem(ctx, "b1")
	require.NoError(t, err)
	_, err = svc.ToggleModifier(ctx, "m2")
	require.NoError(t, err)
	_, err = svc.SetQuantity(ctx, 3)
	require.NoError(t, err)
	_, err = svc.CommitLineItem(ctx)
	require.NoError(t, err)
	assert.Equal(t, 17, env.itemStock(t, "b1"))

	receipt, err := svc.RemoveLineItem(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, receipt.Lines)
	assert.Equal(t, 20, env.itemStock(t, "b1"))

	item, err := env.catalogRepo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, 100, item.FindModifier("m2").Stock)

	_, err = svc.RemoveLineItem(ctx, 5)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestResetReceiptRestoresEveryLine(t *testing.T) {
	svc, env := newTestRegister(t)
	ctx := context.Background()

	for _, id := range []string{"b1", "p3"} {
		_, err := svc.SelectItem(ctx, id)
		require.NoError(t, err)
		_, err = svc.CommitLineItem(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, 19, env.itemStock(t, "b1"))
	assert.Equal(t, 14, env.itemStock(t, "p3"))

	require.NoError(t, svc.ResetReceipt(ctx))
	assert.Empty(t, svc.GetReceipt(ctx).Lines)
	assert.Equal(t, 20, env.itemStock(t, "b1"))
	assert.Equal(t, 15, env.itemStock(t, "p3"))
}

func TestFinalizeCashChange(t *testing.T) {
	svc, _ := newTestRegister(t)
	ctx := context.Background()

	// Quattro Formaggi 230
	_, err := svc.SelectItem(ctx, "p3")
	require.NoError(t, err)
	_, err = svc.CommitLineItem(ctx)
	require.NoError(t, err)

	result, err := svc.Finalize(ctx, enum.PaymentCash, 300)
	require.NoError(t, err)
	assert.Equal(t, int64(70), result.Change)
	assert.Equal(t, "LZ-0001", result.Sale.ID)
	assert.Equal(t, int64(230), result.Sale.Total)
	assert.Equal(t, enum.ChannelPOS, result.Sale.Channel)

	// Receipt is cleared after a finalized sale
	assert.Empty(t, svc.GetReceipt(ctx).Lines)
}

func TestFinalizeInsufficientTender(t *testing.T) {
	svc, _ := newTestRegister(t)
	ctx := context.Background()

	_, err := svc.SelectItem(ctx, "p3")
	require.NoError(t, err)
	_, err = svc.CommitLineItem(ctx)
	require.NoError(t, err)

	_, err = svc.Finalize(ctx, enum.PaymentCash, 200)
	assert.ErrorIs(t, err, apperror.ErrInsufficientTender)

	// The receipt survives a failed finalize
	assert.Len(t, svc.GetReceipt(ctx).Lines, 1)
}

func TestFinalizeCardIgnoresTender(t *testing.T) {
	svc, _ := newTestRegister(t)
	ctx := context.Background()

	_, err := svc.SelectItem(ctx, "p3")
	require.NoError(t, err)
	_, err = svc.CommitLineItem(ctx)
	require.NoError(t, err)

	result, err := svc.Finalize(ctx, enum.PaymentCard, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Change)
}

func TestFinalizeEmptyReceipt(t *testing.T) {
	svc, _ := newTestRegister(t)

	_, err := svc.Finalize(context.Background(), enum.PaymentCash, 100)
	assert.ErrorIs(t, err, apperror.ErrEmptyReceipt)
}

func TestInvoiceCodesAreSequential(t *testing.T) {
	svc, _ := newTestRegister(t)
	ctx := context.Background()

	for _, want := range []string{"LZ-0001", "LZ-0002"} {
		_, err := svc.SelectItem(ctx, "b7")
		require.NoError(t, err)
		_, err = svc.CommitLineItem(ctx)
		require.NoError(t, err)

		result, err := svc.Finalize(ctx, enum.PaymentCard, 0)
		require.NoError(t, err)
		assert.Equal(t, want, result.Sale.ID)
	}
}
