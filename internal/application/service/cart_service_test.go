package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amr-khaled0p/lazez2/internal/domain/entity"
	"github.com/amr-khaled0p/lazez2/internal/domain/enum"
	"github.com/amr-khaled0p/lazez2/pkg/apperror"
)

func newTestCart(t *testing.T) (*CartService, *testEnv, uuid.UUID) {
	env := newTestEnv(t)
	svc := NewCartService(env.catalogRepo, env.settingsRepo, env.userRepo, env.committer)

	user := &entity.User{
		ID:        uuid.New(),
		Email:     "customer@test.com",
		Name:      "Customer",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, env.userRepo.Create(context.Background(), user))
	return svc, env, user.ID
}

func TestAddItemMergesByID(t *testing.T) {
	svc, _, userID := newTestCart(t)
	ctx := context.Background()

	// Wagyu Gold Burger 190
	cart, err := svc.AddItem(ctx, userID, "b1", 2)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(380), cart.Subtotal)

	cart, err = svc.AddItem(ctx, userID, "b1", 1)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
	assert.Equal(t, int64(570), cart.Subtotal)

	_, err = svc.AddItem(ctx, userID, "nope", 1)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestAddItemOutOfStock(t *testing.T) {
	svc, env, userID := newTestCart(t)
	ctx := context.Background()

	_, err := env.catalogRepo.AdjustStock(ctx, "b1", -1000)
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, userID, "b1", 1)
	assert.ErrorIs(t, err, apperror.ErrOutOfStock)
}

func TestSetQuantityClampsAndRequiresEntry(t *testing.T) {
	svc, _, userID := newTestCart(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, userID, "b1", 2)
	require.NoError(t, err)

	cart, err := svc.SetQuantity(ctx, userID, "b1", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Lines[0].Quantity)

	_, err = svc.SetQuantity(ctx, userID, "p3", 2)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestRemoveItemAndClear(t *testing.T) {
	svc, _, userID := newTestCart(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, userID, "b1", 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, userID, "p3", 1)
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, userID, "b1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "p3", cart.Lines[0].Item.ID)

	svc.ClearCart(ctx, userID)
	cart, err = svc.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestCheckoutCommitsOnlineSale(t *testing.T) {
	svc, env, userID := newTestCart(t)
	ctx := context.Background()

	// 2x Wagyu Gold Burger 190 + 1x Quattro Formaggi 230 = 610
	_, err := svc.AddItem(ctx, userID, "b1", 2)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, userID, "p3", 1)
	require.NoError(t, err)

	result, err := svc.Checkout(ctx, userID, enum.PaymentCard)
	require.NoError(t, err)
	assert.Equal(t, "LZ-0001", result.Sale.ID)
	assert.Equal(t, int64(610), result.Sale.Total)
	assert.Equal(t, enum.ChannelOnline, result.Sale.Channel)
	assert.Equal(t, 61, result.LoyaltyPoints)

	assert.Equal(t, 18, env.itemStock(t, "b1"))
	assert.Equal(t, 14, env.itemStock(t, "p3"))

	// Cart is emptied and loyalty points land on the user
	cart, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)

	user, err := env.userRepo.GetByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 61, user.LoyaltyPoints)
}

func TestCheckoutWhileClosed(t *testing.T) {
	svc, env, userID := newTestCart(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, userID, "b1", 1)
	require.NoError(t, err)

	settings, err := env.settingsRepo.Get(ctx)
	require.NoError(t, err)
	settings.IsClosed = true
	require.NoError(t, env.settingsRepo.Update(ctx, settings))

	_, err = svc.Checkout(ctx, userID, enum.PaymentCash)
	assert.ErrorIs(t, err, apperror.ErrStoreClosed)
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, _, userID := newTestCart(t)

	_, err := svc.Checkout(context.Background(), userID, enum.PaymentCash)
	assert.ErrorIs(t, err, apperror.ErrEmptyReceipt)
}

func TestCheckoutShortageRollsBack(t *testing.T) {
	svc, env, userID := newTestCart(t)
	ctx := context.Background()

	// Seafood Marinara seeds with stock 8; the first entry decrements fine,
	// the second runs short and the whole checkout must unwind.
	_, err := svc.AddItem(ctx, userID, "b1", 2)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, userID, "p5", 8)
	require.NoError(t, err)
	_, err = svc.SetQuantity(ctx, userID, "p5", 9)
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, userID, enum.PaymentCash)
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 409, appErr.Code)
	assert.Contains(t, appErr.Message, "Seafood Marinara")

	assert.Equal(t, 20, env.itemStock(t, "b1"))
	assert.Equal(t, 8, env.itemStock(t, "p5"))

	// The cart survives so the shopper can adjust it
	cart, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 2)
}
