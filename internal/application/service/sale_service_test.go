package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amr-khaled0p/lazez2/internal/domain/entity"
	"github.com/amr-khaled0p/lazez2/internal/domain/enum"
	"github.com/amr-khaled0p/lazez2/pkg/apperror"
	"github.com/amr-khaled0p/lazez2/pkg/pagination"
)

func commitTestSale(t *testing.T, svc *SaleService, total int64, method enum.PaymentMethod) *entity.Sale {
	t.Helper()
	sale, err := svc.Commit(context.Background(), []entity.LineItem{
		{ItemID: "b1", Name: "Wagyu Gold Burger", UnitPrice: total, Quantity: 1, TotalPrice: total},
	}, method, enum.ChannelOnline)
	require.NoError(t, err)
	return sale
}

func TestCommitAssignsInvoiceCodeAndDate(t *testing.T) {
	env := newTestEnv(t)

	before := time.Now().UTC()
	sale := commitTestSale(t, env.committer, 190, enum.PaymentCash)

	assert.Equal(t, "LZ-0001", sale.ID)
	assert.Equal(t, int64(190), sale.Total)
	assert.Equal(t, enum.ChannelOnline, sale.Channel)
	assert.False(t, sale.Date.Before(before))
	assert.Equal(t, time.UTC, sale.Date.Location())

	sale = commitTestSale(t, env.committer, 85, enum.PaymentCard)
	assert.Equal(t, "LZ-0002", sale.ID)
}

func TestCommitRejectsEmptyLines(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.committer.Commit(context.Background(), nil, enum.PaymentCash, enum.ChannelPOS)
	assert.ErrorIs(t, err, apperror.ErrEmptyReceipt)
}

func TestGetSummaryAggregates(t *testing.T) {
	env := newTestEnv(t)

	commitTestSale(t, env.committer, 100, enum.PaymentCash)
	commitTestSale(t, env.committer, 150, enum.PaymentCard)
	commitTestSale(t, env.committer, 50, enum.PaymentCash)

	summary, err := env.committer.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(300), summary.TotalRevenue)
	assert.Equal(t, int64(150), summary.CashRevenue)
	assert.Equal(t, int64(150), summary.CardRevenue)
	assert.Equal(t, int64(3), summary.SaleCount)
	require.Len(t, summary.RecentSales, 3)
	assert.Equal(t, "LZ-0003", summary.RecentSales[0].ID)
}

func TestListSalesPagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		commitTestSale(t, env.committer, 100, enum.PaymentCash)
	}

	result, err := env.committer.ListSales(ctx, &pagination.PaginationParams{Page: 2, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(5), result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.True(t, result.Pagination.HasNext)
	assert.True(t, result.Pagination.HasPrev)

	// Invalid params fall back to defaults
	result, err = env.committer.ListSales(ctx, &pagination.PaginationParams{Page: 0, PerPage: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Pagination.CurrentPage)
	assert.Equal(t, 15, result.Pagination.PerPage)
	assert.Len(t, result.Items, 5)
}

func TestRecentSalesDefaultsToFive(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 7; i++ {
		commitTestSale(t, env.committer, 100, enum.PaymentCash)
	}

	recent, err := env.committer.RecentSales(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, recent, 5)
	assert.Equal(t, "LZ-0007", recent[0].ID)
}
