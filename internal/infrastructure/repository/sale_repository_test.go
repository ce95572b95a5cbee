package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amr-khaled0p/lazez2/internal/domain/entity"
	"github.com/amr-khaled0p/lazez2/internal/domain/enum"
)

func appendSale(t *testing.T, repo interface {
	Append(ctx context.Context, sale *entity.Sale) error
}, id string, total int64, method enum.PaymentMethod) {
	t.Helper()
	require.NoError(t, repo.Append(context.Background(), &entity.Sale{
		ID:            id,
		Items:         []entity.SaleLine{{Name: "Item", Quantity: 1, Price: total}},
		Total:         total,
		Date:          time.Now().UTC(),
		PaymentMethod: method,
		Channel:       enum.ChannelPOS,
	}))
}

func TestAppendKeepsNewestFirst(t *testing.T) {
	repo := NewSaleRepository(newTestStore(t))
	ctx := context.Background()

	appendSale(t, repo, "LZ-0001", 100, enum.PaymentCash)
	appendSale(t, repo, "LZ-0002", 200, enum.PaymentCard)

	sales, total, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, sales, 2)
	assert.Equal(t, "LZ-0002", sales[0].ID)
	assert.Equal(t, "LZ-0001", sales[1].ID)
}

func TestListPaging(t *testing.T) {
	repo := NewSaleRepository(newTestStore(t))
	ctx := context.Background()

	for i := int64(1); i <= 5; i++ {
		appendSale(t, repo, "LZ", i*10, enum.PaymentCash)
	}

	page, total, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page, 2)

	// Offset past the end yields an empty page, not an error
	empty, total, err := repo.List(ctx, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, empty)
}

func TestRecent(t *testing.T) {
	repo := NewSaleRepository(newTestStore(t))

	appendSale(t, repo, "LZ-0001", 100, enum.PaymentCash)
	appendSale(t, repo, "LZ-0002", 200, enum.PaymentCash)

	recent, err := repo.Recent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "LZ-0002", recent[0].ID)
}

func TestRevenueAggregates(t *testing.T) {
	repo := NewSaleRepository(newTestStore(t))
	ctx := context.Background()

	appendSale(t, repo, "LZ-0001", 100, enum.PaymentCash)
	appendSale(t, repo, "LZ-0002", 125, enum.PaymentCard)
	appendSale(t, repo, "LZ-0003", 75, enum.PaymentCash)

	total, err := repo.TotalRevenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(300), total)

	cash, err := repo.RevenueByMethod(ctx, enum.PaymentCash)
	require.NoError(t, err)
	assert.Equal(t, int64(175), cash)

	card, err := repo.RevenueByMethod(ctx, enum.PaymentCard)
	require.NoError(t, err)
	assert.Equal(t, int64(125), card)
}

func TestNextInvoiceSeqIsMonotonic(t *testing.T) {
	repo := NewSaleRepository(newTestStore(t))
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		seq, err := repo.NextInvoiceSeq(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, seq)
	}
}
