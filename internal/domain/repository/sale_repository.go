package repository

import (
	"context"

	"github.com/amr-khaled0p/lazez2/internal/domain/entity"
	"github.com/amr-khaled0p/lazez2/internal/domain/enum"
)

// SaleRepository is the append-only sales log. There is deliberately no
// update or delete operation: sales are a financial record.
type SaleRepository interface {
	// Append prepends the sale so the log stays newest-first.
	Append(ctx context.Context, sale *entity.Sale) error
	List(ctx context.Context, offset, limit int) ([]entity.Sale, int64, error)
	Recent(ctx context.Context, n int) ([]entity.Sale, error)
	TotalRevenue(ctx context.Context) (int64, error)
	RevenueByMethod(ctx context.Context, method enum.PaymentMethod) (int64, error)
	// NextInvoiceSeq returns the next value of the persisted invoice counter.
	NextInvoiceSeq(ctx context.Context) (int64, error)
}
