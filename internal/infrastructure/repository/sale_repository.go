package repository

import (
	"context"

	"github.com/amr-khaled0p/lazez2/internal/domain/entity"
	"github.com/amr-khaled0p/lazez2/internal/domain/enum"
	"github.com/amr-khaled0p/lazez2/internal/domain/repository"
	"github.com/amr-khaled0p/lazez2/internal/infrastructure/state"
)

type saleRepository struct {
	store *state.Store
}

// NewSaleRepository creates a sales log repository over the state store.
func NewSaleRepository(store *state.Store) repository.SaleRepository {
	return &saleRepository{store: store}
}

func (r *saleRepository) Append(ctx context.Context, sale *entity.Sale) error {
	return r.store.Update(func(st *state.State) error {
		// Prepend so the log stays newest-first, matching the read paths.
		st.Sales = append([]entity.Sale{*sale}, st.Sales...)
		return nil
	})
}

func (r *saleRepository) List(ctx context.Context, offset, limit int) ([]entity.Sale, int64, error) {
	var (
		page  []entity.Sale
		total int64
	)
	r.store.View(func(st *state.State) {
		total = int64(len(st.Sales))
		if offset >= len(st.Sales) {
			return
		}
		end := offset + limit
		if end > len(st.Sales) {
			end = len(st.Sales)
		}
		page = append(page, st.Sales[offset:end]...)
	})
	return page, total, nil
}

func (r *saleRepository) Recent(ctx context.Context, n int) ([]entity.Sale, error) {
	var recent []entity.Sale
	r.store.View(func(st *state.State) {
		if n > len(st.Sales) {
			n = len(st.Sales)
		}
		recent = append(recent, st.Sales[:n]...)
	})
	return recent, nil
}

func (r *saleRepository) TotalRevenue(ctx context.Context) (int64, error) {
	var total int64
	r.store.View(func(st *state.State) {
		for i := range st.Sales {
			total += st.Sales[i].Total
		}
	})
	return total, nil
}

func (r *saleRepository) RevenueByMethod(ctx context.Context, method enum.PaymentMethod) (int64, error) {
	var total int64
	r.store.View(func(st *state.State) {
		for i := range st.Sales {
			if st.Sales[i].PaymentMethod == method {
				total += st.Sales[i].Total
			}
		}
	})
	return total, nil
}

func (r *saleRepository) NextInvoiceSeq(ctx context.Context) (int64, error) {
	var seq int64
	err := r.store.Update(func(st *state.State) error {
		st.InvoiceSeq++
		seq = st.InvoiceSeq
		return nil
	})
	return seq, err
}
