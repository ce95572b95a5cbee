package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/amr-khaled0p/lazez2/internal/domain/entity"
	"github.com/amr-khaled0p/lazez2/internal/domain/enum"
	"github.com/amr-khaled0p/lazez2/internal/domain/repository"
	"github.com/amr-khaled0p/lazez2/pkg/apperror"
	"github.com/amr-khaled0p/lazez2/pkg/pagination"
	"github.com/amr-khaled0p/lazez2/pkg/printer"
	"github.com/amr-khaled0p/lazez2/pkg/utils"
)

// SaleService commits finalized transactions to the append-only sales log
// and serves the finance views built on top of it.
type SaleService struct {
	saleRepo     repository.SaleRepository
	printer      printer.Printer
	printerWidth int
	storeName    string
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, p printer.Printer, printerWidth int, storeName string) *SaleService {
	if printerWidth <= 0 {
		printerWidth = 32
	}
	return &SaleService{
		saleRepo:     saleRepo,
		printer:      p,
		printerWidth: printerWidth,
		storeName:    storeName,
	}
}

// Commit records a finished transaction. Stock must already be decremented
// by the caller; the committer only assigns the invoice code, timestamps the
// sale, and appends it to the log.
func (s *SaleService) Commit(ctx context.Context, lines []entity.LineItem, method enum.PaymentMethod, channel enum.SaleChannel) (*entity.Sale, error) {
	if len(lines) == 0 {
		return nil, apperror.ErrEmptyReceipt
	}

	seq, err := s.saleRepo.NextInvoiceSeq(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]entity.SaleLine, 0, len(lines))
	for _, l := range lines {
		items = append(items, entity.SaleLine{
			Name:     l.Name,
			Quantity: l.Quantity,
			Price:    l.TotalPrice,
			Extras:   l.Extras,
			Removals: l.Removals,
		})
	}

	sale := &entity.Sale{
		ID:            utils.FormatInvoiceCode(seq),
		Items:         items,
		Total:         entity.ReceiptTotal(lines),
		Date:          time.Now().UTC(),
		PaymentMethod: method,
		Channel:       channel,
	}

	if err := s.saleRepo.Append(ctx, sale); err != nil {
		return nil, err
	}

	// Printing is best-effort: a dead printer never voids a committed sale.
	if s.printer != nil && channel == enum.ChannelPOS {
		if err := s.printer.Print(s.formatReceipt(sale)); err != nil {
			log.Printf("Printer error (sale %s): %v", sale.ID, err)
		}
	}

	return sale, nil
}

// ListSales returns a page of the sales log, newest first
func (s *SaleService) ListSales(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Sale], error) {
	params.Validate()
	sales, total, err := s.saleRepo.List(ctx, params.Offset(), params.PerPage)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// RecentSales returns the n most recent sales
func (s *SaleService) RecentSales(ctx context.Context, n int) ([]entity.Sale, error) {
	if n <= 0 {
		n = 5
	}
	return s.saleRepo.Recent(ctx, n)
}

// TotalRevenue sums all sale totals
func (s *SaleService) TotalRevenue(ctx context.Context) (int64, error) {
	return s.saleRepo.TotalRevenue(ctx)
}

// RevenueByMethod sums the totals of sales paid with the given method
func (s *SaleService) RevenueByMethod(ctx context.Context, method enum.PaymentMethod) (int64, error) {
	return s.saleRepo.RevenueByMethod(ctx, method)
}

// FinanceSummary aggregates the sales log for the back-office dashboard
type FinanceSummary struct {
	TotalRevenue int64         `json:"totalRevenue"`
	CashRevenue  int64         `json:"cashRevenue"`
	CardRevenue  int64         `json:"cardRevenue"`
	SaleCount    int64         `json:"saleCount"`
	RecentSales  []entity.Sale `json:"recentSales"`
}

// GetSummary returns the finance dashboard aggregates
func (s *SaleService) GetSummary(ctx context.Context) (*FinanceSummary, error) {
	total, err := s.saleRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	cash, err := s.saleRepo.RevenueByMethod(ctx, enum.PaymentCash)
	if err != nil {
		return nil, err
	}
	card, err := s.saleRepo.RevenueByMethod(ctx, enum.PaymentCard)
	if err != nil {
		return nil, err
	}
	_, count, err := s.saleRepo.List(ctx, 0, 1)
	if err != nil {
		return nil, err
	}
	recent, err := s.saleRepo.Recent(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &FinanceSummary{
		TotalRevenue: total,
		CashRevenue:  cash,
		CardRevenue:  card,
		SaleCount:    count,
		RecentSales:  recent,
	}, nil
}

// formatReceipt converts a committed sale into ESC/POS bytes.
func (s *SaleService) formatReceipt(sale *entity.Sale) []byte {
	doc := printer.NewDocument(s.printerWidth)

	doc.Align(printer.AlignCenter).
		Bold(true).
		Size(printer.SizeDouble).
		Line(s.storeName).
		Size(printer.SizeNormal).
		Bold(false).
		Align(printer.AlignLeft).
		Rule()

	doc.Row("Invoice:", sale.ID).
		Row("Date:", sale.Date.Format("2006-01-02 15:04")).
		Row("Payment:", sale.PaymentMethod.String()).
		Rule()

	for _, item := range sale.Items {
		doc.ItemRow(item.Quantity, item.Name, fmt.Sprintf("%d", item.Price))
		for _, extra := range item.Extras {
			doc.Linef("  + %s", extra)
		}
		for _, removal := range item.Removals {
			doc.Linef("  - no %s", removal)
		}
	}

	doc.Rule().
		Bold(true).
		Row("TOTAL:", fmt.Sprintf("%d", sale.Total)).
		Bold(false).
		Align(printer.AlignCenter).
		Feed(1).
		Line("Thank you, come again!").
		Feed(3).
		Cut()

	return doc.Bytes()
}
