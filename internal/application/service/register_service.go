package service

import (
	"context"
	"sync"

	"github.com/amr-khaled0p/lazez2/internal/domain/entity"
	"github.com/amr-khaled0p/lazez2/internal/domain/enum"
	"github.com/amr-khaled0p/lazez2/internal/domain/repository"
	"github.com/amr-khaled0p/lazez2/pkg/apperror"
)

// RegisterService drives the single cashier-facing register session: staging
// one item at a time, committing priced line items to the receipt, and
// finalizing the receipt into a sale. Stock moves when a line commits, and
// moves back when a line is removed or the receipt is reset.
type RegisterService struct {
	mu          sync.Mutex
	catalogRepo repository.CatalogRepository
	committer   *SaleService

	active *stagedItem
	lines  []entity.LineItem
}

// stagedItem is the in-progress configuration between selectItem and
// commitLineItem. Toggle order is preserved so receipt labels read in the
// order the cashier picked them.
type stagedItem struct {
	item         *entity.CatalogItem
	modifierIDs  []string
	exclusionIDs []string
	quantity     int
}

// NewRegisterService creates a new register service
func NewRegisterService(catalogRepo repository.CatalogRepository, committer *SaleService) *RegisterService {
	return &RegisterService{
		catalogRepo: catalogRepo,
		committer:   committer,
	}
}

// Selection is the view of the staged item configuration.
type Selection struct {
	Item         *entity.CatalogItem `json:"item"`
	ModifierIDs  []string            `json:"modifierIds"`
	ExclusionIDs []string            `json:"exclusionIds"`
	Quantity     int                 `json:"quantity"`
	UnitPrice    int64               `json:"unitPrice"`
	TotalPrice   int64               `json:"totalPrice"`
}

// SelectItem stages an item for configuration, replacing any prior staged
// selection. Out-of-stock items cannot be staged.
func (s *RegisterService) SelectItem(ctx context.Context, itemID string) (*Selection, error) {
	item, err := s.catalogRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	if !item.InStock() {
		return nil, apperror.ErrOutOfStock
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = &stagedItem{item: item, quantity: 1}
	return s.selectionLocked(), nil
}

// ToggleModifier adds the modifier to the staged selection, or removes it if
// already selected. Stock is not checked here; CommitLineItem rejects the
// line if the modifier cannot cover the quantity.
func (s *RegisterService) ToggleModifier(ctx context.Context, modifierID string) (*Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil, apperror.ErrNoActiveItem
	}

	mod := s.active.item.FindModifier(modifierID)
	if mod == nil {
		return nil, apperror.NewNotFoundError("Modifier")
	}

	for i, id := range s.active.modifierIDs {
		if id == modifierID {
			s.active.modifierIDs = append(s.active.modifierIDs[:i], s.active.modifierIDs[i+1:]...)
			return s.selectionLocked(), nil
		}
	}

	s.active.modifierIDs = append(s.active.modifierIDs, modifierID)
	return s.selectionLocked(), nil
}

// ToggleExclusion adds or removes a free removal label on the staged
// selection.
func (s *RegisterService) ToggleExclusion(ctx context.Context, exclusionID string) (*Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil, apperror.ErrNoActiveItem
	}

	if s.active.item.FindExclusion(exclusionID) == nil {
		return nil, apperror.NewNotFoundError("Exclusion")
	}

	for i, id := range s.active.exclusionIDs {
		if id == exclusionID {
			s.active.exclusionIDs = append(s.active.exclusionIDs[:i], s.active.exclusionIDs[i+1:]...)
			return s.selectionLocked(), nil
		}
	}
	s.active.exclusionIDs = append(s.active.exclusionIDs, exclusionID)
	return s.selectionLocked(), nil
}

// SetQuantity sets the staged quantity. Values below one clamp to one.
func (s *RegisterService) SetQuantity(ctx context.Context, quantity int) (*Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil, apperror.ErrNoActiveItem
	}

	if quantity < 1 {
		quantity = 1
	}
	s.active.quantity = quantity
	return s.selectionLocked(), nil
}

// GetSelection returns the staged configuration, or nil when idle.
func (s *RegisterService) GetSelection(ctx context.Context) *Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil
	}
	return s.selectionLocked()
}

// ClearSelection discards the staged configuration without touching stock.
func (s *RegisterService) ClearSelection(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
}

// CommitLineItem prices the staged configuration, takes its stock, and
// appends it to the receipt. If the item or any selected modifier lacks
// stock for the full quantity, nothing is taken and the failing names are
// reported.
func (s *RegisterService) CommitLineItem(ctx context.Context) (*entity.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil, apperror.ErrNoActiveItem
	}

	a := s.active
	insufficient, err := s.catalogRepo.DecrementForSale(ctx, a.item.ID, a.modifierIDs, a.quantity)
	if err != nil {
		return nil, err
	}
	if len(insufficient) > 0 {
		return nil, apperror.NewInsufficientStockError(insufficient)
	}

	unitPrice := a.item.Price
	extras := make([]string, 0, len(a.modifierIDs))
	for _, id := range a.modifierIDs {
		if mod := a.item.FindModifier(id); mod != nil {
			unitPrice += mod.Price
			extras = append(extras, mod.Name)
		}
	}
	removals := make([]string, 0, len(a.exclusionIDs))
	for _, id := range a.exclusionIDs {
		if exc := a.item.FindExclusion(id); exc != nil {
			removals = append(removals, exc.Name)
		}
	}

	s.lines = append(s.lines, entity.LineItem{
		ItemID:      a.item.ID,
		Name:        a.item.Name,
		UnitPrice:   unitPrice,
		Quantity:    a.quantity,
		TotalPrice:  unitPrice * int64(a.quantity),
		Extras:      extras,
		Removals:    removals,
		ModifierIDs: append([]string(nil), a.modifierIDs...),
	})
	s.active = nil

	return s.receiptLocked(), nil
}

// RemoveLineItem drops one committed line and restores the exact stock it
// consumed.
func (s *RegisterService) RemoveLineItem(ctx context.Context, index int) (*entity.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.lines) {
		return nil, apperror.NewNotFoundError("Line item")
	}

	line := s.lines[index]
	if err := s.catalogRepo.RestoreForSale(ctx, line.ItemID, line.ModifierIDs, line.Quantity); err != nil {
		return nil, err
	}
	s.lines = append(s.lines[:index], s.lines[index+1:]...)

	return s.receiptLocked(), nil
}

// GetReceipt returns the current receipt view.
func (s *RegisterService) GetReceipt(ctx context.Context) *entity.Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.receiptLocked()
}

// ResetReceipt voids the transaction: every committed line's stock is
// restored and the staged selection is discarded.
func (s *RegisterService) ResetReceipt(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, line := range s.lines {
		if err := s.catalogRepo.RestoreForSale(ctx, line.ItemID, line.ModifierIDs, line.Quantity); err != nil {
			return err
		}
	}
	s.lines = nil
	s.active = nil
	return nil
}

// FinalizeResult is the outcome of a finalized register transaction.
type FinalizeResult struct {
	Sale   *entity.Sale `json:"sale"`
	Change int64        `json:"change"`
}

// Finalize commits the receipt as a sale. Cash payments must tender at
// least the total; change is total minus tender, zero for card.
func (s *RegisterService) Finalize(ctx context.Context, method enum.PaymentMethod, tendered int64) (*FinalizeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.lines) == 0 {
		return nil, apperror.ErrEmptyReceipt
	}

	total := entity.ReceiptTotal(s.lines)

	var change int64
	if method == enum.PaymentCash {
		if tendered < total {
			return nil, apperror.ErrInsufficientTender
		}
		change = tendered - total
	}

	sale, err := s.committer.Commit(ctx, s.lines, method, enum.ChannelPOS)
	if err != nil {
		return nil, err
	}

	s.lines = nil
	s.active = nil

	return &FinalizeResult{Sale: sale, Change: change}, nil
}

// selectionLocked builds the staged view. Caller holds the mutex.
func (s *RegisterService) selectionLocked() *Selection {
	a := s.active
	unitPrice := a.item.Price
	for _, id := range a.modifierIDs {
		if mod := a.item.FindModifier(id); mod != nil {
			unitPrice += mod.Price
		}
	}
	return &Selection{
		Item:         a.item.Clone(),
		ModifierIDs:  append([]string(nil), a.modifierIDs...),
		ExclusionIDs: append([]string(nil), a.exclusionIDs...),
		Quantity:     a.quantity,
		UnitPrice:    unitPrice,
		TotalPrice:   unitPrice * int64(a.quantity),
	}
}

// receiptLocked builds the receipt view. Caller holds the mutex.
func (s *RegisterService) receiptLocked() *entity.Receipt {
	lines := append([]entity.LineItem(nil), s.lines...)
	return &entity.Receipt{
		Lines: lines,
		Total: entity.ReceiptTotal(lines),
	}
}
