package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/amr-khaled0p/lazez2/internal/domain/entity"
	"github.com/amr-khaled0p/lazez2/internal/domain/enum"
	"github.com/amr-khaled0p/lazez2/internal/domain/repository"
	"github.com/amr-khaled0p/lazez2/pkg/apperror"
)

// CartService holds per-user storefront carts. Carts are working drafts:
// they never touch stock until checkout, when each entry's stock is taken
// strictly or the whole checkout fails.
type CartService struct {
	mu    sync.RWMutex
	carts map[uuid.UUID][]cartEntry

	catalogRepo  repository.CatalogRepository
	settingsRepo repository.SettingsRepository
	userRepo     repository.UserRepository
	committer    *SaleService
}

type cartEntry struct {
	ItemID   string
	Quantity int
}

// NewCartService creates a new cart service
func NewCartService(
	catalogRepo repository.CatalogRepository,
	settingsRepo repository.SettingsRepository,
	userRepo repository.UserRepository,
	committer *SaleService,
) *CartService {
	return &CartService{
		carts:        make(map[uuid.UUID][]cartEntry),
		catalogRepo:  catalogRepo,
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
		committer:    committer,
	}
}

// CartLine is one cart entry joined with its live catalog item.
type CartLine struct {
	Item     *entity.CatalogItem `json:"item"`
	Quantity int                 `json:"quantity"`
	Total    int64               `json:"total"`
}

// CartView is the priced cart as returned to the storefront.
type CartView struct {
	Lines    []CartLine `json:"lines"`
	Subtotal int64      `json:"subtotal"`
}

// AddItem puts qty units of an item in the user's cart. Adding an item
// already in the cart merges into the existing entry.
func (s *CartService) AddItem(ctx context.Context, userID uuid.UUID, itemID string, qty int) (*CartView, error) {
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
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	entries := s.carts[userID]
	merged := false
	for i := range entries {
		if entries[i].ItemID == itemID {
			entries[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		entries = append(entries, cartEntry{ItemID: itemID, Quantity: qty})
	}
	s.carts[userID] = entries
	s.mu.Unlock()

	return s.GetCart(ctx, userID)
}

// SetQuantity sets an entry's quantity. Values below one clamp to one; use
// RemoveItem to drop an entry.
func (s *CartService) SetQuantity(ctx context.Context, userID uuid.UUID, itemID string, qty int) (*CartView, error) {
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	entries := s.carts[userID]
	found := false
	for i := range entries {
		if entries[i].ItemID == itemID {
			entries[i].Quantity = qty
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return nil, apperror.NewNotFoundError("Cart entry")
	}
	return s.GetCart(ctx, userID)
}

// RemoveItem drops an entry from the cart.
func (s *CartService) RemoveItem(ctx context.Context, userID uuid.UUID, itemID string) (*CartView, error) {
	s.mu.Lock()
	entries := s.carts[userID]
	for i := range entries {
		if entries[i].ItemID == itemID {
			s.carts[userID] = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	return s.GetCart(ctx, userID)
}

// ClearCart empties the user's cart.
func (s *CartService) ClearCart(ctx context.Context, userID uuid.UUID) {
	s.mu.Lock()
	delete(s.carts, userID)
	s.mu.Unlock()
}

// GetCart returns the priced cart. Entries whose item was deleted from the
// catalog are silently dropped.
func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	s.mu.RLock()
	entries := append([]cartEntry(nil), s.carts[userID]...)
	s.mu.RUnlock()

	view := &CartView{Lines: make([]CartLine, 0, len(entries))}
	for _, e := range entries {
		item, err := s.catalogRepo.GetByID(ctx, e.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			continue
		}
		total := item.Price * int64(e.Quantity)
		view.Lines = append(view.Lines, CartLine{Item: item, Quantity: e.Quantity, Total: total})
		view.Subtotal += total
	}
	return view, nil
}

// CheckoutResult is the outcome of an online checkout.
type CheckoutResult struct {
	Sale          *entity.Sale `json:"sale"`
	LoyaltyPoints int          `json:"loyaltyPoints"`
}

// Checkout turns the cart into an online sale. The store must be open and
// every entry must have stock for its full quantity; a partial shortage
// takes nothing and reports the failing item names. One loyalty point is
// earned per ten currency units spent.
func (s *CartService) Checkout(ctx context.Context, userID uuid.UUID, method enum.PaymentMethod) (*CheckoutResult, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings.IsClosed {
		return nil, apperror.ErrStoreClosed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.carts[userID]
	if len(entries) == 0 {
		return nil, apperror.ErrEmptyReceipt
	}

	// Take stock entry by entry; on any shortage give back what was taken.
	var taken []cartEntry
	var lines []entity.LineItem
	for _, e := range entries {
		item, err := s.catalogRepo.GetByID(ctx, e.ItemID)
		if err != nil {
			s.restore(ctx, taken)
			return nil, err
		}
		if item == nil {
			s.restore(ctx, taken)
			return nil, apperror.NewNotFoundError("Menu item")
		}

		insufficient, err := s.catalogRepo.DecrementForSale(ctx, e.ItemID, nil, e.Quantity)
		if err != nil {
			s.restore(ctx, taken)
			return nil, err
		}
		if len(insufficient) > 0 {
			s.restore(ctx, taken)
			return nil, apperror.NewInsufficientStockError(insufficient)
		}
		taken = append(taken, e)

		lines = append(lines, entity.LineItem{
			ItemID:     item.ID,
			Name:       item.Name,
			UnitPrice:  item.Price,
			Quantity:   e.Quantity,
			TotalPrice: item.Price * int64(e.Quantity),
		})
	}

	sale, err := s.committer.Commit(ctx, lines, method, enum.ChannelOnline)
	if err != nil {
		s.restore(ctx, taken)
		return nil, err
	}

	delete(s.carts, userID)

	points := int(sale.Total / 10)
	if user, err := s.userRepo.GetByID(ctx, userID); err == nil && user != nil {
		user.LoyaltyPoints += points
		_ = s.userRepo.Update(ctx, user)
	}

	return &CheckoutResult{Sale: sale, LoyaltyPoints: points}, nil
}

func (s *CartService) restore(ctx context.Context, taken []cartEntry) {
	for _, e := range taken {
		_ = s.catalogRepo.RestoreForSale(ctx, e.ItemID, nil, e.Quantity)
	}
}
