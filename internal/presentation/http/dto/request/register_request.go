package request

// SelectItemRequest stages a menu item at the register
type SelectItemRequest struct {
	ItemID string `json:"itemId" binding:"required"`
}

// ToggleModifierRequest toggles a paid add-on on the staged item
type ToggleModifierRequest struct {
	ModifierID string `json:"modifierId" binding:"required"`
}

// ToggleExclusionRequest toggles a removal label on the staged item
type ToggleExclusionRequest struct {
	ExclusionID string `json:"exclusionId" binding:"required"`
}

// SetQuantityRequest sets the staged quantity
type SetQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// FinalizeRequest finalizes the receipt into a sale. Tendered is only
// meaningful for cash payments.
type FinalizeRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	Tendered      int64  `json:"tendered"`
}
