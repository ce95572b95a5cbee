package request

// AddCartItemRequest puts an item in the storefront cart
type AddCartItemRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	Quantity int    `json:"quantity"`
}

// UpdateCartItemRequest sets a cart entry's quantity
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// CheckoutRequest turns the cart into an online sale
type CheckoutRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}
