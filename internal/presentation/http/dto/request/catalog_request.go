package request

// ModifierPayload is a paid add-on in a create/update item request.
type ModifierPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name" binding:"required"`
	Price int64  `json:"price" binding:"min=0"`
	Stock int    `json:"stock" binding:"min=0"`
}

// ExclusionPayload is a removable component label in a create/update item
// request.
type ExclusionPayload struct {
	ID   string `json:"id"`
	Name string `json:"name" binding:"required"`
}

// CreateItemRequest represents a create menu item request
type CreateItemRequest struct {
	Name         string             `json:"name" binding:"required"`
	Description  string             `json:"description"`
	Price        int64              `json:"price" binding:"required,gt=0"`
	Category     string             `json:"category" binding:"required"`
	Image        string             `json:"image"`
	Stock        int                `json:"stock" binding:"min=0"`
	Modifiers    []ModifierPayload  `json:"modifiers"`
	Exclusions   []ExclusionPayload `json:"exclusions"`
	IsBestSeller bool               `json:"isBestSeller"`
}

// UpdateItemRequest represents an update menu item request. Omitted fields
// are left unchanged.
type UpdateItemRequest struct {
	Name         *string            `json:"name"`
	Description  *string            `json:"description"`
	Price        *int64             `json:"price"`
	Category     *string            `json:"category"`
	Image        *string            `json:"image"`
	Stock        *int               `json:"stock"`
	Modifiers    []ModifierPayload  `json:"modifiers"`
	Exclusions   []ExclusionPayload `json:"exclusions"`
	IsBestSeller *bool              `json:"isBestSeller"`
}

// AdjustStockRequest applies a signed delta to an item or modifier stock
type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}
