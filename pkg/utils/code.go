package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// FormatInvoiceCode renders a sequential invoice number as a presentable
// code, e.g. LZ-0042. The sequence comes from a persisted counter so codes
// are unique by construction.
func FormatInvoiceCode(seq int64) string {
	return fmt.Sprintf("LZ-%04d", seq)
}

// NewItemID generates an id for admin-created menu items and modifiers.
func NewItemID() string {
	return uuid.New().String()
}
