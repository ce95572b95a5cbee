package entity

import (
	"time"

	"github.com/amr-khaled0p/lazez2/internal/domain/enum"
)

// SaleLine is a finalized line-item summary inside a committed sale.
type SaleLine struct {
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`
	Price    int64    `json:"price"`
	Extras   []string `json:"extras,omitempty"`
	Removals []string `json:"removals,omitempty"`
}

// Sale is an immutable, committed transaction record. It is appended to the
// sales log on finalize and never updated or deleted.
type Sale struct {
	ID            string             `json:"id"`
	Items         []SaleLine         `json:"items"`
	Total         int64              `json:"total"`
	Date          time.Time          `json:"date"`
	PaymentMethod enum.PaymentMethod `json:"paymentMethod"`
	Channel       enum.SaleChannel   `json:"channel"`
}
