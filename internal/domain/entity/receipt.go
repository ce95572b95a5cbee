package entity

// LineItem is one priced, quantity-scaled entry in the in-progress receipt.
// Modifier and exclusion names are captured as plain labels at commit time,
// decoupled from the live catalog objects. ModifierIDs are kept so a removed
// line can restore the exact stocks it consumed; they are not part of the
// receipt view.
type LineItem struct {
	ItemID      string   `json:"itemId"`
	Name        string   `json:"name"`
	UnitPrice   int64    `json:"unitPrice"`
	Quantity    int      `json:"quantity"`
	TotalPrice  int64    `json:"totalPrice"`
	Extras      []string `json:"extras,omitempty"`
	Removals    []string `json:"removals,omitempty"`
	ModifierIDs []string `json:"-"`
}

// Receipt is the ordered, uncommitted list of line items for the current
// transaction.
type Receipt struct {
	Lines []LineItem `json:"lines"`
	Total int64      `json:"total"`
}

// ReceiptTotal sums line totals.
func ReceiptTotal(lines []LineItem) int64 {
	var total int64
	for _, l := range lines {
		total += l.TotalPrice
	}
	return total
}
