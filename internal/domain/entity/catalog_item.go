package entity

import (
	"github.com/amr-khaled0p/lazez2/internal/domain/enum"
)

// Modifier is a paid, stock-tracked add-on scoped to one catalog item.
type Modifier struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Stock int    `json:"stock"`
}

// Exclusion is a free removable component label ("without onions"). It
// carries no price and no stock.
type Exclusion struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CatalogItem is a sellable menu entry. Prices are integer currency units.
// JSON field names match the persisted snapshot shape.
type CatalogItem struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	Price        int64         `json:"price"`
	Category     enum.Category `json:"category"`
	Image        string        `json:"image,omitempty"`
	Stock        int           `json:"stock"`
	Modifiers    []Modifier    `json:"modifiers,omitempty"`
	Exclusions   []Exclusion   `json:"exclusions,omitempty"`
	IsBestSeller bool          `json:"isBestSeller,omitempty"`
}

// InStock reports whether at least one unit can be sold.
func (i *CatalogItem) InStock() bool {
	return i.Stock > 0
}

// FindModifier returns the modifier with the given id, or nil.
func (i *CatalogItem) FindModifier(id string) *Modifier {
	for idx := range i.Modifiers {
		if i.Modifiers[idx].ID == id {
			return &i.Modifiers[idx]
		}
	}
	return nil
}

// FindExclusion returns the exclusion with the given id, or nil.
func (i *CatalogItem) FindExclusion(id string) *Exclusion {
	for idx := range i.Exclusions {
		if i.Exclusions[idx].ID == id {
			return &i.Exclusions[idx]
		}
	}
	return nil
}

// Clone returns a deep copy so staged register state never aliases the
// live catalog entry.
func (i *CatalogItem) Clone() *CatalogItem {
	cp := *i
	cp.Modifiers = append([]Modifier(nil), i.Modifiers...)
	cp.Exclusions = append([]Exclusion(nil), i.Exclusions...)
	return &cp
}
