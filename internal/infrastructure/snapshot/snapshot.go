package snapshot

import (
	"github.com/amr-khaled0p/lazez2/internal/domain/entity"
)

// Snapshot is the whole persisted application state, written wholesale after
// every committed mutation. Field names round-trip the original storage shape.
type Snapshot struct {
	Menu       []entity.CatalogItem `json:"menu"`
	Sales      []entity.Sale        `json:"sales"`
	Settings   entity.SiteSettings  `json:"settings"`
	Users      []entity.User        `json:"users,omitempty"`
	InvoiceSeq int64                `json:"invoiceSeq"`
}

// Store persists and restores the snapshot as a single unit. The medium
// (file, database) is swappable without touching core logic.
type Store interface {
	// Load returns the last saved snapshot, or (nil, nil) when none exists yet.
	Load() (*Snapshot, error)
	Save(snap *Snapshot) error
}
