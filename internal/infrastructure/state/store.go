package state

import (
	"log"
	"sync"

	"github.com/amr-khaled0p/lazez2/internal/domain/entity"
	"github.com/amr-khaled0p/lazez2/internal/infrastructure/snapshot"
)

// State is the whole application state. Views and handlers never touch it
// directly; repositories mutate it through Store.Update, which serializes all
// writes and snapshots the result.
type State struct {
	Menu       []entity.CatalogItem
	Sales      []entity.Sale
	Users      []entity.User
	Settings   entity.SiteSettings
	Branches   []entity.Branch
	InvoiceSeq int64
}

// Store owns the application state. All access goes through View/Update so a
// single mutex serializes every mutation, and every committed mutation is
// followed by a best-effort whole-state save.
type Store struct {
	mu        sync.RWMutex
	state     State
	snapshots snapshot.Store
}

// New builds a store from the last saved snapshot, or from seed data when no
// snapshot exists. Branches are static seed data and never persisted.
func New(snapshots snapshot.Store, seed *State) (*Store, error) {
	s := &Store{snapshots: snapshots}

	snap, err := snapshots.Load()
	if err != nil {
		return nil, err
	}
	if snap == nil {
		s.state = *seed
		return s, nil
	}

	s.state = State{
		Menu:       snap.Menu,
		Sales:      snap.Sales,
		Users:      snap.Users,
		Settings:   snap.Settings,
		Branches:   seed.Branches,
		InvoiceSeq: snap.InvoiceSeq,
	}
	if len(s.state.Users) == 0 {
		s.state.Users = seed.Users
	}
	return s, nil
}

// View runs fn with read access to the state.
func (s *Store) View(fn func(st *State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.state)
}

// Update runs fn with write access to the state. If fn returns an error the
// mutation is considered not to have happened and nothing is saved. On
// success the whole state is snapshotted; a failed save is logged but never
// surfaced, the in-memory state stays authoritative.
func (s *Store) Update(fn func(st *State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(&s.state); err != nil {
		return err
	}

	if err := s.snapshots.Save(s.snapshot()); err != nil {
		log.Printf("state: snapshot save failed: %v", err)
	}
	return nil
}

func (s *Store) snapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Menu:       s.state.Menu,
		Sales:      s.state.Sales,
		Users:      s.state.Users,
		Settings:   s.state.Settings,
		InvoiceSeq: s.state.InvoiceSeq,
	}
}
