package snapshot

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amr-khaled0p/lazez2/internal/domain/entity"
	"github.com/amr-khaled0p/lazez2/internal/domain/enum"
)

func TestFileStoreLoadMissing(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "snapshot.json"))
	require.NoError(t, err)

	snap, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "snapshot.json"))
	require.NoError(t, err)

	saved := &Snapshot{
		Menu: []entity.CatalogItem{{
			ID:       "b1",
			Name:     "Wagyu Gold Burger",
			Price:    190,
			Category: enum.CategoryBurgers,
			Stock:    20,
			Modifiers: []entity.Modifier{
				{ID: "m1", Name: "Extra Beef", Price: 45, Stock: 50},
			},
			IsBestSeller: true,
		}},
		Sales: []entity.Sale{{
			ID:            "LZ-0001",
			Items:         []entity.SaleLine{{Name: "Wagyu Gold Burger", Quantity: 2, Price: 380}},
			Total:         380,
			Date:          time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
			PaymentMethod: enum.PaymentCard,
			Channel:       enum.ChannelPOS,
		}},
		Settings:   entity.SiteSettings{HeroTitle: "Hello", IsClosed: true},
		InvoiceSeq: 7,
	}

	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved.Menu, loaded.Menu)
	assert.Equal(t, saved.Sales, loaded.Sales)
	assert.Equal(t, saved.Settings, loaded.Settings)
	assert.Equal(t, int64(7), loaded.InvoiceSeq)
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "snapshot.json"))
	require.NoError(t, err)

	require.NoError(t, store.Save(&Snapshot{InvoiceSeq: 1}))
	require.NoError(t, store.Save(&Snapshot{InvoiceSeq: 2}))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, int64(2), loaded.InvoiceSeq)
}
