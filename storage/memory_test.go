package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equipment-rental-backend/models"
)

func TestMemoryStoreSnapshots(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	items, err := st.GetEquipment(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	saved := []models.Equipment{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}}
	require.NoError(t, st.SaveEquipment(ctx, saved))

	got, err := st.GetEquipment(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	// A returned snapshot is a copy; mutating it must not leak into the store.
	got[0].Name = "mutated"
	again, err := st.GetEquipment(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", again[0].Name)

	// A write replaces the collection wholesale.
	require.NoError(t, st.SaveEquipment(ctx, saved[:1]))
	got, err = st.GetEquipment(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestMemoryStoreAtomicallyCommits(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	err := st.Atomically(ctx, func(tx Store) error {
		if err := tx.SaveEquipment(ctx, []models.Equipment{{ID: "1"}}); err != nil {
			return err
		}
		return tx.SaveRentals(ctx, []models.Rental{{ID: "r1"}})
	})
	require.NoError(t, err)

	items, _ := st.GetEquipment(ctx)
	rentals, _ := st.GetRentals(ctx)
	assert.Len(t, items, 1)
	assert.Len(t, rentals, 1)
}

func TestMemoryStoreAtomicallyRollsBack(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, st.SaveEquipment(ctx, []models.Equipment{{ID: "1", Status: models.EquipmentAvailable}}))

	boom := errors.New("boom")
	err := st.Atomically(ctx, func(tx Store) error {
		if err := tx.SaveRentals(ctx, []models.Rental{{ID: "r1"}}); err != nil {
			return err
		}
		if err := tx.SaveEquipment(ctx, nil); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// Both half-written collections are discarded.
	items, _ := st.GetEquipment(ctx)
	rentals, _ := st.GetRentals(ctx)
	assert.Len(t, items, 1)
	assert.Empty(t, rentals)
}

func TestMemoryStoreTxReadsOwnWrites(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	err := st.Atomically(ctx, func(tx Store) error {
		if err := tx.SaveEquipment(ctx, []models.Equipment{{ID: "1"}}); err != nil {
			return err
		}
		items, err := tx.GetEquipment(ctx)
		if err != nil {
			return err
		}
		assert.Len(t, items, 1)
		return nil
	})
	require.NoError(t, err)
}
