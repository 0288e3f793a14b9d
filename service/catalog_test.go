package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equipment-rental-backend/models"
	"equipment-rental-backend/storage"
)

func newTestCatalog() *Catalog {
	return NewCatalog(storage.NewMemoryStore())
}

func TestCatalogCreateDefaultsToAvailable(t *testing.T) {
	catalog := newTestCatalog()
	eq, err := catalog.Create(context.Background(), EquipmentInput{
		Name:      "Notebook X",
		Brand:     "Dell",
		Model:     "X1",
		Type:      models.TypeComputer,
		DailyRate: 100,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, eq.ID)
	assert.Equal(t, models.EquipmentAvailable, eq.Status)

	got, err := catalog.Get(context.Background(), eq.ID)
	require.NoError(t, err)
	assert.Equal(t, *eq, *got)
}

func TestCatalogCreateKeepsCallerStatus(t *testing.T) {
	catalog := newTestCatalog()
	eq, err := catalog.Create(context.Background(), EquipmentInput{
		Name:      "Switch",
		Brand:     "Cisco",
		Model:     "C9300",
		Type:      models.TypeNetwork,
		DailyRate: 40,
		Status:    models.EquipmentMaintenance,
	})
	require.NoError(t, err)
	assert.Equal(t, models.EquipmentMaintenance, eq.Status)
}

func TestCatalogListInsertionOrder(t *testing.T) {
	catalog := newTestCatalog()
	names := []string{"A", "B", "C"}
	for _, n := range names {
		_, err := catalog.Create(context.Background(), EquipmentInput{
			Name: n, Brand: "b", Model: "m", Type: models.TypeOther,
		})
		require.NoError(t, err)
	}
	items, err := catalog.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i, n := range names {
		assert.Equal(t, n, items[i].Name)
	}
}

func TestCatalogUpdateMergesPartialFields(t *testing.T) {
	catalog := newTestCatalog()
	eq, err := catalog.Create(context.Background(), EquipmentInput{
		Name:      "Notebook X",
		Brand:     "Dell",
		Model:     "X1",
		Type:      models.TypeComputer,
		DailyRate: 100,
	})
	require.NoError(t, err)

	rate := 150.0
	desc := "refurbished"
	updated, err := catalog.Update(context.Background(), eq.ID, EquipmentUpdate{
		DailyRate:   &rate,
		Description: &desc,
	})
	require.NoError(t, err)
	assert.Equal(t, 150.0, updated.DailyRate)
	assert.Equal(t, "refurbished", updated.Description)
	// Untouched fields survive.
	assert.Equal(t, "Notebook X", updated.Name)
	assert.Equal(t, "Dell", updated.Brand)
}

func TestCatalogUpdateUnknownID(t *testing.T) {
	catalog := newTestCatalog()
	name := "x"
	_, err := catalog.Update(context.Background(), "missing", EquipmentUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogDelete(t *testing.T) {
	catalog := newTestCatalog()
	eq, err := catalog.Create(context.Background(), EquipmentInput{
		Name: "Notebook X", Brand: "Dell", Model: "X1", Type: models.TypeComputer,
	})
	require.NoError(t, err)

	require.NoError(t, catalog.Delete(context.Background(), eq.ID))
	_, err = catalog.Get(context.Background(), eq.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, catalog.Delete(context.Background(), eq.ID), ErrNotFound)
}

func TestCatalogSetStatus(t *testing.T) {
	catalog := newTestCatalog()
	eq, err := catalog.Create(context.Background(), EquipmentInput{
		Name: "Notebook X", Brand: "Dell", Model: "X1", Type: models.TypeComputer,
	})
	require.NoError(t, err)

	require.NoError(t, catalog.SetStatus(context.Background(), eq.ID, models.EquipmentRented))
	got, err := catalog.Get(context.Background(), eq.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EquipmentRented, got.Status)

	assert.ErrorIs(t, catalog.SetStatus(context.Background(), "missing", models.EquipmentRented), ErrNotFound)
}
