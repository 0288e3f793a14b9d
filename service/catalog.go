package service

import (
	"context"

	"github.com/google/uuid"

	"equipment-rental-backend/models"
	"equipment-rental-backend/storage"
)

// Catalog owns the equipment collection and its availability flag. It never
// touches rentals; the ledger drives cross-entity transitions through it.
type Catalog struct {
	store storage.Store
	newID func() string
}

func NewCatalog(store storage.Store) *Catalog {
	return &Catalog{store: store, newID: uuid.NewString}
}

type EquipmentInput struct {
	Name           string
	Brand          string
	Model          string
	Type           models.EquipmentType
	DailyRate      float64
	Status         models.EquipmentStatus
	Description    string
	Specifications string
}

// EquipmentUpdate merges only the fields that are set; nil means unchanged.
type EquipmentUpdate struct {
	Name           *string
	Brand          *string
	Model          *string
	Type           *models.EquipmentType
	DailyRate      *float64
	Status         *models.EquipmentStatus
	Description    *string
	Specifications *string
}

func (c *Catalog) Create(ctx context.Context, in EquipmentInput) (*models.Equipment, error) {
	status := in.Status
	if status == "" {
		status = models.EquipmentAvailable
	}
	item := models.Equipment{
		ID:             c.newID(),
		Name:           in.Name,
		Brand:          in.Brand,
		Model:          in.Model,
		Type:           in.Type,
		DailyRate:      in.DailyRate,
		Status:         status,
		Description:    in.Description,
		Specifications: in.Specifications,
	}
	items, err := c.store.GetEquipment(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.store.SaveEquipment(ctx, append(items, item)); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Catalog) Get(ctx context.Context, id string) (*models.Equipment, error) {
	items, err := c.store.GetEquipment(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, ErrNotFound
}

// List returns every item in insertion order; callers filter by status.
func (c *Catalog) List(ctx context.Context) ([]models.Equipment, error) {
	items, err := c.store.GetEquipment(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Equipment{}
	}
	return items, nil
}

func (c *Catalog) Update(ctx context.Context, id string, upd EquipmentUpdate) (*models.Equipment, error) {
	items, err := c.store.GetEquipment(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		applyUpdate(&items[i], upd)
		if err := c.store.SaveEquipment(ctx, items); err != nil {
			return nil, err
		}
		return &items[i], nil
	}
	return nil, ErrNotFound
}

// Delete removes the item unconditionally; historical rentals keep their
// snapshotted name and rate, so no referential check is made.
func (c *Catalog) Delete(ctx context.Context, id string) error {
	items, err := c.store.GetEquipment(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return ErrNotFound
	}
	return c.store.SaveEquipment(ctx, kept)
}

func (c *Catalog) SetStatus(ctx context.Context, id string, status models.EquipmentStatus) error {
	return c.setStatus(ctx, c.store, id, status)
}

// setStatus takes the store explicitly so the ledger can run it inside the
// same transaction as its own writes.
func (c *Catalog) setStatus(ctx context.Context, s storage.Store, id string, status models.EquipmentStatus) error {
	items, err := s.GetEquipment(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == id {
			items[i].Status = status
			return s.SaveEquipment(ctx, items)
		}
	}
	return ErrNotFound
}

func applyUpdate(item *models.Equipment, upd EquipmentUpdate) {
	if upd.Name != nil {
		item.Name = *upd.Name
	}
	if upd.Brand != nil {
		item.Brand = *upd.Brand
	}
	if upd.Model != nil {
		item.Model = *upd.Model
	}
	if upd.Type != nil {
		item.Type = *upd.Type
	}
	if upd.DailyRate != nil {
		item.DailyRate = *upd.DailyRate
	}
	if upd.Status != nil {
		item.Status = *upd.Status
	}
	if upd.Description != nil {
		item.Description = *upd.Description
	}
	if upd.Specifications != nil {
		item.Specifications = *upd.Specifications
	}
}
