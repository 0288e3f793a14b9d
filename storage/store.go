package storage

import (
	"context"

	"equipment-rental-backend/models"
)

// Store persists the two collections as whole snapshots: a read returns the
// full current collection (empty if absent) and a write replaces it wholesale.
type Store interface {
	GetEquipment(ctx context.Context) ([]models.Equipment, error)
	SaveEquipment(ctx context.Context, items []models.Equipment) error

	GetRentals(ctx context.Context) ([]models.Rental, error)
	SaveRentals(ctx context.Context, rentals []models.Rental) error

	// Atomically runs fn against a transactional view of the store. Either
	// every write issued inside fn is persisted, or none is.
	Atomically(ctx context.Context, fn func(tx Store) error) error
}
