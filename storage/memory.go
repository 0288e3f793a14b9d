package storage

import (
	"context"
	"sync"

	"equipment-rental-backend/models"
)

// MemoryStore keeps both collections in process memory. It is the default
// driver and the test double for the services.
type MemoryStore struct {
	mu        sync.Mutex
	equipment []models.Equipment
	rentals   []models.Rental
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) GetEquipment(ctx context.Context) ([]models.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Equipment(nil), s.equipment...), nil
}

func (s *MemoryStore) SaveEquipment(ctx context.Context, items []models.Equipment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.equipment = append([]models.Equipment(nil), items...)
	return nil
}

func (s *MemoryStore) GetRentals(ctx context.Context) ([]models.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Rental(nil), s.rentals...), nil
}

func (s *MemoryStore) SaveRentals(ctx context.Context, rentals []models.Rental) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rentals = append([]models.Rental(nil), rentals...)
	return nil
}

// Atomically stages all writes on a copy and swaps it in only when fn
// succeeds, so a failure half-way leaves the store untouched.
func (s *MemoryStore) Atomically(ctx context.Context, fn func(tx Store) error) error {
	s.mu.Lock()
	staged := &memoryTx{
		equipment: append([]models.Equipment(nil), s.equipment...),
		rentals:   append([]models.Rental(nil), s.rentals...),
	}
	s.mu.Unlock()

	if err := fn(staged); err != nil {
		return err
	}

	s.mu.Lock()
	s.equipment = staged.equipment
	s.rentals = staged.rentals
	s.mu.Unlock()
	return nil
}

type memoryTx struct {
	equipment []models.Equipment
	rentals   []models.Rental
}

func (t *memoryTx) GetEquipment(ctx context.Context) ([]models.Equipment, error) {
	return append([]models.Equipment(nil), t.equipment...), nil
}

func (t *memoryTx) SaveEquipment(ctx context.Context, items []models.Equipment) error {
	t.equipment = append([]models.Equipment(nil), items...)
	return nil
}

func (t *memoryTx) GetRentals(ctx context.Context) ([]models.Rental, error) {
	return append([]models.Rental(nil), t.rentals...), nil
}

func (t *memoryTx) SaveRentals(ctx context.Context, rentals []models.Rental) error {
	t.rentals = append([]models.Rental(nil), rentals...)
	return nil
}

func (t *memoryTx) Atomically(ctx context.Context, fn func(tx Store) error) error {
	return fn(t)
}
