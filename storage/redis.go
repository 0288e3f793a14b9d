package storage

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"equipment-rental-backend/models"
)

const (
	equipmentKey = "rental:equipment"
	rentalsKey   = "rental:rentals"
)

// RedisStore holds each collection as one JSON blob under a fixed key, the
// same shape the browser frontend kept in local storage.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore { return &RedisStore{rdb: rdb} }

func (s *RedisStore) GetEquipment(ctx context.Context) ([]models.Equipment, error) {
	var items []models.Equipment
	if err := s.getJSON(ctx, equipmentKey, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *RedisStore) SaveEquipment(ctx context.Context, items []models.Equipment) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, equipmentKey, b, 0).Err()
}

func (s *RedisStore) GetRentals(ctx context.Context) ([]models.Rental, error) {
	var rentals []models.Rental
	if err := s.getJSON(ctx, rentalsKey, &rentals); err != nil {
		return nil, err
	}
	return rentals, nil
}

func (s *RedisStore) SaveRentals(ctx context.Context, rentals []models.Rental) error {
	b, err := json.Marshal(rentals)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, rentalsKey, b, 0).Err()
}

func (s *RedisStore) getJSON(ctx context.Context, key string, dst any) error {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

// Atomically buffers the writes fn issues and commits them in a single
// transactional pipeline, so both collections land together.
func (s *RedisStore) Atomically(ctx context.Context, fn func(tx Store) error) error {
	staged := &redisTx{store: s, pending: map[string][]byte{}}
	if err := fn(staged); err != nil {
		return err
	}
	if len(staged.pending) == 0 {
		return nil
	}
	pipe := s.rdb.TxPipeline()
	for key, blob := range staged.pending {
		pipe.Set(ctx, key, blob, 0)
	}
	_, err := pipe.Exec(ctx)
	return err
}

type redisTx struct {
	store   *RedisStore
	pending map[string][]byte
}

func (t *redisTx) GetEquipment(ctx context.Context) ([]models.Equipment, error) {
	if blob, ok := t.pending[equipmentKey]; ok {
		var items []models.Equipment
		return items, json.Unmarshal(blob, &items)
	}
	return t.store.GetEquipment(ctx)
}

func (t *redisTx) SaveEquipment(ctx context.Context, items []models.Equipment) error {
	return t.stage(equipmentKey, items)
}

func (t *redisTx) GetRentals(ctx context.Context) ([]models.Rental, error) {
	if blob, ok := t.pending[rentalsKey]; ok {
		var rentals []models.Rental
		return rentals, json.Unmarshal(blob, &rentals)
	}
	return t.store.GetRentals(ctx)
}

func (t *redisTx) SaveRentals(ctx context.Context, rentals []models.Rental) error {
	return t.stage(rentalsKey, rentals)
}

func (t *redisTx) stage(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	t.pending[key] = b
	return nil
}

func (t *redisTx) Atomically(ctx context.Context, fn func(tx Store) error) error {
	return fn(t)
}
