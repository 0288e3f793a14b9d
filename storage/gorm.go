package storage

import (
	"context"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"equipment-rental-backend/models"
)

// GormStore keeps the snapshot semantics over a relational database: reads
// load the whole table, writes replace it inside one transaction.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

func OpenPostgres(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Println("postgres store connected")
	return NewGormStore(db), nil
}

func OpenSQLite(path string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Println("sqlite store connected")
	return NewGormStore(db), nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Equipment{}, &models.Rental{})
}

func (s *GormStore) GetEquipment(ctx context.Context) ([]models.Equipment, error) {
	var items []models.Equipment
	err := s.db.WithContext(ctx).Order("position").Find(&items).Error
	return items, err
}

func (s *GormStore) SaveEquipment(ctx context.Context, items []models.Equipment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.Equipment{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].Position = i
		}
		return tx.Create(&items).Error
	})
}

func (s *GormStore) GetRentals(ctx context.Context) ([]models.Rental, error) {
	var rentals []models.Rental
	err := s.db.WithContext(ctx).Order("position").Find(&rentals).Error
	return rentals, err
}

func (s *GormStore) SaveRentals(ctx context.Context, rentals []models.Rental) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.Rental{}).Error; err != nil {
			return err
		}
		if len(rentals) == 0 {
			return nil
		}
		for i := range rentals {
			rentals[i].Position = i
		}
		return tx.Create(&rentals).Error
	})
}

func (s *GormStore) Atomically(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
