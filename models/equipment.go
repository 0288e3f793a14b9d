package models

const EquipmentTable = "ert_equipment"

type EquipmentType string

const (
	TypeComputer EquipmentType = "computer"
	TypeServer   EquipmentType = "server"
	TypeNetwork  EquipmentType = "network"
	TypeOther    EquipmentType = "other"
)

type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "available"
	EquipmentRented      EquipmentStatus = "rented"
	EquipmentMaintenance EquipmentStatus = "maintenance"
)

type Equipment struct {
	ID             string          `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string          `gorm:"size:200;not null" json:"name"`
	Brand          string          `gorm:"size:120;not null" json:"brand"`
	Model          string          `gorm:"size:120;not null" json:"model"`
	Type           EquipmentType   `gorm:"size:20;not null" json:"type"`
	DailyRate      float64         `gorm:"not null" json:"dailyRate"`
	Status         EquipmentStatus `gorm:"size:20;not null" json:"status"`
	Description    string          `gorm:"size:1000" json:"description,omitempty"`
	Specifications string          `gorm:"size:1000" json:"specifications,omitempty"`

	// Position preserves insertion order across whole-collection writes.
	Position int `gorm:"not null" json:"-"`
}

func (Equipment) TableName() string { return EquipmentTable }
