package models

import "time"

const RentalTable = "ert_rentals"

type RentalStatus string

const (
	RentalActive    RentalStatus = "active"
	RentalCompleted RentalStatus = "completed"
	RentalCancelled RentalStatus = "cancelled"
)

// Rental binds one equipment item to one client for an inclusive date range.
// EquipmentName and DailyRate are snapshots taken at creation so the record
// stays accurate even if the equipment is later renamed, re-priced or deleted.
type Rental struct {
	ID            string       `gorm:"type:uuid;primaryKey" json:"id"`
	EquipmentID   string       `gorm:"type:uuid;index;not null" json:"equipmentId"`
	EquipmentName string       `gorm:"size:200;not null" json:"equipmentName"`
	ClientName    string       `gorm:"size:200;not null" json:"clientName"`
	ClientEmail   string       `gorm:"size:200;not null" json:"clientEmail"`
	ClientPhone   string       `gorm:"size:40;not null" json:"clientPhone"`
	StartDate     string       `gorm:"size:10;not null" json:"startDate"`
	EndDate       string       `gorm:"size:10;not null" json:"endDate"`
	TotalDays     int          `gorm:"not null" json:"totalDays"`
	DailyRate     float64      `gorm:"not null" json:"dailyRate"`
	TotalValue    float64      `gorm:"not null" json:"totalValue"`
	Status        RentalStatus `gorm:"size:20;not null" json:"status"`
	CreatedAt     time.Time    `gorm:"index;not null" json:"createdAt"`

	Position int `gorm:"not null" json:"-"`
}

func (Rental) TableName() string { return RentalTable }
