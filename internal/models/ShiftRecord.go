package models

import (
	"time"

	"gorm.io/datatypes"
)

// RecordType tells what moment of the shift a record documents.
type RecordType string

const (
	RecordStartOfShift RecordType = "start_of_shift"
	RecordEndOfShift   RecordType = "end_of_shift"
	RecordOther        RecordType = "other"
)

// RecordTypes lists the accepted record types in display order.
var RecordTypes = []RecordType{RecordStartOfShift, RecordEndOfShift, RecordOther}

func (t RecordType) Valid() bool {
	switch t {
	case RecordStartOfShift, RecordEndOfShift, RecordOther:
		return true
	}
	return false
}

// RequiresOdometer reports whether an odometer reading must accompany the record.
func (t RecordType) RequiresOdometer() bool {
	return t == RecordStartOfShift || t == RecordEndOfShift
}

// ShiftRecord is the header row of a logbook entry. Its checklist rows are written in the
// same transaction and are immutable afterwards.
type ShiftRecord struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	WorkerID     uint           `gorm:"not null;index" json:"worker_id"`
	Worker       *Worker        `gorm:"foreignKey:WorkerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"worker,omitempty"`
	VehicleID    uint           `gorm:"not null;index" json:"vehicle_id"`
	Vehicle      *Vehicle       `gorm:"foreignKey:VehicleID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"vehicle,omitempty"`
	Date         datatypes.Date `gorm:"not null;index" json:"date"`
	ShiftLabel   string         `gorm:"size:50;not null" json:"shift_label"`
	RecordType   RecordType     `gorm:"size:20;not null" json:"record_type"`
	OdometerKm   *float64       `json:"odometer_km"`
	GeneralNotes *string        `json:"general_notes"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`

	Equipment        *EquipmentChecklist `gorm:"foreignKey:ShiftRecordID;constraint:OnDelete:CASCADE" json:"equipment,omitempty"`
	VehicleChecklist *VehicleChecklist   `gorm:"foreignKey:ShiftRecordID;constraint:OnDelete:CASCADE" json:"vehicle_checks,omitempty"`
	Fuel             *FuelEntry          `gorm:"foreignKey:ShiftRecordID;constraint:OnDelete:CASCADE" json:"fuel,omitempty"`
}

// FuelEntry is the optional fuel load noted on a shift record.
type FuelEntry struct {
	ID            uint     `gorm:"primaryKey" json:"-"`
	ShiftRecordID uint     `gorm:"uniqueIndex;not null" json:"-"`
	FuelLiters    *float64 `json:"fuel_liters"`
	FuelNotes     *string  `json:"fuel_notes"`
}

// IsEmpty reports whether neither the liters nor the notes carry a value.
func (f FuelEntry) IsEmpty() bool {
	return f.FuelLiters == nil && (f.FuelNotes == nil || *f.FuelNotes == "")
}

// ShiftRecordFilter narrows the history listing. Zero values mean "no filter".
type ShiftRecordFilter struct {
	WorkerID  uint
	VehicleID uint
	DateFrom  *time.Time
	DateTo    *time.Time
	Limit     int
}

// ShiftRecordSummary is one row of the history listing, joined with worker and vehicle.
type ShiftRecordSummary struct {
	ID           uint
	Date         time.Time
	ShiftLabel   string
	RecordType   RecordType
	OdometerKm   *float64
	GeneralNotes *string
	CreatedAt    time.Time
	WorkerName   string
	VehiclePlate string
	VehicleModel *string
}
