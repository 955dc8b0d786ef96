package service

type WorkerInput struct {
	Name       string `json:"name" form:"name" binding:"required"`
	NationalID string `json:"national_id" form:"national_id" binding:"required"`
	ShiftLabel string `json:"shift_label" form:"shift_label" binding:"required"`
}

type VehicleInput struct {
	Plate string  `json:"plate" form:"plate" binding:"required"`
	Model *string `json:"model" form:"model"`
	Year  *int    `json:"year" form:"year"`
	Type  *string `json:"type" form:"type"`
}

// ShiftRecordInput is the submission for one logbook entry. Checklist maps are keyed by
// item name; absent items are recorded as unchecked.
type ShiftRecordInput struct {
	WorkerID      uint            `json:"worker_id" binding:"required"`
	VehicleID     uint            `json:"vehicle_id" binding:"required"`
	Date          string          `json:"date" binding:"required"`
	ShiftLabel    string          `json:"shift_label" binding:"required"`
	RecordType    string          `json:"record_type" binding:"required"`
	OdometerKm    *float64        `json:"odometer_km"`
	GeneralNotes  *string         `json:"general_notes"`
	Equipment     map[string]bool `json:"equipment"`
	VehicleChecks map[string]bool `json:"vehicle_checks"`
	Fuel          *FuelInput      `json:"fuel"`
}

type FuelInput struct {
	FuelLiters *float64 `json:"fuel_liters"`
	FuelNotes  *string  `json:"fuel_notes"`
}

// ShiftRecordQuery holds the raw history filters from the query string.
type ShiftRecordQuery struct {
	WorkerID  uint   `form:"worker_id"`
	VehicleID uint   `form:"vehicle_id"`
	DateFrom  string `form:"date_from"`
	DateTo    string `form:"date_to"`
	Limit     int    `form:"limit"`
}
