// Package form reads the HTML shift record form into a submission payload.
package form

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"vehicle_logbook/internal/apperr"
	"vehicle_logbook/internal/models"
	"vehicle_logbook/internal/service"
)

// Field names posted by the shift record form.
const (
	FieldWorkerID      = "worker_id"
	FieldVehicleID     = "vehicle_id"
	FieldDate          = "date"
	FieldShiftLabel    = "shift_label"
	FieldRecordType    = "record_type"
	FieldOdometerKm    = "odometer_km"
	FieldGeneralNotes  = "general_notes"
	FieldEquipment     = "equipment"
	FieldVehicleChecks = "vehicle_checks"
	FieldFuelLiters    = "fuel_liters"
	FieldFuelNotes     = "fuel_notes"
)

var requiredFields = []string{FieldWorkerID, FieldVehicleID, FieldDate, FieldShiftLabel, FieldRecordType}

// Collect builds a submission from posted form values. Checked boxes arrive as repeated
// equipment and vehicle_checks values naming the item; anything not listed is unchecked.
// The odometer is only kept for record types that require it.
func Collect(values url.Values) (service.ShiftRecordInput, error) {
	var in service.ShiftRecordInput

	var missing []string
	for _, name := range requiredFields {
		if value(values, name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return in, apperr.Validation("missing required fields: %s", strings.Join(missing, ", "))
	}

	workerID, err := parseID(values, FieldWorkerID)
	if err != nil {
		return in, err
	}
	vehicleID, err := parseID(values, FieldVehicleID)
	if err != nil {
		return in, err
	}

	in.WorkerID = workerID
	in.VehicleID = vehicleID
	in.Date = value(values, FieldDate)
	in.ShiftLabel = value(values, FieldShiftLabel)
	in.RecordType = value(values, FieldRecordType)

	if models.RecordType(in.RecordType).RequiresOdometer() {
		if value(values, FieldOdometerKm) == "" {
			return in, apperr.Validation("odometer_km is required for %s records", in.RecordType)
		}
		if in.OdometerKm, err = parseNumber(values, FieldOdometerKm); err != nil {
			return in, err
		}
	}

	in.GeneralNotes = optional(values, FieldGeneralNotes)
	in.Equipment = checked(values[FieldEquipment])
	in.VehicleChecks = checked(values[FieldVehicleChecks])

	liters, err := parseNumber(values, FieldFuelLiters)
	if err != nil {
		return in, err
	}
	notes := optional(values, FieldFuelNotes)
	if liters != nil || notes != nil {
		in.Fuel = &service.FuelInput{FuelLiters: liters, FuelNotes: notes}
	}
	return in, nil
}

func value(values url.Values, name string) string {
	return strings.TrimSpace(values.Get(name))
}

func optional(values url.Values, name string) *string {
	v := value(values, name)
	if v == "" {
		return nil
	}
	return &v
}

func parseID(values url.Values, name string) (uint, error) {
	n, err := strconv.ParseUint(value(values, name), 10, 64)
	if err != nil || n == 0 {
		return 0, apperr.Validation("%s must be a positive integer", name)
	}
	return uint(n), nil
}

// parseNumber returns nil for an empty field. Decimal commas are accepted.
func parseNumber(values url.Values, name string) (*float64, error) {
	raw := value(values, name)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil {
		return nil, apperr.Validation("%s must be a number", name)
	}
	return &f, nil
}

func checked(items []string) map[string]bool {
	out := make(map[string]bool, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out[item] = true
		}
	}
	return out
}

// FormTemplate is the blank form state shown after a successful submit.
type FormTemplate struct {
	Date              string              `json:"date"`
	ShiftLabel        string              `json:"shift_label"`
	RecordType        string              `json:"record_type"`
	RecordTypes       []models.RecordType `json:"record_types"`
	OdometerRequired  []models.RecordType `json:"odometer_required_for"`
	Equipment         map[string]bool     `json:"equipment"`
	EquipmentItems    []string            `json:"equipment_items"`
	VehicleChecks     map[string]bool     `json:"vehicle_checks"`
	VehicleCheckItems []string            `json:"vehicle_check_items"`
}

// Template returns the reset form: date set to now, every box unchecked.
func Template(now time.Time) FormTemplate {
	t := FormTemplate{
		Date:              now.Format(service.DateLayout),
		RecordTypes:       models.RecordTypes,
		EquipmentItems:    models.EquipmentItems,
		VehicleCheckItems: models.VehicleCheckItems,
		Equipment:         make(map[string]bool, len(models.EquipmentItems)),
		VehicleChecks:     make(map[string]bool, len(models.VehicleCheckItems)),
	}
	for _, rt := range models.RecordTypes {
		if rt.RequiresOdometer() {
			t.OdometerRequired = append(t.OdometerRequired, rt)
		}
	}
	for _, item := range models.EquipmentItems {
		t.Equipment[item] = false
	}
	for _, item := range models.VehicleCheckItems {
		t.VehicleChecks[item] = false
	}
	return t
}
