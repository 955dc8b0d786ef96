package service

import (
	"context"
	"maps"
	"slices"
	"strings"
	"time"

	"gorm.io/datatypes"

	"vehicle_logbook/internal/apperr"
	"vehicle_logbook/internal/models"
)

const (
	DateLayout   = "2006-01-02"
	DefaultLimit = 50
	MaxLimit     = 500
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Health reports whether the backing store is reachable.
func (s *Service) Health(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *Service) ListWorkers(ctx context.Context) ([]models.Worker, error) {
	return s.store.ListActiveWorkers(ctx)
}

func (s *Service) CreateWorker(ctx context.Context, in WorkerInput) (uint, error) {
	w := models.Worker{
		Name:       strings.TrimSpace(in.Name),
		NationalID: strings.TrimSpace(in.NationalID),
		ShiftLabel: strings.TrimSpace(in.ShiftLabel),
		Active:     true,
	}
	if missing := missingFields(
		field{"name", w.Name == ""},
		field{"national_id", w.NationalID == ""},
		field{"shift_label", w.ShiftLabel == ""},
	); missing != nil {
		return 0, missing
	}
	if err := s.store.CreateWorker(ctx, &w); err != nil {
		return 0, err
	}
	return w.ID, nil
}

func (s *Service) DeactivateWorker(ctx context.Context, id uint) error {
	return s.store.DeactivateWorker(ctx, id)
}

func (s *Service) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return s.store.ListActiveVehicles(ctx)
}

func (s *Service) CreateVehicle(ctx context.Context, in VehicleInput) (uint, error) {
	v := models.Vehicle{
		Plate:  strings.ToUpper(strings.TrimSpace(in.Plate)),
		Model:  trimmedOrNil(in.Model),
		Year:   in.Year,
		Type:   trimmedOrNil(in.Type),
		Active: true,
	}
	if v.Plate == "" {
		return 0, apperr.Validation("plate is required")
	}
	if v.Year != nil && *v.Year <= 0 {
		return 0, apperr.Validation("year must be a positive number")
	}
	if err := s.store.CreateVehicle(ctx, &v); err != nil {
		return 0, err
	}
	return v.ID, nil
}

func (s *Service) DeactivateVehicle(ctx context.Context, id uint) error {
	return s.store.DeactivateVehicle(ctx, id)
}

// CreateShiftRecord validates the submission and stores it atomically.
// Nothing reaches the store when validation fails.
func (s *Service) CreateShiftRecord(ctx context.Context, in ShiftRecordInput) (uint, error) {
	rec, err := BuildShiftRecord(in)
	if err != nil {
		return 0, err
	}
	if err := s.store.CreateShiftRecord(ctx, rec); err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (s *Service) ListShiftRecords(ctx context.Context, q ShiftRecordQuery) ([]models.ShiftRecordSummary, error) {
	f, err := BuildFilter(q)
	if err != nil {
		return nil, err
	}
	return s.store.ListShiftRecords(ctx, f)
}

func (s *Service) GetShiftRecord(ctx context.Context, id uint) (*models.ShiftRecord, error) {
	return s.store.GetShiftRecord(ctx, id)
}

// BuildShiftRecord turns a submission into a header with both checklists and, when it
// carries data, a fuel entry.
func BuildShiftRecord(in ShiftRecordInput) (*models.ShiftRecord, error) {
	shift := strings.TrimSpace(in.ShiftLabel)
	date := strings.TrimSpace(in.Date)
	recordType := models.RecordType(strings.TrimSpace(in.RecordType))

	if missing := missingFields(
		field{"worker_id", in.WorkerID == 0},
		field{"vehicle_id", in.VehicleID == 0},
		field{"date", date == ""},
		field{"shift_label", shift == ""},
		field{"record_type", recordType == ""},
	); missing != nil {
		return nil, missing
	}

	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil, apperr.Validation("date must be formatted YYYY-MM-DD")
	}
	if !recordType.Valid() {
		return nil, apperr.Validation("record_type must be one of start_of_shift, end_of_shift, other")
	}
	if recordType.RequiresOdometer() && in.OdometerKm == nil {
		return nil, apperr.Validation("odometer_km is required for %s records", recordType)
	}
	if in.OdometerKm != nil && *in.OdometerKm < 0 {
		return nil, apperr.Validation("odometer_km must not be negative")
	}

	equipment := &models.EquipmentChecklist{}
	for _, item := range slices.Sorted(maps.Keys(in.Equipment)) {
		if !equipment.Set(item, in.Equipment[item]) {
			return nil, apperr.Validation("unknown equipment item %q", item)
		}
	}
	checks := &models.VehicleChecklist{}
	for _, item := range slices.Sorted(maps.Keys(in.VehicleChecks)) {
		if !checks.Set(item, in.VehicleChecks[item]) {
			return nil, apperr.Validation("unknown vehicle check %q", item)
		}
	}

	rec := &models.ShiftRecord{
		WorkerID:         in.WorkerID,
		VehicleID:        in.VehicleID,
		Date:             datatypes.Date(day),
		ShiftLabel:       shift,
		RecordType:       recordType,
		OdometerKm:       in.OdometerKm,
		GeneralNotes:     trimmedOrNil(in.GeneralNotes),
		Equipment:        equipment,
		VehicleChecklist: checks,
	}

	if in.Fuel != nil {
		if in.Fuel.FuelLiters != nil && *in.Fuel.FuelLiters < 0 {
			return nil, apperr.Validation("fuel_liters must not be negative")
		}
		fuel := models.FuelEntry{FuelLiters: in.Fuel.FuelLiters, FuelNotes: trimmedOrNil(in.Fuel.FuelNotes)}
		if !fuel.IsEmpty() {
			rec.Fuel = &fuel
		}
	}
	return rec, nil
}

// BuildFilter validates the history query. A zero limit means the default page size;
// larger limits are capped at MaxLimit.
func BuildFilter(q ShiftRecordQuery) (models.ShiftRecordFilter, error) {
	f := models.ShiftRecordFilter{WorkerID: q.WorkerID, VehicleID: q.VehicleID, Limit: q.Limit}

	var err error
	if f.DateFrom, err = optionalDate("date_from", q.DateFrom); err != nil {
		return f, err
	}
	if f.DateTo, err = optionalDate("date_to", q.DateTo); err != nil {
		return f, err
	}
	if f.DateFrom != nil && f.DateTo != nil && f.DateFrom.After(*f.DateTo) {
		return f, apperr.Validation("date_from must not be after date_to")
	}

	switch {
	case f.Limit < 0:
		return f, apperr.Validation("limit must not be negative")
	case f.Limit == 0:
		f.Limit = DefaultLimit
	case f.Limit > MaxLimit:
		f.Limit = MaxLimit
	}
	return f, nil
}

func optionalDate(name, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return nil, apperr.Validation("%s must be formatted YYYY-MM-DD", name)
	}
	return &t, nil
}

type field struct {
	name    string
	missing bool
}

func missingFields(fields ...field) error {
	var names []string
	for _, f := range fields {
		if f.missing {
			names = append(names, f.name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return apperr.Validation("missing required fields: %s", strings.Join(names, ", "))
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
