// Package storetest provides an in-memory service.Store for tests.
package storetest

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"vehicle_logbook/internal/apperr"
	"vehicle_logbook/internal/models"
)

// Steps of the shift record write, usable as MemStore.FailAt values.
const (
	StepHeader           = "header"
	StepEquipment        = "equipment"
	StepVehicleChecklist = "vehicle_checklist"
	StepFuel             = "fuel"
)

// MemStore keeps rows in slices. A shift record write is staged and only applied when
// every step succeeds, mirroring the database transaction.
type MemStore struct {
	mu sync.Mutex

	workers  []models.Worker
	vehicles []models.Vehicle
	records  []models.ShiftRecord
	equip    map[uint]models.EquipmentChecklist
	checks   map[uint]models.VehicleChecklist
	fuel     map[uint]models.FuelEntry
	nextID   uint

	// FailAt makes CreateShiftRecord fail at the named step.
	FailAt string
	// PingErr is returned by Ping.
	PingErr error
	// Calls counts CreateShiftRecord invocations, including failed ones.
	Calls int
	// Now stamps CreatedAt; defaults to time.Now.
	Now func() time.Time
}

func New() *MemStore {
	return &MemStore{
		equip:  map[uint]models.EquipmentChecklist{},
		checks: map[uint]models.VehicleChecklist{},
		fuel:   map[uint]models.FuelEntry{},
	}
}

func (m *MemStore) id() uint {
	m.nextID++
	return m.nextID
}

func (m *MemStore) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// Counts returns the number of rows in each shift record table.
func (m *MemStore) Counts() (records, equipment, vehicleChecks, fuel int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records), len(m.equip), len(m.checks), len(m.fuel)
}

func (m *MemStore) WorkerCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.workers)
}

func (m *MemStore) VehicleCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.vehicles)
}

func (m *MemStore) Ping(context.Context) error { return m.PingErr }

func (m *MemStore) ListActiveWorkers(context.Context) ([]models.Worker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Worker, 0, len(m.workers))
	for _, w := range m.workers {
		if w.Active {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *MemStore) CreateWorker(_ context.Context, w *models.Worker) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.workers {
		if existing.NationalID == w.NationalID {
			return apperr.Conflict("a worker with that national id already exists", errors.New("duplicate national_id"))
		}
	}
	w.ID = m.id()
	w.CreatedAt = m.now()
	m.workers = append(m.workers, *w)
	return nil
}

func (m *MemStore) DeactivateWorker(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.workers {
		if m.workers[i].ID == id {
			m.workers[i].Active = false
			return nil
		}
	}
	return apperr.NotFound("worker not found")
}

func (m *MemStore) ListActiveVehicles(context.Context) ([]models.Vehicle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Vehicle, 0, len(m.vehicles))
	for _, v := range m.vehicles {
		if v.Active {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Plate < out[j].Plate })
	return out, nil
}

func (m *MemStore) CreateVehicle(_ context.Context, v *models.Vehicle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.vehicles {
		if existing.Plate == v.Plate {
			return apperr.Conflict("a vehicle with that plate already exists", errors.New("duplicate plate"))
		}
	}
	v.ID = m.id()
	v.CreatedAt = m.now()
	m.vehicles = append(m.vehicles, *v)
	return nil
}

func (m *MemStore) DeactivateVehicle(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.vehicles {
		if m.vehicles[i].ID == id {
			m.vehicles[i].Active = false
			return nil
		}
	}
	return apperr.NotFound("vehicle not found")
}

func (m *MemStore) CreateShiftRecord(_ context.Context, rec *models.ShiftRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++

	fail := func(step string) error {
		return apperr.Storage("could not save shift record", errors.New("injected failure at "+step))
	}
	if m.FailAt == StepHeader {
		return fail(StepHeader)
	}
	id := m.nextID + 1
	if m.FailAt == StepEquipment {
		return fail(StepEquipment)
	}
	if m.FailAt == StepVehicleChecklist {
		return fail(StepVehicleChecklist)
	}
	withFuel := rec.Fuel != nil && !rec.Fuel.IsEmpty()
	if withFuel && m.FailAt == StepFuel {
		return fail(StepFuel)
	}

	// Every step passed: apply the staged rows.
	m.nextID = id
	rec.ID = id
	rec.CreatedAt = m.now()
	header := *rec
	header.Equipment, header.VehicleChecklist, header.Fuel, header.Worker, header.Vehicle = nil, nil, nil, nil, nil
	m.records = append(m.records, header)

	var equip models.EquipmentChecklist
	if rec.Equipment != nil {
		equip = *rec.Equipment
	}
	equip.ShiftRecordID = id
	m.equip[id] = equip

	var checks models.VehicleChecklist
	if rec.VehicleChecklist != nil {
		checks = *rec.VehicleChecklist
	}
	checks.ShiftRecordID = id
	m.checks[id] = checks

	if withFuel {
		f := *rec.Fuel
		f.ShiftRecordID = id
		m.fuel[id] = f
	}
	return nil
}

func (m *MemStore) ListShiftRecords(_ context.Context, f models.ShiftRecordFilter) ([]models.ShiftRecordSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.ShiftRecordSummary, 0)
	for _, r := range m.records {
		day := time.Time(r.Date)
		switch {
		case f.WorkerID != 0 && r.WorkerID != f.WorkerID,
			f.VehicleID != 0 && r.VehicleID != f.VehicleID,
			f.DateFrom != nil && day.Before(*f.DateFrom),
			f.DateTo != nil && day.After(*f.DateTo):
			continue
		}
		s := models.ShiftRecordSummary{
			ID:           r.ID,
			Date:         day,
			ShiftLabel:   r.ShiftLabel,
			RecordType:   r.RecordType,
			OdometerKm:   r.OdometerKm,
			GeneralNotes: r.GeneralNotes,
			CreatedAt:    r.CreatedAt,
		}
		if w := m.worker(r.WorkerID); w != nil {
			s.WorkerName = w.Name
		}
		if v := m.vehicle(r.VehicleID); v != nil {
			s.VehiclePlate = v.Plate
			s.VehicleModel = v.Model
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *MemStore) GetShiftRecord(_ context.Context, id uint) (*models.ShiftRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.ID != id {
			continue
		}
		rec := r
		rec.Worker = m.worker(r.WorkerID)
		rec.Vehicle = m.vehicle(r.VehicleID)
		if e, ok := m.equip[id]; ok {
			rec.Equipment = &e
		}
		if c, ok := m.checks[id]; ok {
			rec.VehicleChecklist = &c
		}
		if f, ok := m.fuel[id]; ok {
			rec.Fuel = &f
		}
		return &rec, nil
	}
	return nil, apperr.NotFound("shift record not found")
}

func (m *MemStore) worker(id uint) *models.Worker {
	for _, w := range m.workers {
		if w.ID == id {
			w := w
			return &w
		}
	}
	return nil
}

func (m *MemStore) vehicle(id uint) *models.Vehicle {
	for _, v := range m.vehicles {
		if v.ID == id {
			v := v
			return &v
		}
	}
	return nil
}
